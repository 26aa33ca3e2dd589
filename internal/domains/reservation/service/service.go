package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lemon/config"
	"lemon/infras/kafka"
	"lemon/infras/otel"
	"lemon/internal/domains/reservation/model"
	"lemon/internal/domains/reservation/model/dto"
	"lemon/internal/domains/reservation/repository"
	tableModel "lemon/internal/domains/table/model"
	tableRepo "lemon/internal/domains/table/repository"
	"lemon/shared"
	"lemon/shared/constant"
	gDto "lemon/shared/dto"
	"lemon/shared/failure"
	"lemon/shared/i18n"
	"lemon/shared/timezone"
	"lemon/shared/validator"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Reservation interface {
	Create(ctx context.Context, locale string, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Submit(ctx context.Context, locale string, req dto.CreateReservationRequest) dto.SubmitResult
	GetUserReservations(ctx context.Context, locale string) ([]dto.ReservationResponse, error)
}

type serviceImpl struct {
	repo       repository.Reservation
	tableRepo  tableRepo.Table
	cfg        *config.Config
	kafka      kafka.Client
	translator i18n.Translator
	otel       otel.Otel
}

func New(repo repository.Reservation, tableRepo tableRepo.Table, cfg *config.Config, kafka kafka.Client, translator i18n.Translator, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:       repo,
		tableRepo:  tableRepo,
		cfg:        cfg,
		kafka:      kafka,
		translator: translator,
		otel:       otel,
	}
}

// Create validates and stores a reservation for the authenticated user. The
// conflict pre-check and the partial unique index on the reservations table
// cover the same slot rule, so a lost race still surfaces as a conflict.
func (s *serviceImpl) Create(ctx context.Context, locale string, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	date, err := req.ParseDate()
	if err != nil {
		return res, failure.FieldError("date", "must be a valid date") // nolint:wrapcheck
	}

	timeOfDay, err := req.ParseTime()
	if err != nil {
		return res, failure.FieldError("time", "must be a valid time") // nolint:wrapcheck
	}

	now := timezone.Now()

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation())
	if date.Before(today) {
		return res, failure.FieldError("date", "must not be in the past") // nolint:wrapcheck
	}

	table, err := s.tableRepo.Get(ctx, shared.FilterByID(req.TableID, tableModel.FieldID, tableModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return res, failure.Database("failed to get table") // nolint:wrapcheck
	}

	if table.ID == 0 {
		return res, failure.FieldError("table_id", "table does not exist") // nolint:wrapcheck
	}

	if table.Capacity < req.PartySize {
		return res, failure.FieldError("party_size", "exceeds table capacity") // nolint:wrapcheck
	}

	taken, err := s.repo.Exist(ctx, slotFilter(req.TableID, req.Date, timeOfDay))
	if err != nil {
		log.Error().Err(err).Msg("failed to check reservation slot")

		return res, failure.Database("failed to check reservation slot") // nolint:wrapcheck
	}

	if taken {
		return res, failure.Conflict("table is already reserved for this slot") // nolint:wrapcheck
	}

	reservation := req.ToModel(user, locale, date, timeOfDay)

	id, err := s.repo.Insert(ctx, reservation)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("table is already reserved for this slot") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create reservation")

		return res, failure.Database("failed to create reservation") // nolint:wrapcheck
	}

	reservation.ID = id
	reservation.TableNumber = table.Number
	reservation.TableCapacity = table.Capacity
	reservation.TableDescription = table.Description

	go s.publishConfirmed(ctx, reservation)

	res.FromModel(reservation, locale)

	return res, nil
}

// Submit is the form action entry point. It never returns an error: every
// outcome is folded into a tagged result the caller renders directly.
func (s *serviceImpl) Submit(ctx context.Context, locale string, req dto.CreateReservationRequest) dto.SubmitResult {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		return dto.RedirectResult(fmt.Sprintf("/%s/login?next=/%s/reservations", locale, locale))
	}

	res, err := s.Create(ctx, locale, req)
	if err != nil {
		key := failure.KeyOf(err)

		return dto.ErrorResult(key, s.translator.Translate(locale, "Common.errors."+key, nil), failure.FieldErrorsOf(err))
	}

	return dto.SuccessResult("Reservations.created", s.translator.Translate(locale, "Reservations.created", nil), &res)
}

// GetUserReservations lists the authenticated user's reservations with their
// table details, soonest first. A user with no reservations gets an empty
// slice, never nil, so callers can tell "none" apart from "failed to load".
func (s *serviceImpl) GetUserReservations(ctx context.Context, locale string) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUserReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		return nil, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	// The trailing SortDir only reaches the last ORDER BY column, so the date
	// column carries its direction inline.
	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s %s, %s.%s", model.TableName, model.FieldDate, gDto.SortDirAsc, model.TableName, model.FieldTime),
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    user,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return nil, failure.Database("failed to load reservations") // nolint:wrapcheck
	}

	res = make([]dto.ReservationResponse, 0, len(models))

	for _, mod := range models {
		var item dto.ReservationResponse
		item.FromModel(mod, locale)

		res = append(res, item)
	}

	return res, nil
}

func (s *serviceImpl) publishConfirmed(ctx context.Context, reservation model.Reservation) {
	c := context.WithoutCancel(ctx)

	event := dto.ReservationConfirmedEvent{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		TableID:       reservation.TableID,
		Date:          reservation.Date.Format(constant.ReservationDate),
		Time:          reservation.Time,
		PartySize:     reservation.PartySize,
	}

	message := kafka.Message{
		Key:   fmt.Sprintf("%d", reservation.ID),
		Value: event,
	}

	if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.ReservationConfirmed, message); err != nil {
		log.Error().Err(err).Int64("reservationID", reservation.ID).Msg("failed to publish reservation confirmed event")
	}
}

// slotFilter matches an active reservation occupying the same table, date,
// and time. Cancelled rows free the slot.
func slotFilter(tableID int64, date, timeOfDay string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTableID,
				Value:    tableID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "slot_date",
				Field:    model.FieldDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "slot_time",
				Field:    model.FieldTime,
				Value:    timeOfDay,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusCancelled,
				Operator: gDto.FilterOperatorNotEq,
				Table:    model.TableName,
			},
		},
	}
}
