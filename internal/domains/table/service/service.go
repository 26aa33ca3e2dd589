package service

import (
	"context"
	"time"

	"lemon/infras/otel"
	reservationModel "lemon/internal/domains/reservation/model"
	reservationRepo "lemon/internal/domains/reservation/repository"
	"lemon/internal/domains/table/model"
	"lemon/internal/domains/table/model/dto"
	"lemon/internal/domains/table/repository"
	"lemon/shared/constant"
	gDto "lemon/shared/dto"
	"lemon/shared/failure"
	"lemon/shared/i18n"

	"github.com/rs/zerolog/log"
)

type Table interface {
	GetReservableTables(ctx context.Context, locale, date, timeOfDay string) dto.TablesResult
}

type serviceImpl struct {
	repo            repository.Table
	reservationRepo reservationRepo.Reservation
	translator      i18n.Translator
	otel            otel.Otel
}

func New(repo repository.Table, reservationRepo reservationRepo.Reservation, translator i18n.Translator, otel otel.Otel) Table {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		translator:      translator,
		otel:            otel,
	}
}

// GetReservableTables returns every table that can be offered to the diner,
// as a tagged result. With a valid date and time the list excludes tables
// already holding an active reservation for that slot; without one it is the
// full floor plan. Failures come back as an error result keyed with
// databaseError, never as a Go error: the availability widget renders either
// branch directly.
func (s *serviceImpl) GetReservableTables(ctx context.Context, locale, date, timeOfDay string) dto.TablesResult {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReservableTables")
	defer scope.End()

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldNumber,
		SortDir: gDto.SortDirAsc,
	}

	tables, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")
		scope.TraceError(err)

		return s.errorResult(locale)
	}

	booked, err := s.bookedTableIDs(ctx, date, timeOfDay)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked tables")
		scope.TraceError(err)

		return s.errorResult(locale)
	}

	res := []dto.TableResponse{}

	for _, mod := range tables {
		if booked[mod.ID] {
			continue
		}

		var item dto.TableResponse
		item.FromModel(mod, locale)

		res = append(res, item)
	}

	return dto.SuccessTables(res)
}

// bookedTableIDs resolves which tables hold an active reservation for the
// slot. Missing or malformed slot params mean no filtering and the widget
// shows the whole floor plan.
func (s *serviceImpl) bookedTableIDs(ctx context.Context, date, timeOfDay string) (map[int64]bool, error) {
	if date == "" || timeOfDay == "" {
		return nil, nil
	}

	if _, err := time.Parse(constant.ReservationDate, date); err != nil {
		return nil, nil
	}

	normalized, err := time.Parse(constant.ReservationTime, timeOfDay)
	if err != nil {
		normalized, err = time.Parse(constant.ReservationTimeHM, timeOfDay)
	}

	if err != nil {
		return nil, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "slot_date",
				Field:    reservationModel.FieldDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    reservationModel.TableName,
			},
			gDto.Filter{
				ArgName:  "slot_time",
				Field:    reservationModel.FieldTime,
				Value:    normalized.Format(constant.ReservationTime),
				Operator: gDto.FilterOperatorEq,
				Table:    reservationModel.TableName,
			},
			gDto.Filter{
				Field:    reservationModel.FieldStatus,
				Value:    reservationModel.StatusCancelled,
				Operator: gDto.FilterOperatorNotEq,
				Table:    reservationModel.TableName,
			},
		},
	}

	reservations, err := s.reservationRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, err
	}

	booked := make(map[int64]bool, len(reservations))
	for _, reservation := range reservations {
		booked[reservation.TableID] = true
	}

	return booked, nil
}

func (s *serviceImpl) errorResult(locale string) dto.TablesResult {
	key := failure.KeyDatabaseError

	return dto.ErrorTables(key, s.translator.Translate(locale, "Common.errors."+key, nil))
}
