package reservation

import (
	"encoding/json"
	"net/http"
	"strings"

	"lemon/infras/otel"
	reservationDto "lemon/internal/domains/reservation/model/dto"
	reservationService "lemon/internal/domains/reservation/service"
	tableService "lemon/internal/domains/table/service"
	"lemon/shared/constant"
	gDto "lemon/shared/dto"
	"lemon/shared/failure"
	"lemon/transport/http/middleware"
	"lemon/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      reservationService.Reservation
	tableService tableService.Table
	auth         middleware.Auth
	otel         otel.Otel
}

func New(service reservationService.Reservation, tableService tableService.Table, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		tableService: tableService,
		auth:         auth,
		otel:         otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/reservations", func(r chi.Router) {
		r.Get("/new", handler.GetReservableTables)
		r.With(handler.auth.Optional).Post("/new", handler.Submit)
		r.With(handler.auth.Required).Get("/", handler.GetMyReservations)
	})
}

// GetReservableTables answers the reservation form's availability query.
// Always a 200 with a tagged result; a broken store shows up as an error
// result, not a 5xx, so the form can render the failure inline.
func (handler *Handler) GetReservableTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservableTables")
	defer scope.End()

	locale := middleware.LocaleFromContext(ctx)
	date := r.URL.Query().Get(constant.RequestParamDate)
	timeOfDay := r.URL.Query().Get(constant.RequestParamTime)

	result := handler.tableService.GetReservableTables(ctx, locale, date, timeOfDay)

	response.WithResult(w, http.StatusOK, result)
}

// Submit is the reservation form action. It accepts a JSON body or an
// urlencoded form post and answers with the tagged submit result; a redirect
// outcome becomes a 303 See Other for plain form submissions.
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	locale := middleware.LocaleFromContext(ctx)

	req, err := handler.parseRequest(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse reservation request")

		// An unreadable body still answers in the tagged result shape the
		// form client branches on.
		result := reservationDto.ErrorResult(failure.KeyOf(err), err.Error(), failure.FieldErrorsOf(err))
		response.WithResult(w, statusForKey(result.MessageKey), result)

		return
	}

	result := handler.service.Submit(ctx, locale, req)

	switch result.Type {
	case gDto.ResultTypeRedirect:
		w.Header().Set("Location", result.Location)
		response.WithResult(w, http.StatusSeeOther, result)
	case gDto.ResultTypeSuccess:
		scope.AddEvent("Reservation created successfully")
		response.WithResult(w, http.StatusCreated, result)
	default:
		response.WithResult(w, statusForKey(result.MessageKey), result)
	}
}

// GetMyReservations lists the caller's reservations with table details.
func (handler *Handler) GetMyReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyReservations")
	defer scope.End()

	res, err := handler.service.GetUserReservations(ctx, middleware.LocaleFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) parseRequest(r *http.Request) (reservationDto.CreateReservationRequest, error) {
	req := reservationDto.CreateReservationRequest{}

	contentType := r.Header.Get(constant.RequestHeaderContentType)
	if strings.HasPrefix(contentType, constant.ContentTypeFormURLEncoded) {
		if err := r.ParseForm(); err != nil {
			return req, failure.BadRequestFromString("malformed form body") // nolint:wrapcheck
		}

		req.FromForm(r.PostForm)

		return req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, failure.BadRequestFromString("malformed request body") // nolint:wrapcheck
	}

	return req, nil
}

func statusForKey(messageKey string) int {
	switch messageKey {
	case failure.KeyValidationError:
		return http.StatusBadRequest
	case failure.KeyConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
