package dto

import (
	"net/url"
	"strconv"
	"time"

	"lemon/internal/domains/reservation/model"
	"lemon/shared/constant"
	gDto "lemon/shared/dto"
	gModel "lemon/shared/model"
	"lemon/shared/timezone"
)

// CreateReservationRequest carries the raw reservation form fields. Field
// names follow the form/JSON contract; validation messages are keyed by them.
type CreateReservationRequest struct {
	Date      string `json:"date"       validate:"required,datetime=2006-01-02"`
	Time      string `json:"time"       validate:"required"`
	PartySize int    `json:"party_size" validate:"required,gte=1"`
	TableID   int64  `json:"table_id"   validate:"required"`
	Notes     string `json:"notes"      validate:"omitempty,max=500"`
}

// FromForm populates the request from an urlencoded form post. Unparseable
// numbers are left zero so that struct validation reports them on the right
// field instead of failing the decode.
func (c *CreateReservationRequest) FromForm(values url.Values) {
	c.Date = values.Get("date")
	c.Time = values.Get("time")
	c.Notes = values.Get("notes")

	if partySize, err := strconv.Atoi(values.Get("party_size")); err == nil {
		c.PartySize = partySize
	}

	if tableID, err := strconv.ParseInt(values.Get("table_id"), 10, 64); err == nil {
		c.TableID = tableID
	}
}

// ParseDate returns the reservation date in the application timezone.
func (c *CreateReservationRequest) ParseDate() (time.Time, error) {
	return timezone.Parse(constant.ReservationDate, c.Date)
}

// ParseTime normalizes the time-of-day to HH:MM:SS, accepting HH:MM as well.
func (c *CreateReservationRequest) ParseTime() (string, error) {
	parsed, err := time.Parse(constant.ReservationTime, c.Time)
	if err != nil {
		parsed, err = time.Parse(constant.ReservationTimeHM, c.Time)
	}

	if err != nil {
		return "", err
	}

	return parsed.Format(constant.ReservationTime), nil
}

// ToModel builds the reservation row. The customer note is stored under the
// submitting locale so staff tooling can tell which language it was written in.
func (c *CreateReservationRequest) ToModel(userID, locale string, date time.Time, timeOfDay string) model.Reservation {
	notes := gModel.LocalizedText{}
	if c.Notes != "" {
		notes[locale] = gModel.LocalizedFields{Description: c.Notes}
	}

	return model.Reservation{
		UserID:        userID,
		TableID:       c.TableID,
		Date:          date,
		Time:          timeOfDay,
		PartySize:     c.PartySize,
		Status:        model.StatusConfirmed,
		Notes:         notes,
		InternalNotes: gModel.LocalizedText{},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

// ReservationResponse is one reservation joined with its table, with all
// localized text resolved for the requested locale.
type ReservationResponse struct {
	ID               int64  `json:"id"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	PartySize        int    `json:"party_size"`
	Status           string `json:"status"`
	Notes            string `json:"notes,omitempty"`
	TableID          int64  `json:"table_id"`
	TableNumber      string `json:"table_number"`
	TableCapacity    int    `json:"table_capacity"`
	TableDescription string `json:"table_description,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(mod model.Reservation, locale string) {
	r.ID = mod.ID
	r.Date = mod.Date.Format(constant.ReservationDate)
	r.Time = mod.Time
	r.PartySize = mod.PartySize
	r.Status = mod.Status
	r.Notes = mod.Notes.ResolveDescription(locale)
	r.TableID = mod.TableID
	r.TableNumber = mod.TableNumber
	r.TableCapacity = mod.TableCapacity
	r.TableDescription = mod.TableDescription.ResolveDescription(locale)
	r.Metadata.FromModel(mod.Metadata)
}

// SubmitResult is the single typed exit vocabulary of the reservation form
// action: a redirect for unauthenticated callers, or a tagged success/error
// the client uses to drive toasts, inline field errors, and navigation.
type SubmitResult struct {
	Type        string               `json:"type"`
	Location    string               `json:"location,omitempty"`
	MessageKey  string               `json:"messageKey,omitempty"`
	Message     string               `json:"message,omitempty"`
	FieldErrors map[string][]string  `json:"fieldErrors,omitempty"`
	Reservation *ReservationResponse `json:"reservation,omitempty"`
}

func RedirectResult(location string) SubmitResult {
	return SubmitResult{
		Type:     gDto.ResultTypeRedirect,
		Location: location,
	}
}

func SuccessResult(messageKey, message string, reservation *ReservationResponse) SubmitResult {
	return SubmitResult{
		Type:        gDto.ResultTypeSuccess,
		MessageKey:  messageKey,
		Message:     message,
		Reservation: reservation,
	}
}

func ErrorResult(messageKey, message string, fieldErrors map[string][]string) SubmitResult {
	return SubmitResult{
		Type:        gDto.ResultTypeError,
		MessageKey:  messageKey,
		Message:     message,
		FieldErrors: fieldErrors,
	}
}

// ReservationConfirmedEvent is published to Kafka after a successful booking
// for downstream notification consumers.
type ReservationConfirmedEvent struct {
	ReservationID int64  `json:"reservation_id"`
	UserID        string `json:"user_id"`
	TableID       int64  `json:"table_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	PartySize     int    `json:"party_size"`
}
