package model

import (
	"time"

	gModel "lemon/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldTableID   = "table_id"
	FieldDate      = "reservation_date"
	FieldTime      = "reservation_time"
	FieldPartySize = "party_size"
	FieldStatus    = "status"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
	StatusNoShow    = "no_show"
)

// Reservation is one booking of one table for one party at one date/time.
// Rows are never deleted; lifecycle changes go through status only.
// A slot is free again only when its reservation is cancelled.
type Reservation struct {
	ID            int64                `db:"id"`
	UserID        string               `db:"user_id"`
	TableID       int64                `db:"table_id"`
	Date          time.Time            `db:"reservation_date"`
	Time          string               `db:"reservation_time"`
	PartySize     int                  `db:"party_size"`
	Status        string               `db:"status"`
	Notes         gModel.LocalizedText `db:"notes"`
	InternalNotes gModel.LocalizedText `db:"internal_notes"`

	// Joined table details for display.
	TableNumber      string               `db:"table_number"      table:"tables" column:"number"`
	TableCapacity    int                  `db:"table_capacity"    table:"tables" column:"capacity"`
	TableDescription gModel.LocalizedText `db:"table_description" table:"tables" column:"description"`

	gModel.Metadata
}

// GetJoinQuery attaches the assigned table to every read.
func (Reservation) GetJoinQuery() string {
	return "JOIN tables ON tables.id = reservations.table_id"
}
