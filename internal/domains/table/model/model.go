package model

import gModel "lemon/shared/model"

const (
	TableName  = "tables"
	EntityName = "table"

	FieldID          = "id"
	FieldNumber      = "number"
	FieldCapacity    = "capacity"
	FieldDescription = "description"
)

// Table is a diner-facing seating unit. Read-only from this service's
// perspective; rows are managed by restaurant staff tooling.
type Table struct {
	ID          int64                `db:"id"`
	Number      string               `db:"number"`
	Capacity    int                  `db:"capacity"`
	Description gModel.LocalizedText `db:"description"`
	gModel.Metadata
}
