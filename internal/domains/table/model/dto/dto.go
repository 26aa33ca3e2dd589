package dto

import (
	"lemon/internal/domains/table/model"
	gDto "lemon/shared/dto"
)

// TableResponse is a reservable table with its text resolved for one locale.
type TableResponse struct {
	ID          int64  `json:"id"`
	Number      string `json:"number"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description,omitempty"`
}

func (r *TableResponse) FromModel(mod model.Table, locale string) {
	r.ID = mod.ID
	r.Number = mod.Number
	r.Capacity = mod.Capacity
	r.Description = mod.Description.ResolveDescription(locale)
}

// TablesResult is the discriminated availability result: either a success
// carrying the offered tables or an error carrying a closed-vocabulary
// message key the client can localize.
type TablesResult struct {
	Type       string          `json:"type"`
	Data       []TableResponse `json:"data"`
	MessageKey string          `json:"messageKey,omitempty"`
	Message    string          `json:"message,omitempty"`
}

// SuccessTables wraps the offered tables. Data is never nil so an empty list
// still serializes as []: no tables is a valid answer, not an error.
func SuccessTables(tables []TableResponse) TablesResult {
	if tables == nil {
		tables = []TableResponse{}
	}

	return TablesResult{
		Type: gDto.ResultTypeSuccess,
		Data: tables,
	}
}

func ErrorTables(messageKey, message string) TablesResult {
	return TablesResult{
		Type:       gDto.ResultTypeError,
		MessageKey: messageKey,
		Message:    message,
	}
}
