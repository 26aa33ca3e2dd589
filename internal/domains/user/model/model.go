package model

import gModel "lemon/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	FieldActive   = "active"
)

type User struct {
	ID       string  `db:"id"`
	Email    string  `db:"email"`
	Password string  `db:"password"`
	Name     *string `db:"name"`
	Active   bool    `db:"active"`
	gModel.Metadata
}
