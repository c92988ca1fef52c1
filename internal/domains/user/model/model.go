package model

import (
	"eikaiwa/shared/model"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldLevel        = "level"
	FieldFullNameKana = "full_name_kana"
	FieldFullName     = "full_name"
	FieldPhone        = "phone"
	FieldIsVerified   = "is_verified"
	FieldLastLogin    = "last_login"
	FieldActive       = "active"
)

type User struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	Password     string     `db:"password"`
	Level        string     `db:"level"`
	FullNameKana *string    `db:"full_name_kana"`
	FullName     *string    `db:"full_name"`
	Phone        *string    `db:"phone"`
	IsVerified   bool       `db:"is_verified"`
	LastLogin    *time.Time `db:"last_login"`
	Active       bool       `db:"active"`
	model.Metadata
}
