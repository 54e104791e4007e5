package models

import (
	"strings"

	"Santa/utils/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID identifies users, events, draws and wishlist items: 24 hex characters.
type ID string

func NewID() ID {
	return ID(primitive.NewObjectID().Hex())
}

// ParseID validates raw as an identifier. field names the value in error messages
// ("UserId is required", "Invalid UserId").
func ParseID(field, raw string) (ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", apperr.NewValidation("%s is required", field)
	}
	if !IsValidID(raw) {
		return "", apperr.NewValidation("Invalid %s", field)
	}
	return ID(raw), nil
}

func IsValidID(raw string) bool {
	return primitive.IsValidObjectID(raw) && len(raw) == 24
}

func (id ID) String() string { return string(id) }

func (id ID) IsZero() bool { return id == "" }
