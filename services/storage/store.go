// Package storage persists users, events, draws and wishlists in PostgreSQL through GORM.
package storage

import (
	"errors"

	"Santa/utils/apperr"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the handle for migrations and health checks.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// classify turns a GORM error into an application error. notFound is the message used
// when the record does not exist.
func classify(err error, notFound string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NewNotFound(notFound)
	}
	if apperr.KindOf(err) != apperr.Unknown {
		return err
	}
	return apperr.NewStorage(err)
}
