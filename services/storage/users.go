package storage

import (
	"context"

	"Santa/models"
	"Santa/models/postgres"
	"Santa/utils/apperr"
)

const userNotFound = "User not found"

func (s *Store) CreateUser(ctx context.Context, u *postgres.User) error {
	return classify(s.db.WithContext(ctx).Create(u).Error, userNotFound)
}

func (s *Store) GetUser(ctx context.Context, id models.ID) (*postgres.User, error) {
	var u postgres.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&u).Error; err != nil {
		return nil, classify(err, userNotFound)
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*postgres.User, error) {
	var u postgres.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).Take(&u).Error; err != nil {
		return nil, classify(err, userNotFound)
	}
	return &u, nil
}

// GetUserByContact looks a user up by email or phone. When both are given the user
// must match both.
func (s *Store) GetUserByContact(ctx context.Context, email, phone string) (*postgres.User, error) {
	var u postgres.User
	q := s.db.WithContext(ctx)
	switch {
	case email != "" && phone != "":
		q = q.Where("email = ? AND phone = ?", email, phone)
	case email != "":
		q = q.Where("email = ?", email)
	case phone != "":
		q = q.Where("phone = ?", phone)
	default:
		return nil, apperr.NewValidation("Email or phone is required")
	}
	if err := q.Take(&u).Error; err != nil {
		return nil, classify(err, userNotFound)
	}
	return &u, nil
}

// ContactTaken reports whether another account already uses email or phone.
func (s *Store) ContactTaken(ctx context.Context, email, phone string) (bool, error) {
	var count int64
	q := s.db.WithContext(ctx).Model(&postgres.User{})
	if phone != "" {
		q = q.Where("email = ? OR phone = ?", email, phone)
	} else {
		q = q.Where("email = ?", email)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, classify(err, userNotFound)
	}
	return count > 0, nil
}
