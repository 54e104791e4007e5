package postgres

import (
	"time"

	"Santa/models"

	"gorm.io/gorm"
)

/*
 * 'User' is an account able to own events, join them as a guest and keep a wishlist.
 * Email and Phone are both optional but at least one is needed to be reached after a draw.
 */
type User struct {
	ID           models.ID `gorm:"primaryKey;size:24;not null" json:"id"`
	FirstName    string    `gorm:"size:100;not null" json:"firstname"`
	LastName     string    `gorm:"size:100;not null" json:"lastname"`
	Email        *string   `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	Phone        *string   `gorm:"size:32;uniqueIndex" json:"phone,omitempty"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	MemberSince  time.Time `gorm:"autoCreateTime" json:"member_since"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID.IsZero() {
		u.ID = models.NewID()
	}
	return nil
}

// Profile is the public view of the user shared with other guests.
func (u *User) Profile() models.UserProfile {
	return models.UserProfile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}
