package models

// UserProfile is what other guests of an event may see about a user.
type UserProfile struct {
	ID        ID      `json:"id"`
	FirstName string  `json:"firstname"`
	LastName  string  `json:"lastname"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// RegisterInput to create a new account
type RegisterInput struct {
	FirstName string `json:"firstname" binding:"required,min=2,max=100"`
	LastName  string `json:"lastname" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"omitempty,e164"`
	Password  string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ContactInput designates a user by email, phone or id. At least one is required.
type ContactInput struct {
	Email  string `json:"email" binding:"omitempty,email"`
	Phone  string `json:"phone" binding:"omitempty,e164"`
	UserID string `json:"user_id" binding:"omitempty,objectid"`
}

func (c ContactInput) Empty() bool {
	return c.Email == "" && c.Phone == "" && c.UserID == ""
}
