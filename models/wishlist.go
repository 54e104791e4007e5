package models

type WishlistStatus string

const (
	StatusFree     WishlistStatus = "FREE"
	StatusReserved WishlistStatus = "RESERVED"
	StatusDone     WishlistStatus = "DONE"
)

func (s WishlistStatus) Valid() bool {
	switch s {
	case StatusFree, StatusReserved, StatusDone:
		return true
	}
	return false
}

// AddItemInput to add an item to the caller's wishlist
type AddItemInput struct {
	Title       string         `json:"title" binding:"required,max=200"`
	Description *string        `json:"description" binding:"omitempty,max=2000"`
	URL         *string        `json:"url" binding:"omitempty,url"`
	Status      WishlistStatus `json:"status" binding:"omitempty,oneof=FREE RESERVED DONE"`
}

type UpdateStatusInput struct {
	Status WishlistStatus `json:"status" binding:"required"`
}
