package storage

import (
	"context"

	"Santa/models"
	"Santa/models/postgres"
	"Santa/utils/apperr"
)

const (
	itemNotOwned     = "Item not found or not owned by user"
	itemNotUpdatable = "Wishlist item not found or cannot be updated"
)

func (s *Store) CreateItem(ctx context.Context, item *postgres.WishlistItem) error {
	return classify(s.db.WithContext(ctx).Create(item).Error, itemNotOwned)
}

func (s *Store) ListItems(ctx context.Context, userID models.ID) ([]postgres.WishlistItem, error) {
	items := []postgres.WishlistItem{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, classify(err, itemNotOwned)
	}
	return items, nil
}

func (s *Store) DeleteItem(ctx context.Context, userID, itemID models.ID) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&postgres.WishlistItem{})
	if res.Error != nil {
		return classify(res.Error, itemNotOwned)
	}
	if res.RowsAffected == 0 {
		return apperr.NewNotFound(itemNotOwned)
	}
	return nil
}

// UpdateItemStatus changes the status of an item belonging to ownerID.
func (s *Store) UpdateItemStatus(ctx context.Context, ownerID, itemID models.ID, status models.WishlistStatus) (*postgres.WishlistItem, error) {
	res := s.db.WithContext(ctx).Model(&postgres.WishlistItem{}).
		Where("id = ? AND user_id = ?", itemID, ownerID).
		Update("status", status)
	if res.Error != nil {
		return nil, classify(res.Error, itemNotUpdatable)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NewNotFound(itemNotUpdatable)
	}

	var item postgres.WishlistItem
	if err := s.db.WithContext(ctx).Where("id = ?", itemID).Take(&item).Error; err != nil {
		return nil, classify(err, itemNotUpdatable)
	}
	return &item, nil
}
