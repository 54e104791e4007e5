// Package wishlist manages users' gift wishes and lets a giver read and mark the
// wishes of the receiver they drew.
package wishlist

import (
	"context"
	"errors"
	"strings"

	"Santa/models"
	"Santa/models/postgres"
	"Santa/utils/apperr"
)

type Store interface {
	CreateItem(ctx context.Context, item *postgres.WishlistItem) error
	ListItems(ctx context.Context, userID models.ID) ([]postgres.WishlistItem, error)
	DeleteItem(ctx context.Context, userID, itemID models.ID) error
	UpdateItemStatus(ctx context.Context, ownerID, itemID models.ID, status models.WishlistStatus) (*postgres.WishlistItem, error)
}

// ReceiverLookup resolves the receiver a giver drew.
type ReceiverLookup interface {
	GetReceiver(ctx context.Context, token, giverID string) (models.ID, error)
}

type Service struct {
	store     Store
	receivers ReceiverLookup
}

func NewService(store Store, receivers ReceiverLookup) *Service {
	return &Service{store: store, receivers: receivers}
}

func (s *Service) Add(ctx context.Context, userID models.ID, in models.AddItemInput) (*postgres.WishlistItem, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperr.NewValidation("Title is required")
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, apperr.NewValidation("Invalid status")
	}

	item := &postgres.WishlistItem{
		UserID:      userID,
		Title:       title,
		Description: in.Description,
		URL:         in.URL,
		Status:      in.Status,
	}
	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) List(ctx context.Context, userID models.ID) ([]postgres.WishlistItem, error) {
	return s.store.ListItems(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, userID models.ID, itemID string) error {
	iid, err := models.ParseID("ItemId", itemID)
	if err != nil {
		return err
	}
	return s.store.DeleteItem(ctx, userID, iid)
}

// ListForDraw returns the wishlist of the receiver drawn behind token.
func (s *Service) ListForDraw(ctx context.Context, token string, giverID models.ID) ([]postgres.WishlistItem, error) {
	receiver, err := s.receivers.GetReceiver(ctx, token, giverID.String())
	if err != nil {
		return nil, err
	}
	return s.store.ListItems(ctx, receiver)
}

// UpdateStatus lets a giver mark an item of their receiver's wishlist.
func (s *Service) UpdateStatus(ctx context.Context, token string, giverID models.ID, itemID string, status models.WishlistStatus) (*postgres.WishlistItem, error) {
	if strings.TrimSpace(token) == "" || giverID.IsZero() || strings.TrimSpace(itemID) == "" || status == "" {
		return nil, apperr.NewValidation("Missing required parameters")
	}
	if !status.Valid() {
		return nil, apperr.NewValidation("Invalid status")
	}
	iid, err := models.ParseID("ItemId", itemID)
	if err != nil {
		return nil, err
	}

	receiver, err := s.receivers.GetReceiver(ctx, token, giverID.String())
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.NewAuthorization("You are not allowed to update this item")
		}
		return nil, err
	}
	return s.store.UpdateItemStatus(ctx, receiver, iid, status)
}
