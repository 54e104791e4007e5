package storage

import (
	"context"

	"Santa/models/postgres"
)

// SavePhoneNotification queues a draw result for out of band SMS delivery.
func (s *Store) SavePhoneNotification(ctx context.Context, n *postgres.PhoneNotification) error {
	return classify(s.db.WithContext(ctx).Create(n).Error, "Notification not found")
}
