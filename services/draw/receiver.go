package draw

import (
	"context"
	"strings"

	"Santa/models"
	"Santa/utils/apperr"
)

// GetReceiver returns the receiver assigned to giverID by the draw behind token.
func (s *Service) GetReceiver(ctx context.Context, token, giverID string) (models.ID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", apperr.NewValidation("UUID is required")
	}
	gid, err := models.ParseID("UserId", giverID)
	if err != nil {
		return "", err
	}

	d, err := s.store.FindDraw(ctx, token, gid)
	if err != nil {
		return "", err
	}
	return d.ReceiverID, nil
}
