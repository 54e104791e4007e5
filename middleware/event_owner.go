package middleware

import (
	"context"

	"Santa/models"
	"Santa/models/postgres"
	"Santa/utils/apperr"

	"github.com/gin-gonic/gin"
)

type EventReader interface {
	GetEvent(ctx context.Context, id models.ID) (*postgres.Event, error)
}

// CheckEventOwner lets the request through only when the caller owns the event in :id.
func CheckEventOwner(events EventReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		eid, err := models.ParseID("EventId", c.Param("id"))
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		event, err := events.GetEvent(c.Request.Context(), eid)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		if event.OwnerID != UserID(c) {
			c.Error(apperr.NewAuthorization("User is not the owner"))
			c.Abort()
			return
		}
		c.Next()
	}
}
