package controllers

import (
	"context"
	"net/http"

	"Santa/middleware"
	"Santa/models/postgres"
	"Santa/utils"

	"github.com/gin-gonic/gin"
)

type DrawService interface {
	DrawEvent(ctx context.Context, eventID, requesterID string) ([]postgres.Draw, error)
}

// @Summary Run the draw of an event
// @Description Owner only. Assigns every guest a receiver and notifies the givers
// @Tags draw
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Event id"
// @Success 200 {object} object{data=[]postgres.Draw}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /draw/{id} [get]
// @Security ApiKeyAuth
func DrawEvent(svc DrawService) gin.HandlerFunc {
	return func(c *gin.Context) {
		draws, err := svc.DrawEvent(c.Request.Context(), c.Param("id"), middleware.UserID(c).String())
		if err != nil {
			c.Error(err)
			return
		}
		utils.Respond(c, http.StatusOK, draws)
	}
}
