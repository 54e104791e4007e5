package controllers

import (
	"context"
	"net/http"

	"Santa/middleware"
	"Santa/models"
	"Santa/models/postgres"
	"Santa/services/access"
	"Santa/utils"

	"github.com/gin-gonic/gin"
)

type EventService interface {
	Create(ctx context.Context, ownerID models.ID, in models.CreateEventInput) (*postgres.Event, error)
	List(ctx context.Context) ([]models.EventListItem, error)
	Join(ctx context.Context, eventID string, userID models.ID) error
	Invite(ctx context.Context, eventID string, contact models.ContactInput) (*postgres.User, error)
	Remove(ctx context.Context, eventID string, contact models.ContactInput) (*postgres.User, error)
}

type AccessResolver interface {
	Resolve(ctx context.Context, userID, eventID string) (*access.Access, error)
}

// @Summary Create an event
// @Description The caller becomes the owner and first guest
// @Tags event
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param event body models.CreateEventInput true "Event"
// @Success 201 {object} object{data=postgres.Event}
// @Failure 400 {object} object{error=string}
// @Router /event/create [post]
// @Security ApiKeyAuth
func CreateEvent(svc EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.CreateEventInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.Error(utils.BindingError(err))
			return
		}
		e, err := svc.Create(c.Request.Context(), middleware.UserID(c), in)
		if err != nil {
			c.Error(err)
			return
		}
		utils.Respond(c, http.StatusCreated, e)
	}
}

// @Summary List events
// @Tags event
// @Produce json
// @Success 200 {object} object{data=[]models.EventListItem}
// @Router /event/list [get]
func ListEvents(svc EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		utils.Respond(c, http.StatusOK, list)
	}
}

// @Summary Get an event as seen by the caller
// @Description Owner and guests also get the guest profiles
// @Tags event
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Event id"
// @Success 200 {object} object{data=access.Access}
// @Failure 404 {object} object{error=string}
// @Router /event/{id} [get]
// @Security ApiKeyAuth
func GetEvent(resolver AccessResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, err := resolver.Resolve(c.Request.Context(), middleware.UserID(c).String(), c.Param("id"))
		if err != nil {
			c.Error(err)
			return
		}
		utils.Respond(c, http.StatusOK, a)
	}
}

// @Summary Join an event
// @Tags event
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Event id"
// @Success 200 {object} object{data=object{message=string}}
// @Failure 404 {object} object{error=string}
// @Router /event/join/{id} [get]
// @Security ApiKeyAuth
func JoinEvent(svc EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Join(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
			c.Error(err)
			return
		}
		utils.Respond(c, http.StatusOK, gin.H{"message": "Joined event"})
	}
}

// @Summary Invite a user to an event
// @Description Owner only. The user is found by email, phone or id
// @Tags event
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Event id"
// @Param contact body models.ContactInput true "User to invite"
// @Success 200 {object} object{data=models.UserProfile}
// @Failure 403 {object} object{error=string}
// @Router /event/invite/{id} [post]
// @Security ApiKeyAuth
func InviteGuest(svc EventService) gin.HandlerFunc {
	return guestChange(svc.Invite)
}

// @Summary Remove a guest from an event
// @Tags event
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Event id"
// @Param contact body models.ContactInput true "Guest to remove"
// @Success 200 {object} object{data=models.UserProfile}
// @Failure 400 {object} object{error=string}
// @Router /event/remove/{id} [post]
// @Security ApiKeyAuth
func RemoveGuest(svc EventService) gin.HandlerFunc {
	return guestChange(svc.Remove)
}

func guestChange(change func(context.Context, string, models.ContactInput) (*postgres.User, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.ContactInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.Error(utils.BindingError(err))
			return
		}
		u, err := change(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			c.Error(err)
			return
		}
		utils.Respond(c, http.StatusOK, u.Profile())
	}
}
