package controllers

import (
	"context"
	"net/http"

	"Santa/middleware"
	"Santa/models"
	"Santa/models/postgres"
	"Santa/services/auth"
	"Santa/utils"

	"github.com/gin-gonic/gin"
)

type AuthService interface {
	Register(ctx context.Context, in models.RegisterInput) (*auth.Session, error)
	Login(ctx context.Context, email, password string) (*auth.Session, error)
	GetUserInfo(ctx context.Context, id models.ID) (*postgres.User, error)
}

// @Summary Register a new user
// @Description Creates an account and returns it with a bearer token
// @Tags user
// @Accept json
// @Produce json
// @Param user body models.RegisterInput true "New user"
// @Success 201 {object} object{data=auth.Session}
// @Failure 400 {object} object{error=string}
// @Router /user/register [post]
func Register(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.Error(utils.BindingError(err))
			return
		}
		session, err := svc.Register(c.Request.Context(), in)
		if err != nil {
			c.Error(err)
			return
		}
		utils.Respond(c, http.StatusCreated, session)
	}
}

// @Summary Log in
// @Tags user
// @Accept json
// @Produce json
// @Param credentials body models.LoginInput true "Email and password"
// @Success 200 {object} object{data=auth.Session}
// @Failure 403 {object} object{error=string}
// @Router /user/login [post]
func Login(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.LoginInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.Error(utils.BindingError(err))
			return
		}
		session, err := svc.Login(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			c.Error(err)
			return
		}
		utils.Respond(c, http.StatusOK, session)
	}
}

// @Summary Get the caller's profile
// @Tags user
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{data=postgres.User}
// @Failure 401 {object} object{error=string}
// @Router /user/me [get]
// @Security ApiKeyAuth
func Me(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.GetUserInfo(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			c.Error(err)
			return
		}
		utils.Respond(c, http.StatusOK, u)
	}
}
