package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Santa/models"
	"Santa/models/postgres"
	"Santa/utils"
	"Santa/utils/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubVerifier map[string]models.ID

func (s stubVerifier) Verify(raw string) (models.ID, error) {
	if id, ok := s[raw]; ok {
		return id, nil
	}
	return "", apperr.NewAuthorization("Invalid token")
}

type stubEvents map[models.ID]*postgres.Event

func (s stubEvents) GetEvent(_ context.Context, id models.ID) (*postgres.Event, error) {
	if e, ok := s[id]; ok {
		return e, nil
	}
	return nil, apperr.NewNotFound("Event not found")
}

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uid := models.NewID()
	router := gin.New()
	router.GET("/me", AuthRequired(stubVerifier{"good": uid}), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c).String())
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"good token", "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, uid.String(), w.Body.String())
			}
		})
	}
}

func TestCheckEventOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	owner, other := models.NewID(), models.NewID()
	eventID := models.NewID()
	events := stubEvents{eventID: {ID: eventID, OwnerID: owner}}

	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.GET("/draw/:id",
		AuthRequired(stubVerifier{"owner": owner, "other": other}),
		CheckEventOwner(events),
		func(c *gin.Context) { c.Status(http.StatusNoContent) })

	tests := []struct {
		name  string
		token string
		id    string
		want  int
	}{
		{"owner", "owner", eventID.String(), http.StatusNoContent},
		{"not owner", "other", eventID.String(), http.StatusForbidden},
		{"unknown event", "owner", models.NewID().String(), http.StatusNotFound},
		{"bad id", "owner", "123", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/draw/"+tt.id, nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestSetUpMiddlewareRegistersObjectID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetUpMiddleware(router, nil)

	router.POST("/invite", func(c *gin.Context) {
		var in models.ContactInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	send := func(body string) int {
		req := httptest.NewRequest(http.MethodPost, "/invite", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send(`{"user_id":"`+models.NewID().String()+`"}`))
	assert.Equal(t, http.StatusBadRequest, send(`{"user_id":"not-an-id"}`))
}
