package controllers

import (
	"context"
	"net/http"

	"Santa/middleware"
	"Santa/models"
	"Santa/models/postgres"
	"Santa/utils"

	"github.com/gin-gonic/gin"
)

type WishlistService interface {
	Add(ctx context.Context, userID models.ID, in models.AddItemInput) (*postgres.WishlistItem, error)
	List(ctx context.Context, userID models.ID) ([]postgres.WishlistItem, error)
	Delete(ctx context.Context, userID models.ID, itemID string) error
	ListForDraw(ctx context.Context, token string, giverID models.ID) ([]postgres.WishlistItem, error)
	UpdateStatus(ctx context.Context, token string, giverID models.ID, itemID string, status models.WishlistStatus) (*postgres.WishlistItem, error)
}

// @Summary Add an item to the caller's wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param item body models.AddItemInput true "Item"
// @Success 201 {object} object{data=postgres.WishlistItem}
// @Failure 400 {object} object{error=string}
// @Router /wishlist/add [post]
// @Security ApiKeyAuth
func AddWishlistItem(svc WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.AddItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.Error(utils.BindingError(err))
			return
		}
		item, err := svc.Add(c.Request.Context(), middleware.UserID(c), in)
		if err != nil {
			c.Error(err)
			return
		}
		utils.Respond(c, http.StatusCreated, item)
	}
}

// @Summary List the caller's wishlist
// @Tags wishlist
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{data=[]postgres.WishlistItem}
// @Router /wishlist/list [get]
// @Security ApiKeyAuth
func ListWishlist(svc WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			c.Error(err)
			return
		}
		utils.Respond(c, http.StatusOK, items)
	}
}

// @Summary Delete an item of the caller's wishlist
// @Tags wishlist
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Item id"
// @Success 200 {object} object{data=object{message=string}}
// @Failure 404 {object} object{error=string}
// @Router /wishlist/delete/{id} [delete]
// @Security ApiKeyAuth
func DeleteWishlistItem(svc WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
			c.Error(err)
			return
		}
		utils.Respond(c, http.StatusOK, gin.H{"message": "Item deleted"})
	}
}

// @Summary Get the wishlist of the receiver behind a draw token
// @Tags wishlist
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param uuid path string true "Draw token"
// @Success 200 {object} object{data=[]postgres.WishlistItem}
// @Failure 404 {object} object{error=string}
// @Router /wishlist/draw/{uuid} [get]
// @Security ApiKeyAuth
func DrawWishlist(svc WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListForDraw(c.Request.Context(), c.Param("uuid"), middleware.UserID(c))
		if err != nil {
			c.Error(err)
			return
		}
		utils.Respond(c, http.StatusOK, items)
	}
}

// @Summary Update the status of the receiver's wishlist item
// @Tags wishlist
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param uuid path string true "Draw token"
// @Param itemId path string true "Item id"
// @Param status body models.UpdateStatusInput true "New status"
// @Success 200 {object} object{data=postgres.WishlistItem}
// @Failure 403 {object} object{error=string}
// @Router /wishlist/update/{uuid}/{itemId} [patch]
// @Security ApiKeyAuth
func UpdateWishlistItemStatus(svc WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.UpdateStatusInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.Error(utils.BindingError(err))
			return
		}
		item, err := svc.UpdateStatus(c.Request.Context(), c.Param("uuid"), middleware.UserID(c), c.Param("itemId"), in.Status)
		if err != nil {
			c.Error(err)
			return
		}
		utils.Respond(c, http.StatusOK, item)
	}
}
