package routes

import (
	"Santa/controllers"
	"Santa/middleware"
	"Santa/utils"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies holds what the handlers need
type Dependencies struct {
	Tokens   middleware.TokenVerifier
	Events   middleware.EventReader
	Auth     controllers.AuthService
	Event    controllers.EventService
	Access   controllers.AccessResolver
	Draw     controllers.DrawService
	Wishlist controllers.WishlistService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	// utils global
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	authRequired := middleware.AuthRequired(deps.Tokens)
	ownerOnly := middleware.CheckEventOwner(deps.Events)

	user := api.Group("/user")
	{
		user.POST("/register", controllers.Register(deps.Auth))
		user.POST("/login", controllers.Login(deps.Auth))
		user.GET("/me", authRequired, controllers.Me(deps.Auth))
	}

	event := api.Group("/event")
	{
		event.GET("/list", controllers.ListEvents(deps.Event))
		event.POST("/create", authRequired, controllers.CreateEvent(deps.Event))
		event.GET("/join/:id", authRequired, controllers.JoinEvent(deps.Event))
		event.POST("/invite/:id", authRequired, ownerOnly, controllers.InviteGuest(deps.Event))
		event.POST("/remove/:id", authRequired, ownerOnly, controllers.RemoveGuest(deps.Event))
		event.GET("/:id", authRequired, controllers.GetEvent(deps.Access))
	}

	api.GET("/draw/:id", authRequired, ownerOnly, controllers.DrawEvent(deps.Draw))

	wishlist := api.Group("/wishlist")
	wishlist.Use(authRequired)
	{
		wishlist.POST("/add", controllers.AddWishlistItem(deps.Wishlist))
		wishlist.GET("/list", controllers.ListWishlist(deps.Wishlist))
		wishlist.DELETE("/delete/:id", controllers.DeleteWishlistItem(deps.Wishlist))
		wishlist.GET("/draw/:uuid", controllers.DrawWishlist(deps.Wishlist))
		wishlist.PATCH("/update/:uuid/:itemId", controllers.UpdateWishlistItemStatus(deps.Wishlist))
	}
}
