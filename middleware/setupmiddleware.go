package middleware

import (
	"Santa/models"
	"Santa/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/logger"
)

func SetUpMiddleware(r *gin.Engine, allowOrigins []string) {
	r.Use(utils.Logger())

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}
	if len(allowOrigins) == 0 || (len(allowOrigins) == 1 && allowOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowOrigins
	}
	r.Use(cors.New(corsConfig))

	RegisterValidators()
}

// RegisterValidators adds the "objectid" tag to gin's binding validator.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	if err := v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return models.IsValidID(fl.Field().String())
	}); err != nil {
		logger.Errorf("registering objectid validator: %v", err)
	}
}
