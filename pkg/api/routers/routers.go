package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/guidewire/core-auth-examples/pkg/api/handlers"
)

func RegisterRouters(router *gin.Engine, handler *handlers.Handler) {
	router.GET("/", handler.Index)
	router.GET("/ping", handler.Ping)

	// auth flow
	router.GET("/login", handler.Login)
	router.GET("/callback", handler.Callback)
	router.POST("/postback", handler.Postback)
}
