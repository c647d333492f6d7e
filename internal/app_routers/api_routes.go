package approuters

import (
	"nova/internal/configuration"

	"github.com/gin-gonic/gin"
)

// ApiRouters wires the entity endpoints under /api.
func ApiRouters(router *gin.Engine, container *configuration.Container) {
	api := router.Group("/api")
	{
		api.POST("/users", container.UserHandler.CreateUser)
		api.GET("/users", container.UserHandler.ListUsers)

		api.POST("/channels", container.ChannelHandler.CreateChannel)
		api.GET("/channels", container.ChannelHandler.ListChannels)

		api.POST("/messages", container.MessageHandler.CreateMessage)
		api.GET("/messages", container.MessageHandler.ListMessages)

		api.POST("/videos", container.VideoHandler.CreateVideo)
		api.GET("/videos", container.VideoHandler.ListVideos)

		api.POST("/bot", container.BotHandler.Chat)
	}
}

// StatusRouters wires the liveness message and the connectivity probe.
func StatusRouters(router *gin.Engine, container *configuration.Container) {
	router.GET("/", container.StatusHandler.Root)
	router.GET("/test", container.StatusHandler.TestDatabase)
}
