package router

import (
	"docuchat-backend/controller"
	"docuchat-backend/middleware"

	"github.com/gin-gonic/gin"
)

func Register() *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	{
		public := api.Group("/user")
		{
			public.POST("/register", controller.UserRegister)
			public.POST("/login", controller.UserLogin)
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/files", controller.ListFiles)
			protected.PUT("/files", controller.RequestUpload)
			protected.DELETE("/files", controller.DeleteFiles)
			protected.GET("/files/status", controller.GetFileStatus)

			protected.PUT("/embedding", controller.TriggerEmbedding)

			protected.POST("/chat", controller.DocumentChat)
			protected.GET("/files/:id/messages", controller.GetFileMessages)
		}
	}

	return r
}
