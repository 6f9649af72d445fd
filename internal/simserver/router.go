package simserver

import "github.com/gin-gonic/gin"

// SetupRouter registers every route the debug surface exposes.
func SetupRouter(engine *gin.Engine, h *Handler) {
	engine.GET("/health", h.HandleHealth)

	bearers := engine.Group("/bearers")
	{
		bearers.GET("", h.HandleListBearers)
		bearers.GET("/:lcid", h.HandleGetBearer)
		bearers.POST("/:lcid/send", h.HandleSend)
		bearers.POST("/:lcid/reestablish", h.HandleReestablish)
	}
}
