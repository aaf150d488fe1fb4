package http

import (
	"github.com/gin-gonic/gin"

	"household-relay/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The voice
// endpoints are rate limited per device; pending and debug endpoints are
// polled by screens and stay unthrottled.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	voice := rg.Group("/voice")
	{
		voice.POST("/route", mw.RateLimit(), h.Route)
		voice.POST("/execute", mw.RateLimit(), h.Execute)
		voice.POST("/undo", mw.RateLimit(), h.Undo)
	}

	pendingGroup := rg.Group("/pending")
	{
		pendingGroup.GET("/:domain", h.PeekPending)
		pendingGroup.POST("/:domain/consume", h.ConsumePending)
	}

	debug := rg.Group("/debug")
	{
		debug.GET("/trace", h.ListTrace)
		debug.PUT("/trace/enabled", h.SetTraceEnabled)
		debug.DELETE("/trace", h.ClearTrace)
	}
}
