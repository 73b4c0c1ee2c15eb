package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the endpoint handlers handed to route registration,
// so routes depend on one assembled value instead of individual handlers.
type HandlerBundle struct {
	// Availability grid endpoints.
	EliteGridHandler   gin.HandlerFunc
	ComfortGridHandler gin.HandlerFunc
}
