package api

import (
	"alcyxob/workout-tracker/internal/discover"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DiscoverHandler serves the supplement and coaching listings.
type DiscoverHandler struct{}

func NewDiscoverHandler() *DiscoverHandler {
	return &DiscoverHandler{}
}

// ListSupplements filters by ?q= (name) and ?category=.
func (h *DiscoverHandler) ListSupplements(c *gin.Context) {
	c.JSON(http.StatusOK, discover.Supplements(c.Query("q"), c.Query("category")))
}

// ListCoaches filters by ?q= (name).
func (h *DiscoverHandler) ListCoaches(c *gin.Context) {
	c.JSON(http.StatusOK, discover.Coaches(c.Query("q")))
}
