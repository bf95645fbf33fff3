// File: handlers/search.go
package handlers

import (
	"net/http"

	"hotelify/services/search"

	"github.com/gin-gonic/gin"
)

// SearchHandler exposes the cross-entity search endpoint.
type SearchHandler struct {
	Service search.SearchService
}

func NewSearchHandler(svc search.SearchService) *SearchHandler {
	return &SearchHandler{Service: svc}
}

// GlobalSearch handles GET /api/search?query=.
func (h *SearchHandler) GlobalSearch(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Search query is required"})
		return
	}

	results, err := h.Service.Global(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while searching."})
		return
	}
	c.JSON(http.StatusOK, results)
}
