package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health
// @Summary Health
// @Description Liveness probe
// @ID health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Persian Carpets Backend Running"})
}

// Diagnostics
// @Summary Diagnostics
// @Description Reports store reachability and a sample of collection names; never fails
// @ID diagnostics
// @Produce json
// @Success 200 {object} service.DiagReport
// @Router /test [get]
func (h *Handler) Diagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Diagnostics(c.Request.Context()))
}

// Seed
// @Summary Seed
// @Description Populates the catalog with the demo set when empty; otherwise a no-op
// @ID seed
// @Produce json
// @Success 200 {object} seedResponse
// @Failure 500 {object} errorResponse
// @Failure default {object} errorResponse
// @Router /api/seed [post]
func (h *Handler) Seed(c *gin.Context) {
	n, err := h.svc.Seed(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, trimErr(err))
		return
	}
	if n == 0 {
		c.JSON(http.StatusOK, seedResponse{Status: "ok", Message: "Catalog already seeded"})
		return
	}
	c.JSON(http.StatusOK, seedResponse{Status: "ok", Message: "Seeded sample carpets"})
}
