package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carpets-api/internal/models"
	"carpets-api/internal/service"
)

// CreateOrder
// @Summary CreateOrder
// @Description Validates and stores a new order, returning its id
// @ID create-order
// @Accept json
// @Produce json
// @Param order body models.Order true "order payload"
// @Success 200 {object} idResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Failure default {object} errorResponse
// @Router /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	id, err := h.svc.CreateOrder(c.Request.Context(), order)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			newErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, trimErr(err))
		return
	}

	c.JSON(http.StatusOK, idResponse{ID: id})
}

// CreateReview
// @Summary CreateReview
// @Description Validates and stores a new review, returning its id
// @ID create-review
// @Accept json
// @Produce json
// @Param review body models.Review true "review payload"
// @Success 200 {object} idResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Failure default {object} errorResponse
// @Router /api/reviews [post]
func (h *Handler) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	id, err := h.svc.CreateReview(c.Request.Context(), review)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			newErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, trimErr(err))
		return
	}

	c.JSON(http.StatusOK, idResponse{ID: id})
}
