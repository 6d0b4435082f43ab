package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"carpets-api/internal/models"
	"carpets-api/internal/service"
)

// CreateCarpet
// @Summary CreateCarpet
// @Description Validates and stores a new catalog item, returning its id
// @ID create-carpet
// @Accept json
// @Produce json
// @Param carpet body models.Carpet true "carpet payload"
// @Success 200 {object} idResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Failure default {object} errorResponse
// @Router /api/carpets [post]
func (h *Handler) CreateCarpet(c *gin.Context) {
	var carpet models.Carpet
	if err := c.ShouldBindJSON(&carpet); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	id, err := h.svc.CreateCarpet(c.Request.Context(), carpet)
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

// QueryCarpets
// @Summary QueryCarpets
// @Description Returns catalog items matching the provided predicates, capped at the query limit
// @ID query-carpets
// @Accept json
// @Produce json
// @Param query body models.CatalogQuery true "catalog query"
// @Success 200 {array} models.Carpet
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Failure default {object} errorResponse
// @Router /api/carpets/query [post]
func (h *Handler) QueryCarpets(c *gin.Context) {
	var q models.CatalogQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	carpets, err := h.svc.QueryCarpets(c.Request.Context(), q)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, trimErr(err))
		return
	}

	c.JSON(http.StatusOK, carpets)
}

// GetCarpetByID
// @Summary GetCarpetByID
// @Description Fetches a single catalog item by its id
// @ID get-carpet-by-id
// @Accept json
// @Produce json
// @Param id path string true "carpet id" minlength(24) maxlength(24)
// @Success 200 {object} models.Carpet
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Failure default {object} errorResponse
// @Router /api/carpets/{id} [get]
func (h *Handler) GetCarpetByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing id")
		return
	}

	carpet, err := h.svc.GetCarpet(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			newErrorResponse(c, http.StatusBadRequest, "invalid id")
		case errors.Is(err, service.ErrNotFound):
			newErrorResponse(c, http.StatusNotFound, "carpet not found")
		default:
			newErrorResponse(c, http.StatusInternalServerError, trimErr(err))
		}
		return
	}

	c.JSON(http.StatusOK, carpet)
}
