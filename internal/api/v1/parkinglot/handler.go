package parkinglot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/services"
	"github.com/kensudogit/docomo-smart-parking/internal/utils"
)

type Handler struct {
	lots *services.ParkingLotService
}

func NewHandler(lots *services.ParkingLotService) *Handler {
	return &Handler{lots: lots}
}

// Create godoc
// @Summary Create a parking lot
// @Description Status defaults to ACTIVE and available spaces default to the total when unset.
// @Tags parking-lots
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body CreateParkingLotRequest true "Parking lot details"
// @Success 201 {object} utils.Response{data=models.ParkingLot}
// @Failure 400 {object} utils.Response
// @Router /parking-lots [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateParkingLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	lot, err := h.lots.Create(c.Request.Context(), req.toInput())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create parking lot"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Parking lot created successfully", lot))
}

func (h *Handler) List(c *gin.Context) {
	var query ListParkingLotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	lots, err := h.lots.List(c.Request.Context(), query.toFilter())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch parking lots"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Parking lots retrieved successfully", lots))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid parking lot ID"))
		return
	}

	lot, err := h.lots.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrParkingLotNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Parking lot not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch parking lot"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Parking lot retrieved successfully", lot))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid parking lot ID"))
		return
	}

	var req UpdateParkingLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	lot, err := h.lots.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, services.ErrParkingLotNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Parking lot not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update parking lot"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Parking lot updated successfully", lot))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid parking lot ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	lot, err := h.lots.UpdateStatus(c.Request.Context(), id, models.ParkingLotStatus(req.Status))
	if err != nil {
		if errors.Is(err, services.ErrParkingLotNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Parking lot not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update parking lot status"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Parking lot status updated successfully", lot))
}

// UpdateSpaces is the only path that enforces available <= total.
func (h *Handler) UpdateSpaces(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid parking lot ID"))
		return
	}

	var req UpdateSpacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	lot, err := h.lots.UpdateAvailableSpaces(c.Request.Context(), id, req.AvailableSpaces)
	if err != nil {
		if errors.Is(err, services.ErrParkingLotNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Parking lot not found"))
			return
		}
		if errors.Is(err, services.ErrSpacesExceedTotal) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update available spaces"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Available spaces updated successfully", lot))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid parking lot ID"))
		return
	}

	if err := h.lots.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrParkingLotNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Parking lot not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete parking lot"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Parking lot deleted successfully", nil))
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
