package transaction

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kensudogit/docomo-smart-parking/internal/services"
	"github.com/kensudogit/docomo-smart-parking/internal/utils"
)

type Handler struct {
	transactions *services.TransactionService
}

func NewHandler(transactions *services.TransactionService) *Handler {
	return &Handler{transactions: transactions}
}

// Create godoc
// @Summary Open a parking transaction
// @Description Records a vehicle entering a parking lot. Status defaults to PENDING.
// @Tags transactions
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body CreateTransactionRequest true "Transaction details"
// @Success 201 {object} utils.Response{data=models.Transaction}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /transactions [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	tx, err := h.transactions.Open(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, services.ErrParkingLotNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Parking lot not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create transaction"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Transaction created successfully", tx))
}

// List godoc
// @Summary List transactions
// @Description Filter by status, payment method, parking lot, user, license plate, time and amount ranges.
// @Tags transactions
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=[]models.Transaction}
// @Router /transactions [get]
func (h *Handler) List(c *gin.Context) {
	var query ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	txs, err := h.transactions.List(c.Request.Context(), query.toFilter())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch transactions"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transactions retrieved successfully", txs))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid transaction ID"))
		return
	}

	tx, err := h.transactions.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Transaction not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch transaction"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transaction retrieved successfully", tx))
}

// Ongoing lists transactions whose exit time is still unset.
func (h *Handler) Ongoing(c *gin.Context) {
	txs, err := h.transactions.Ongoing(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch ongoing transactions"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Ongoing transactions retrieved successfully", txs))
}

// Complete godoc
// @Summary Settle a transaction
// @Description Records the exit time and amount, sets status COMPLETED and derives the duration.
// @Tags transactions
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Transaction ID"
// @Param body body CompleteTransactionRequest true "Settlement details"
// @Success 200 {object} utils.Response{data=models.Transaction}
// @Failure 404 {object} utils.Response
// @Router /transactions/{id}/complete [post]
func (h *Handler) Complete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid transaction ID"))
		return
	}

	var req CompleteTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	tx, err := h.transactions.Complete(c.Request.Context(), id, req.ExitTime, req.Amount)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Transaction not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to complete transaction"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transaction completed successfully", tx))
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid transaction ID"))
		return
	}

	tx, err := h.transactions.Cancel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Transaction not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to cancel transaction"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transaction cancelled successfully", tx))
}

// Update is the wholesale overwrite endpoint. It bypasses the intended
// PENDING->COMPLETED/CANCELLED transitions on purpose.
func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid transaction ID"))
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	tx, err := h.transactions.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Transaction not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update transaction"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transaction updated successfully", tx))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid transaction ID"))
		return
	}

	if err := h.transactions.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Transaction not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete transaction"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transaction deleted successfully", nil))
}

// Revenue godoc
// @Summary Revenue aggregation
// @Description Sums COMPLETED transaction amounts. Defaults to today; period=month, an explicit [from,to) window, or a parking_lot_id narrow it differently.
// @Tags transactions
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=RevenueResponse}
// @Router /revenue [get]
func (h *Handler) Revenue(c *gin.Context) {
	var query RevenueQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	var (
		revenue float64
		err     error
	)
	switch {
	case query.ParkingLotID != nil:
		revenue, err = h.transactions.RevenueByParkingLot(c.Request.Context(), *query.ParkingLotID)
	case query.From != nil && query.To != nil:
		revenue, err = h.transactions.RevenueBetween(c.Request.Context(), *query.From, *query.To)
	case query.Period == "month":
		revenue, err = h.transactions.MonthRevenue(c.Request.Context())
	default:
		revenue, err = h.transactions.TodayRevenue(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to compute revenue"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Revenue computed successfully", RevenueResponse{Revenue: revenue}))
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
