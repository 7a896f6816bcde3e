package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/services"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
	"github.com/kensudogit/docomo-smart-parking/internal/utils"
)

type Handler struct {
	users        *services.UserService
	lots         *services.ParkingLotService
	transactions *services.TransactionService
}

func NewHandler(users *services.UserService, lots *services.ParkingLotService, transactions *services.TransactionService) *Handler {
	return &Handler{users: users, lots: lots, transactions: transactions}
}

type SummaryResponse struct {
	TotalUsers        int     `json:"total_users"`
	TotalParkingLots  int     `json:"total_parking_lots"`
	ActiveParkingLots int     `json:"active_parking_lots"`
	TodayRevenue      float64 `json:"today_revenue"`
	MonthRevenue      float64 `json:"month_revenue"`
}

// Summary godoc
// @Summary Dashboard figures
// @Description Counts and revenue totals for the landing page.
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=SummaryResponse}
// @Router /dashboard/summary [get]
func (h *Handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.users.List(ctx, store.UserFilter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch users"))
		return
	}

	lots, err := h.lots.List(ctx, store.ParkingLotFilter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch parking lots"))
		return
	}
	active := 0
	for _, lot := range lots {
		if lot.Status == models.ParkingLotActive {
			active++
		}
	}

	todayRevenue, err := h.transactions.TodayRevenue(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to compute revenue"))
		return
	}
	monthRevenue, err := h.transactions.MonthRevenue(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to compute revenue"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Dashboard summary retrieved successfully", SummaryResponse{
		TotalUsers:        len(users),
		TotalParkingLots:  len(lots),
		ActiveParkingLots: active,
		TodayRevenue:      todayRevenue,
		MonthRevenue:      monthRevenue,
	}))
}
