package v1

import (
	"net/http"

	"github.com/grab-simulator/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initCoinsRoutes(api *gin.RouterGroup) {
	coins := api.Group("/coins", h.userIdentityMiddleware)
	{
		coins.GET("", h.getCoins)
		coins.PUT("", h.updateCoins)
		coins.GET("/stats", h.getStats)
		coins.PUT("/stats", h.updateStats)
	}
}

type coinsResponse struct {
	Coins int64 `json:"coins"`
}

type updateCoinsInput struct {
	Coins *int64 `json:"coins" binding:"required"`
}

type updateCoinsResponse struct {
	Success bool   `json:"success"`
	Coins   int64  `json:"coins"`
	Message string `json:"message"`
}

type statsResponse struct {
	Coins                  int64 `json:"coins"`
	TotalShipmentDelivered int32 `json:"total_shipment_delivered"`
	TotalIncome            int64 `json:"total_income"`
}

type updateStatsInput struct {
	Coins                  *int64 `json:"coins" binding:"required"`
	TotalShipmentDelivered *int32 `json:"total_shipment_delivered" binding:"required"`
	TotalIncome            *int64 `json:"total_income" binding:"required"`
}

type updateStatsResponse struct {
	Success                bool   `json:"success"`
	Coins                  int64  `json:"coins"`
	TotalShipmentDelivered int32  `json:"total_shipment_delivered"`
	TotalIncome            int64  `json:"total_income"`
	Message                string `json:"message"`
}

// @Summary Get coins
// @Tags Coins
// @Description Coin balance of the signed-in user
// @ModuleID getCoins
// @Accept  json
// @Produce  json
// @Success 200 {object} coinsResponse
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /coins [get]
func (h *Handler) getCoins(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err, "get coins failed")
		return
	}

	c.JSON(http.StatusOK, coinsResponse{Coins: user.Coins})
}

// @Summary Update coins
// @Tags Coins
// @Description Overwrite the coin balance of the signed-in user
// @ModuleID updateCoins
// @Accept  json
// @Produce  json
// @Param input body updateCoinsInput true "new balance"
// @Success 200 {object} updateCoinsResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /coins [put]
func (h *Handler) updateCoins(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input updateCoinsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	user, err := h.services.Users.UpdateCoins(c.Request.Context(), userID, *input.Coins)
	if err != nil {
		serviceErrorResponse(c, err, "update coins failed")
		return
	}

	c.JSON(http.StatusOK, updateCoinsResponse{
		Success: true,
		Coins:   user.Coins,
		Message: "Coins updated successfully",
	})
}

// @Summary Get stats
// @Tags Coins
// @Description Coins, delivered shipments and income of the signed-in user
// @ModuleID getStats
// @Accept  json
// @Produce  json
// @Success 200 {object} statsResponse
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /coins/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err, "get stats failed")
		return
	}

	c.JSON(http.StatusOK, statsResponse{
		Coins:                  user.Coins,
		TotalShipmentDelivered: user.TotalShipmentDelivered,
		TotalIncome:            user.TotalIncome,
	})
}

// @Summary Update stats
// @Tags Coins
// @Description Overwrite coins, delivered shipments and income of the signed-in user.
// @Description total_income must fit in a 32-bit signed integer.
// @ModuleID updateStats
// @Accept  json
// @Produce  json
// @Param input body updateStatsInput true "new stats"
// @Success 200 {object} updateStatsResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /coins/stats [put]
func (h *Handler) updateStats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input updateStatsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	user, err := h.services.Users.UpdateStats(c.Request.Context(), userID, domain.UserStats{
		Coins:                  *input.Coins,
		TotalShipmentDelivered: *input.TotalShipmentDelivered,
		TotalIncome:            *input.TotalIncome,
	})
	if err != nil {
		serviceErrorResponse(c, err, "update stats failed")
		return
	}

	c.JSON(http.StatusOK, updateStatsResponse{
		Success:                true,
		Coins:                  user.Coins,
		TotalShipmentDelivered: user.TotalShipmentDelivered,
		TotalIncome:            user.TotalIncome,
		Message:                "Stats updated successfully",
	})
}
