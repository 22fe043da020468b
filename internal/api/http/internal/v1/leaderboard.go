package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initLeaderboardRoutes(api *gin.RouterGroup) {
	api.GET("/leaderboard", h.userIdentityMiddleware, h.getLeaderboard)
}

type leaderboardQuery struct {
	Top int `form:"top"`
}

type leaderboardEntryResponse struct {
	Rank                   int    `json:"rank"`
	UserID                 int64  `json:"user_id,string"`
	Email                  string `json:"email"`
	Coins                  int64  `json:"coins"`
	TotalShipmentDelivered int32  `json:"total_shipment_delivered"`
	TotalIncome            int64  `json:"total_income"`
	Value                  int64  `json:"value"`
}

type leaderboardResponse struct {
	Metric     string                     `json:"metric"`
	Entries    []leaderboardEntryResponse `json:"entries"`
	TotalCount int64                      `json:"total_count"`
}

// @Summary Get leaderboard
// @Tags Leaderboard
// @Description Top players ordered by the deployment metric, earlier registration first on equal values.
// @Description top outside 1..1000 falls back to 100.
// @ModuleID getLeaderboard
// @Accept  json
// @Produce  json
// @Param top query int false "Number of entries (default 100, max 1000)"
// @Success 200 {object} leaderboardResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /leaderboard [get]
func (h *Handler) getLeaderboard(c *gin.Context) {
	var query leaderboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		validationErrorResponse(c, err)
		return
	}

	board, err := h.services.Leaderboard.Rank(c.Request.Context(), query.Top)
	if err != nil {
		serviceErrorResponse(c, err, "get leaderboard failed")
		return
	}

	entries := make([]leaderboardEntryResponse, 0, len(board.Entries))
	for _, e := range board.Entries {
		entries = append(entries, leaderboardEntryResponse{
			Rank:                   e.Rank,
			UserID:                 e.UserID,
			Email:                  e.Email,
			Coins:                  e.Coins,
			TotalShipmentDelivered: e.TotalShipmentDelivered,
			TotalIncome:            e.TotalIncome,
			Value:                  e.Value,
		})
	}

	c.JSON(http.StatusOK, leaderboardResponse{
		Metric:     string(board.Metric),
		Entries:    entries,
		TotalCount: board.TotalCount,
	})
}
