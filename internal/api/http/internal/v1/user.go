package v1

import (
	"net/http"
	"time"

	"github.com/grab-simulator/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initUsersRoutes(api *gin.RouterGroup) {
	users := api.Group("/users", h.userIdentityMiddleware)
	{
		users.GET("/me", h.getMe)
	}
}

type userResponse struct {
	ID                     int64     `json:"id,string"`
	Email                  string    `json:"email"`
	Coins                  int64     `json:"coins"`
	TotalShipmentDelivered int32     `json:"total_shipment_delivered"`
	TotalIncome            int64     `json:"total_income"`
	CreatedAt              time.Time `json:"created_at"`
	LastLoginAt            time.Time `json:"last_login_at"`
}

func newUserResponse(user *domain.User) userResponse {
	if user == nil {
		return userResponse{}
	}

	return userResponse{
		ID:                     user.ID,
		Email:                  user.Email,
		Coins:                  user.Coins,
		TotalShipmentDelivered: user.TotalShipmentDelivered,
		TotalIncome:            user.TotalIncome,
		CreatedAt:              user.CreatedAt,
		LastLoginAt:            user.LastLoginAt,
	}
}

// @Summary Get current user
// @Tags Users
// @Description Profile of the signed-in user
// @ModuleID getMe
// @Accept  json
// @Produce  json
// @Success 200 {object} userResponse
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /users/me [get]
func (h *Handler) getMe(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err, "get user failed")
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
