package v1

import (
	"github.com/grab-simulator/backend/internal/config"
	"github.com/grab-simulator/backend/internal/service"
	"github.com/grab-simulator/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title Grab Simulator API
// @version 1.0
// @description Sign-in, coin ledger and leaderboard for the Grab Simulator game client

// @BasePath /api/v1

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initAuthRoutes(v1)
	h.initUsersRoutes(v1)
	h.initCoinsRoutes(v1)
	h.initLeaderboardRoutes(v1)
}
