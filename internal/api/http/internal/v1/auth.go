package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/request-otp", h.requestOtp)
		auth.POST("/verify-otp", h.verifyOtp)
	}
}

type requestOtpInput struct {
	Email string `json:"email" binding:"required,email,max=255"`
}

type requestOtpResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// @Summary Request OTP
// @Tags Auth
// @Description Issue a one-time code and send it to the email address.
// @Description Any previously issued code for the address stops working.
// @ModuleID requestOtp
// @Accept  json
// @Produce  json
// @Param input body requestOtpInput true "email"
// @Success 200 {object} requestOtpResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 502 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /auth/request-otp [post]
func (h *Handler) requestOtp(c *gin.Context) {
	var input requestOtpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Auth.RequestCode(c.Request.Context(), input.Email); err != nil {
		serviceErrorResponse(c, err, "request otp failed")
		return
	}

	c.JSON(http.StatusOK, requestOtpResponse{
		Success: true,
		Message: "OTP sent successfully to your email",
	})
}

type verifyOtpInput struct {
	Email string `json:"email" binding:"required,email,max=255"`
	Otp   string `json:"otp" binding:"required,otpcode"`
}

type verifyOtpResponse struct {
	Success   bool         `json:"success"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	Message   string       `json:"message"`
	User      userResponse `json:"user"`
}

// @Summary Verify OTP
// @Tags Auth
// @Description Consume a one-time code and open a session. The user account is created on first sign-in.
// @ModuleID verifyOtp
// @Accept  json
// @Produce  json
// @Param input body verifyOtpInput true "email and code"
// @Success 200 {object} verifyOtpResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /auth/verify-otp [post]
func (h *Handler) verifyOtp(c *gin.Context) {
	var input verifyOtpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	session, err := h.services.Auth.SignIn(c.Request.Context(), input.Email, input.Otp)
	if err != nil {
		serviceErrorResponse(c, err, "verify otp failed")
		return
	}

	c.JSON(http.StatusOK, verifyOtpResponse{
		Success:   true,
		Token:     session.AccessToken,
		ExpiresAt: session.ExpiresAt,
		Message:   "Login successful",
		User:      newUserResponse(session.User),
	})
}
