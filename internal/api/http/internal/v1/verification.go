package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vibe-gaming/verify/internal/service"
)

func (h *Handler) initVerificationRoutes(api *gin.RouterGroup) {
	api.POST("/send-code", h.sendCode)
	api.POST("/verify-code", h.verifyCode)
	api.POST("/reset-password", h.resetPassword)

	api.GET("/get-credentials", h.adminIdentityMiddleware, h.getCredentials)
}

type sendCodeRequest struct {
	Email string `json:"email" binding:"required,notblank"`
}

// @Summary Send verification code
// @Tags Verification
// @Accept  json
// @Produce  json
// @Param input body sendCodeRequest true "email"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /send-code [post]
func (h *Handler) sendCode(c *gin.Context) {
	var req sendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if _, err := h.services.Verification.RequestCode(c.Request.Context(), req.Email); err != nil {
		serviceErrorResponse(c, err, SendCodeFailedMessage)
		return
	}

	successResponse(c, CodeSentMessage)
}

type verifyCodeRequest struct {
	Email string `json:"email" binding:"required,notblank"`
	Code  string `json:"code" binding:"required,notblank"`
}

// @Summary Verify code
// @Tags Verification
// @Accept  json
// @Produce  json
// @Param input body verifyCodeRequest true "email and code"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /verify-code [post]
func (h *Handler) verifyCode(c *gin.Context) {
	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Verification.VerifyCode(c.Request.Context(), req.Email, req.Code); err != nil {
		serviceErrorResponse(c, err, VerifyCodeFailedMessage)
		return
	}

	successResponse(c, CodeVerifiedMessage)
}

type resetPasswordRequest struct {
	Email     string `json:"email" binding:"required,notblank"`
	Code      string `json:"code" binding:"required,notblank"`
	Password  string `json:"password" binding:"required,min=8"`
	UserAgent string `json:"userAgent"`
	Timestamp string `json:"timestamp"`
}

type resetPasswordResponse struct {
	Response
	RedirectURL string `json:"redirectUrl"`
}

// @Summary Reset password
// @Tags Verification
// @Accept  json
// @Produce  json
// @Param input body resetPasswordRequest true "reset input"
// @Success 200 {object} resetPasswordResponse
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /reset-password [post]
func (h *Handler) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	userAgent := req.UserAgent
	if userAgent == "" {
		userAgent = c.Request.UserAgent()
	}

	err := h.services.Verification.ResetPassword(c.Request.Context(), service.ResetPasswordInput{
		Email:     req.Email,
		Code:      req.Code,
		Password:  req.Password,
		UserAgent: userAgent,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		serviceErrorResponse(c, err, ResetPasswordFailedMessage)
		return
	}

	c.JSON(http.StatusOK, resetPasswordResponse{
		Response:    Response{Success: true, Message: PasswordResetMessage},
		RedirectURL: h.config.Wizard.LoginURL,
	})
}

type credentialResponse struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// @Summary List issued codes
// @Tags Admin
// @Produce  json
// @Success 200 {array} credentialResponse
// @Failure 401 {object} Response
// @Failure 500 {object} Response
// @Security AdminAuth
// @Router /get-credentials [get]
func (h *Handler) getCredentials(c *gin.Context) {
	records, err := h.services.Verification.ListCredentials(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err, ListFailedMessage)
		return
	}

	out := make([]credentialResponse, 0, len(records))
	for _, r := range records {
		out = append(out, credentialResponse{
			Email:     r.Email,
			CreatedAt: r.CreatedAt,
			ExpiresAt: r.ExpiresAt,
		})
	}

	c.JSON(http.StatusOK, out)
}
