package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"safeher/customerrors"
	"safeher/model"
	"safeher/service"
	"safeher/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
)

var phoneValidation = zog.Struct(validator.PhoneShape).TestFunc(validator.PhoneDigitsTest)

// AuthController owns the unauthenticated flow: existence check, OTP
// issuance/verification, registration and login.
type AuthController struct {
	authSvc service.AuthService
	otpSvc  service.OtpService
}

func NewAuthController(authSvc service.AuthService, otpSvc service.OtpService) *AuthController {
	return &AuthController{authSvc: authSvc, otpSvc: otpSvc}
}

func (ctrl *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/checkUser", ctrl.CheckUser)
	router.POST("/send-otp", ctrl.SendOtp)
	router.POST("/verify-otp", ctrl.VerifyOtp)
	router.POST("/register", ctrl.Register)
	router.POST("/login", ctrl.Login)
}

func (ctrl *AuthController) CheckUser(c *gin.Context) {
	var req model.CheckUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PhoneNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required"})
		return
	}

	exists, err := ctrl.authSvc.CheckUserExists(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (ctrl *AuthController) SendOtp(c *gin.Context) {
	var req model.SendOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
		return
	}

	if issues := phoneValidation.Validate(&req); issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	sessionId, err := ctrl.otpSvc.SendOtp(ctx, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateOtp) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": sessionId})
}

func (ctrl *AuthController) VerifyOtp(c *gin.Context) {
	var req model.VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.Otp == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID and OTP are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	if err := ctrl.otpSvc.VerifyOtp(ctx, req.SessionID, req.Otp); err != nil {
		// Gateway failures and wrong codes read the same to the app.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP verified successfully"})
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PhoneNumber == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number and password are required"})
		return
	}

	if issues := phoneValidation.Validate(&req); issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
		return
	}

	token, err := ctrl.authSvc.Register(c.Request.Context(), req.PhoneNumber, req.Password)
	if err != nil {
		if errors.Is(err, customerrors.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
	})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PhoneNumber == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number and password are required"})
		return
	}

	token, err := ctrl.authSvc.Login(c.Request.Context(), req.PhoneNumber, req.Password)
	if err != nil {
		if errors.Is(err, customerrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid phone number or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
