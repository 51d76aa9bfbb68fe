package controller

import (
	"errors"
	"net/http"

	"safeher/customerrors"
	"safeher/middleware"
	"safeher/model"
	"safeher/service"
	"safeher/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
)

var (
	pinValidation      = zog.Struct(validator.PinShape).TestFunc(validator.PinDigitsTest)
	pinMatchValidation = zog.Struct(validator.ConfirmPinShape).TestFunc(validator.PinMatchTest)
	friendValidation   = zog.Struct(validator.PhoneShape).TestFunc(validator.PhoneDigitsTest)
)

// UserController serves the authenticated routes. AuthMiddleware has already
// loaded the caller's record; handlers take the identity from there.
type UserController struct {
	userSvc service.UserService
}

func NewUserController(userSvc service.UserService) *UserController {
	return &UserController{userSvc: userSvc}
}

func (ctrl *UserController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/savePin", ctrl.SavePin)
	router.POST("/verifyPin", ctrl.VerifyPin)
	router.POST("/saveName", ctrl.SaveName)
	router.POST("/addFriend", ctrl.AddFriend)
	router.GET("/getFriends", ctrl.GetFriends)
}

// RegisterProfileRoutes mounts the profile lookup the app polls after login.
func (ctrl *UserController) RegisterProfileRoutes(router *gin.RouterGroup) {
	router.GET("/getUser", ctrl.GetUser)
}

func (ctrl *UserController) SavePin(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req model.SavePinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Pin == "" || req.ConfirmPin == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PIN and confirm PIN are required"})
		return
	}

	if issues := pinMatchValidation.Validate(&req); issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PIN and confirm PIN do not match"})
		return
	}

	if issues := pinValidation.Validate(&req); issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PIN must be 4 digits"})
		return
	}

	if err := ctrl.userSvc.SavePin(c.Request.Context(), user.PhoneNumber, req.Pin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	middleware.InvalidateUserCache(user.PhoneNumber)
	c.JSON(http.StatusOK, gin.H{"message": "PIN saved successfully"})
}

func (ctrl *UserController) VerifyPin(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req model.VerifyPinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Pin == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PIN is required"})
		return
	}

	if issues := pinValidation.Validate(&req); issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PIN must be 4 digits"})
		return
	}

	err := ctrl.userSvc.VerifyPin(c.Request.Context(), user.PhoneNumber, req.Pin)
	if err != nil {
		switch {
		case errors.Is(err, customerrors.ErrIncorrectPin):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect PIN"})
		case errors.Is(err, customerrors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "PIN verified successfully"})
}

func (ctrl *UserController) SaveName(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req model.SaveNameRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	if err := ctrl.userSvc.SaveName(c.Request.Context(), user.PhoneNumber, req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	middleware.InvalidateUserCache(user.PhoneNumber)
	c.JSON(http.StatusOK, gin.H{"message": "Name saved successfully"})
}

func (ctrl *UserController) AddFriend(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req model.AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PhoneNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Friend's phone number is required"})
		return
	}

	if issues := friendValidation.Validate(&req); issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Friend's phone number must be 10 digits"})
		return
	}

	friend := model.Friend{
		PhoneNumber: req.PhoneNumber,
		IsSOS:       req.IsSOS,
		Name:        req.Name,
	}

	err := ctrl.userSvc.AddFriend(c.Request.Context(), user.PhoneNumber, friend)
	if err != nil {
		switch {
		case errors.Is(err, customerrors.ErrDuplicateFriend):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Friend already added"})
		case errors.Is(err, customerrors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	middleware.InvalidateUserCache(user.PhoneNumber)
	c.JSON(http.StatusOK, gin.H{"message": "Friend added successfully"})
}

func (ctrl *UserController) GetFriends(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	friends, err := ctrl.userSvc.GetFriends(c.Request.Context(), user.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

func (ctrl *UserController) GetUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, user.ToDto())
}
