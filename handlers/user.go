package handlers

import (
	"net/http"

	"devalaya/services/user"
	"devalaya/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes account endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler creates a new account.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.RegisterUser(input.Name, input.Email, input.Password, input.PhoneNumber)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler signs a user in.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMeHandler returns the authenticated user's profile.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	u, err := h.Service.GetUserByID(userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateMeHandler updates the authenticated user's profile.
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	var input struct {
		Name        string `json:"name"`
		PhoneNumber string `json:"phoneNumber"`
		FCMToken    string `json:"fcmToken"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if input.FCMToken != "" {
		if err := h.Service.UpdateFCMToken(userID, input.FCMToken); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to update fcm token", err.Error())
			return
		}
	}

	u, err := h.Service.UpdateUser(userID, input.Name, input.PhoneNumber)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update user", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteMeHandler removes the authenticated user's account.
func (h *UserHandler) DeleteMeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Service.DeleteUser(userID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// RevokeUserAuthTokenHandler invalidates the current token.
func (h *UserHandler) RevokeUserAuthTokenHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Service.RevokeAuthToken(userID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "revoked"})
}
