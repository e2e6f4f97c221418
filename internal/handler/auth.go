package handler

import (
	"net/http"
	"time"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/store"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler issues and answers for tokens.
type AuthHandler struct {
	Users     store.UserStore
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthHandler(users store.UserStore, jwtSecret string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 7 * 24
	}
	return &AuthHandler{
		Users:     users,
		JWTSecret: jwtSecret,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResp struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	FullName string      `json:"full_name"`
	Role     models.Role `json:"role"`
	IsActive bool        `json:"is_active"`
}

func toUserResp(u *models.User) userResp {
	return userResp{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

// Login checks credentials against active users only. Unknown username,
// wrong password and deactivated account are indistinguishable to the
// caller.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "username and password are required")
		return
	}

	user, err := h.Users.GetActiveByUsername(c.Request.Context(), req.Username)
	if err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid credentials")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, &user, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "login failed")
		return
	}

	util.Success(c, util.Response{
		"token": token,
		"user":  toUserResp(&user),
	})
}

// Me returns the authenticated caller's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	user, err := h.Users.GetByID(c.Request.Context(), id.UserID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load profile")
		return
	}
	util.Success(c, util.Response{"user": toUserResp(&user)})
}
