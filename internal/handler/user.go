package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/store"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler covers the admin-side user management plus password
// changes.
type UserHandler struct {
	Users store.UserStore
}

func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

type createUserReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role"`
}

// Create adds a user. Role defaults to agent; duplicate username or
// email surfaces as a conflict.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid user payload")
		return
	}

	role := models.Role(strings.TrimSpace(req.Role))
	if role == "" {
		role = models.RoleAgent
	}
	if !role.Valid() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "role must be admin, manager or agent")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
		return
	}

	user := models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		Role:         role,
		IsActive:     true,
	}
	if err := h.Users.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			util.Error(c, http.StatusConflict, util.CodeConflict, "username or email already exists")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create user")
		}
		return
	}

	util.Success(c, util.Response{"user": toUserResp(&user)})
}

// List returns the full roster ordered by full name.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list users")
		return
	}
	items := make([]userResp, 0, len(users))
	for i := range users {
		items = append(items, toUserResp(&users[i]))
	}
	util.Success(c, util.Response{"users": items})
}

type updateUserReq struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

// Update edits email, full name and the active flag. Deactivation is the
// supported way to retire an account; rows are never deleted over HTTP.
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := pathInt(c, "id")
	if !ok {
		return
	}

	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid user payload")
		return
	}

	err := h.Users.Update(c.Request.Context(), int64(userID), strings.TrimSpace(req.Email), strings.TrimSpace(req.FullName), *req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "user not found")
		case errors.Is(err, store.ErrConflict):
			util.Error(c, http.StatusConflict, util.CodeConflict, "email already in use")
		default:
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update user")
		}
		return
	}

	util.Success(c, util.Response{"message": "user updated"})
}

type changePasswordReq struct {
	Password string `json:"password" binding:"required,min=6"`
}

// ChangePassword lets a user change their own password; admins may
// change anyone's.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	userID, ok := pathInt(c, "id")
	if !ok {
		return
	}

	if id.UserID != int64(userID) && id.Role != models.RoleAdmin {
		util.Error(c, http.StatusForbidden, util.CodeForbidden, "access denied")
		return
	}

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "password must be at least 6 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
		return
	}

	if err := h.Users.UpdatePassword(c.Request.Context(), int64(userID), string(hash)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "user not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update password")
		}
		return
	}

	util.Success(c, util.Response{"message": "password updated"})
}
