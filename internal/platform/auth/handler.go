package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

// RegisterRoutes /auth 配下。login 以外はトークン必須、ユーザー管理は admin のみ
func RegisterRoutes(r gin.IRouter, svc *Service) {
	h := &Handler{svc: svc}
	r.POST("/login", h.Login)

	authed := r.Group("", RequireAuth(svc.Secret()))
	authed.GET("/me", h.Me)

	admin := authed.Group("", RequireRole(RoleAdmin))
	admin.POST("/users", h.Register)
	admin.DELETE("/users/:username", h.Delete)
	admin.PATCH("/users/:username", h.Rename)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid json")
		return
	}
	token, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, ErrAuthFailed) {
			log.Printf("[ERROR] login: %v", err)
		}
		abort(c, http.StatusUnauthorized, "UNAUTHENTICATED", "ユーザー名またはパスワードが間違っています")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"username": c.GetString(CtxUsernameKey),
		"role":     c.GetString(CtxRoleKey),
	})
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"` // 未指定なら staff
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid json")
		return
	}
	if req.Role == "" {
		req.Role = RoleStaff
	}
	if err := h.svc.Register(c.Request.Context(), req.Username, req.Password, req.Role); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"username": req.Username, "role": req.Role})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("username")); err != nil {
		writeErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type RenameRequest struct {
	NewUsername string `json:"new_username" binding:"required"`
}

func (h *Handler) Rename(c *gin.Context) {
	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid json")
		return
	}
	if err := h.svc.Rename(c.Request.Context(), c.Param("username"), req.NewUsername); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": req.NewUsername})
}

func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		abort(c, http.StatusBadRequest, "INVALID_ARGUMENT", "username is required and password must be at least 8 characters, role admin|staff")
	case errors.Is(err, ErrNotFound):
		abort(c, http.StatusNotFound, "NOT_FOUND", "user not found")
	case errors.Is(err, ErrAlreadyExists):
		abort(c, http.StatusConflict, "CONFLICT", "username already exists")
	default:
		log.Printf("[ERROR] auth: %v", err)
		abort(c, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}
