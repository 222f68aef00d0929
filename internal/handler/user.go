package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models/dto"
)

type UserService interface {
	Register(ctx context.Context, in *dto.RegisterUser) (*models.User, error)
	Login(ctx context.Context, in *dto.Login) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, in *dto.UpdateProfile) (*models.User, error)
	Deactivate(ctx context.Context, id string) error
}

type UserHandler struct {
	Service UserService
}

func NewUserHandler(s UserService) *UserHandler {
	return &UserHandler{Service: s}
}

// POST /users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUser
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	user, err := h.Service.Register(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	user, err := h.Service.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /users/:id
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	user, err := h.Service.UpdateProfile(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DELETE /users/:id
func (h *UserHandler) Deactivate(c *gin.Context) {
	if err := h.Service.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
