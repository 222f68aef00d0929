package dto

import (
	"fmt"
	"strings"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
)

type RegisterUser struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r *RegisterUser) Sanitize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
}

func (r *RegisterUser) Validate() error {
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return fmt.Errorf("%w: a valid email is required", models.ErrInvalidRequest)
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", models.ErrInvalidRequest)
	}
	return nil
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfile struct {
	Name string `json:"name"`
}
