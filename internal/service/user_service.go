package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models/dto"
)

type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User, id string) error
}

type UserEvents interface {
	UserRegistered(ctx context.Context, user *models.User) bool
	UserLoggedIn(ctx context.Context, user *models.User) bool
	ProfileUpdated(ctx context.Context, user *models.User) bool
	UserDeactivated(ctx context.Context, user *models.User) bool
}

type UserService struct {
	Repo     UserRepo
	Events   UserEvents
	HashCost int
	now      func() time.Time
}

func NewUserService(repo UserRepo, events UserEvents) *UserService {
	return &UserService{
		Repo:     repo,
		Events:   events,
		HashCost: bcrypt.DefaultCost,
		now:      time.Now,
	}
}

func (s *UserService) Register(ctx context.Context, in *dto.RegisterUser) (*models.User, error) {
	in.Sanitize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	_, err := s.Repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", models.ErrUserExists, in.Email)
	case !errors.Is(err, models.ErrNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.HashCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	user := &models.User{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.Events.UserRegistered(ctx, user)
	return user, nil
}

// Login never reveals whether the email exists.
func (s *UserService) Login(ctx context.Context, in *dto.Login) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	now := s.now().UTC()
	user.LastLoginAt = &now
	if err := s.Repo.Update(ctx, user, user.ID); err != nil {
		return nil, err
	}
	s.Events.UserLoggedIn(ctx, user)
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, in *dto.UpdateProfile) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrInvalidRequest)
	}
	user, err := s.activeUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = name
	if err := s.Repo.Update(ctx, user, id); err != nil {
		return nil, err
	}
	s.Events.ProfileUpdated(ctx, user)
	return user, nil
}

func (s *UserService) Deactivate(ctx context.Context, id string) error {
	user, err := s.activeUser(ctx, id)
	if err != nil {
		return err
	}
	user.IsActive = false
	if err := s.Repo.Update(ctx, user, id); err != nil {
		return err
	}
	s.Events.UserDeactivated(ctx, user)
	return nil
}

func (s *UserService) activeUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: user %s is inactive", models.ErrNotFound, id)
	}
	return user, nil
}
