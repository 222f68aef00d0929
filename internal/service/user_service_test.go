package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models/dto"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/service"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/service/mocks"
)

func newUserService(t *testing.T) (*service.UserService, *mocks.MockUserRepo, *mocks.MockUserEvents) {
	repo := mocks.NewMockUserRepo(t)
	events := mocks.NewMockUserEvents(t)
	svc := service.NewUserService(repo, events)
	svc.HashCost = bcrypt.MinCost
	return svc, repo, events
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister_HashesPasswordAndPublishes(t *testing.T) {
	svc, repo, events := newUserService(t)

	repo.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(nil, models.ErrNotFound).Once()
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.IsActive && bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")) == nil
	})).Return(nil).Once()
	events.EXPECT().UserRegistered(mock.Anything, mock.AnythingOfType("*models.User")).Return(true).Once()

	user, err := svc.Register(context.Background(), &dto.RegisterUser{Email: " Jane@Example.com", Name: "Jane", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, repo, events := newUserService(t)

	repo.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(&models.User{ID: "user-1"}, nil).Once()

	_, err := svc.Register(context.Background(), &dto.RegisterUser{Email: "jane@example.com", Password: "s3cret-pass"})

	assert.ErrorIs(t, err, models.ErrUserExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	events.AssertNotCalled(t, "UserRegistered", mock.Anything, mock.Anything)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, _, _ := newUserService(t)

	_, err := svc.Register(context.Background(), &dto.RegisterUser{Email: "jane@example.com", Password: "short"})

	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}

func TestLogin(t *testing.T) {
	active := func(t *testing.T) *models.User {
		return &models.User{ID: "user-1", Email: "jane@example.com", PasswordHash: hashed(t, "s3cret-pass"), IsActive: true}
	}

	t.Run("success records last login", func(t *testing.T) {
		svc, repo, events := newUserService(t)
		repo.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(active(t), nil).Once()
		repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *models.User) bool { return u.LastLoginAt != nil }), "user-1").
			Return(nil).Once()
		events.EXPECT().UserLoggedIn(mock.Anything, mock.Anything).Return(true).Once()

		user, err := svc.Login(context.Background(), &dto.Login{Email: "JANE@example.com", Password: "s3cret-pass"})

		require.NoError(t, err)
		assert.NotNil(t, user.LastLoginAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo, _ := newUserService(t)
		repo.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(active(t), nil).Once()

		_, err := svc.Login(context.Background(), &dto.Login{Email: "jane@example.com", Password: "nope"})

		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, repo, _ := newUserService(t)
		repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, models.ErrNotFound).Once()

		_, err := svc.Login(context.Background(), &dto.Login{Email: "ghost@example.com", Password: "s3cret-pass"})

		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		svc, repo, _ := newUserService(t)
		u := active(t)
		u.IsActive = false
		repo.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(u, nil).Once()

		_, err := svc.Login(context.Background(), &dto.Login{Email: "jane@example.com", Password: "s3cret-pass"})

		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, repo, _ := newUserService(t)
		repo.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(nil, errors.New("db down")).Once()

		_, err := svc.Login(context.Background(), &dto.Login{Email: "jane@example.com", Password: "s3cret-pass"})

		assert.EqualError(t, err, "db down")
	})
}

func TestUpdateProfile(t *testing.T) {
	svc, repo, events := newUserService(t)
	user := &models.User{ID: "user-1", Name: "Jane", IsActive: true}

	repo.EXPECT().GetByID(mock.Anything, "user-1").Return(user, nil).Once()
	repo.EXPECT().Update(mock.Anything, user, "user-1").Return(nil).Once()
	events.EXPECT().ProfileUpdated(mock.Anything, user).Return(true).Once()

	updated, err := svc.UpdateProfile(context.Background(), "user-1", &dto.UpdateProfile{Name: " Jane Doe "})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)

	_, err = svc.UpdateProfile(context.Background(), "user-1", &dto.UpdateProfile{Name: "  "})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}

func TestDeactivate(t *testing.T) {
	svc, repo, events := newUserService(t)
	user := &models.User{ID: "user-1", IsActive: true}

	repo.EXPECT().GetByID(mock.Anything, "user-1").Return(user, nil).Once()
	repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *models.User) bool { return !u.IsActive }), "user-1").Return(nil).Once()
	events.EXPECT().UserDeactivated(mock.Anything, user).Return(true).Once()

	require.NoError(t, svc.Deactivate(context.Background(), "user-1"))

	repo.EXPECT().GetByID(mock.Anything, "user-1").Return(user, nil).Once()
	assert.ErrorIs(t, svc.Deactivate(context.Background(), "user-1"), models.ErrNotFound)
}
