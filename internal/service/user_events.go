package service

import (
	"context"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/notifier"
)

type UserEventService struct {
	emitter
}

func NewUserEventService(pub EventPublisher, n notifier.Notifier) *UserEventService {
	return &UserEventService{
		emitter: newEmitter(pub, n, "user-events"),
	}
}

func userData(u *models.User) models.UserEventData {
	return models.UserEventData{UserID: u.ID, Email: u.Email, Name: u.Name}
}

func (s *UserEventService) UserRegistered(ctx context.Context, user *models.User) bool {
	return s.emit(ctx, models.UserExchange, models.EventUserRegistered, userData(user), &notifier.Notification{
		Type:      notifier.TypeWelcome,
		UserID:    user.ID,
		Recipient: user.Email,
		Subject:   "Welcome to the marketplace",
		Data:      map[string]any{"name": user.Name},
	})
}

func (s *UserEventService) UserLoggedIn(ctx context.Context, user *models.User) bool {
	return s.emit(ctx, models.UserExchange, models.EventUserLogin, userData(user), nil)
}

func (s *UserEventService) ProfileUpdated(ctx context.Context, user *models.User) bool {
	return s.emit(ctx, models.UserExchange, models.EventUserUpdated, userData(user), nil)
}

func (s *UserEventService) UserDeactivated(ctx context.Context, user *models.User) bool {
	return s.emit(ctx, models.UserExchange, models.EventUserDeactivated, userData(user), &notifier.Notification{
		Type:      notifier.TypeFarewell,
		UserID:    user.ID,
		Recipient: user.Email,
		Subject:   "Your account has been deactivated",
	})
}
