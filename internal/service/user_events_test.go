package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/notifier"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/service"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/service/mocks"
)

func TestUserEvents_RegisteredSendsWelcome(t *testing.T) {
	pub := mocks.NewMockEventPublisher(t)
	n := mocks.NewMockNotifier(t)
	svc := service.NewUserEventService(pub, n)
	user := &models.User{ID: "user-1", Email: "jane@example.com", Name: "Jane"}

	pub.EXPECT().Publish(mock.Anything, models.UserExchange, models.EventUserRegistered,
		mock.MatchedBy(func(e models.DomainEvent) bool {
			return e.Data["userId"] == "user-1" && e.Data["email"] == "jane@example.com"
		})).Return(false).Once()
	n.EXPECT().Send(mock.Anything, mock.MatchedBy(func(note notifier.Notification) bool {
		return note.Type == notifier.TypeWelcome && note.Recipient == "jane@example.com"
	})).Return(nil).Once()

	assert.False(t, svc.UserRegistered(context.Background(), user))
	require.NoError(t, svc.WaitNotifications(context.Background()))
}

func TestUserEvents_LoginAndUpdateOnlyPublish(t *testing.T) {
	pub := mocks.NewMockEventPublisher(t)
	n := mocks.NewMockNotifier(t)
	svc := service.NewUserEventService(pub, n)
	user := &models.User{ID: "user-1", Email: "jane@example.com"}

	pub.EXPECT().Publish(mock.Anything, models.UserExchange, models.EventUserLogin, mock.Anything).Return(true).Once()
	pub.EXPECT().Publish(mock.Anything, models.UserExchange, models.EventUserUpdated, mock.Anything).Return(true).Once()

	assert.True(t, svc.UserLoggedIn(context.Background(), user))
	assert.True(t, svc.ProfileUpdated(context.Background(), user))
	n.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestUserEvents_DeactivatedSendsFarewell(t *testing.T) {
	pub := mocks.NewMockEventPublisher(t)
	n := mocks.NewMockNotifier(t)
	svc := service.NewUserEventService(pub, n)

	pub.EXPECT().Publish(mock.Anything, models.UserExchange, models.EventUserDeactivated, mock.Anything).Return(true).Once()
	n.EXPECT().Send(mock.Anything, mock.MatchedBy(func(note notifier.Notification) bool {
		return note.Type == notifier.TypeFarewell && note.UserID == "user-1"
	})).Return(nil).Once()

	assert.True(t, svc.UserDeactivated(context.Background(), &models.User{ID: "user-1"}))
	require.NoError(t, svc.WaitNotifications(context.Background()))
}
