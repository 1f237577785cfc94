package service

import (
	"testing"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func summaryMap(ids ...uint) map[uint]*domain.UserSummary {
	m := make(map[uint]*domain.UserSummary, len(ids))
	for _, id := range ids {
		m[id] = &domain.UserSummary{ID: id, Name: "user"}
	}
	return m
}

func TestSendConnection(t *testing.T) {
	t.Run("creates pending request", func(t *testing.T) {
		connRepo := new(mockConnectionRepo)
		userRepo := new(mockUserRepo)
		svc := NewConnectionService(connRepo, userRepo)

		userRepo.On("FindByID", uint(2)).Return(&domain.User{ID: 2}, nil)
		connRepo.On("FindByPair", uint(1), uint(2)).Return(nil, common.ErrConnectionNotFound)
		connRepo.On("Create", mock.MatchedBy(func(c *domain.Connection) bool {
			return c.SenderID == 1 && c.ReceiverID == 2 && c.Status == domain.ConnectionPending
		})).Return(nil)
		userRepo.On("FindSummariesByIDs", []uint{1, 2}).Return(summaryMap(1, 2), nil)

		resp, err := svc.Send(1, 2)

		assert.NoError(t, err)
		assert.Equal(t, domain.ConnectionPending, resp.Status)
		connRepo.AssertExpectations(t)
	})

	t.Run("rejects self connection", func(t *testing.T) {
		svc := NewConnectionService(new(mockConnectionRepo), new(mockUserRepo))

		_, err := svc.Send(1, 1)

		assert.ErrorIs(t, err, common.ErrSelfConnection)
	})

	t.Run("rejects unknown receiver", func(t *testing.T) {
		connRepo := new(mockConnectionRepo)
		userRepo := new(mockUserRepo)
		svc := NewConnectionService(connRepo, userRepo)

		userRepo.On("FindByID", uint(99)).Return(nil, common.ErrUserNotFound)

		_, err := svc.Send(1, 99)

		assert.ErrorIs(t, err, common.ErrUserNotFound)
	})

	t.Run("rejects duplicate in either direction", func(t *testing.T) {
		connRepo := new(mockConnectionRepo)
		userRepo := new(mockUserRepo)
		svc := NewConnectionService(connRepo, userRepo)

		userRepo.On("FindByID", uint(1)).Return(&domain.User{ID: 1}, nil)
		// 1 already requested 2; now 2 tries to request 1
		connRepo.On("FindByPair", uint(2), uint(1)).Return(&domain.Connection{
			ID: 7, SenderID: 1, ReceiverID: 2, Status: domain.ConnectionPending,
		}, nil)

		_, err := svc.Send(2, 1)

		assert.ErrorIs(t, err, common.ErrConnectionExists)
		connRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("surfaces racing duplicate from store", func(t *testing.T) {
		connRepo := new(mockConnectionRepo)
		userRepo := new(mockUserRepo)
		svc := NewConnectionService(connRepo, userRepo)

		userRepo.On("FindByID", uint(2)).Return(&domain.User{ID: 2}, nil)
		connRepo.On("FindByPair", uint(1), uint(2)).Return(nil, common.ErrConnectionNotFound)
		connRepo.On("Create", mock.Anything).Return(common.ErrConnectionExists)

		_, err := svc.Send(1, 2)

		assert.ErrorIs(t, err, common.ErrConnectionExists)
	})
}

func TestAcceptConnection(t *testing.T) {
	t.Run("receiver accepts pending request", func(t *testing.T) {
		connRepo := new(mockConnectionRepo)
		userRepo := new(mockUserRepo)
		svc := NewConnectionService(connRepo, userRepo)

		connRepo.On("FindByID", uint(5)).Return(&domain.Connection{
			ID: 5, SenderID: 1, ReceiverID: 2, Status: domain.ConnectionPending,
		}, nil)
		connRepo.On("UpdateStatus", uint(5), domain.ConnectionAccepted).Return(nil)
		userRepo.On("FindSummariesByIDs", []uint{1, 2}).Return(summaryMap(1, 2), nil)

		resp, err := svc.Accept(2, 5)

		assert.NoError(t, err)
		assert.Equal(t, domain.ConnectionAccepted, resp.Status)
	})

	t.Run("sender cannot accept", func(t *testing.T) {
		connRepo := new(mockConnectionRepo)
		svc := NewConnectionService(connRepo, new(mockUserRepo))

		connRepo.On("FindByID", uint(5)).Return(&domain.Connection{
			ID: 5, SenderID: 1, ReceiverID: 2, Status: domain.ConnectionPending,
		}, nil)

		_, err := svc.Accept(1, 5)

		assert.ErrorIs(t, err, common.ErrForbidden)
		connRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("accept is idempotent", func(t *testing.T) {
		connRepo := new(mockConnectionRepo)
		userRepo := new(mockUserRepo)
		svc := NewConnectionService(connRepo, userRepo)

		connRepo.On("FindByID", uint(5)).Return(&domain.Connection{
			ID: 5, SenderID: 1, ReceiverID: 2, Status: domain.ConnectionAccepted,
		}, nil)
		connRepo.On("UpdateStatus", uint(5), domain.ConnectionAccepted).Return(nil)
		userRepo.On("FindSummariesByIDs", []uint{1, 2}).Return(summaryMap(1, 2), nil)

		resp, err := svc.Accept(2, 5)

		assert.NoError(t, err)
		assert.Equal(t, domain.ConnectionAccepted, resp.Status)
	})
}

func TestRejectConnection(t *testing.T) {
	t.Run("receiver rejects and row is deleted", func(t *testing.T) {
		connRepo := new(mockConnectionRepo)
		svc := NewConnectionService(connRepo, new(mockUserRepo))

		connRepo.On("FindByID", uint(5)).Return(&domain.Connection{
			ID: 5, SenderID: 1, ReceiverID: 2, Status: domain.ConnectionPending,
		}, nil)
		connRepo.On("Delete", uint(5)).Return(nil)

		err := svc.Reject(2, 5)

		assert.NoError(t, err)
		connRepo.AssertExpectations(t)
	})

	t.Run("sender cannot reject", func(t *testing.T) {
		connRepo := new(mockConnectionRepo)
		svc := NewConnectionService(connRepo, new(mockUserRepo))

		connRepo.On("FindByID", uint(5)).Return(&domain.Connection{
			ID: 5, SenderID: 1, ReceiverID: 2, Status: domain.ConnectionPending,
		}, nil)

		err := svc.Reject(1, 5)

		assert.ErrorIs(t, err, common.ErrForbidden)
	})
}

func TestRemoveConnection(t *testing.T) {
	t.Run("either participant may remove", func(t *testing.T) {
		for _, userID := range []uint{1, 2} {
			connRepo := new(mockConnectionRepo)
			svc := NewConnectionService(connRepo, new(mockUserRepo))

			connRepo.On("FindByID", uint(5)).Return(&domain.Connection{
				ID: 5, SenderID: 1, ReceiverID: 2, Status: domain.ConnectionAccepted,
			}, nil)
			connRepo.On("Delete", uint(5)).Return(nil)

			assert.NoError(t, svc.Remove(userID, 5))
		}
	})

	t.Run("outsider cannot remove", func(t *testing.T) {
		connRepo := new(mockConnectionRepo)
		svc := NewConnectionService(connRepo, new(mockUserRepo))

		connRepo.On("FindByID", uint(5)).Return(&domain.Connection{
			ID: 5, SenderID: 1, ReceiverID: 2, Status: domain.ConnectionAccepted,
		}, nil)

		err := svc.Remove(3, 5)

		assert.ErrorIs(t, err, common.ErrForbidden)
		connRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("missing connection", func(t *testing.T) {
		connRepo := new(mockConnectionRepo)
		svc := NewConnectionService(connRepo, new(mockUserRepo))

		connRepo.On("FindByID", uint(404)).Return(nil, common.ErrConnectionNotFound)

		err := svc.Remove(1, 404)

		assert.ErrorIs(t, err, common.ErrConnectionNotFound)
	})
}

func TestListConnections(t *testing.T) {
	t.Run("normalizes direction to the other user", func(t *testing.T) {
		connRepo := new(mockConnectionRepo)
		userRepo := new(mockUserRepo)
		svc := NewConnectionService(connRepo, userRepo)

		connRepo.On("FindByUserAndStatus", uint(2), domain.ConnectionAccepted).Return([]*domain.Connection{
			{ID: 10, SenderID: 1, ReceiverID: 2, Status: domain.ConnectionAccepted},
			{ID: 11, SenderID: 2, ReceiverID: 3, Status: domain.ConnectionAccepted},
		}, nil)
		userRepo.On("FindSummariesByIDs", []uint{1, 3}).Return(summaryMap(1, 3), nil)

		items, err := svc.List(2, "")

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, uint(1), items[0].User.ID)
		assert.Equal(t, uint(3), items[1].User.ID)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		svc := NewConnectionService(new(mockConnectionRepo), new(mockUserRepo))

		_, err := svc.List(1, "blocked")

		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})
}

func TestConnectionStatus(t *testing.T) {
	t.Run("none when no row exists", func(t *testing.T) {
		connRepo := new(mockConnectionRepo)
		svc := NewConnectionService(connRepo, new(mockUserRepo))

		connRepo.On("FindByPair", uint(1), uint(2)).Return(nil, common.ErrConnectionNotFound)

		resp, err := svc.Status(1, 2)

		assert.NoError(t, err)
		assert.Equal(t, domain.ConnectionNone, resp.Status)
		assert.Nil(t, resp.IsRequester)
		assert.Nil(t, resp.ConnectionID)
	})

	t.Run("reports direction for pending", func(t *testing.T) {
		connRepo := new(mockConnectionRepo)
		svc := NewConnectionService(connRepo, new(mockUserRepo))

		connRepo.On("FindByPair", uint(2), uint(1)).Return(&domain.Connection{
			ID: 7, SenderID: 1, ReceiverID: 2, Status: domain.ConnectionPending,
		}, nil)

		resp, err := svc.Status(2, 1)

		assert.NoError(t, err)
		assert.Equal(t, domain.ConnectionPending, resp.Status)
		assert.NotNil(t, resp.IsRequester)
		assert.False(t, *resp.IsRequester)
		assert.Equal(t, uint(7), *resp.ConnectionID)
	})
}
