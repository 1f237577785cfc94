package repository

import (
	"testing"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionPairUniqueness(t *testing.T) {
	db := testDB(t)
	repo := NewConnectionRepository(db)

	first := &domain.Connection{SenderID: 1, ReceiverID: 2, Status: domain.ConnectionPending}
	require.NoError(t, repo.Create(first))

	t.Run("same direction rejected", func(t *testing.T) {
		err := repo.Create(&domain.Connection{SenderID: 1, ReceiverID: 2, Status: domain.ConnectionPending})
		assert.ErrorIs(t, err, common.ErrConnectionExists)
	})

	t.Run("reverse direction rejected", func(t *testing.T) {
		err := repo.Create(&domain.Connection{SenderID: 2, ReceiverID: 1, Status: domain.ConnectionPending})
		assert.ErrorIs(t, err, common.ErrConnectionExists)
	})

	t.Run("different pair accepted", func(t *testing.T) {
		err := repo.Create(&domain.Connection{SenderID: 1, ReceiverID: 3, Status: domain.ConnectionPending})
		assert.NoError(t, err)
	})
}

func TestConnectionFindByPair(t *testing.T) {
	db := testDB(t)
	repo := NewConnectionRepository(db)

	conn := &domain.Connection{SenderID: 7, ReceiverID: 3, Status: domain.ConnectionPending}
	require.NoError(t, repo.Create(conn))

	t.Run("found regardless of argument order", func(t *testing.T) {
		got, err := repo.FindByPair(3, 7)
		require.NoError(t, err)
		assert.Equal(t, conn.ID, got.ID)

		got, err = repo.FindByPair(7, 3)
		require.NoError(t, err)
		assert.Equal(t, conn.ID, got.ID)
	})

	t.Run("missing pair", func(t *testing.T) {
		_, err := repo.FindByPair(7, 8)
		assert.ErrorIs(t, err, common.ErrConnectionNotFound)
	})
}

func TestConnectionRerequestAfterDelete(t *testing.T) {
	db := testDB(t)
	repo := NewConnectionRepository(db)

	conn := &domain.Connection{SenderID: 1, ReceiverID: 2, Status: domain.ConnectionPending}
	require.NoError(t, repo.Create(conn))
	require.NoError(t, repo.Delete(conn.ID))

	// reject/remove leaves no row, so the pair may be requested again,
	// in either direction
	again := &domain.Connection{SenderID: 2, ReceiverID: 1, Status: domain.ConnectionPending}
	assert.NoError(t, repo.Create(again))
}

func TestConnectionStatusLifecycle(t *testing.T) {
	db := testDB(t)
	repo := NewConnectionRepository(db)

	conn := &domain.Connection{SenderID: 1, ReceiverID: 2, Status: domain.ConnectionPending}
	require.NoError(t, repo.Create(conn))

	require.NoError(t, repo.UpdateStatus(conn.ID, domain.ConnectionAccepted))

	got, err := repo.FindByID(conn.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ConnectionAccepted, got.Status)

	count, err := repo.CountAcceptedForUser(2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFindPendingForReceiver(t *testing.T) {
	db := testDB(t)
	repo := NewConnectionRepository(db)

	require.NoError(t, repo.Create(&domain.Connection{SenderID: 1, ReceiverID: 5, Status: domain.ConnectionPending}))
	require.NoError(t, repo.Create(&domain.Connection{SenderID: 2, ReceiverID: 5, Status: domain.ConnectionPending}))
	accepted := &domain.Connection{SenderID: 3, ReceiverID: 5, Status: domain.ConnectionPending}
	require.NoError(t, repo.Create(accepted))
	require.NoError(t, repo.UpdateStatus(accepted.ID, domain.ConnectionAccepted))
	// a request 5 sent must not appear in 5's inbox
	require.NoError(t, repo.Create(&domain.Connection{SenderID: 5, ReceiverID: 9, Status: domain.ConnectionPending}))

	pending, err := repo.FindPendingForReceiver(5)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
	for _, p := range pending {
		assert.Equal(t, uint(5), p.ReceiverID)
		assert.Equal(t, domain.ConnectionPending, p.Status)
	}
}
