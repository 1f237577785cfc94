package repository

import (
	"testing"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateDuplicateEmail(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&domain.User{Name: "Amy", Email: "amy@example.com", Password: "x"}))

	err := repo.Create(&domain.User{Name: "Impostor", Email: "amy@example.com", Password: "y"})
	assert.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestUserSearchCaseInsensitive(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	headline := "Backend Engineer"
	require.NoError(t, repo.Create(&domain.User{Name: "Grace Hopper", Email: "grace@example.com", Password: "x", Headline: &headline}))
	require.NoError(t, repo.Create(&domain.User{Name: "Alan Kay", Email: "alan@example.com", Password: "x"}))

	t.Run("matches name regardless of case", func(t *testing.T) {
		users, total, err := repo.Search("GRACE", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, users, 1)
		assert.Equal(t, "Grace Hopper", users[0].Name)
	})

	t.Run("matches headline", func(t *testing.T) {
		users, _, err := repo.Search("backend", 1, 10)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "Grace Hopper", users[0].Name)
	})

	t.Run("no match", func(t *testing.T) {
		_, total, err := repo.Search("nobody", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}

func TestFindSummariesByIDs(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	amy := seedUser(t, db, "Amy", "amy@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")

	summaries, err := repo.FindSummariesByIDs([]uint{amy.ID, bob.ID, 999})
	require.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, "Amy", summaries[amy.ID].Name)
	assert.Equal(t, "Bob", summaries[bob.ID].Name)

	t.Run("empty input short-circuits", func(t *testing.T) {
		summaries, err := repo.FindSummariesByIDs(nil)
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})
}

func TestIncrementProfileViews(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	user := seedUser(t, db, "Amy", "amy@example.com")

	require.NoError(t, repo.IncrementProfileViews(user.ID))
	require.NoError(t, repo.IncrementProfileViews(user.ID))

	got, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), got.ProfileViews)
}
