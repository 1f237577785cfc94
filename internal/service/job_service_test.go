package service

import (
	"testing"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteJob(t *testing.T) {
	t.Run("poster deletes permanently", func(t *testing.T) {
		jobRepo := new(mockJobRepo)
		svc := NewJobService(jobRepo, new(mockUserRepo), new(mockCompanyRepo))

		jobRepo.On("FindByID", uint(3)).Return(&domain.Job{ID: 3, PostedByID: 7}, nil)
		jobRepo.On("Delete", uint(3)).Return(nil)

		require.NoError(t, svc.Delete(7, 3))
		jobRepo.AssertCalled(t, "Delete", uint(3))
	})

	t.Run("non poster is forbidden", func(t *testing.T) {
		jobRepo := new(mockJobRepo)
		svc := NewJobService(jobRepo, new(mockUserRepo), new(mockCompanyRepo))

		jobRepo.On("FindByID", uint(3)).Return(&domain.Job{ID: 3, PostedByID: 7}, nil)

		err := svc.Delete(8, 3)
		assert.ErrorIs(t, err, common.ErrForbidden)
		jobRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("missing job", func(t *testing.T) {
		jobRepo := new(mockJobRepo)
		svc := NewJobService(jobRepo, new(mockUserRepo), new(mockCompanyRepo))

		jobRepo.On("FindByID", uint(99)).Return(nil, common.ErrNotFound)

		err := svc.Delete(7, 99)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestDeactivateJob(t *testing.T) {
	t.Run("poster deactivates, row kept", func(t *testing.T) {
		jobRepo := new(mockJobRepo)
		userRepo := new(mockUserRepo)
		svc := NewJobService(jobRepo, userRepo, new(mockCompanyRepo))

		jobRepo.On("FindByID", uint(3)).Return(&domain.Job{ID: 3, PostedByID: 7, IsActive: true}, nil)
		jobRepo.On("Update", uint(3), map[string]interface{}{"is_active": false}).Return(nil)
		userRepo.On("FindSummariesByIDs", []uint{7}).Return(summaryMap(7), nil)

		resp, err := svc.Deactivate(7, 3)
		require.NoError(t, err)
		assert.False(t, resp.IsActive)
		jobRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("non poster is forbidden", func(t *testing.T) {
		jobRepo := new(mockJobRepo)
		svc := NewJobService(jobRepo, new(mockUserRepo), new(mockCompanyRepo))

		jobRepo.On("FindByID", uint(3)).Return(&domain.Job{ID: 3, PostedByID: 7}, nil)

		_, err := svc.Deactivate(8, 3)
		assert.ErrorIs(t, err, common.ErrForbidden)
		jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
