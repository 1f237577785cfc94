package service

import (
	"testing"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteCompany(t *testing.T) {
	t.Run("existing company is deleted", func(t *testing.T) {
		repo := new(mockCompanyRepo)
		svc := NewCompanyService(repo)

		repo.On("FindByID", uint(4)).Return(&domain.Company{ID: 4, Name: "Acme"}, nil)
		repo.On("Delete", uint(4)).Return(nil)

		require.NoError(t, svc.Delete(4))
		repo.AssertCalled(t, "Delete", uint(4))
	})

	t.Run("missing company", func(t *testing.T) {
		repo := new(mockCompanyRepo)
		svc := NewCompanyService(repo)

		repo.On("FindByID", uint(99)).Return(nil, common.ErrNotFound)

		err := svc.Delete(99)
		assert.ErrorIs(t, err, common.ErrNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything)
	})
}
