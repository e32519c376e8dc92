package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReseed(t *testing.T) {
	t.Run("Should clear then insert every portfolio kind", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		for _, kind := range []domain.Kind{
			domain.KindPersonalInfo, domain.KindEducation, domain.KindExperience,
			domain.KindProject, domain.KindSkill,
		} {
			mockRepo.On("DeleteAll", mock.Anything, kind).Return(nil).Once()
		}
		mockRepo.On("InsertPersonalInfo", mock.Anything, mock.Anything).Return(nil).Once()
		mockRepo.On("InsertEducation", mock.Anything, mock.AnythingOfType("[]domain.Education")).
			Return(nil).Once().
			Run(func(args mock.Arguments) {
				records := args.Get(1).([]domain.Education)
				assert.Len(t, records, 2)
				assert.Equal(t, 1, records[0].Order)
				assert.Equal(t, 2, records[1].Order)
			})
		mockRepo.On("InsertExperience", mock.Anything, mock.Anything).Return(nil).Once()
		mockRepo.On("InsertProjects", mock.Anything, mock.Anything).Return([]domain.Project{}, nil).Once()
		mockRepo.On("InsertSkills", mock.Anything, mock.Anything).Return(nil).Once()

		uc := usecase.NewSeedUsecase(mockRepo, validator.New(), &sync.RWMutex{})
		err := uc.Reseed(context.Background())
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)

		// contact_messages must never be touched by a reseed
		mockRepo.AssertNotCalled(t, "DeleteAll", mock.Anything, domain.KindContactMessage)
	})

	t.Run("Should fail fast and stop at the first backend error", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		mockRepo.On("DeleteAll", mock.Anything, domain.KindPersonalInfo).Return(nil).Once()
		mockRepo.On("InsertPersonalInfo", mock.Anything, mock.Anything).Return(nil).Once()
		mockRepo.On("DeleteAll", mock.Anything, domain.KindEducation).
			Return(errors.New("table missing")).Once()

		uc := usecase.NewSeedUsecase(mockRepo, validator.New(), &sync.RWMutex{})
		err := uc.Reseed(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "education")
		mockRepo.AssertNotCalled(t, "InsertEducation", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "DeleteAll", mock.Anything, domain.KindExperience)
	})

	t.Run("Should refuse to run while a write holds the maintenance lock", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		var maint sync.RWMutex
		uc := usecase.NewSeedUsecase(mockRepo, validator.New(), &maint)

		maint.RLock()
		defer maint.RUnlock()

		err := uc.Reseed(context.Background())
		assert.ErrorIs(t, err, domain.ErrSeedInProgress)
		mockRepo.AssertNotCalled(t, "DeleteAll", mock.Anything, mock.Anything)
	})
}
