package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubmitContact(t *testing.T) {
	input := &domain.ContactMessageCreate{
		Name:    "  Jamie Doe  ",
		Email:   "jamie@example.com",
		Subject: "Hiring",
		Message: "Are you available for contract work?",
	}

	t.Run("Should always store status new", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.ContactMessage")).
			Return(nil).
			Run(func(args mock.Arguments) {
				msg := args.Get(1).(*domain.ContactMessage)
				assert.Equal(t, "new", msg.Status)
				assert.Equal(t, "Jamie Doe", msg.Name)
			})
		uc := usecase.NewContactUsecase(mockRepo, nil)

		msg, err := uc.Submit(context.Background(), input)
		assert.NoError(t, err)
		assert.Equal(t, "new", msg.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Backend failure surfaces to the caller", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("connection refused"))
		uc := usecase.NewContactUsecase(mockRepo, nil)

		_, err := uc.Submit(context.Background(), input)
		assert.Error(t, err)
	})
}

func TestListMessages(t *testing.T) {
	t.Run("Should pass through newest-first order from the repository", func(t *testing.T) {
		t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		t2 := t1.Add(time.Hour)
		t3 := t2.Add(time.Hour)
		mockRepo := new(MockContactRepo)
		mockRepo.On("List", mock.Anything).Return([]domain.ContactMessage{
			{Subject: "third", CreatedAt: t3},
			{Subject: "second", CreatedAt: t2},
			{Subject: "first", CreatedAt: t1},
		}, nil)
		uc := usecase.NewContactUsecase(mockRepo, nil)

		messages, err := uc.ListMessages(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"third", "second", "first"},
			[]string{messages[0].Subject, messages[1].Subject, messages[2].Subject})
	})

	t.Run("Empty backend yields an empty list, not nil", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("List", mock.Anything).Return(nil, nil)
		uc := usecase.NewContactUsecase(mockRepo, nil)

		messages, err := uc.ListMessages(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, messages)
		assert.Empty(t, messages)
	})
}
