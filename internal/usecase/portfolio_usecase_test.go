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

func newPortfolioUC(repo *MockPortfolioRepo) domain.PortfolioUsecase {
	return usecase.NewPortfolioUsecase(repo, validator.New(), &sync.RWMutex{})
}

func TestSkillsGrouping(t *testing.T) {
	t.Run("Should return all four groups for an empty backend", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		mockRepo.On("ListSkills", mock.Anything).Return([]domain.Skill{}, nil)
		uc := newPortfolioUC(mockRepo)

		grouped, err := uc.GetSkillsGrouped(context.Background())
		assert.NoError(t, err)
		assert.Len(t, grouped, 4)
		for _, group := range []string{"languages", "frameworks", "tools", "aiMl"} {
			skills, ok := grouped[group]
			assert.True(t, ok, "missing group %q", group)
			assert.NotNil(t, skills)
			assert.Empty(t, skills)
		}
	})

	t.Run("Should bucket skills by group preserving order", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		mockRepo.On("ListSkills", mock.Anything).Return([]domain.Skill{
			{Name: "Go", SkillGroup: "languages", Order: 1},
			{Name: "Gin", SkillGroup: "frameworks", Order: 1},
			{Name: "Python", SkillGroup: "languages", Order: 2},
		}, nil)
		uc := newPortfolioUC(mockRepo)

		grouped, err := uc.GetSkillsGrouped(context.Background())
		assert.NoError(t, err)
		assert.Len(t, grouped["languages"], 2)
		assert.Equal(t, "Go", grouped["languages"][0].Name)
		assert.Equal(t, "Python", grouped["languages"][1].Name)
		assert.Len(t, grouped["frameworks"], 1)
		assert.Empty(t, grouped["tools"])
		assert.Empty(t, grouped["aiMl"])
	})

	t.Run("Should skip rows with an unknown group rather than fail", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		mockRepo.On("ListSkills", mock.Anything).Return([]domain.Skill{
			{Name: "Go", SkillGroup: "languages"},
			{Name: "Mystery", SkillGroup: "databases"},
		}, nil)
		uc := newPortfolioUC(mockRepo)

		grouped, err := uc.GetSkillsGrouped(context.Background())
		assert.NoError(t, err)
		assert.Len(t, grouped, 4)
		assert.Len(t, grouped["languages"], 1)
	})
}

func TestListProjectsFilters(t *testing.T) {
	t.Run("Featured listing uses the featured-only filter", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		mockRepo.On("ListProjects", mock.Anything, domain.ProjectFilter{FeaturedOnly: true}).
			Return([]domain.Project{{Title: "Relay", Featured: true}}, nil)
		uc := newPortfolioUC(mockRepo)

		records, err := uc.ListFeaturedProjects(context.Background())
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		for _, p := range records {
			assert.True(t, p.Featured)
		}
		mockRepo.AssertExpectations(t)
	})

	t.Run("Category filter passes through unchanged", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		mockRepo.On("ListProjects", mock.Anything, domain.ProjectFilter{Category: "Systems"}).
			Return([]domain.Project{}, nil)
		uc := newPortfolioUC(mockRepo)

		records, err := uc.ListProjects(context.Background(), "Systems", false)
		assert.NoError(t, err)
		assert.NotNil(t, records)
		mockRepo.AssertExpectations(t)
	})
}

func TestCreateProjectsBulk(t *testing.T) {
	validInput := domain.ProjectCreate{
		Title:       "Relay",
		Description: "Minimal message queue",
		Category:    "Systems",
		Github:      "https://github.com/alexmercer-dev/relay",
		Status:      "completed",
	}

	t.Run("Should reject unknown status before touching the backend", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		uc := newPortfolioUC(mockRepo)

		bad := validInput
		bad.Status = "abandoned"
		_, err := uc.CreateProjectsBulk(context.Background(), []domain.ProjectCreate{bad})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "InsertProjects", mock.Anything, mock.Anything)
	})

	t.Run("Should reject missing required fields", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		uc := newPortfolioUC(mockRepo)

		bad := validInput
		bad.Title = ""
		_, err := uc.CreateProjectsBulk(context.Background(), []domain.ProjectCreate{bad})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "InsertProjects", mock.Anything, mock.Anything)
	})

	t.Run("Should insert the whole batch in one adapter call", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		mockRepo.On("InsertProjects", mock.Anything, mock.AnythingOfType("[]domain.Project")).
			Return([]domain.Project{{ID: "p1", Title: "Relay"}, {ID: "p2", Title: "Driftwatch"}}, nil).
			Once()
		uc := newPortfolioUC(mockRepo)

		second := validInput
		second.Title = "Driftwatch"
		second.Status = "in-progress"
		records, err := uc.CreateProjectsBulk(context.Background(), []domain.ProjectCreate{validInput, second})
		assert.NoError(t, err)
		assert.Len(t, records, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Backend failure surfaces without retry", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		mockRepo.On("InsertProjects", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset")).Once()
		uc := newPortfolioUC(mockRepo)

		_, err := uc.CreateProjectsBulk(context.Background(), []domain.ProjectCreate{validInput})
		assert.Error(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetComplete(t *testing.T) {
	t.Run("Should fail with NotFound when personal info is absent", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		mockRepo.On("GetPersonalInfo", mock.Anything).Return(nil, domain.ErrNotFound)
		uc := newPortfolioUC(mockRepo)

		_, err := uc.GetComplete(context.Background())
		assert.ErrorIs(t, err, domain.ErrNotFound)
		// The aggregate fails on the first read; nothing else is fetched.
		mockRepo.AssertNotCalled(t, "ListEducation", mock.Anything)
	})

	t.Run("Should assemble all five parts", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		mockRepo.On("GetPersonalInfo", mock.Anything).Return(&domain.PersonalInfo{Name: "Alex"}, nil)
		mockRepo.On("ListEducation", mock.Anything).Return([]domain.Education{{Degree: "M.S."}}, nil)
		mockRepo.On("ListExperience", mock.Anything).Return([]domain.Experience{}, nil)
		mockRepo.On("ListProjects", mock.Anything, domain.ProjectFilter{}).Return([]domain.Project{}, nil)
		mockRepo.On("ListSkills", mock.Anything).Return([]domain.Skill{}, nil)
		uc := newPortfolioUC(mockRepo)

		complete, err := uc.GetComplete(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "Alex", complete.Personal.Name)
		assert.Len(t, complete.Education, 1)
		assert.NotNil(t, complete.Projects)
		assert.Len(t, complete.Skills, 4)
	})

	t.Run("Should never return a partial aggregate", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		mockRepo.On("GetPersonalInfo", mock.Anything).Return(&domain.PersonalInfo{}, nil)
		mockRepo.On("ListEducation", mock.Anything).Return([]domain.Education{}, nil)
		mockRepo.On("ListExperience", mock.Anything).Return(nil, errors.New("timeout"))
		uc := newPortfolioUC(mockRepo)

		complete, err := uc.GetComplete(context.Background())
		assert.Error(t, err)
		assert.Nil(t, complete)
	})
}

func TestListReadsReturnEmptyNotNil(t *testing.T) {
	mockRepo := new(MockPortfolioRepo)
	mockRepo.On("ListEducation", mock.Anything).Return(nil, nil)
	mockRepo.On("ListExperience", mock.Anything).Return(nil, nil)
	uc := newPortfolioUC(mockRepo)

	education, err := uc.ListEducation(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, education)

	experience, err := uc.ListExperience(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, experience)
}
