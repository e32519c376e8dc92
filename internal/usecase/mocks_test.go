package usecase_test

import (
	"context"

	"go-portfolio-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockPortfolioRepo struct {
	mock.Mock
}

func (m *MockPortfolioRepo) GetPersonalInfo(ctx context.Context) (*domain.PersonalInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonalInfo), args.Error(1)
}

func (m *MockPortfolioRepo) ListEducation(ctx context.Context) ([]domain.Education, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}

func (m *MockPortfolioRepo) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}

func (m *MockPortfolioRepo) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockPortfolioRepo) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockPortfolioRepo) InsertPersonalInfo(ctx context.Context, info *domain.PersonalInfo) error {
	return m.Called(ctx, info).Error(0)
}

func (m *MockPortfolioRepo) InsertEducation(ctx context.Context, records []domain.Education) error {
	return m.Called(ctx, records).Error(0)
}

func (m *MockPortfolioRepo) InsertExperience(ctx context.Context, records []domain.Experience) error {
	return m.Called(ctx, records).Error(0)
}

func (m *MockPortfolioRepo) InsertProjects(ctx context.Context, records []domain.Project) ([]domain.Project, error) {
	args := m.Called(ctx, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockPortfolioRepo) InsertSkills(ctx context.Context, records []domain.Skill) error {
	return m.Called(ctx, records).Error(0)
}

func (m *MockPortfolioRepo) DeleteAll(ctx context.Context, kind domain.Kind) error {
	return m.Called(ctx, kind).Error(0)
}

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Insert(ctx context.Context, msg *domain.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockContactRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}
