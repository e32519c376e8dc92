// Package unconfigured backs the storage contracts when neither DATABASE_URL
// nor MONGO_URL is set. The process still serves traffic; every data
// operation fails with domain.ErrNoBackend.
package unconfigured

import (
	"context"

	"go-portfolio-backend/internal/domain"
)

type portfolioRepo struct{}

func NewPortfolioRepository() domain.PortfolioRepository {
	return portfolioRepo{}
}

func (portfolioRepo) GetPersonalInfo(ctx context.Context) (*domain.PersonalInfo, error) {
	return nil, domain.ErrNoBackend
}

func (portfolioRepo) ListEducation(ctx context.Context) ([]domain.Education, error) {
	return nil, domain.ErrNoBackend
}

func (portfolioRepo) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	return nil, domain.ErrNoBackend
}

func (portfolioRepo) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	return nil, domain.ErrNoBackend
}

func (portfolioRepo) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return nil, domain.ErrNoBackend
}

func (portfolioRepo) InsertPersonalInfo(ctx context.Context, info *domain.PersonalInfo) error {
	return domain.ErrNoBackend
}

func (portfolioRepo) InsertEducation(ctx context.Context, records []domain.Education) error {
	return domain.ErrNoBackend
}

func (portfolioRepo) InsertExperience(ctx context.Context, records []domain.Experience) error {
	return domain.ErrNoBackend
}

func (portfolioRepo) InsertProjects(ctx context.Context, records []domain.Project) ([]domain.Project, error) {
	return nil, domain.ErrNoBackend
}

func (portfolioRepo) InsertSkills(ctx context.Context, records []domain.Skill) error {
	return domain.ErrNoBackend
}

func (portfolioRepo) DeleteAll(ctx context.Context, kind domain.Kind) error {
	return domain.ErrNoBackend
}

type contactRepo struct{}

func NewContactRepository() domain.ContactRepository {
	return contactRepo{}
}

func (contactRepo) Insert(ctx context.Context, msg *domain.ContactMessage) error {
	return domain.ErrNoBackend
}

func (contactRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return nil, domain.ErrNoBackend
}
