package usecase

import (
	"context"
	"fmt"
	"sync"

	"go-portfolio-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type portfolioUsecase struct {
	repo     domain.PortfolioRepository
	validate *validator.Validate
	maint    *sync.RWMutex
}

// NewPortfolioUsecase creates the portfolio usecase. maint is the maintenance
// lock shared with the seed usecase: bulk writes take it shared so a reseed
// can never interleave with them.
func NewPortfolioUsecase(repo domain.PortfolioRepository, validate *validator.Validate, maint *sync.RWMutex) domain.PortfolioUsecase {
	return &portfolioUsecase{
		repo:     repo,
		validate: validate,
		maint:    maint,
	}
}

func (uc *portfolioUsecase) GetPersonal(ctx context.Context) (*domain.PersonalInfo, error) {
	return uc.repo.GetPersonalInfo(ctx)
}

func (uc *portfolioUsecase) ListEducation(ctx context.Context) ([]domain.Education, error) {
	records, err := uc.repo.ListEducation(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.Education{}
	}
	return records, nil
}

func (uc *portfolioUsecase) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	records, err := uc.repo.ListExperience(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.Experience{}
	}
	return records, nil
}

func (uc *portfolioUsecase) ListProjects(ctx context.Context, category string, featuredOnly bool) ([]domain.Project, error) {
	records, err := uc.repo.ListProjects(ctx, domain.ProjectFilter{
		Category:     category,
		FeaturedOnly: featuredOnly,
	})
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.Project{}
	}
	return records, nil
}

func (uc *portfolioUsecase) ListFeaturedProjects(ctx context.Context) ([]domain.Project, error) {
	return uc.ListProjects(ctx, "", true)
}

// CreateProjectsBulk validates every input before touching the backend, then
// hands the whole batch to a single adapter insert. Once the adapter accepts
// the batch it is committed; there is no application-level rollback.
func (uc *portfolioUsecase) CreateProjectsBulk(ctx context.Context, inputs []domain.ProjectCreate) ([]domain.Project, error) {
	if len(inputs) == 0 {
		return []domain.Project{}, nil
	}

	records := make([]domain.Project, 0, len(inputs))
	for i, input := range inputs {
		if err := uc.validate.Struct(input); err != nil {
			return nil, fmt.Errorf("project %d: %w", i, err)
		}
		records = append(records, domain.Project{
			Title:           input.Title,
			Description:     input.Description,
			LongDescription: input.LongDescription,
			Tech:            input.Tech,
			Category:        input.Category,
			Featured:        input.Featured,
			Github:          input.Github,
			Demo:            input.Demo,
			Image:           input.Image,
			Status:          input.Status,
			Highlights:      input.Highlights,
			Order:           input.Order,
		})
	}

	uc.maint.RLock()
	defer uc.maint.RUnlock()
	return uc.repo.InsertProjects(ctx, records)
}

// GetSkillsGrouped partitions skills into the four canonical buckets. Every
// bucket is present in the result even when empty. A stored row with an
// unknown group can only come from an out-of-band write; it is skipped rather
// than failing the whole read.
func (uc *portfolioUsecase) GetSkillsGrouped(ctx context.Context) (map[string][]domain.Skill, error) {
	skills, err := uc.repo.ListSkills(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]domain.Skill, len(domain.SkillGroups))
	for _, group := range domain.SkillGroups {
		grouped[group] = []domain.Skill{}
	}
	for _, skill := range skills {
		if _, ok := grouped[skill.SkillGroup]; ok {
			grouped[skill.SkillGroup] = append(grouped[skill.SkillGroup], skill)
		}
	}
	return grouped, nil
}

// GetComplete assembles the full portfolio from five sequential reads. Any
// failure fails the whole aggregate; a partial result is never returned. The
// reads are not transactionally consistent with each other - under concurrent
// writes a caller may observe a torn composite. Accepted trade-off.
func (uc *portfolioUsecase) GetComplete(ctx context.Context) (*domain.PortfolioComplete, error) {
	personal, err := uc.GetPersonal(ctx)
	if err != nil {
		return nil, err
	}
	education, err := uc.ListEducation(ctx)
	if err != nil {
		return nil, err
	}
	experience, err := uc.ListExperience(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := uc.ListProjects(ctx, "", false)
	if err != nil {
		return nil, err
	}
	skills, err := uc.GetSkillsGrouped(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.PortfolioComplete{
		Personal:   personal,
		Education:  education,
		Experience: experience,
		Projects:   projects,
		Skills:     skills,
	}, nil
}
