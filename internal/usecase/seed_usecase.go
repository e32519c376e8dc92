package usecase

import (
	"context"
	"fmt"
	"sync"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/seed"

	"github.com/go-playground/validator/v10"
)

type seedUsecase struct {
	repo     domain.PortfolioRepository
	validate *validator.Validate
	maint    *sync.RWMutex
}

// NewSeedUsecase creates the reseed usecase. maint is the maintenance lock
// shared with user-facing bulk writes; Reseed takes it exclusively.
func NewSeedUsecase(repo domain.PortfolioRepository, validate *validator.Validate, maint *sync.RWMutex) domain.SeedUsecase {
	return &seedUsecase{
		repo:     repo,
		validate: validate,
		maint:    maint,
	}
}

// Reseed clears and reloads every portfolio kind from the literal seed
// dataset. It fails fast on the first backend error, which leaves the
// already-cleared kind empty - callers must treat a failed reseed as
// requiring a retry. Contact messages are never touched.
func (uc *seedUsecase) Reseed(ctx context.Context) error {
	if !uc.maint.TryLock() {
		return domain.ErrSeedInProgress
	}
	defer uc.maint.Unlock()

	if err := uc.repo.DeleteAll(ctx, domain.KindPersonalInfo); err != nil {
		return fmt.Errorf("clear personal_info: %w", err)
	}
	info := seed.PersonalInfoData()
	if err := uc.repo.InsertPersonalInfo(ctx, &info); err != nil {
		return fmt.Errorf("seed personal_info: %w", err)
	}

	if err := uc.repo.DeleteAll(ctx, domain.KindEducation); err != nil {
		return fmt.Errorf("clear education: %w", err)
	}
	education := seed.EducationData()
	if err := validateSlice(uc.validate, education); err != nil {
		return fmt.Errorf("seed education: %w", err)
	}
	applyOrder(education, func(e *domain.Education) *int { return &e.Order })
	if err := uc.repo.InsertEducation(ctx, education); err != nil {
		return fmt.Errorf("seed education: %w", err)
	}

	if err := uc.repo.DeleteAll(ctx, domain.KindExperience); err != nil {
		return fmt.Errorf("clear experience: %w", err)
	}
	experience := seed.ExperienceData()
	if err := validateSlice(uc.validate, experience); err != nil {
		return fmt.Errorf("seed experience: %w", err)
	}
	applyOrder(experience, func(e *domain.Experience) *int { return &e.Order })
	if err := uc.repo.InsertExperience(ctx, experience); err != nil {
		return fmt.Errorf("seed experience: %w", err)
	}

	if err := uc.repo.DeleteAll(ctx, domain.KindProject); err != nil {
		return fmt.Errorf("clear projects: %w", err)
	}
	projects := seed.ProjectsData()
	if err := validateSlice(uc.validate, projects); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	applyOrder(projects, func(p *domain.Project) *int { return &p.Order })
	if _, err := uc.repo.InsertProjects(ctx, projects); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}

	if err := uc.repo.DeleteAll(ctx, domain.KindSkill); err != nil {
		return fmt.Errorf("clear skills: %w", err)
	}
	skills := seed.SkillsData()
	if err := validateSlice(uc.validate, skills); err != nil {
		return fmt.Errorf("seed skills: %w", err)
	}
	if err := uc.repo.InsertSkills(ctx, skills); err != nil {
		return fmt.Errorf("seed skills: %w", err)
	}

	return nil
}

func validateSlice[T any](validate *validator.Validate, records []T) error {
	for i := range records {
		if err := validate.Struct(records[i]); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// applyOrder fills in list position for seed records that do not carry an
// explicit order value.
func applyOrder[T any](records []T, order func(*T) *int) {
	for i := range records {
		if o := order(&records[i]); *o == 0 {
			*o = i + 1
		}
	}
}
