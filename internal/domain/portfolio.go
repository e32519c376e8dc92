package domain

import (
	"context"
	"time"
)

// Kind names a logical collection/table. Both backends use the same names.
type Kind string

const (
	KindPersonalInfo   Kind = "personal_info"
	KindEducation      Kind = "education"
	KindExperience     Kind = "experience"
	KindProject        Kind = "projects"
	KindSkill          Kind = "skills"
	KindContactMessage Kind = "contact_messages"
)

// SkillGroups are the canonical buckets GetSkillsGrouped always returns,
// in this order. Writes reject any other group value.
var SkillGroups = []string{"languages", "frameworks", "tools", "aiMl"}

type PersonalInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Email     string    `json:"email"`
	Github    string    `json:"github"`
	Linkedin  string    `json:"linkedin"`
	Location  string    `json:"location"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Education struct {
	ID          string    `json:"id"`
	Degree      string    `json:"degree" validate:"required"`
	Institution string    `json:"institution" validate:"required"`
	Location    string    `json:"location"`
	Period      string    `json:"period"`
	GPA         string    `json:"gpa"`
	Type        string    `json:"type" validate:"required,oneof=masters bachelors phd"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Experience struct {
	ID           string    `json:"id"`
	Title        string    `json:"title" validate:"required"`
	Company      string    `json:"company" validate:"required"`
	Location     string    `json:"location"`
	Period       string    `json:"period"`
	Type         string    `json:"type" validate:"required,oneof=Internship Full-time Research Contract"`
	Color        string    `json:"color" validate:"required,oneof=blue purple cyan green red orange"`
	Achievements []string  `json:"achievements"`
	Tech         []string  `json:"tech"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description" validate:"required"`
	LongDescription string    `json:"long_description"`
	Tech            []string  `json:"tech"`
	Category        string    `json:"category" validate:"required"`
	Featured        bool      `json:"featured"`
	Github          string    `json:"github" validate:"required"`
	Demo            *string   `json:"demo"`
	Image           string    `json:"image"`
	Status          string    `json:"status" validate:"required,oneof=completed in-progress"`
	Highlights      []string  `json:"highlights"`
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Skill struct {
	ID         string    `json:"id"`
	Name       string    `json:"name" validate:"required"`
	Level      int       `json:"level"`
	Category   string    `json:"category"`
	SkillGroup string    `json:"skill_group" validate:"required,oneof=languages frameworks tools aiMl"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProjectCreate is the client-supplied shape for bulk project creation.
type ProjectCreate struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	LongDescription string   `json:"long_description"`
	Tech            []string `json:"tech"`
	Category        string   `json:"category" validate:"required"`
	Featured        bool     `json:"featured"`
	Github          string   `json:"github" validate:"required"`
	Demo            *string  `json:"demo"`
	Image           string   `json:"image"`
	Status          string   `json:"status" validate:"required,oneof=completed in-progress"`
	Highlights      []string `json:"highlights"`
	Order           int      `json:"order"`
}

// ProjectFilter composes with logical AND. Zero value means no filtering.
// Category "all" is a sentinel for "no category filter".
type ProjectFilter struct {
	Category     string
	FeaturedOnly bool
}

// PortfolioComplete is a read-only aggregate assembled on demand; never persisted.
type PortfolioComplete struct {
	Personal   *PersonalInfo      `json:"personal"`
	Education  []Education        `json:"education"`
	Experience []Experience       `json:"experience"`
	Projects   []Project          `json:"projects"`
	Skills     map[string][]Skill `json:"skills"`
}

// NormalizeProject fills read-side defaults for rows written before a field
// existed: nil tech/highlights become empty lists, empty status becomes
// "completed". Demo stays nil when absent and Featured's zero value is false,
// so those two need no repair.
func NormalizeProject(p *Project) {
	if p.Tech == nil {
		p.Tech = []string{}
	}
	if p.Highlights == nil {
		p.Highlights = []string{}
	}
	if p.Status == "" {
		p.Status = "completed"
	}
}

// PortfolioRepository is the storage adapter contract over resume content.
// Both backend variants implement it with identical normalization rules:
// a single string id per record, adapter-assigned ids and timestamps on
// insert, ascending order by the "order" field on list reads, and the
// Project read defaults from NormalizeProject.
type PortfolioRepository interface {
	GetPersonalInfo(ctx context.Context) (*PersonalInfo, error)
	ListEducation(ctx context.Context) ([]Education, error)
	ListExperience(ctx context.Context) ([]Experience, error)
	ListProjects(ctx context.Context, filter ProjectFilter) ([]Project, error)
	ListSkills(ctx context.Context) ([]Skill, error)

	InsertPersonalInfo(ctx context.Context, info *PersonalInfo) error
	InsertEducation(ctx context.Context, records []Education) error
	InsertExperience(ctx context.Context, records []Experience) error
	InsertProjects(ctx context.Context, records []Project) ([]Project, error)
	InsertSkills(ctx context.Context, records []Skill) error

	DeleteAll(ctx context.Context, kind Kind) error
}

type PortfolioUsecase interface {
	GetPersonal(ctx context.Context) (*PersonalInfo, error)
	ListEducation(ctx context.Context) ([]Education, error)
	ListExperience(ctx context.Context) ([]Experience, error)
	ListProjects(ctx context.Context, category string, featuredOnly bool) ([]Project, error)
	ListFeaturedProjects(ctx context.Context) ([]Project, error)
	CreateProjectsBulk(ctx context.Context, inputs []ProjectCreate) ([]Project, error)
	GetSkillsGrouped(ctx context.Context) (map[string][]Skill, error)
	GetComplete(ctx context.Context) (*PortfolioComplete, error)
}

type SeedUsecase interface {
	// Reseed clears and reloads every portfolio kind. Destructive; requires
	// exclusive access and fails fast on the first backend error.
	Reseed(ctx context.Context) error
}
