package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-portfolio-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type portfolioRepo struct {
	db *pgxpool.Pool
}

func NewPortfolioRepository(db *pgxpool.Pool) domain.PortfolioRepository {
	return &portfolioRepo{db: db}
}

// orderClauses is the sort fallback chain for list reads: display order
// first, then updated_at, then whatever the backend returns.
var orderClauses = []string{` ORDER BY "order" ASC`, ` ORDER BY updated_at ASC`, ``}

// selectWithOrderFallback runs baseQuery with each order clause in turn,
// moving to the next one only when the sort column does not exist.
// collect must reset its destination before scanning so a retry starts clean.
func (r *portfolioRepo) selectWithOrderFallback(ctx context.Context, baseQuery string, args []any, collect func(pgx.Rows) error) error {
	var err error
	for _, clause := range orderClauses {
		err = func() error {
			rows, qerr := r.db.Query(ctx, baseQuery+clause, args...)
			if qerr != nil {
				return qerr
			}
			defer rows.Close()
			if cerr := collect(rows); cerr != nil {
				return cerr
			}
			return rows.Err()
		}()
		if err == nil || !isUndefinedColumn(err) {
			return err
		}
	}
	return err
}

func (r *portfolioRepo) GetPersonalInfo(ctx context.Context) (*domain.PersonalInfo, error) {
	query := `SELECT id, name, title, email, github, linkedin, location, bio, created_at, updated_at FROM personal_info LIMIT 1`
	var info domain.PersonalInfo
	err := r.db.QueryRow(ctx, query).Scan(
		&info.ID, &info.Name, &info.Title, &info.Email, &info.Github,
		&info.Linkedin, &info.Location, &info.Bio, &info.CreatedAt, &info.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &info, nil
}

func (r *portfolioRepo) ListEducation(ctx context.Context) ([]domain.Education, error) {
	query := `SELECT id, degree, institution, location, period, gpa, type, "order", created_at, updated_at FROM education`
	var records []domain.Education
	err := r.selectWithOrderFallback(ctx, query, nil, func(rows pgx.Rows) error {
		records = records[:0]
		for rows.Next() {
			var e domain.Education
			if err := rows.Scan(&e.ID, &e.Degree, &e.Institution, &e.Location, &e.Period, &e.GPA, &e.Type, &e.Order, &e.CreatedAt, &e.UpdatedAt); err != nil {
				return err
			}
			records = append(records, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *portfolioRepo) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	query := `SELECT id, title, company, location, period, type, color, achievements, tech, "order", created_at, updated_at FROM experience`
	var records []domain.Experience
	err := r.selectWithOrderFallback(ctx, query, nil, func(rows pgx.Rows) error {
		records = records[:0]
		for rows.Next() {
			var e domain.Experience
			if err := rows.Scan(&e.ID, &e.Title, &e.Company, &e.Location, &e.Period, &e.Type, &e.Color,
				pq.Array(&e.Achievements), pq.Array(&e.Tech), &e.Order, &e.CreatedAt, &e.UpdatedAt); err != nil {
				return err
			}
			if e.Achievements == nil {
				e.Achievements = []string{}
			}
			if e.Tech == nil {
				e.Tech = []string{}
			}
			records = append(records, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *portfolioRepo) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	query := `SELECT id, title, description, long_description, tech, category, featured, github, demo, image, status, highlights, "order", created_at, updated_at FROM projects`

	// Filters compose with AND; "all" is the no-category sentinel.
	var args []any
	var where string
	if filter.Category != "" && filter.Category != "all" {
		args = append(args, filter.Category)
		where = fmt.Sprintf(" WHERE category = $%d", len(args))
	}
	if filter.FeaturedOnly {
		args = append(args, true)
		if where == "" {
			where = fmt.Sprintf(" WHERE featured = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND featured = $%d", len(args))
		}
	}

	var records []domain.Project
	err := r.selectWithOrderFallback(ctx, query+where, args, func(rows pgx.Rows) error {
		records = records[:0]
		for rows.Next() {
			var p domain.Project
			var featured *bool
			var status, image, longDesc *string
			if err := rows.Scan(&p.ID, &p.Title, &p.Description, &longDesc, pq.Array(&p.Tech), &p.Category,
				&featured, &p.Github, &p.Demo, &image, &status, pq.Array(&p.Highlights),
				&p.Order, &p.CreatedAt, &p.UpdatedAt); err != nil {
				return err
			}
			// Rows inserted before a column existed come back NULL; repair them
			// instead of failing the read.
			if featured != nil {
				p.Featured = *featured
			}
			if status != nil {
				p.Status = *status
			}
			if image != nil {
				p.Image = *image
			}
			if longDesc != nil {
				p.LongDescription = *longDesc
			}
			domain.NormalizeProject(&p)
			records = append(records, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *portfolioRepo) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT id, name, level, category, skill_group, "order", created_at, updated_at FROM skills`
	var records []domain.Skill
	err := r.selectWithOrderFallback(ctx, query, nil, func(rows pgx.Rows) error {
		records = records[:0]
		for rows.Next() {
			var s domain.Skill
			if err := rows.Scan(&s.ID, &s.Name, &s.Level, &s.Category, &s.SkillGroup, &s.Order, &s.CreatedAt, &s.UpdatedAt); err != nil {
				return err
			}
			records = append(records, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *portfolioRepo) InsertPersonalInfo(ctx context.Context, info *domain.PersonalInfo) error {
	stamp(&info.ID, &info.CreatedAt, &info.UpdatedAt)
	query := `INSERT INTO personal_info (id, name, title, email, github, linkedin, location, bio, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		info.ID, info.Name, info.Title, info.Email, info.Github,
		info.Linkedin, info.Location, info.Bio, info.CreatedAt, info.UpdatedAt,
	)
	return err
}

func (r *portfolioRepo) InsertEducation(ctx context.Context, records []domain.Education) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `INSERT INTO education (id, degree, institution, location, period, gpa, type, "order", created_at, updated_at)
                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
		for i := range records {
			e := &records[i]
			stamp(&e.ID, &e.CreatedAt, &e.UpdatedAt)
			if _, err := tx.Exec(ctx, query, e.ID, e.Degree, e.Institution, e.Location, e.Period, e.GPA, e.Type, e.Order, e.CreatedAt, e.UpdatedAt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *portfolioRepo) InsertExperience(ctx context.Context, records []domain.Experience) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `INSERT INTO experience (id, title, company, location, period, type, color, achievements, tech, "order", created_at, updated_at)
                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
		for i := range records {
			e := &records[i]
			stamp(&e.ID, &e.CreatedAt, &e.UpdatedAt)
			if _, err := tx.Exec(ctx, query, e.ID, e.Title, e.Company, e.Location, e.Period, e.Type, e.Color,
				pq.Array(e.Achievements), pq.Array(e.Tech), e.Order, e.CreatedAt, e.UpdatedAt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *portfolioRepo) InsertProjects(ctx context.Context, records []domain.Project) ([]domain.Project, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `INSERT INTO projects (id, title, description, long_description, tech, category, featured, github, demo, image, status, highlights, "order", created_at, updated_at)
                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
		for i := range records {
			p := &records[i]
			stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)
			domain.NormalizeProject(p)
			if _, err := tx.Exec(ctx, query, p.ID, p.Title, p.Description, p.LongDescription, pq.Array(p.Tech),
				p.Category, p.Featured, p.Github, p.Demo, p.Image, p.Status, pq.Array(p.Highlights),
				p.Order, p.CreatedAt, p.UpdatedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *portfolioRepo) InsertSkills(ctx context.Context, records []domain.Skill) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `INSERT INTO skills (id, name, level, category, skill_group, "order", created_at, updated_at)
                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		for i := range records {
			s := &records[i]
			stamp(&s.ID, &s.CreatedAt, &s.UpdatedAt)
			if _, err := tx.Exec(ctx, query, s.ID, s.Name, s.Level, s.Category, s.SkillGroup, s.Order, s.CreatedAt, s.UpdatedAt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *portfolioRepo) DeleteAll(ctx context.Context, kind domain.Kind) error {
	// Kind values are fixed identifiers, never user input.
	_, err := r.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, string(kind)))
	return err
}

// stamp assigns the adapter-owned fields: a uuid id when the caller did not
// provide one and creation/update timestamps.
func stamp(id *string, createdAt, updatedAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	now := time.Now().UTC()
	*createdAt = now
	*updatedAt = now
}
