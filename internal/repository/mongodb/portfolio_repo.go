package mongodb

import (
	"context"
	"errors"
	"time"

	"go-portfolio-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Document shapes mirror the domain types with bson tags. The store owns the
// _id; callers only ever see its hex form.

type personalInfoDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Title     string             `bson:"title"`
	Email     string             `bson:"email"`
	Github    string             `bson:"github"`
	Linkedin  string             `bson:"linkedin"`
	Location  string             `bson:"location"`
	Bio       string             `bson:"bio"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type educationDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Degree      string             `bson:"degree"`
	Institution string             `bson:"institution"`
	Location    string             `bson:"location"`
	Period      string             `bson:"period"`
	GPA         string             `bson:"gpa"`
	Type        string             `bson:"type"`
	Order       int                `bson:"order"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type experienceDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Company      string             `bson:"company"`
	Location     string             `bson:"location"`
	Period       string             `bson:"period"`
	Type         string             `bson:"type"`
	Color        string             `bson:"color"`
	Achievements []string           `bson:"achievements"`
	Tech         []string           `bson:"tech"`
	Order        int                `bson:"order"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

type projectDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Description     string             `bson:"description"`
	LongDescription string             `bson:"long_description"`
	Tech            []string           `bson:"tech"`
	Category        string             `bson:"category"`
	Featured        bool               `bson:"featured"`
	Github          string             `bson:"github"`
	Demo            *string            `bson:"demo,omitempty"`
	Image           string             `bson:"image"`
	Status          string             `bson:"status"`
	Highlights      []string           `bson:"highlights"`
	Order           int                `bson:"order"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

type skillDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Level      int                `bson:"level"`
	Category   string             `bson:"category"`
	SkillGroup string             `bson:"skill_group"`
	Order      int                `bson:"order"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

type portfolioRepo struct {
	db *mongo.Database
}

func NewPortfolioRepository(db *mongo.Database) domain.PortfolioRepository {
	return &portfolioRepo{db: db}
}

func (r *portfolioRepo) collection(kind domain.Kind) *mongo.Collection {
	return r.db.Collection(string(kind))
}

// byOrder sorts ascending on the display order field.
var byOrder = options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

func (r *portfolioRepo) GetPersonalInfo(ctx context.Context) (*domain.PersonalInfo, error) {
	var doc personalInfoDoc
	err := r.collection(domain.KindPersonalInfo).FindOne(ctx, bson.M{}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &domain.PersonalInfo{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Title:     doc.Title,
		Email:     doc.Email,
		Github:    doc.Github,
		Linkedin:  doc.Linkedin,
		Location:  doc.Location,
		Bio:       doc.Bio,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func (r *portfolioRepo) ListEducation(ctx context.Context) ([]domain.Education, error) {
	cursor, err := r.collection(domain.KindEducation).Find(ctx, bson.M{}, byOrder)
	if err != nil {
		return nil, err
	}
	var docs []educationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	records := make([]domain.Education, 0, len(docs))
	for _, doc := range docs {
		records = append(records, domain.Education{
			ID:          doc.ID.Hex(),
			Degree:      doc.Degree,
			Institution: doc.Institution,
			Location:    doc.Location,
			Period:      doc.Period,
			GPA:         doc.GPA,
			Type:        doc.Type,
			Order:       doc.Order,
			CreatedAt:   doc.CreatedAt,
			UpdatedAt:   doc.UpdatedAt,
		})
	}
	return records, nil
}

func (r *portfolioRepo) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	cursor, err := r.collection(domain.KindExperience).Find(ctx, bson.M{}, byOrder)
	if err != nil {
		return nil, err
	}
	var docs []experienceDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	records := make([]domain.Experience, 0, len(docs))
	for _, doc := range docs {
		e := domain.Experience{
			ID:           doc.ID.Hex(),
			Title:        doc.Title,
			Company:      doc.Company,
			Location:     doc.Location,
			Period:       doc.Period,
			Type:         doc.Type,
			Color:        doc.Color,
			Achievements: doc.Achievements,
			Tech:         doc.Tech,
			Order:        doc.Order,
			CreatedAt:    doc.CreatedAt,
			UpdatedAt:    doc.UpdatedAt,
		}
		if e.Achievements == nil {
			e.Achievements = []string{}
		}
		if e.Tech == nil {
			e.Tech = []string{}
		}
		records = append(records, e)
	}
	return records, nil
}

func (r *portfolioRepo) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	// Equality filters compose with AND; "all" is the no-category sentinel.
	query := bson.M{}
	if filter.Category != "" && filter.Category != "all" {
		query["category"] = filter.Category
	}
	if filter.FeaturedOnly {
		query["featured"] = true
	}

	cursor, err := r.collection(domain.KindProject).Find(ctx, query, byOrder)
	if err != nil {
		return nil, err
	}
	var docs []projectDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	records := make([]domain.Project, 0, len(docs))
	for _, doc := range docs {
		p := domain.Project{
			ID:              doc.ID.Hex(),
			Title:           doc.Title,
			Description:     doc.Description,
			LongDescription: doc.LongDescription,
			Tech:            doc.Tech,
			Category:        doc.Category,
			Featured:        doc.Featured,
			Github:          doc.Github,
			Demo:            doc.Demo,
			Image:           doc.Image,
			Status:          doc.Status,
			Highlights:      doc.Highlights,
			Order:           doc.Order,
			CreatedAt:       doc.CreatedAt,
			UpdatedAt:       doc.UpdatedAt,
		}
		domain.NormalizeProject(&p)
		records = append(records, p)
	}
	return records, nil
}

func (r *portfolioRepo) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	cursor, err := r.collection(domain.KindSkill).Find(ctx, bson.M{}, byOrder)
	if err != nil {
		return nil, err
	}
	var docs []skillDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	records := make([]domain.Skill, 0, len(docs))
	for _, doc := range docs {
		records = append(records, domain.Skill{
			ID:         doc.ID.Hex(),
			Name:       doc.Name,
			Level:      doc.Level,
			Category:   doc.Category,
			SkillGroup: doc.SkillGroup,
			Order:      doc.Order,
			CreatedAt:  doc.CreatedAt,
			UpdatedAt:  doc.UpdatedAt,
		})
	}
	return records, nil
}

func (r *portfolioRepo) InsertPersonalInfo(ctx context.Context, info *domain.PersonalInfo) error {
	now := time.Now().UTC()
	info.CreatedAt, info.UpdatedAt = now, now
	doc := personalInfoDoc{
		Name:      info.Name,
		Title:     info.Title,
		Email:     info.Email,
		Github:    info.Github,
		Linkedin:  info.Linkedin,
		Location:  info.Location,
		Bio:       info.Bio,
		CreatedAt: info.CreatedAt,
		UpdatedAt: info.UpdatedAt,
	}
	result, err := r.collection(domain.KindPersonalInfo).InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	info.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *portfolioRepo) InsertEducation(ctx context.Context, records []domain.Education) error {
	if len(records) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(records))
	for i := range records {
		records[i].CreatedAt, records[i].UpdatedAt = now, now
		e := &records[i]
		docs = append(docs, educationDoc{
			Degree:      e.Degree,
			Institution: e.Institution,
			Location:    e.Location,
			Period:      e.Period,
			GPA:         e.GPA,
			Type:        e.Type,
			Order:       e.Order,
			CreatedAt:   e.CreatedAt,
			UpdatedAt:   e.UpdatedAt,
		})
	}
	result, err := r.collection(domain.KindEducation).InsertMany(ctx, docs)
	if err != nil {
		return err
	}
	assignIDs(records, result.InsertedIDs, func(r *domain.Education, id string) { r.ID = id })
	return nil
}

func (r *portfolioRepo) InsertExperience(ctx context.Context, records []domain.Experience) error {
	if len(records) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(records))
	for i := range records {
		records[i].CreatedAt, records[i].UpdatedAt = now, now
		e := &records[i]
		docs = append(docs, experienceDoc{
			Title:        e.Title,
			Company:      e.Company,
			Location:     e.Location,
			Period:       e.Period,
			Type:         e.Type,
			Color:        e.Color,
			Achievements: e.Achievements,
			Tech:         e.Tech,
			Order:        e.Order,
			CreatedAt:    e.CreatedAt,
			UpdatedAt:    e.UpdatedAt,
		})
	}
	result, err := r.collection(domain.KindExperience).InsertMany(ctx, docs)
	if err != nil {
		return err
	}
	assignIDs(records, result.InsertedIDs, func(r *domain.Experience, id string) { r.ID = id })
	return nil
}

func (r *portfolioRepo) InsertProjects(ctx context.Context, records []domain.Project) ([]domain.Project, error) {
	if len(records) == 0 {
		return records, nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(records))
	for i := range records {
		records[i].CreatedAt, records[i].UpdatedAt = now, now
		domain.NormalizeProject(&records[i])
		p := &records[i]
		docs = append(docs, projectDoc{
			Title:           p.Title,
			Description:     p.Description,
			LongDescription: p.LongDescription,
			Tech:            p.Tech,
			Category:        p.Category,
			Featured:        p.Featured,
			Github:          p.Github,
			Demo:            p.Demo,
			Image:           p.Image,
			Status:          p.Status,
			Highlights:      p.Highlights,
			Order:           p.Order,
			CreatedAt:       p.CreatedAt,
			UpdatedAt:       p.UpdatedAt,
		})
	}
	result, err := r.collection(domain.KindProject).InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	assignIDs(records, result.InsertedIDs, func(r *domain.Project, id string) { r.ID = id })
	return records, nil
}

func (r *portfolioRepo) InsertSkills(ctx context.Context, records []domain.Skill) error {
	if len(records) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(records))
	for i := range records {
		records[i].CreatedAt, records[i].UpdatedAt = now, now
		s := &records[i]
		docs = append(docs, skillDoc{
			Name:       s.Name,
			Level:      s.Level,
			Category:   s.Category,
			SkillGroup: s.SkillGroup,
			Order:      s.Order,
			CreatedAt:  s.CreatedAt,
			UpdatedAt:  s.UpdatedAt,
		})
	}
	result, err := r.collection(domain.KindSkill).InsertMany(ctx, docs)
	if err != nil {
		return err
	}
	assignIDs(records, result.InsertedIDs, func(r *domain.Skill, id string) { r.ID = id })
	return nil
}

func (r *portfolioRepo) DeleteAll(ctx context.Context, kind domain.Kind) error {
	_, err := r.collection(kind).DeleteMany(ctx, bson.M{})
	return err
}

// assignIDs copies the store-generated object ids back onto the inserted
// records, surfaced in hex form.
func assignIDs[T any](records []T, ids []interface{}, set func(*T, string)) {
	for i := range records {
		if i >= len(ids) {
			return
		}
		if oid, ok := ids[i].(primitive.ObjectID); ok {
			set(&records[i], oid.Hex())
		}
	}
}
