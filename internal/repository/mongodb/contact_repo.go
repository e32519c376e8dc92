package mongodb

import (
	"context"
	"time"

	"go-portfolio-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type contactMessageDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type contactRepo struct {
	db *mongo.Database
}

func NewContactRepository(db *mongo.Database) domain.ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) collection() *mongo.Collection {
	return r.db.Collection(string(domain.KindContactMessage))
}

func (r *contactRepo) Insert(ctx context.Context, msg *domain.ContactMessage) error {
	now := time.Now().UTC()
	msg.CreatedAt, msg.UpdatedAt = now, now
	doc := contactMessageDoc{
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		Status:    msg.Status,
		CreatedAt: msg.CreatedAt,
		UpdatedAt: msg.UpdatedAt,
	}
	result, err := r.collection().InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	msg.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *contactRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	// Newest first. This is the one descending read in the API.
	newestFirst := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection().Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	var docs []contactMessageDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	messages := make([]domain.ContactMessage, 0, len(docs))
	for _, doc := range docs {
		messages = append(messages, domain.ContactMessage{
			ID:        doc.ID.Hex(),
			Name:      doc.Name,
			Email:     doc.Email,
			Subject:   doc.Subject,
			Message:   doc.Message,
			Status:    doc.Status,
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		})
	}
	return messages, nil
}
