package domain

import (
	"context"
	"time"
)

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"` // new | read | replied
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactMessageCreate is the submission shape. Status is deliberately not
// part of it: the server always assigns "new".
type ContactMessageCreate struct {
	Name    string `json:"name" binding:"required" validate:"required"`
	Email   string `json:"email" binding:"required,email" validate:"required,email"`
	Subject string `json:"subject" binding:"required" validate:"required"`
	Message string `json:"message" binding:"required" validate:"required"`
}

type ContactRepository interface {
	Insert(ctx context.Context, msg *ContactMessage) error
	// List returns messages newest first (created_at descending).
	List(ctx context.Context) ([]ContactMessage, error)
}

type ContactUsecase interface {
	Submit(ctx context.Context, input *ContactMessageCreate) (*ContactMessage, error)
	ListMessages(ctx context.Context) ([]ContactMessage, error)
}
