package usecase

import (
	"context"
	"strings"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
)

type contactUsecase struct {
	repo         domain.ContactRepository
	emailService *email.EmailService
}

// NewContactUsecase creates a new contact usecase. emailService may be
// unconfigured; submission then stores the message without a notification.
func NewContactUsecase(repo domain.ContactRepository, emailService *email.EmailService) domain.ContactUsecase {
	return &contactUsecase{
		repo:         repo,
		emailService: emailService,
	}
}

// Submit stores a contact message. Status is always server-assigned to "new";
// the input shape has no status field, so a client-supplied value never
// survives binding. The stored record is the source of truth - the email
// notification is best effort and its failure is only logged.
func (uc *contactUsecase) Submit(ctx context.Context, input *domain.ContactMessageCreate) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
		Status:  "new",
	}

	if err := uc.repo.Insert(ctx, msg); err != nil {
		return nil, err
	}

	if uc.emailService != nil && uc.emailService.IsConfigured() {
		if err := uc.emailService.SendContactEmail(email.ContactEmailData{
			SenderName:  msg.Name,
			SenderEmail: msg.Email,
			Subject:     msg.Subject,
			Message:     msg.Message,
		}); err != nil {
			logger.Log.Warn("Contact notification email failed", "error", err)
		}
	}

	return msg, nil
}

func (uc *contactUsecase) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	messages, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []domain.ContactMessage{}
	}
	return messages, nil
}
