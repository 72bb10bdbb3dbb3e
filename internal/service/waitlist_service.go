package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"travelpal/internal/domain"
	"travelpal/internal/email"
	"travelpal/internal/repository"
)

// WaitlistService maneja el registro en la lista de espera.
type WaitlistService struct {
	logger *zap.Logger
	repo   repository.WaitlistRepository
	sender email.Sender
}

var (
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrInvalidWaitlistInput = errors.New("name and email are required")
)

func NewWaitlistService(logger *zap.Logger, repo repository.WaitlistRepository, sender email.Sender) *WaitlistService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WaitlistService{logger: logger, repo: repo, sender: sender}
}

type JoinInput struct {
	Name            string
	Email           string
	TravelInterests *string
	Newsletter      bool
}

// Join registra una entrada nueva. El lookup previo por email es
// best-effort: el constraint UNIQUE del store es la garantia real, y una
// violacion en el insert tambien se reporta como duplicado.
func (s *WaitlistService) Join(ctx context.Context, input JoinInput) (domain.WaitlistEntry, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Name == "" || input.Email == "" {
		return domain.WaitlistEntry{}, ErrInvalidWaitlistInput
	}

	if _, err := s.repo.GetByEmail(ctx, input.Email); err == nil {
		return domain.WaitlistEntry{}, ErrDuplicateEmail
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.WaitlistEntry{}, fmt.Errorf("lookup waitlist email: %w", err)
	}

	entry := domain.WaitlistEntry{
		ID:              uuid.NewString(),
		Name:            input.Name,
		Email:           input.Email,
		TravelInterests: input.TravelInterests,
		Newsletter:      input.Newsletter,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		if repository.IsUniqueViolation(err) {
			return domain.WaitlistEntry{}, ErrDuplicateEmail
		}
		return domain.WaitlistEntry{}, fmt.Errorf("create waitlist entry: %w", err)
	}

	// El correo de bienvenida no bloquea la respuesta al usuario.
	if s.sender != nil {
		go func(toEmail, name string) {
			if err := s.sender.SendWaitlistWelcome(context.Background(), toEmail, name); err != nil {
				s.logger.Warn("waitlist welcome email failed",
					zap.String("email", toEmail),
					zap.Error(err),
				)
			}
		}(entry.Email, entry.Name)
	}

	return entry, nil
}
