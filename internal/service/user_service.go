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
	"golang.org/x/crypto/bcrypt"

	"travelpal/internal/domain"
	"travelpal/internal/repository"
)

// UserService maneja registro y login de usuarios.
type UserService struct {
	logger *zap.Logger
	repo   repository.UserRepository
}

var (
	ErrInvalidUserInput   = errors.New("username, password and email are required")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

func NewUserService(logger *zap.Logger, repo repository.UserRepository) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{logger: logger, repo: repo}
}

type RegisterInput struct {
	Username        string
	Password        string
	Email           string
	TravelInterests *string
}

// Register crea un usuario con password hasheado. Los chequeos de
// unicidad previos son best-effort; una violacion del constraint en el
// insert tambien se reporta como duplicado.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return domain.User{}, ErrInvalidUserInput
	}

	if _, err := s.repo.GetByUsername(ctx, input.Username); err == nil {
		return domain.User{}, ErrUsernameTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, fmt.Errorf("lookup username: %w", err)
	}
	if _, err := s.repo.GetByEmail(ctx, input.Email); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:              uuid.NewString(),
		Username:        input.Username,
		PasswordHash:    string(hash),
		Email:           input.Email,
		TravelInterests: input.TravelInterests,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifica credenciales y devuelve el usuario.
func (s *UserService) Login(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}
