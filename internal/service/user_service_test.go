package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestUserRegister_HashesPasswordAndNormalizesEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(zap.NewNop(), repo)

	user, err := svc.Register(context.Background(), RegisterInput{
		Username: "ana",
		Password: "supersecret",
		Email:    "Ana@Example.com",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if user.Email != "ana@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.PasswordHash == "supersecret" {
		t.Fatalf("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if _, ok := repo.byUsername["ana"]; !ok {
		t.Fatalf("user not persisted")
	}
}

func TestUserRegister_Duplicates(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(zap.NewNop(), repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Username: "ana", Password: "supersecret", Email: "ana@example.com"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), RegisterInput{Username: "ana", Password: "otherpass", Email: "other@example.com"}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if _, err := svc.Register(context.Background(), RegisterInput{Username: "ana2", Password: "otherpass", Email: "ANA@example.com"}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserRegister_InputValidation(t *testing.T) {
	svc := NewUserService(zap.NewNop(), newMemUserRepo())

	cases := []RegisterInput{
		{Username: "", Password: "supersecret", Email: "a@b.com"},
		{Username: "ana", Password: "", Email: "a@b.com"},
		{Username: "ana", Password: "supersecret", Email: ""},
	}
	for i, input := range cases {
		if _, err := svc.Register(context.Background(), input); !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("case %d: expected ErrInvalidUserInput, got %v", i, err)
		}
	}
}

func TestUserLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(zap.NewNop(), repo)

	registered, err := svc.Register(context.Background(), RegisterInput{Username: "ana", Password: "supersecret", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Login(context.Background(), "ana", "supersecret")
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %s, got %s", registered.ID, user.ID)
	}

	if _, err := svc.Login(context.Background(), "ana", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody", "supersecret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty input, got %v", err)
	}
}
