package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoplane/commerce-api/internal/core/domain"
	"github.com/shoplane/commerce-api/internal/core/ports"
	"github.com/shoplane/commerce-api/internal/infrastructure/crypto"
)

func newUserTestService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, crypto.NewBcryptHasher(bcrypt.MinCost), zerolog.Nop())
}

func TestUserService_Create_AdminRole(t *testing.T) {
	svc := newUserTestService(newStubUserRepo())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "root@example.com",
		Password: "pass1234",
		Name:     "Root",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected ADMIN role, got %s", user.Role)
	}
}

func TestUserService_Create_DefaultsToUserRole(t *testing.T) {
	svc := newUserTestService(newStubUserRepo())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "plain@example.com",
		Password: "pass1234",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected USER role, got %s", user.Role)
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	svc := newUserTestService(newStubUserRepo())

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "x@example.com",
		Password: "pass1234",
		Role:     "SUPERUSER",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_UpdateProfile_EmailConflict(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserTestService(repo)

	a, _ := svc.Create(context.Background(), ports.CreateUserInput{Email: "a@example.com", Password: "pass1234"})
	_, _ = svc.Create(context.Background(), ports.CreateUserInput{Email: "b@example.com", Password: "pass1234"})

	if _, err := svc.UpdateProfile(context.Background(), a.ID, "", "b@example.com"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// Keeping your own email is not a conflict.
	if _, err := svc.UpdateProfile(context.Background(), a.ID, "New Name", "a@example.com"); err != nil {
		t.Fatalf("same-email update failed: %v", err)
	}
}

func TestUserService_UpdatePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserTestService(repo)

	user, _ := svc.Create(context.Background(), ports.CreateUserInput{Email: "a@example.com", Password: "oldpass1"})

	if err := svc.UpdatePassword(context.Background(), user.ID, "wrongpass", "newpass1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong current password, got %v", err)
	}

	if err := svc.UpdatePassword(context.Background(), user.ID, "oldpass1", "newpass1"); err != nil {
		t.Fatalf("UpdatePassword returned error: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpass1")); err != nil {
		t.Fatalf("new password not stored: %v", err)
	}
}
