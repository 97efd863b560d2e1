package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/shoplane/commerce-api/internal/core/auth"
	"github.com/shoplane/commerce-api/internal/core/domain"
	"github.com/shoplane/commerce-api/internal/infrastructure/crypto"
)

type stubUserRepo struct {
	nextID int
	users  map[int]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{nextID: 1, users: make(map[int]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	clone := cloneUser(user)
	clone.ID = r.nextID
	r.nextID++
	r.users[clone.ID] = cloneUser(clone)
	return clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id int, name, email string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if name != "" {
		u.Name = name
	}
	if email != "" {
		u.Email = email
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id int, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newAuthTestService(repo *stubUserRepo) *AuthService {
	hasher := crypto.NewBcryptHasher(bcrypt.MinCost)
	codec := auth.NewCodec("secret", time.Hour)
	return NewAuthService(repo, hasher, codec)
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthTestService(repo)

	user, err := svc.Register(context.Background(), "Alice@Example.com", "pass1234", "Alice")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalised email, got %s", user.Email)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("registration must yield USER, got %s", user.Role)
	}
	if user.PasswordHash == "pass1234" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthTestService(repo)

	if _, err := svc.Register(context.Background(), "bob@example.com", "pass1234", "Bob"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob@example.com", "other123", "Bobby"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newAuthTestService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "", "pass1234", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty email, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "x@example.com", "", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty password, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthTestService(repo)

	if _, err := svc.Register(context.Background(), "carol@example.com", "s3cret99", "Carol"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, ok := auth.NewCodec("secret", time.Hour).Verify(token)
	if !ok {
		t.Fatalf("issued token does not verify")
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected claims for user %d, got %d", user.ID, claims.UserID)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("expected role USER in claims, got %s", claims.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthTestService(repo)

	_, _ = svc.Register(context.Background(), "dave@example.com", "goodpass", "Dave")
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newAuthTestService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
