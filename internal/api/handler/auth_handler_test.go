package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password, name string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	return s.registerFn(ctx, email, password, name)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func jsonContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, name string) (*domain.User, error) {
			if email != "alice@example.com" || name != "Alice" {
				t.Fatalf("unexpected args: %s %s", email, name)
			}
			return &domain.User{ID: 1, Email: email, Name: name, Role: domain.RoleUser}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := jsonContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"secret123","name":"Alice"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "alice@example.com" || user["role"] != domain.RoleUser {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must never be serialised")
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, name string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := jsonContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"short"}`)

	_ = handler.Register(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, name string) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := jsonContext(t, http.MethodPost, "/auth/register",
		`{"email":"bob@example.com","password":"secret123"}`)

	// Domain errors pass through to the central error handler.
	if err := handler.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken to propagate, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, email, password, name string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, rec := jsonContext(t, http.MethodPost, "/auth/register", "not-json")

	_ = handler.Register(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "secret123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{ID: 1, Email: email, Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := jsonContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"secret123"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := jsonContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"badpass99"}`)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}
