package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quickshop/store-api/internal/core/domain"
	"github.com/quickshop/store-api/internal/core/ports"
)

type stubAuthService struct {
	users    map[string]string
	loginErr error
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{users: make(map[string]string)}
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	if _, ok := s.users[input.Username]; ok {
		return nil, domain.ErrUserExists
	}
	s.users[input.Username] = input.Password
	role := domain.RoleShopper
	if input.Admin {
		role = domain.RoleAdmin
	}
	return &domain.User{Username: input.Username, Role: role, Email: input.Email, FullName: input.FullName}, nil
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, error) {
	if s.loginErr != nil {
		return "", s.loginErr
	}
	stored, ok := s.users[username]
	if !ok || stored != password {
		return "", domain.ErrInvalidCredentials
	}
	return "signed-token", nil
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newFormContext(t *testing.T, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	svc := newStubAuthService()
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/users", `{"username":"alice","password":"s3cretpass","email":"alice@example.com"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Username != "alice" || body.Role != string(domain.RoleShopper) {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	svc := newStubAuthService()
	h := NewAuthHandler(svc)

	c, _ := newJSONContext(t, http.MethodPost, "/users", `{"username":"alice","password":"short"}`)
	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
	if len(svc.users) != 0 {
		t.Fatal("account was created from an invalid payload")
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	svc := newStubAuthService()
	svc.users["alice"] = "s3cretpass"
	h := NewAuthHandler(svc)

	c, _ := newJSONContext(t, http.MethodPost, "/users", `{"username":"alice","password":"s3cretpass"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Token(t *testing.T) {
	svc := newStubAuthService()
	svc.users["alice"] = "s3cretpass"
	h := NewAuthHandler(svc)

	c, rec := newFormContext(t, url.Values{"username": {"alice"}, "password": {"s3cretpass"}})
	if err := h.Token(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.AccessToken != "signed-token" || body.TokenType != "bearer" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAuthHandler_Token_BadCredentials(t *testing.T) {
	svc := newStubAuthService()
	svc.users["alice"] = "s3cretpass"
	h := NewAuthHandler(svc)

	c, _ := newFormContext(t, url.Values{"username": {"alice"}, "password": {"wrong"}})
	if err := h.Token(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Token_MissingFields(t *testing.T) {
	h := NewAuthHandler(newStubAuthService())

	for _, form := range []url.Values{
		{},
		{"username": {"alice"}},
		{"password": {"s3cretpass"}},
	} {
		c, _ := newFormContext(t, form)
		if err := h.Token(c); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("form %v: expected ErrInvalidCredentials, got %v", form, err)
		}
	}
}

func TestAuthHandler_Token_Throttled(t *testing.T) {
	svc := newStubAuthService()
	svc.loginErr = domain.ErrTooManyAttempts
	h := NewAuthHandler(svc)

	c, _ := newFormContext(t, url.Values{"username": {"alice"}, "password": {"s3cretpass"}})
	if err := h.Token(c); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}
