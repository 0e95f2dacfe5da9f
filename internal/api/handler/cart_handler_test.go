package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quickshop/store-api/internal/api/middleware"
	"github.com/quickshop/store-api/internal/core/domain"
)

// stubCartService enforces only the ownership rule; persistence is a map.
type stubCartService struct {
	carts  map[string]*domain.Cart
	nextID int
}

func newStubCartService() *stubCartService {
	return &stubCartService{carts: make(map[string]*domain.Cart)}
}

func (s *stubCartService) deny(id domain.Identity, owner string) error {
	if id.Subject != owner {
		return domain.ErrNotOwner
	}
	return nil
}

func (s *stubCartService) find(owner, cartID string) (*domain.Cart, error) {
	cart, ok := s.carts[cartID]
	if !ok || cart.Owner != owner {
		return nil, domain.ErrCartNotFound
	}
	return cart, nil
}

func (s *stubCartService) Create(_ context.Context, id domain.Identity, owner string) (*domain.Cart, error) {
	if err := s.deny(id, owner); err != nil {
		return nil, err
	}
	s.nextID++
	cart := &domain.Cart{ID: fmt.Sprintf("cart-%d", s.nextID), Owner: owner, Items: []string{}}
	s.carts[cart.ID] = cart
	return cart, nil
}

func (s *stubCartService) Get(_ context.Context, id domain.Identity, owner, cartID string) (*domain.Cart, error) {
	if err := s.deny(id, owner); err != nil {
		return nil, err
	}
	return s.find(owner, cartID)
}

func (s *stubCartService) AddItem(_ context.Context, id domain.Identity, owner, cartID, productID string) (*domain.Cart, error) {
	if err := s.deny(id, owner); err != nil {
		return nil, err
	}
	cart, err := s.find(owner, cartID)
	if err != nil {
		return nil, err
	}
	cart.Items = append(cart.Items, productID)
	return cart, nil
}

func (s *stubCartService) RemoveItem(_ context.Context, id domain.Identity, owner, cartID, productID string) (*domain.Cart, error) {
	if err := s.deny(id, owner); err != nil {
		return nil, err
	}
	cart, err := s.find(owner, cartID)
	if err != nil {
		return nil, err
	}
	for i, item := range cart.Items {
		if item == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return cart, nil
		}
	}
	return nil, domain.ErrItemNotInCart
}

func (s *stubCartService) ClearItems(_ context.Context, id domain.Identity, owner, cartID string) (*domain.Cart, error) {
	if err := s.deny(id, owner); err != nil {
		return nil, err
	}
	cart, err := s.find(owner, cartID)
	if err != nil {
		return nil, err
	}
	cart.Items = []string{}
	return cart, nil
}

func (s *stubCartService) Delete(_ context.Context, id domain.Identity, owner, cartID string) error {
	if err := s.deny(id, owner); err != nil {
		return err
	}
	if _, err := s.find(owner, cartID); err != nil {
		return err
	}
	delete(s.carts, cartID)
	return nil
}

func newCartContext(t *testing.T, method, target, body string, id domain.Identity, names, values []string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, id)
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func TestCartHandler_CreateAndGet(t *testing.T) {
	svc := newStubCartService()
	h := NewCartHandler(svc)
	bob := domain.Identity{Subject: "bob", Scopes: []string{domain.ScopeCartsSelf}}

	c, rec := newCartContext(t, http.MethodPost, "/carts/bob", "", bob, []string{"owner"}, []string{"bob"})
	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var created cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if created.Owner != "bob" || created.ID == "" {
		t.Fatalf("unexpected body: %+v", created)
	}

	c, rec = newCartContext(t, http.MethodGet, "/carts/bob/"+created.ID, "", bob,
		[]string{"owner", "cart_id"}, []string{"bob", created.ID})
	if err := h.Get(c); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCartHandler_AddItem(t *testing.T) {
	svc := newStubCartService()
	h := NewCartHandler(svc)
	bob := domain.Identity{Subject: "bob", Scopes: []string{domain.ScopeCartsSelf}}
	cart, _ := svc.Create(context.Background(), bob, "bob")

	c, rec := newCartContext(t, http.MethodPost, "/carts/bob/"+cart.ID+"/items", `{"product_id":"p1"}`, bob,
		[]string{"owner", "cart_id"}, []string{"bob", cart.ID})
	if err := h.AddItem(c); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(body.Items) != 1 || body.Items[0] != "p1" {
		t.Fatalf("unexpected items: %v", body.Items)
	}
}

func TestCartHandler_AddItem_MissingProductID(t *testing.T) {
	svc := newStubCartService()
	h := NewCartHandler(svc)
	bob := domain.Identity{Subject: "bob", Scopes: []string{domain.ScopeCartsSelf}}
	cart, _ := svc.Create(context.Background(), bob, "bob")

	c, _ := newCartContext(t, http.MethodPost, "/carts/bob/"+cart.ID+"/items", `{}`, bob,
		[]string{"owner", "cart_id"}, []string{"bob", cart.ID})
	err := h.AddItem(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestCartHandler_OwnerMismatch(t *testing.T) {
	svc := newStubCartService()
	h := NewCartHandler(svc)
	bob := domain.Identity{Subject: "bob", Scopes: []string{domain.ScopeCartsSelf}}
	cart, _ := svc.Create(context.Background(), bob, "bob")

	alice := domain.Identity{Subject: "alice", Scopes: []string{domain.ScopeCartsSelf}}
	c, _ := newCartContext(t, http.MethodGet, "/carts/bob/"+cart.ID, "", alice,
		[]string{"owner", "cart_id"}, []string{"bob", cart.ID})
	if err := h.Get(c); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestCartHandler_DeleteAndClear(t *testing.T) {
	svc := newStubCartService()
	h := NewCartHandler(svc)
	bob := domain.Identity{Subject: "bob", Scopes: []string{domain.ScopeCartsSelf}}
	cart, _ := svc.Create(context.Background(), bob, "bob")
	if _, err := svc.AddItem(context.Background(), bob, "bob", cart.ID, "p1"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	c, rec := newCartContext(t, http.MethodDelete, "/carts/bob/"+cart.ID+"/items", "", bob,
		[]string{"owner", "cart_id"}, []string{"bob", cart.ID})
	if err := h.ClearItems(c); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	var body cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(body.Items) != 0 {
		t.Fatalf("expected empty items, got %v", body.Items)
	}

	c, rec = newCartContext(t, http.MethodDelete, "/carts/bob/"+cart.ID, "", bob,
		[]string{"owner", "cart_id"}, []string{"bob", cart.ID})
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if _, ok := svc.carts[cart.ID]; ok {
		t.Fatal("cart still present after delete")
	}
}
