package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quickbite/internal/domain"
)

func menuFixtures() *stubCatalog {
	return &stubCatalog{
		item: &domain.MenuItem{
			ID:           "item-1",
			RestaurantID: "rest-1",
			Name:         "Poulet braise",
			PriceCents:   3500,
			IsAvailable:  true,
		},
		restaurant: &domain.Restaurant{
			ID:      "rest-1",
			Name:    "Chez Maman",
			Address: "12 Rue du Marche",
		},
	}
}

func addItemBody() string {
	return `{"menuItemId":"item-1","selectedOptions":{"sauce":"piment"},"quantity":2}`
}

func TestCartRequiresSessionHeader(t *testing.T) {
	router := testRouter(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without session header, got %d", rec.Code)
	}
}

func TestGetCartStartsEmpty(t *testing.T) {
	router := testRouter(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(sessionHeader, "s1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Items      []json.RawMessage `json:"items"`
		TotalCents int64             `json:"totalCents"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Items) != 0 || body.TotalCents != 0 {
		t.Fatalf("expected empty cart, got %s", rec.Body.String())
	}
}

func TestAddCartItem(t *testing.T) {
	router := testRouter(t, Deps{CatalogSvc: menuFixtures()})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(addItemBody()))
	req.Header.Set(sessionHeader, "s1")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var body struct {
		Cart struct {
			TotalCents int64 `json:"totalCents"`
			Quote      struct {
				TotalCents int64 `json:"totalCents"`
			} `json:"quote"`
		} `json:"cart"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Cart.TotalCents != 7000 {
		t.Fatalf("expected total 7000, got %d", body.Cart.TotalCents)
	}
	if body.Cart.Quote.TotalCents != 7500 {
		t.Fatalf("expected quoted total with delivery fee 7500, got %d", body.Cart.Quote.TotalCents)
	}
}

func TestAddUnavailableItem(t *testing.T) {
	catalog := menuFixtures()
	catalog.item.IsAvailable = false
	router := testRouter(t, Deps{CatalogSvc: catalog})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(addItemBody()))
	req.Header.Set(sessionHeader, "s1")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for unavailable item, got %d", rec.Code)
	}
}

func TestCartIsolatedPerSession(t *testing.T) {
	router := testRouter(t, Deps{CatalogSvc: menuFixtures()})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(addItemBody()))
	req.Header.Set(sessionHeader, "s1")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed add failed: %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(sessionHeader, "s2")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Items) != 0 {
		t.Fatalf("expected other session's cart to be empty, got %s", rec.Body.String())
	}
}

func TestUpdateAndRemoveLine(t *testing.T) {
	router := testRouter(t, Deps{CatalogSvc: menuFixtures()})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(addItemBody()))
	req.Header.Set(sessionHeader, "s1")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed add failed: %d", rec.Code)
	}
	var created struct {
		Line struct {
			ID string `json:"id"`
		} `json:"line"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	req = httptest.NewRequest(http.MethodPatch, "/cart/items/"+created.Line.ID, strings.NewReader(`{"quantity":5}`))
	req.Header.Set(sessionHeader, "s1")
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", rec.Code)
	}
	var updated struct {
		TotalCents int64 `json:"totalCents"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if updated.TotalCents != 17500 {
		t.Fatalf("expected total 17500 after quantity update, got %d", updated.TotalCents)
	}

	req = httptest.NewRequest(http.MethodDelete, "/cart/items/"+created.Line.ID, nil)
	req.Header.Set(sessionHeader, "s1")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove: expected 200, got %d", rec.Code)
	}
	var emptied struct {
		TotalCents int64            `json:"totalCents"`
		Restaurant *json.RawMessage `json:"restaurant"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &emptied); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if emptied.TotalCents != 0 || emptied.Restaurant != nil {
		t.Fatalf("expected empty unscoped cart, got %s", rec.Body.String())
	}
}

func TestClearCart(t *testing.T) {
	router := testRouter(t, Deps{CatalogSvc: menuFixtures()})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(addItemBody()))
	req.Header.Set(sessionHeader, "s1")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed add failed: %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/cart", nil)
	req.Header.Set(sessionHeader, "s1")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		TotalCents int64 `json:"totalCents"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.TotalCents != 0 {
		t.Fatalf("expected cleared cart, got %s", rec.Body.String())
	}
}
