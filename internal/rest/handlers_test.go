package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KothuruDhansukh/ECO-MART/business/scoring"
	"github.com/KothuruDhansukh/ECO-MART/domain"
	"github.com/KothuruDhansukh/ECO-MART/internal/middleware"

	"github.com/labstack/echo/v4"
)

type fakeSustainability struct {
	result domain.SustainabilityResult
	err    error
	gotID  uint64
	gotGD  bool
}

func (f *fakeSustainability) ScorePurchase(ctx context.Context, productID uint64, groupDelivery bool) (domain.SustainabilityResult, error) {
	f.gotID, f.gotGD = productID, groupDelivery
	return f.result, f.err
}

func (f *fakeSustainability) Baselines(ctx context.Context) (map[string]domain.Baseline, error) {
	return map[string]domain.Baseline{
		"Shirts": {CarbonKgCO2e: 5, WaterLitres: 100, Count: 2, Source: domain.BaselineSourceCategory},
	}, f.err
}

type fakePreferences struct {
	gotUser   uint
	gotAction string
	gotCtx    map[string]any
	err       error
}

func (f *fakePreferences) GetProfile(ctx context.Context, userID uint) (domain.UserProfile, error) {
	f.gotUser = userID
	return domain.NewUserProfile(userID), f.err
}

func (f *fakePreferences) RecordAction(ctx context.Context, userID uint, productID uint64, actionType string, eventCtx map[string]any) (domain.UserProfile, error) {
	f.gotUser, f.gotAction, f.gotCtx = userID, actionType, eventCtx
	return domain.NewUserProfile(userID), f.err
}

func (f *fakePreferences) ListEvents(ctx context.Context, userID uint, limit int) ([]domain.PreferenceEvent, error) {
	f.gotUser = userID
	return []domain.PreferenceEvent{{UserID: userID, ActionType: domain.ActionView}}, f.err
}

func (f *fakePreferences) ResetProfile(ctx context.Context, userID uint) (domain.UserProfile, error) {
	f.gotUser = userID
	return domain.NewUserProfile(userID), f.err
}

type fakeScoringAdmin struct {
	got []domain.ScoringConfigEntry
	err error
}

func (f *fakeScoringAdmin) EffectiveTables(ctx context.Context) (scoring.Tables, error) {
	return scoring.DefaultTables(), f.err
}

func (f *fakeScoringAdmin) UpsertEntries(ctx context.Context, entries []domain.ScoringConfigEntry) (scoring.Tables, error) {
	f.got = entries
	return scoring.Merge(scoring.DefaultTables(), entries), f.err
}

type fakeProducts struct {
	rows map[uint64]domain.Product
}

func (f *fakeProducts) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.rows))
	for _, p := range f.rows {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProducts) GetProductByID(ctx context.Context, id uint64) (domain.Product, error) {
	p, ok := f.rows[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
	}
	return p, nil
}

func (f *fakeProducts) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.ID = uint64(len(f.rows) + 1)
	f.rows[product.ID] = *product
	return product, nil
}

func (f *fakeProducts) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := f.rows[product.ID]; !ok {
		return nil, fmt.Errorf("%w: product %d", domain.ErrNotFound, product.ID)
	}
	f.rows[product.ID] = *product
	return product, nil
}

func (f *fakeProducts) DeleteProduct(ctx context.Context, id uint64) error {
	if _, ok := f.rows[id]; !ok {
		return fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
	}
	delete(f.rows, id)
	return nil
}

// withUser stands in for AuthMiddleware.
func withUser(id uint) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextUserID, id)
			c.Set(middleware.ContextRole, "user")
			return next(c)
		}
	}
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad", domain.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: empty", domain.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("%w: missing", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: table", domain.ErrConfiguration), http.StatusInternalServerError},
		{fmt.Errorf("context error: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := errorStatus(tc.err); got != tc.want {
			t.Fatalf("errorStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestSustainabilityScore(t *testing.T) {
	svc := &fakeSustainability{result: domain.SustainabilityResult{
		CarbonSaved: 3,
		WaterSaved:  40,
		EcoScore:    10,
		WaterScore:  9,
		Message:     "🌱 Great choice! You saved 3.0 kg CO2 and 40.0L water.",
	}}
	h := NewSustainabilityHandler(svc)
	e := echo.New()
	e.POST("/score", h.Score)

	rec := do(e, http.MethodPost, "/score", `{"product_id": 12, "group_delivery": true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if svc.gotID != 12 || !svc.gotGD {
		t.Fatalf("service called with id=%d group=%v", svc.gotID, svc.gotGD)
	}
	if !strings.Contains(rec.Body.String(), `"carbon_saved":3`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestSustainabilityScoreErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"missing product id", `{"group_delivery": true}`, nil, http.StatusBadRequest},
		{"malformed body", `{"product_id": "x"`, nil, http.StatusBadRequest},
		{"unknown product", `{"product_id": 5}`, fmt.Errorf("%w: product 5", domain.ErrNotFound), http.StatusNotFound},
		{"empty catalog", `{"product_id": 5}`, fmt.Errorf("%w: empty catalog", domain.ErrInvalidInput), http.StatusBadRequest},
		{"bad table", `{"product_id": 5}`, fmt.Errorf("%w: grade", domain.ErrConfiguration), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewSustainabilityHandler(&fakeSustainability{err: tc.err})
			e := echo.New()
			e.POST("/score", h.Score)

			rec := do(e, http.MethodPost, "/score", tc.body)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}

func TestSustainabilityBaselines(t *testing.T) {
	h := NewSustainabilityHandler(&fakeSustainability{})
	e := echo.New()
	e.GET("/baselines", h.Baselines)

	rec := do(e, http.MethodGet, "/baselines", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"Shirts"`) || !strings.Contains(rec.Body.String(), `"baseline_carbon":5`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestPreferenceRecordEvent(t *testing.T) {
	svc := &fakePreferences{}
	h := NewPreferenceHandler(svc)
	e := echo.New()
	e.POST("/events", h.RecordEvent, withUser(8))

	rec := do(e, http.MethodPost, "/events", `{"product_id": 3, "action_type": "add to cart", "context": {"source": "search"}}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if svc.gotUser != 8 || svc.gotAction != domain.ActionAddToCart {
		t.Fatalf("service called with user=%d action=%q", svc.gotUser, svc.gotAction)
	}
	if svc.gotCtx["source"] != "search" {
		t.Fatalf("context = %v", svc.gotCtx)
	}
	if !strings.Contains(rec.Body.String(), `"price_tolerance":0.2`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestPreferenceRecordEventValidation(t *testing.T) {
	h := NewPreferenceHandler(&fakePreferences{})
	e := echo.New()
	e.POST("/events", h.RecordEvent, withUser(8))
	e.POST("/anon", h.RecordEvent)

	if rec := do(e, http.MethodPost, "/events", `{"product_id": 3}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing action status = %d", rec.Code)
	}
	if rec := do(e, http.MethodPost, "/anon", `{"product_id": 3, "action_type": "view"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d", rec.Code)
	}
}

func TestPreferenceProfileEndpoints(t *testing.T) {
	svc := &fakePreferences{}
	h := NewPreferenceHandler(svc)
	e := echo.New()
	e.GET("/preferences", h.GetProfile, withUser(4))
	e.DELETE("/preferences", h.ResetProfile, withUser(4))
	e.GET("/preferences/events", h.ListEvents, withUser(4))

	if rec := do(e, http.MethodGet, "/preferences", ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"user_id":4`) {
		t.Fatalf("get status = %d body %s", rec.Code, rec.Body.String())
	}
	if rec := do(e, http.MethodDelete, "/preferences", ""); rec.Code != http.StatusOK {
		t.Fatalf("reset status = %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/preferences/events?limit=5", ""); rec.Code != http.StatusOK {
		t.Fatalf("events status = %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/preferences/events?limit=abc", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad limit status = %d", rec.Code)
	}
}

func TestScoringAdmin(t *testing.T) {
	svc := &fakeScoringAdmin{}
	h := NewScoringAdminHandler(svc)
	e := echo.New()
	e.GET("/config", h.GetConfig)
	e.PUT("/config", h.UpsertConfig)

	rec := do(e, http.MethodGet, "/config", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"carbon_grade_to_score"`) {
		t.Fatalf("get status = %d body %s", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodPut, "/config", `{"entries": [{"kind": "carbon_grade", "key": "F", "value": 0.5}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d body %s", rec.Code, rec.Body.String())
	}
	if len(svc.got) != 1 || svc.got[0].Key != "F" {
		t.Fatalf("entries = %v", svc.got)
	}

	rec = do(e, http.MethodPut, "/config", `{"entries": [{"kind": "bogus", "key": "F", "value": 0.5}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad kind status = %d", rec.Code)
	}
	rec = do(e, http.MethodPut, "/config", `{"entries": []}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty entries status = %d", rec.Code)
	}
}

func TestProductHandler(t *testing.T) {
	svc := &fakeProducts{rows: map[uint64]domain.Product{}}
	h := NewProductHandler(svc)
	e := echo.New()
	e.GET("/products", h.GetAllProducts)
	e.GET("/products/:id", h.GetProductByID)
	e.POST("/products", h.CreateProduct)
	e.PUT("/products/:id", h.UpdateProduct)
	e.DELETE("/products/:id", h.DeleteProduct)

	body := `{"product_name": "Tee", "category_name": "Shirts", "Carbon_Footprint_kgCO2e": 2,
		"Water_Usage_Litres": 50, "Eco_Rating": "A", "Water_Rating": "B", "rating": 4, "price": 20}`

	if rec := do(e, http.MethodPost, "/products", body); rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d body %s", rec.Code, rec.Body.String())
	}
	if svc.rows[1].CategoryName != "Shirts" || svc.rows[1].CarbonFootprintKgCO2e != 2 {
		t.Fatalf("stored product = %+v", svc.rows[1])
	}

	if rec := do(e, http.MethodGet, "/products/1", ""); rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/products/9", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("get missing status = %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/products/abc", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("get bad id status = %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/products", ""); rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	if rec := do(e, http.MethodPut, "/products/1", body); rec.Code != http.StatusOK {
		t.Fatalf("update status = %d", rec.Code)
	}

	negative := strings.Replace(body, `"price": 20`, `"price": -1`, 1)
	if rec := do(e, http.MethodPost, "/products", negative); rec.Code != http.StatusBadRequest {
		t.Fatalf("negative price status = %d", rec.Code)
	}

	if rec := do(e, http.MethodDelete, "/products/1", ""); rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if rec := do(e, http.MethodDelete, "/products/1", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", rec.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	e := echo.New()
	e.GET("/ok", NewHealthHandler(map[string]HealthCheck{
		"postgres": func(ctx context.Context) error { return nil },
	}).Check)
	e.GET("/down", NewHealthHandler(map[string]HealthCheck{
		"redis": func(ctx context.Context) error { return errors.New("refused") },
	}).Check)

	if rec := do(e, http.MethodGet, "/ok", ""); rec.Code != http.StatusOK {
		t.Fatalf("ok status = %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/down", ""); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("down status = %d", rec.Code)
	}
}
