package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swrzee/console/pkg/application"
	"github.com/swrzee/console/pkg/configuration"
	"github.com/swrzee/console/pkg/eventbus"
	"github.com/swrzee/console/pkg/logging"
	"github.com/swrzee/console/pkg/middleware"

	"github.com/swrzee/console/modules/core/domain/entities/session"
	"github.com/swrzee/console/modules/core/infrastructure/api"
	coreservices "github.com/swrzee/console/modules/core/services"
	"github.com/swrzee/console/modules/dashboard/presentation/controllers"
)

func envelope(data any) []byte {
	out, _ := json.Marshal(map[string]any{"success": true, "data": data})
	return out
}

func failure(message string) []byte {
	out, _ := json.Marshal(map[string]any{"success": false, "message": message})
	return out
}

// upstream is a stand-in for the remote REST API.
func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	m := http.NewServeMux()
	m.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		_, _ = w.Write(envelope(map[string]any{"users": []map[string]any{
			{"_id": "u1", "userId": "USER175", "firstName": "Ritika", "lastName": "Deb", "email": "ritika@example.com"},
			{"_id": "u2", "userId": "USER176", "firstName": "Bikram", "lastName": "Das", "email": "bikram@example.com"},
			{"_id": "a1", "userId": "ADMIN001", "firstName": "Admin", "lastName": "One", "email": "admin@example.com"},
		}}))
	})
	m.HandleFunc("/users/u1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		_, _ = w.Write(envelope(map[string]any{"user": map[string]any{
			"_id": "u1", "userId": "USER175", "firstName": "Ritika", "lastName": "Deb", "email": "ritika@example.com",
		}}))
	})
	m.HandleFunc("/services", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write(envelope([]map[string]any{
				{"_id": "s1", "serviceName": "Skill Course", "description": "Tailoring basics", "price": "4500", "duration": 3, "active": true},
			}))
		case http.MethodPost:
			_, _ = w.Write(envelope(nil))
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
	m.HandleFunc("/batches", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write(envelope([]map[string]any{
				{
					"_id": "b1", "batchId": "BATCH-2026-01", "programName": "Tailoring", "status": "running",
					"startDate": "2026-01-01T00:00:00Z", "endDate": "2026-04-01T00:00:00Z",
					"totalFee": "15000", "students": []string{"u1"},
				},
			}))
		case http.MethodPost:
			_, _ = w.Write(failure("Batch ID already exists"))
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
	m.HandleFunc("/admin/dashboard", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		_, _ = w.Write(envelope(map[string]any{
			"userStats":      map[string]any{"total": 3},
			"financialStats": map[string]any{"totalRevenue": "27000", "recentPayments": []any{}},
		}))
	})
	return httptest.NewServer(m)
}

type fixture struct {
	router *mux.Router
	store  coreservices.SessionStore
}

func newFixture(t *testing.T, upstreamURL string) *fixture {
	t.Helper()
	logger := logging.ConsoleLogger(logrus.ErrorLevel)
	client := api.NewClient(upstreamURL, 5*time.Second)
	store := coreservices.NewMemorySessionStore()
	auth := coreservices.NewAuthService(client, store, eventbus.NewEventPublisher(logger))

	app := application.New(&application.Options{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	app.RegisterServices(client, auth)
	app.RegisterControllers(
		controllers.NewDashboardController(app),
		controllers.NewUsersController(app),
		controllers.NewServicesController(app),
		controllers.NewBatchesController(app),
	)

	router := mux.NewRouter()
	router.Use(middleware.WithLogger(logger), middleware.RequestParams())
	for _, c := range app.Controllers() {
		c.Register(router)
	}
	return &fixture{router: router, store: store}
}

func (f *fixture) signIn(t *testing.T) *http.Cookie {
	t.Helper()
	sess := &session.Session{
		Token:  "test-token",
		Tokens: session.Tokens{AccessToken: "access-token"},
		Profile: session.Profile{
			ID:        "a1",
			FirstName: "Admin",
			LastName:  "One",
			Email:     "admin@example.com",
			Role:      "admin",
		},
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, f.store.Store(context.Background(), sess))
	return &http.Cookie{Name: configuration.Use().SidCookieKey, Value: sess.Token}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestDashboard_RedirectsGuests(t *testing.T) {
	ts := upstream(t)
	defer ts.Close()
	f := newFixture(t, ts.URL)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?next=%2Fdashboard", rec.Header().Get("Location"))
}

func TestDashboard_Overview(t *testing.T) {
	ts := upstream(t)
	defer ts.Close()
	f := newFixture(t, ts.URL)
	cookie := f.signIn(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "₹27000")
	assert.Contains(t, body, "Total Users")
	assert.Contains(t, body, "Admin One")
}

func TestDashboard_FetchFailureRendersInline(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(failure("upstream exploded"))
	}))
	defer ts.Close()
	f := newFixture(t, ts.URL)
	cookie := f.signIn(t)

	for _, tab := range []string{"/dashboard", "/dashboard?tab=users", "/dashboard?tab=batches"} {
		req := httptest.NewRequest(http.MethodGet, tab, nil)
		req.AddCookie(cookie)
		rec := f.do(req)
		require.Equal(t, http.StatusBadGateway, rec.Code, tab)
		body := rec.Body.String()
		// Message lands inside the page shell, not a bare text response.
		assert.Contains(t, body, "upstream exploded", tab)
		assert.Contains(t, body, `<nav class="tabs">`, tab)
		assert.Contains(t, body, "Admin One", tab)
	}
}

func TestDashboard_UsersHidesAdminsByDefault(t *testing.T) {
	ts := upstream(t)
	defer ts.Close()
	f := newFixture(t, ts.URL)
	cookie := f.signIn(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard?tab=users", nil)
	req.AddCookie(cookie)
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "USER175")
	assert.NotContains(t, body, "ADMIN001")

	req = httptest.NewRequest(http.MethodGet, "/dashboard?tab=users&admins=1", nil)
	req.AddCookie(cookie)
	body = f.do(req).Body.String()
	assert.Contains(t, body, "ADMIN001")
}

func TestUsers_Show(t *testing.T) {
	ts := upstream(t)
	defer ts.Close()
	f := newFixture(t, ts.URL)
	cookie := f.signIn(t)

	req := httptest.NewRequest(http.MethodGet, "/users/u1", nil)
	req.AddCookie(cookie)
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ritika Deb")
	assert.Contains(t, rec.Body.String(), "ritika@example.com")
}

func TestServices_CreateRedirectsToTab(t *testing.T) {
	ts := upstream(t)
	defer ts.Close()
	f := newFixture(t, ts.URL)
	cookie := f.signIn(t)

	form := url.Values{
		"Name":        {"Skill Course"},
		"Description": {"A complete tailoring course"},
		"Price":       {"4500"},
		"Duration":    {"3"},
		"Features":    {"Certificate\nMaterials"},
		"IsActive":    {"true"},
	}
	req := httptest.NewRequest(http.MethodPost, "/services", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rec := f.do(req)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard?tab=services", rec.Header().Get("Location"))
}

func TestServices_CreateValidationKeepsForm(t *testing.T) {
	ts := upstream(t)
	defer ts.Close()
	f := newFixture(t, ts.URL)
	cookie := f.signIn(t)

	form := url.Values{
		"Name":        {"Skill Course"},
		"Description": {"too short"},
		"Price":       {"4500"},
		"Duration":    {"3"},
		"Features":    {""},
	}
	req := httptest.NewRequest(http.MethodPost, "/services", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Description must be at least 10 characters")
	assert.Contains(t, body, "At least one feature is required")
	assert.Contains(t, body, `value="Skill Course"`)
}

func TestBatches_DuplicateIDKeepsFormWithMessage(t *testing.T) {
	ts := upstream(t)
	defer ts.Close()
	f := newFixture(t, ts.URL)
	cookie := f.signIn(t)

	form := url.Values{
		"BatchID":      {"BATCH-2026-01"},
		"ProgramName":  {"Tailoring"},
		"CourseCredit": {"2"},
		"Services":     {"s1"},
		"StartDate":    {"2026-01-01"},
		"EndDate":      {"2026-04-01"},
		"Year":         {"2026"},
		"TotalFee":     {"15000"},
	}
	req := httptest.NewRequest(http.MethodPost, "/batches", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Batch ID already exists")
	assert.Contains(t, body, `value="BATCH-2026-01"`)
}

func TestBatches_Students(t *testing.T) {
	ts := upstream(t)
	defer ts.Close()
	f := newFixture(t, ts.URL)
	cookie := f.signIn(t)

	req := httptest.NewRequest(http.MethodGet, "/batches/b1/students", nil)
	req.AddCookie(cookie)
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Ritika Deb")
	assert.NotContains(t, body, "Bikram Das")
}
