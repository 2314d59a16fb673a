package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-engine/internal/auth"
	"property-engine/internal/blob"
	"property-engine/internal/config"
	"property-engine/internal/models"
	"property-engine/internal/notify"
	"property-engine/internal/services"
	"property-engine/internal/store"
)

type testEnv struct {
	router   *gin.Engine
	sessions *auth.SessionManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	st, err := store.Open(config.DatabaseConfig{Driver: "sqlite", DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	log := zerolog.Nop()
	tokens := auth.NewTokenManager([]byte("test-secret"), "test", time.Hour)
	sessions := auth.NewSessionManager(st, tokens, log)

	bus := notify.NewBus()
	hub := notify.NewHub(log)
	notifications := notify.NewManager(bus, hub, log)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	events, cancelEvents := sessions.Subscribe()
	go notifications.Run(ctx, events, cancelEvents)

	images, err := blob.NewLocalFS(t.TempDir())
	require.NoError(t, err)

	a := New(Deps{
		Sessions:      sessions,
		Store:         st,
		Properties:    services.NewPropertyService(st, log),
		Tenants:       services.NewTenantService(st, log),
		Maintenance:   services.NewMaintenanceService(st, bus, log),
		Rent:          services.NewRentService(st, log),
		Notifications: notifications,
		Hub:           hub,
		Images:        images,
		Log:           log,
	})

	return &testEnv{router: a.Router(), sessions: sessions}
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) signupAndLogin(t *testing.T, email string, role models.Role) string {
	t.Helper()
	w := e.do(http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email": email, "password": "test-password", "full_name": "Test User", "role": string(role),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = e.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": email, "password": "test-password",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	return session.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSignupLoginMe(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "landlord@example.com", models.RoleLandlord)

	w := env.do(http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "landlord", body["role"])
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.signupAndLogin(t, "landlord@example.com", models.RoleLandlord)

	w := env.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "landlord@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w)["error"])
}

func TestCreatePropertyStampsOwner(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "landlord@example.com", models.RoleLandlord)

	w := env.do(http.MethodPost, "/api/v1/properties", token, gin.H{
		"name": "Sunset Apartments", "address": "123 Ocean Drive",
		"type": "apartment", "units": 12, "rent_amount": 1500, "status": "vacant",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Property added successfully!", body["message"])

	property := body["property"].(map[string]interface{})
	assert.Equal(t, "vacant", property["status"])
	assert.NotEmpty(t, property["landlord_id"])

	// the list reflects the insert and is scoped to the owner
	w = env.do(http.MethodGet, "/api/v1/properties", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)["properties"].([]interface{})
	require.Len(t, list, 1)

	other := env.signupAndLogin(t, "other@example.com", models.RoleLandlord)
	w = env.do(http.MethodGet, "/api/v1/properties", other, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["properties"])
}

func TestPropertyValidationRejected(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "landlord@example.com", models.RoleLandlord)

	w := env.do(http.MethodPost, "/api/v1/properties", token, gin.H{
		"name": "", "address": "123 Ocean Drive",
		"type": "apartment", "units": 0, "rent_amount": 1500, "status": "vacant",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	fields := body["fields"].(map[string]interface{})
	assert.Equal(t, "Property name is required", fields["name"])
	assert.Equal(t, "Must have at least 1 unit", fields["units"])

	w = env.do(http.MethodGet, "/api/v1/properties", token, nil)
	assert.Empty(t, decode(t, w)["properties"], "rejected submissions must not mutate")
}

func TestTenantLeaseDatesRejected(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "landlord@example.com", models.RoleLandlord)

	w := env.do(http.MethodPost, "/api/v1/tenants", token, gin.H{
		"name": "Jordan", "email": "jordan@example.com", "phone": "5551234567",
		"move_in_date": "2025-01-15", "lease_end": "2025-01-10", "rent_status": "paid",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := decode(t, w)["fields"].(map[string]interface{})
	assert.Equal(t, "Lease end must be after move-in date", fields["lease_end"])

	w = env.do(http.MethodGet, "/api/v1/tenants", token, nil)
	assert.Empty(t, decode(t, w)["tenants"])
}

func TestRoleGating(t *testing.T) {
	env := newTestEnv(t)
	tenantToken := env.signupAndLogin(t, "tenant@example.com", models.RoleTenant)

	// tenants cannot reach landlord-only surfaces
	for _, path := range []string{"/api/v1/properties", "/api/v1/tenants", "/api/v1/rent", "/api/v1/reports/rent"} {
		w := env.do(http.MethodGet, path, tenantToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}

	// but may file maintenance requests
	w := env.do(http.MethodPost, "/api/v1/maintenance", tenantToken, gin.H{
		"property_id": "prop-1", "title": "No heat",
		"description": "The radiator has been cold for two days.",
		"priority":    "high", "status": "pending",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// no token at all is unauthorized
	w = env.do(http.MethodGet, "/api/v1/properties", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNavigationByRole(t *testing.T) {
	env := newTestEnv(t)

	names := func(token string) []string {
		w := env.do(http.MethodGet, "/api/v1/navigation", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var out []string
		for _, s := range decode(t, w)["sections"].([]interface{}) {
			out = append(out, s.(map[string]interface{})["name"].(string))
		}
		return out
	}

	landlord := env.signupAndLogin(t, "landlord@example.com", models.RoleLandlord)
	assert.Equal(t, []string{"Dashboard", "Properties", "Tenants", "Rent", "Maintenance", "Reports", "Settings"}, names(landlord))

	tenant := env.signupAndLogin(t, "tenant@example.com", models.RoleTenant)
	assert.Equal(t, []string{"Dashboard", "Maintenance", "Settings"}, names(tenant))
}

func TestNavigationFailsClosedWithoutRole(t *testing.T) {
	assert.Empty(t, VisibleSections(""))
}

func waitForNotificationCount(t *testing.T, env *testEnv, token string, n int) []interface{} {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		w := env.do(http.MethodGet, "/api/v1/notifications", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		items := decode(t, w)["notifications"].([]interface{})
		if len(items) >= n {
			return items
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %d notifications, have %d", n, len(items))
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestMaintenanceNotifications(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "landlord@example.com", models.RoleLandlord)

	w := env.do(http.MethodPost, "/api/v1/maintenance", token, gin.H{
		"property_id": "prop-1", "title": "Broken window",
		"description": "The living room window cracked overnight.",
		"priority":    "high", "status": "pending",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	requestID := decode(t, w)["request"].(map[string]interface{})["id"].(string)

	items := waitForNotificationCount(t, env, token, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "New Maintenance Request", first["title"])
	assert.Contains(t, first["message"], "Broken window")

	// resubmitting with the same status adds no notification
	w = env.do(http.MethodPut, "/api/v1/maintenance/"+requestID, token, gin.H{
		"property_id": "prop-1", "title": "Broken window",
		"description": "The living room window cracked overnight.",
		"priority":    "high", "status": "pending",
	})
	require.Equal(t, http.StatusOK, w.Code)
	time.Sleep(50 * time.Millisecond)
	w = env.do(http.MethodGet, "/api/v1/notifications", token, nil)
	assert.Len(t, decode(t, w)["notifications"].([]interface{}), 1)

	// a status change does
	w = env.do(http.MethodPut, "/api/v1/maintenance/"+requestID, token, gin.H{
		"property_id": "prop-1", "title": "Broken window",
		"description": "The living room window cracked overnight.",
		"priority":    "high", "status": "in-progress",
	})
	require.Equal(t, http.StatusOK, w.Code)
	items = waitForNotificationCount(t, env, token, 2)
	latest := items[0].(map[string]interface{})
	assert.Equal(t, "Maintenance Status Updated", latest["title"])
	assert.Contains(t, latest["message"], "in-progress")
}

func TestNotificationReadAndClear(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "landlord@example.com", models.RoleLandlord)

	w := env.do(http.MethodPost, "/api/v1/maintenance", token, gin.H{
		"property_id": "prop-1", "title": "Leak",
		"description": "Water pooling under the sink.",
		"priority":    "medium", "status": "pending",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	items := waitForNotificationCount(t, env, token, 1)
	id := items[0].(map[string]interface{})["id"].(string)

	w = env.do(http.MethodPost, "/api/v1/notifications/"+id+"/read", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(http.MethodGet, "/api/v1/notifications", token, nil)
	assert.EqualValues(t, 0, decode(t, w)["unread_count"])

	w = env.do(http.MethodDelete, "/api/v1/notifications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(http.MethodGet, "/api/v1/notifications", token, nil)
	assert.Empty(t, decode(t, w)["notifications"])
}

func TestRentStatsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "landlord@example.com", models.RoleLandlord)

	add := func(amount float64, status string) {
		w := env.do(http.MethodPost, "/api/v1/rent", token, gin.H{
			"property_id": "p1", "amount": amount, "due_date": "2025-03-01",
			"status": status, "month": "2025-03",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	add(1000, "paid")
	add(600, "pending")
	add(400, "overdue")

	w := env.do(http.MethodGet, "/api/v1/rent/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)["stats"].(map[string]interface{})
	assert.EqualValues(t, 1000, stats["total_collected"])
	assert.EqualValues(t, 600, stats["pending_rent"])
	assert.EqualValues(t, 400, stats["overdue_rent"])
}

func TestReportDownload(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "landlord@example.com", models.RoleLandlord)

	w := env.do(http.MethodPost, "/api/v1/properties", token, gin.H{
		"name": "Sunset Apartments", "address": "123 Ocean Drive",
		"type": "apartment", "units": 12, "rent_amount": 1500, "status": "vacant",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodGet, "/api/v1/reports/property", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "property-report.csv")

	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Name","Address","Type","Units","Rent Amount","Status"`, lines[0])
	assert.Contains(t, lines[1], `"Sunset Apartments"`)

	w = env.do(http.MethodGet, "/api/v1/reports/unknown", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardSummary(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "landlord@example.com", models.RoleLandlord)

	w := env.do(http.MethodPost, "/api/v1/properties", token, gin.H{
		"name": "Occupied One", "address": "1 Main St",
		"type": "house", "units": 1, "rent_amount": 900, "status": "occupied",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 1, body["total_properties"])
	assert.EqualValues(t, 1, body["occupied_properties"])
	assert.EqualValues(t, 0, body["total_tenants"])
}

func TestUpdateAndDeleteMessages(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "landlord@example.com", models.RoleLandlord)

	w := env.do(http.MethodPost, "/api/v1/properties", token, gin.H{
		"name": "Old Name", "address": "1 Main St",
		"type": "house", "units": 1, "rent_amount": 900, "status": "vacant",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["property"].(map[string]interface{})["id"].(string)

	w = env.do(http.MethodPut, "/api/v1/properties/"+id, token, gin.H{
		"name": "New Name", "address": "1 Main St",
		"type": "house", "units": 1, "rent_amount": 900, "status": "occupied",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Property updated successfully!", body["message"])
	assert.Equal(t, "New Name", body["property"].(map[string]interface{})["name"])

	w = env.do(http.MethodDelete, "/api/v1/properties/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Property deleted successfully!", decode(t, w)["message"])

	w = env.do(http.MethodDelete, "/api/v1/properties/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
