package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/excelenergy/cms/internal/infrastructure/config"
	"github.com/excelenergy/cms/internal/infrastructure/logger"
	"github.com/excelenergy/cms/internal/infrastructure/storage"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	dataDir := t.TempDir()
	cfg := &config.Config{
		App: config.AppConfig{
			Name:        "ExcelEnergyCMS",
			Version:     "test",
			Environment: "development",
		},
		Server: config.ServerConfig{
			Port: 8080,
			Host: "127.0.0.1",
		},
		Storage: config.StorageConfig{DataDir: dataDir},
		Admin: config.AdminConfig{
			Username:     "admin",
			Email:        "admin@excelenergy.in",
			PasswordHash: string(hash),
		},
		JWT: config.JWTConfig{
			Secret:    "test-secret",
			ExpiresIn: time.Hour,
			Issuer:    "excelenergy-cms",
		},
		Security: config.SecurityConfig{
			CORSAllowedOrigins: "*",
			RateLimitRequests:  1000,
			RateLimitWindow:    time.Minute,
		},
		Metrics: config.MetricsConfig{Enabled: false},
	}

	appLogger := logger.NewNop()
	srv, err := New(cfg, storage.New(dataDir, appLogger), appLogger)
	require.NoError(t, err)

	return srv, dataDir
}

func doRequest(srv *Server, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echoHeaderContentType, "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

const echoHeaderContentType = "Content-Type"

func login(t *testing.T, srv *Server) *http.Cookie {
	t.Helper()

	rec := doRequest(srv, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "admin_token" {
			return c
		}
	}
	t.Fatal("login did not set the admin_token cookie")
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func dataDirEntries(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestPublicReadsServeDefaultsWithoutCreatingFiles(t *testing.T) {
	srv, dataDir := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/api/content/home", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	hero := body["hero"].(map[string]interface{})
	assert.NotEmpty(t, hero["title"])

	rec = doRequest(srv, http.MethodGet, "/api/content/services", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	assert.Empty(t, dataDirEntries(t, dataDir))
}

func TestAdminRoutesRejectMissingCookie(t *testing.T) {
	srv, dataDir := newTestServer(t)

	gated := []struct {
		method, path string
	}{
		{http.MethodPut, "/api/content/home"},
		{http.MethodPost, "/api/content/services"},
		{http.MethodDelete, "/api/content/team"},
		{http.MethodGet, "/api/messages"},
		{http.MethodGet, "/api/analytics"},
		{http.MethodPost, "/api/clients"},
	}

	for _, route := range gated {
		rec := doRequest(srv, route.method, route.path, `{"name":"x"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
		assert.Equal(t, "Unauthorized", decodeBody(t, rec)["error"])
	}

	// Rejected writes must leave the data dir untouched
	assert.Empty(t, dataDirEntries(t, dataDir))
}

func TestAdminRoutesRejectForgedToken(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/api/messages", "",
		&http.Cookie{Name: "admin_token", Value: "forged.token.value"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginVerifyLogoutFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(srv, http.MethodGet, "/api/auth/verify", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["authenticated"])

	cookie := login(t, srv)
	assert.True(t, cookie.HttpOnly)

	rec = doRequest(srv, http.MethodGet, "/api/auth/verify", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["authenticated"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "admin", user["username"])

	rec = doRequest(srv, http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "admin_token" {
			assert.Less(t, c.MaxAge, 0)
		}
	}
}

func TestLoginWithEmail(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/auth/login", `{"username":"admin@excelenergy.in","password":"admin123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	cookie := login(t, srv)

	rec := doRequest(srv, http.MethodPost, "/api/clients",
		`{"name":"Tata Steel","feedback":"Great installation","rating":5}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody(t, rec)["client"].(map[string]interface{})
	id := created["id"].(string)
	require.NotEmpty(t, id)

	rec = doRequest(srv, http.MethodPut, "/api/clients",
		`{"id":"`+id+`","rating":4}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(srv, http.MethodGet, "/api/clients", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var clients []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &clients))
	require.Len(t, clients, 1)
	assert.Equal(t, float64(4), clients[0]["rating"])
	assert.Equal(t, "Tata Steel", clients[0]["name"])

	rec = doRequest(srv, http.MethodDelete, "/api/clients?id="+id, "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(srv, http.MethodDelete, "/api/clients?id="+id, "", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(srv, http.MethodGet, "/api/clients", "", cookie)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestContactFormValidation(t *testing.T) {
	srv, dataDir := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/messages", `{"name":"Ravi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, dataDirEntries(t, dataDir))

	rec = doRequest(srv, http.MethodPost, "/api/messages",
		`{"name":"Ravi","email":"ravi@example.com","subject":"Rooftop quote","message":"Please call me"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	msg := decodeBody(t, rec)["message"].(map[string]interface{})
	assert.Equal(t, "message", msg["type"])
	assert.Equal(t, false, msg["read"])

	cookie := login(t, srv)
	rec = doRequest(srv, http.MethodGet, "/api/messages", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var messages []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "Ravi", messages[0]["name"])
}

func TestAnalyticsEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/analytics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(srv, http.MethodPost, "/api/analytics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(srv, http.MethodPost, "/api/analytics/pageview", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(srv, http.MethodPost, "/api/analytics/pageview", `{"page":"/services"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := login(t, srv)
	rec = doRequest(srv, http.MethodGet, "/api/analytics", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["totalVisitors"])

	daily := body["dailyVisitors"].([]interface{})
	require.Len(t, daily, 1)
	assert.Equal(t, float64(2), daily[0].(map[string]interface{})["count"])

	views := body["pageViews"].([]interface{})
	require.Len(t, views, 1)
	assert.Equal(t, "/services", views[0].(map[string]interface{})["page"])
}

func TestInitSeedsStarterContent(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/init", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(srv, http.MethodGet, "/api/content/services", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var services []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &services))
	assert.Len(t, services, 2)

	rec = doRequest(srv, http.MethodGet, "/api/content/projects", "")
	var projects []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	assert.Len(t, projects, 2)

	rec = doRequest(srv, http.MethodGet, "/api/content/team", "")
	var team []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &team))
	assert.Len(t, team, 2)

	// Re-running never duplicates seeded content
	rec = doRequest(srv, http.MethodPost, "/api/init", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(srv, http.MethodGet, "/api/content/services", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &services))
	assert.Len(t, services, 2)
}

func TestGenerateQuoteEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/quotes/generate", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(srv, http.MethodPost, "/api/quotes/generate",
		`{"name":"Sunita Rao","email":"sunita@example.com","requirements":"10 kW residential"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["quoteId"])

	pdfBytes, err := base64.StdEncoding.DecodeString(body["pdf"].(string))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdfBytes), "%PDF"))

	cookie := login(t, srv)
	rec = doRequest(srv, http.MethodGet, "/api/quotes", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var quotes []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quotes))
	require.Len(t, quotes, 1)
	assert.Equal(t, "Sunita Rao", quotes[0]["name"])
}

func TestSectionReplaceEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)
	cookie := login(t, srv)

	rec := doRequest(srv, http.MethodPut, "/api/content/stats",
		`[{"id":"s1","label":"Projects","value":"500+","order":1}]`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["savedCount"])

	rec = doRequest(srv, http.MethodGet, "/api/content/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Len(t, stats, 1)
	assert.Equal(t, "Projects", stats[0]["label"])

	// Replacement is wholesale
	rec = doRequest(srv, http.MethodPut, "/api/content/stats", `[]`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(srv, http.MethodGet, "/api/content/stats", "")
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestHealthEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(srv, http.MethodGet, "/health/detailed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])

	rec = doRequest(srv, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateMissingEntityReturns404(t *testing.T) {
	srv, _ := newTestServer(t)
	cookie := login(t, srv)

	rec := doRequest(srv, http.MethodPut, "/api/content/services",
		`{"id":"nope","title":"New"}`, cookie)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Service not found", decodeBody(t, rec)["error"])
}

func TestUpdateWithoutIDReturns400(t *testing.T) {
	srv, _ := newTestServer(t)
	cookie := login(t, srv)

	rec := doRequest(srv, http.MethodPut, "/api/content/services", `{"title":"New"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTeamCreateValidation(t *testing.T) {
	srv, _ := newTestServer(t)
	cookie := login(t, srv)

	rec := doRequest(srv, http.MethodPost, "/api/content/team", `{"name":"Only Name"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(srv, http.MethodPost, "/api/content/team",
		`{"name":"Asha Patel","designation":"Engineer","department":"Operations","email":"asha@excelenergy.in","bio":"Solar engineer","experience":"6 years"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	member := body["member"].(map[string]interface{})
	assert.Equal(t, "employee", member["level"])
	assert.Equal(t, float64(1), body["totalMembers"])
}
