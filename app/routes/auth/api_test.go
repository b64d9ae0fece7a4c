package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"projecttracker/app/config"
)

func newTestApp() *fiber.App {
	config.AppConfig = &config.Config{
		Admin: config.AdminConfig{Username: "admin", Password: "secret"},
	}
	app := fiber.New()
	SetupAuthRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string, headers map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/auth/login", `{"username":"admin","password":"wrong"}`, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestLoginVerifyRefreshFlow(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/auth/login", `{"username":"admin","password":"secret"}`, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}

	var login struct {
		OK    bool   `json:"ok"`
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if !login.OK || login.Token == "" {
		t.Fatalf("unexpected login response %+v", login)
	}

	// Verify accepts the issued token.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	verifyResp, err := app.Test(req)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if verifyResp.StatusCode != http.StatusOK {
		t.Fatalf("verify status = %d, want 200", verifyResp.StatusCode)
	}

	// Refresh issues a usable replacement token.
	refreshResp := postJSON(t, app, "/api/auth/refresh", "", map[string]string{
		"Authorization": "Bearer " + login.Token,
	})
	if refreshResp.StatusCode != http.StatusOK {
		t.Fatalf("refresh status = %d, want 200", refreshResp.StatusCode)
	}
	var refresh struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(refreshResp.Body).Decode(&refresh); err != nil {
		t.Fatalf("decode refresh: %v", err)
	}
	if _, err := ValidateToken(refresh.Token); err != nil {
		t.Fatalf("refreshed token invalid: %v", err)
	}
}

func TestVerifyRejectsMissingAndMalformedTokens(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no-token status = %d, want 401", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage-token status = %d, want 401", resp.StatusCode)
	}
}
