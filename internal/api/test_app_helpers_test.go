package api

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/terraincognita07/mlimi/internal/db"
	"github.com/terraincognita07/mlimi/internal/i18n"
	"github.com/terraincognita07/mlimi/internal/models"
)

const testSecretKey = "mlimi-test-secret-key-0123456789abcdef"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	internalDir := filepath.Dir(apiDir)
	templatesDir := filepath.Join(internalDir, "templates")
	localesDir := filepath.Join(internalDir, "i18n", "locales")
	databasePath := filepath.Join(t.TempDir(), "mlimi-api-test.db")

	database, err := db.OpenSQLite(databasePath, zap.NewNop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	i18nManager, err := i18n.NewManager("en", localesDir)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := NewHandler(database, testSecretKey, templatesDir, time.UTC, i18nManager, false, zap.NewNop())
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, database
}

func createTestUser(t *testing.T, database *gorm.DB, username string, phone string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Username:     username,
		Phone:        phone,
		PasswordHash: string(passwordHash),
		FullName:     "Chikondi Banda",
		Location:     "Dedza",
		Language:     models.LanguageEnglish,
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestFarm(t *testing.T, database *gorm.DB, userID uint, name string, size float64) models.Farm {
	t.Helper()

	farm := models.Farm{
		UserID:    userID,
		FarmName:  name,
		FarmSize:  size,
		FarmType:  models.FarmTypeCrops,
		MainCrops: "maize",
		CreatedAt: time.Now().UTC(),
	}
	if err := database.Create(&farm).Error; err != nil {
		t.Fatalf("create farm: %v", err)
	}
	return farm
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookie string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return response
}

func getPage(t *testing.T, app *fiber.App, path string, cookie string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return response
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, phone string, password string) string {
	t.Helper()

	response := postForm(t, app, "/login", url.Values{
		"phone":    {phone},
		"password": {password},
	}, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login status 303, got %d", response.StatusCode)
	}

	if value := responseCookieValue(response.Cookies(), authCookieName); value != "" {
		return authCookieName + "=" + value
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func decodeFlashCookie(t *testing.T, response *http.Response) FlashPayload {
	t.Helper()

	raw := responseCookieValue(response.Cookies(), flashCookieName)
	if raw == "" {
		t.Fatal("flash cookie is missing in response")
	}
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		t.Fatalf("decode flash cookie: %v", err)
	}
	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		t.Fatalf("unmarshal flash cookie: %v", err)
	}
	return payload
}

func readDocument(t *testing.T, response *http.Response) *goquery.Document {
	t.Helper()
	defer response.Body.Close()

	document, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return document
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(body)
}

func countRows(t *testing.T, database *gorm.DB, model any) int64 {
	t.Helper()

	var count int64
	if err := database.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}
