package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ITECH-Group8/WellLog/config"
	"github.com/ITECH-Group8/WellLog/controllers"
	"github.com/ITECH-Group8/WellLog/models"
	"github.com/ITECH-Group8/WellLog/services"
	"github.com/ITECH-Group8/WellLog/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	token  string
	user   models.User
}

// newTestApp wires the full router against an in-memory database. aiURL
// points the advice client at a stub chat-completion server; opts may
// adjust the config before the router is built.
func newTestApp(t *testing.T, aiURL string, aiTimeout time.Duration, opts ...func(*config.Config)) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		Port:         "0",
		JWTSecret:    "test-secret",
		MediaDir:     t.TempDir(),
		MediaBaseURL: "/media",
		AI: config.AIConfig{
			BaseURL: aiURL,
			APIKey:  "test-key",
			Model:   "deepseek-chat",
			Timeout: aiTimeout,
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	hashed, err := utils.HashPassword("correct horse")
	if err != nil {
		t.Fatal(err)
	}
	user := models.User{Email: "alice@example.com", Username: "alice", Password: hashed}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	token, err := utils.GenerateJWT(user.Email, cfg.JWTSecret)
	if err != nil {
		t.Fatal(err)
	}

	users := services.NewUserService(db)
	records := services.NewRecordService(db)
	advice := services.NewAdviceService(db, records, cfg.AI)
	export := services.NewExportService(db, records)
	feed := services.NewFeedHub()
	community := services.NewCommunityService(db, nil, feed)

	ctrl := Controllers{
		Auth:      controllers.NewAuthController(users, nil, cfg.JWTSecret),
		User:      controllers.NewUserController(users),
		Record:    controllers.NewRecordController(records),
		Goal:      controllers.NewGoalController(records),
		Advice:    controllers.NewAdviceController(advice),
		Dashboard: controllers.NewDashboardController(records, advice),
		Export:    controllers.NewExportController(export),
		Community: controllers.NewCommunityController(community),
		Feed:      controllers.NewFeedController(feed),
	}

	return &testApp{
		router: SetupRouter(cfg, db, ctrl),
		db:     db,
		cfg:    cfg,
		token:  token,
		user:   user,
	}
}

func (app *testApp) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+app.token)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func TestAdviceGenerateTimeoutStillReturnsAdvice(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	t.Cleanup(slow.Close)

	app := newTestApp(t, slow.URL, 50*time.Millisecond)
	w := app.request(t, http.MethodPost, "/analysis/advice/generate", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even on timeout", w.Code)
	}
	var body struct {
		Error  string `json:"error"`
		Advice string `json:"advice"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error == "" {
		t.Error("timeout response should carry an error field")
	}
	if body.Advice == "" {
		t.Error("timeout response should still carry non-empty advice text")
	}
}

func TestAdviceGenerateRejectsWrongMethod(t *testing.T) {
	app := newTestApp(t, "http://unused", time.Second)
	w := app.request(t, http.MethodGet, "/analysis/advice/generate", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET on generate: status = %d, want 405", w.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	app := newTestApp(t, "http://unused", time.Second)

	req := httptest.NewRequest(http.MethodGet, "/health/steps", nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/health/steps", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w = httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want 401", w.Code)
	}
}

func TestRecordLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t, "http://unused", time.Second)

	w := app.request(t, http.MethodPost, "/health/steps", `{"date":"2026-03-10","steps_count":8000}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add: status = %d, body %s", w.Code, w.Body.String())
	}

	// same-day add replaces
	w = app.request(t, http.MethodPost, "/health/steps", `{"date":"2026-03-10","steps_count":9000}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("re-add: status = %d", w.Code)
	}

	w = app.request(t, http.MethodGet, "/health/steps", "")
	if w.Code != http.StatusOK {
		t.Fatalf("history: status = %d", w.Code)
	}
	var body struct {
		Records []struct {
			ID         uint   `json:"id"`
			Date       string `json:"date"`
			StepsCount int    `json:"steps_count"`
		} `json:"records"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(body.Records))
	}
	if body.Records[0].StepsCount != 9000 || body.Records[0].Date != "2026-03-10" {
		t.Errorf("record = %+v", body.Records[0])
	}

	w = app.request(t, http.MethodPost, "/health/steps", `{"date":"10/03/2026","steps_count":1}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date: status = %d, want 400", w.Code)
	}
}

func TestZeroValuedRecordsAccepted(t *testing.T) {
	app := newTestApp(t, "http://unused", time.Second)

	// a rest day and a fasting day are valid entries
	w := app.request(t, http.MethodPost, "/health/steps", `{"date":"2026-03-10","steps_count":0}`)
	if w.Code != http.StatusCreated {
		t.Errorf("zero steps: status = %d, body %s", w.Code, w.Body.String())
	}

	w = app.request(t, http.MethodPost, "/health/diet", `{"date":"2026-03-10","calories":0}`)
	if w.Code != http.StatusCreated {
		t.Errorf("zero calories: status = %d, body %s", w.Code, w.Body.String())
	}

	w = app.request(t, http.MethodGet, "/health/steps", "")
	var body struct {
		Records []struct {
			StepsCount int `json:"steps_count"`
		} `json:"records"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Records) != 1 || body.Records[0].StepsCount != 0 {
		t.Errorf("stored records = %+v", body.Records)
	}
}

func TestMediaServedWhenRemoteStorageConfigured(t *testing.T) {
	app := newTestApp(t, "http://unused", time.Second, func(c *config.Config) {
		c.S3Bucket = "welllog-media"
	})

	// a blob that fell back to local storage must stay reachable
	path := filepath.Join(app.cfg.MediaDir, "community", "images")
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(path, "x.jpg"), []byte("jpeg bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/media/community/images/x.jpg", nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "jpeg bytes" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestLoginFlow(t *testing.T) {
	app := newTestApp(t, "http://unused", time.Second)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"alice@example.com","password":"correct horse"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body %s", w.Code, w.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Token == "" {
		t.Error("login response missing token")
	}

	req = httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"alice@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password: status = %d, want 401", w.Code)
	}
}
