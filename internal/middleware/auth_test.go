package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/lshigami/Placify/internal/model"
	"github.com/lshigami/Placify/internal/repository"
	"gorm.io/gorm"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.User{}, &model.Session{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	sessionRepo := repository.NewSessionRepository(db)

	r := gin.New()
	authed := r.Group("", RequireAuth(sessionRepo))
	authed.GET("/me", func(c *gin.Context) {
		auth, _ := FromContext(c)
		c.JSON(http.StatusOK, gin.H{"username": auth.Username, "role": auth.Role})
	})
	adminOnly := r.Group("/admin", RequireAuth(sessionRepo), RequireAdmin())
	adminOnly.GET("/students", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, db
}

func createSessionFor(t *testing.T, db *gorm.DB, username, role string, expiresAt time.Time) string {
	t.Helper()
	user := model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		FullName:     "Test User",
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	session := model.Session{Token: username + "-token", UserID: user.ID, ExpiresAt: expiresAt}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("create session: %v", err)
	}
	return session.Token
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r, db := newAuthTestRouter(t)
	valid := createSessionFor(t, db, "student", model.RoleStudent, time.Now().Add(time.Hour))
	expired := createSessionFor(t, db, "tardy", model.RoleStudent, time.Now().Add(-time.Hour))

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "no cookie", token: "", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", token: "bogus", wantStatus: http.StatusUnauthorized},
		{name: "expired session", token: expired, wantStatus: http.StatusUnauthorized},
		{name: "valid session", token: valid, wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doRequest(r, "/me", tt.token); w.Code != tt.wantStatus {
				t.Errorf("GET /me status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireAuthDeletesExpiredSession(t *testing.T) {
	r, db := newAuthTestRouter(t)
	expired := createSessionFor(t, db, "tardy", model.RoleStudent, time.Now().Add(-time.Minute))

	doRequest(r, "/me", expired)

	var count int64
	if err := db.Model(&model.Session{}).Where("token = ?", expired).Count(&count).Error; err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 0 {
		t.Error("expired session row not removed")
	}
}

func TestRequireAdmin(t *testing.T) {
	r, db := newAuthTestRouter(t)
	student := createSessionFor(t, db, "student", model.RoleStudent, time.Now().Add(time.Hour))
	admin := createSessionFor(t, db, "boss", model.RoleAdmin, time.Now().Add(time.Hour))

	if w := doRequest(r, "/admin/students", student); w.Code != http.StatusForbidden {
		t.Errorf("student on admin route: status = %d, want 403", w.Code)
	}
	if w := doRequest(r, "/admin/students", admin); w.Code != http.StatusOK {
		t.Errorf("admin on admin route: status = %d, want 200", w.Code)
	}
	if w := doRequest(r, "/admin/students", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous on admin route: status = %d, want 401", w.Code)
	}
}
