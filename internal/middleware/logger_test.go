package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func loggedRequest(t *testing.T, target string, userID string) map[string]interface{} {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	if userID != "" {
		c.Set(ContextKeyUserID, userID)
	}

	Logger(zap.New(core))(c)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	return entries[0].ContextMap()
}

func TestLoggerTagsActingUser(t *testing.T) {
	fields := loggedRequest(t, "/notes?page=2", "user-1")

	if fields["method"] != "GET" {
		t.Fatalf("method = %v", fields["method"])
	}
	if fields["path"] != "/notes" {
		t.Fatalf("path = %v", fields["path"])
	}
	if fields["query"] != "page=2" {
		t.Fatalf("query = %v", fields["query"])
	}
	if fields["user_id"] != "user-1" {
		t.Fatalf("user_id = %v", fields["user_id"])
	}
}

func TestLoggerAnonymousHasNoUserField(t *testing.T) {
	fields := loggedRequest(t, "/notes", "")

	if _, ok := fields["user_id"]; ok {
		t.Fatal("anonymous request must not carry a user_id field")
	}
	if _, ok := fields["query"]; ok {
		t.Fatal("empty query string must not be logged")
	}
}
