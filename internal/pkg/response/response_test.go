package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestOKWrapsSlices(t *testing.T) {
	c, w := newTestContext(t)
	OK(c, []string{"a", "b"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body["data"]) != 2 {
		t.Fatalf("data = %v, want wrapped slice", body)
	}
}

func TestOKPassesObjectsThrough(t *testing.T) {
	c, w := newTestContext(t)
	OK(c, gin.H{"name": "x"})

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, wrapped := body["data"]; wrapped {
		t.Fatal("object response should not be wrapped in data")
	}
	if body["name"] != "x" {
		t.Fatalf("body = %v", body)
	}
}

func TestErrorEnvelope(t *testing.T) {
	c, w := newTestContext(t)
	UnprocessableEntity(c, "bad role")

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		OK      int    `json:"ok"`
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.OK != 0 || body.Code != http.StatusUnprocessableEntity || body.Message != "bad role" {
		t.Fatalf("body = %+v", body)
	}
	if !c.IsAborted() {
		t.Fatal("error response should abort the handler chain")
	}
}

func TestPagedEnvelope(t *testing.T) {
	c, w := newTestContext(t)
	Paged(c, []int{1, 2, 3}, Pagination{Total: 3, CurrentPage: 1, TotalPage: 1, Size: 10})

	var body struct {
		Data       []int      `json:"data"`
		Pagination Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Data) != 3 || body.Pagination.Total != 3 {
		t.Fatalf("body = %+v", body)
	}
	if body.Pagination.HasNextPage {
		t.Fatal("single page should not report a next page")
	}
}
