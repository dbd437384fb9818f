package profile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/calmnest/calmnest/internal/platform/validation"
)

func newTestEcho() *echo.Echo {
	h := NewHandler(NewService(newMockRepo()), zerolog.Nop())
	e := echo.New()
	e.Validator = validation.New()
	h.RegisterRoutes(e.Group("/api"))
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetProfile_NotFound(t *testing.T) {
	e := newTestEcho()
	rec := doJSON(e, http.MethodGet, "/api/profile/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestPutProfile_CreateThenUpdate(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(e, http.MethodPut, "/api/profile/u1",
		`{"email":"u1@example.com","full_name":"Asha Rao","age":29,"gender":"female"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 on create, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodPut, "/api/profile/u1",
		`{"email":"u1@example.com","full_name":"Asha R","age":30}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/api/profile/u1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var p Profile
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatal(err)
	}
	if p.Age == nil || *p.Age != 30 {
		t.Error("expected updated age")
	}
}

func TestPutProfile_InvalidEmail(t *testing.T) {
	e := newTestEcho()
	rec := doJSON(e, http.MethodPut, "/api/profile/u1", `{"email":"not-an-email"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
