package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/classora/classora-backend/internal/apperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(err error) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { Error(c, err) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return env
}

func TestSuccessEnvelope(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		Success(c, http.StatusCreated, "Created", gin.H{"id": 1})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Code != http.StatusCreated {
		t.Errorf("status: %d", w.Code)
	}
	env := decode(t, w)
	if !env.Success || env.Message != "Created" || env.Data == nil {
		t.Errorf("envelope: %+v", env)
	}
}

func TestFailOmitsData(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { Fail(c, http.StatusNotFound, "Student not found") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	env := decode(t, w)
	if env.Success || env.Message != "Student not found" || env.Data != nil {
		t.Errorf("envelope: %+v", env)
	}
}

func TestErrorPassesThroughAppErrors(t *testing.T) {
	w := serveError(apperr.Forbidden("Insufficient role"))
	if w.Code != http.StatusForbidden {
		t.Errorf("status: %d", w.Code)
	}
	if env := decode(t, w); env.Message != "Insufficient role" {
		t.Errorf("message: %q", env.Message)
	}
}

func TestErrorTranslatesStorageErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"no rows", pgx.ErrNoRows, http.StatusNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, http.StatusConflict},
		{"fk violation", &pgconn.PgError{Code: "23503"}, http.StatusConflict},
		{"bad text", &pgconn.PgError{Code: "22P02"}, http.StatusBadRequest},
		{"unknown pg error", &pgconn.PgError{Code: "42P01"}, http.StatusInternalServerError},
		{"raw error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := serveError(tc.err)
		if w.Code != tc.want {
			t.Errorf("%s: status %d, want %d", tc.name, w.Code, tc.want)
		}
	}
}

func TestErrorNeverEchoesInternalDetail(t *testing.T) {
	w := serveError(errors.New("pq: password authentication failed for user"))
	env := decode(t, w)
	if env.Message != "Internal server error" {
		t.Errorf("internal detail leaked: %q", env.Message)
	}
}
