package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(logger *logrus.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(Middleware(logger))
	r.Get("/v1/expenses/{expenseId}", func(w http.ResponseWriter, req *http.Request) {
		GetLogData(req.Context()).AddData("expenseId", chi.URLParam(req, "expenseId"))
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/boom", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	return r
}

func TestMiddleware_Complete(t *testing.T) {
	logger, hook := test.NewNullLogger()
	router := newRouter(logger)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/expenses/abc", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Handler.GET /v1/expenses/{expenseId}.Complete", entry.Message)
	assert.Equal(t, "abc", entry.Data["expenseId"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.Equal(t, "/v1/expenses/abc", entry.Data["path"])
}

func TestMiddleware_ServerErrorLoggedAsError(t *testing.T) {
	logger, hook := test.NewNullLogger()
	router := newRouter(logger)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "Handler.GET /boom.Error", entry.Message)
	assert.Equal(t, http.StatusInternalServerError, entry.Data["status"])
}
