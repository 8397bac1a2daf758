package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()

	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	// The wrapped status reaches the client untouched.
	assert.Equal(t, http.StatusTeapot, w.Code)

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "GET", entry.Data["method"])
	assert.Equal(t, "/api/users", entry.Data["path"])
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
	assert.NotEmpty(t, entry.Data["request_id"])
}
