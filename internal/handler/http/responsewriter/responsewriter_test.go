package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_Defaults(t *testing.T) {
	wrapped := Wrap(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Equal(t, 0, wrapped.BytesWritten())
	assert.False(t, wrapped.headerWritten)
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{name: "created", statusCode: http.StatusCreated},
		{name: "not found", statusCode: http.StatusNotFound},
		{name: "internal error", statusCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			wrapped := Wrap(rec)

			wrapped.WriteHeader(tt.statusCode)

			assert.Equal(t, tt.statusCode, wrapped.StatusCode())
			assert.True(t, wrapped.headerWritten)
			assert.Equal(t, tt.statusCode, rec.Code)
		})
	}
}

func TestResponseWriter_WriteHeader_RepeatCallsIgnored(t *testing.T) {
	wrapped := Wrap(httptest.NewRecorder())

	wrapped.WriteHeader(http.StatusOK)
	wrapped.WriteHeader(http.StatusNotFound)

	// the first status sticks
	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
}

func TestResponseWriter_Write(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	n1, err1 := wrapped.Write([]byte(`{"message":`))
	n2, err2 := wrapped.Write([]byte(`"article deleted"}`))

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, n1+n2, wrapped.BytesWritten())
	assert.Equal(t, `{"message":"article deleted"}`, rec.Body.String())
}

func TestResponseWriter_Write_EmptyBody(t *testing.T) {
	wrapped := Wrap(httptest.NewRecorder())

	n, err := wrapped.Write([]byte{})

	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, wrapped.BytesWritten())
}

func TestResponseWriter_Write_ImplicitStatusCode(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	_, err := wrapped.Write([]byte("listing payload"))
	require.NoError(t, err)

	// a bare Write commits the 200 default
	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.True(t, wrapped.headerWritten)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	assert.Equal(t, rec, wrapped.Unwrap())
}

func TestResponseWriter_MiddlewarePattern(t *testing.T) {
	// The logging middleware reads the metrics after the handler returns.
	var gotStatus, gotBytes int
	middleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := Wrap(w)
			next.ServeHTTP(wrapped, r)
			gotStatus = wrapped.StatusCode()
			gotBytes = wrapped.BytesWritten()
		})
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"article not found"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/articles/999", nil)
	rec := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `{"error":"article not found"}`, rec.Body.String())
	assert.Equal(t, http.StatusNotFound, gotStatus)
	assert.Equal(t, len(`{"error":"article not found"}`), gotBytes)
}
