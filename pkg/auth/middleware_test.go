package auth

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	valid, err := jwtService.GenerateJWT(42, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserID(r.Context())
		assert.True(t, ok)
		w.Write([]byte(strconv.Itoa(id)))
	})
	handler := Middleware(jwtService)(next)

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedBody string
	}{
		{"Valid token", "Bearer " + valid, http.StatusOK, "42"},
		{"Missing header", "", http.StatusUnauthorized, ""},
		{"Wrong scheme", "Basic " + valid, http.StatusUnauthorized, ""},
		{"Bad token", "Bearer nope", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/user/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestUserIDMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := UserID(req.Context())
	assert.False(t, ok)
}
