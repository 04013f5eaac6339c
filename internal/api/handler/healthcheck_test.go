package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fruit-shop-api/pkg/apiErrors"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func TestHealthcheckHandler(t *testing.T) {
	t.Run("banco disponível", func(t *testing.T) {
		called := false
		db := pingerFunc(func(ctx context.Context) error {
			called = true
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		})

		rec := httptest.NewRecorder()
		HealthcheckHandler(db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
		assert.NotEmpty(t, body["time"])
	})

	t.Run("banco indisponível", func(t *testing.T) {
		db := pingerFunc(func(context.Context) error {
			return errors.New("connection refused")
		})

		rec := httptest.NewRecorder()
		HealthcheckHandler(db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, apiErrors.ErrServiceUnavailable, decodeAPIError(t, rec).Code)
	})
}
