package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fruit-shop-api/internal/config"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/authenticating"
)

const testSecret = "test_secret"

func signToken(t *testing.T, roleID int, expiresAt time.Time) string {
	t.Helper()

	claims := domain.Claims{
		UserID:     7,
		UserName:   "Maria",
		UserEmail:  "maria@fruitshop.com",
		UserRoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestAuthAndRoleMiddleware(t *testing.T) {
	authService := authenticating.NewService(nil, &config.Config{SecretKey: testSecret})

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := UserFromContext(r.Context()); ok {
			assert.Equal(t, 7, claims.UserID)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	adminChain := AuthMiddleware(authService)(AdminOnly()(okHandler))

	tests := []struct {
		name          string
		path          string
		authorization string
		wantStatus    int
	}{
		{
			name:       "rota pública sem token",
			path:       "/healthcheck",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "sem cabeçalho Authorization",
			path:       "/v1/users",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:          "sem prefixo Bearer",
			path:          "/v1/users",
			authorization: signToken(t, RoleAdmin, time.Now().Add(time.Hour)),
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "token expirado",
			path:          "/v1/users",
			authorization: "Bearer " + signToken(t, RoleAdmin, time.Now().Add(-time.Hour)),
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "funcionário em rota de administrador",
			path:          "/v1/users",
			authorization: "Bearer " + signToken(t, RoleStaff, time.Now().Add(time.Hour)),
			wantStatus:    http.StatusForbidden,
		},
		{
			name:          "administrador autorizado",
			path:          "/v1/users",
			authorization: "Bearer " + signToken(t, RoleAdmin, time.Now().Add(time.Hour)),
			wantStatus:    http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()

			handler := http.Handler(adminChain)
			if tt.path == "/healthcheck" {
				handler = AuthMiddleware(authService)(okHandler)
			}
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/items", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/items", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
