package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/authenticating"
	"github.com/vfg2006/fruit-shop-api/pkg/apiErrors"
	"github.com/vfg2006/fruit-shop-api/pkg/middleware"
)

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.LoginRequest
		if !decodeBody(w, r, &request) || !validateRequest(w, &request) {
			return
		}

		token, err := service.LoginUser(request.Email, request.Password)
		if err != nil {
			if authenticating.IsCredentialsError(err) {
				logrus.WithField("user_email", request.Email).Warn("Tentativa de login recusada")
			}
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(userClaims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
