package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/authenticating"
)

// CreateUser cria um novo usuário
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateUserRequest
		if !decodeBody(w, r, &request) || !validateRequest(w, &request) {
			return
		}

		user, err := service.CreateUser(&request)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// ListUsers lista todos os usuários
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser()
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}
