package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/inventory"
	"github.com/vfg2006/fruit-shop-api/pkg/apiErrors"
	"github.com/vfg2006/fruit-shop-api/pkg/utils"
)

// ListItems lista os itens paginados de 10 em 10 (?page=N)
func ListItems(service inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := utils.ParseOptionalInt(r.URL.Query().Get("page"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Página inválida", nil)
			return
		}

		items, err := service.ListItems(page)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

func CreateItem(service inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateItemRequest
		if !decodeBody(w, r, &request) || !validateRequest(w, &request) {
			return
		}

		item, err := service.CreateItem(&request)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, item)
	}
}

func GetItem(service inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		item, err := service.GetItem(id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

func UpdateItem(service inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.UpdateItemRequest
		if !decodeBody(w, r, &request) || !validateRequest(w, &request) {
			return
		}
		request.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		item, err := service.UpdateItem(&request)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

// DeleteItem remove o item e todas as suas vendas
func DeleteItem(service inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteItem(id); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
