package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/selling"
	"github.com/vfg2006/fruit-shop-api/pkg/apiErrors"
	"github.com/vfg2006/fruit-shop-api/pkg/utils"
)

// saleForm é o corpo aceito na criação e edição de vendas; sold_at usa "YYYY-MM-DD HH:MM"
// no fuso da aplicação ou RFC 3339
type saleForm struct {
	ItemID   string  `json:"item_id"`
	Quantity *int    `json:"quantity"`
	Amount   *int64  `json:"amount"`
	SoldAt   *string `json:"sold_at"`
}

func parseSoldAt(value string, loc *time.Location) (time.Time, error) {
	soldAt, err := utils.ParseSaleTimestamp(value, domain.SaleTimestampLayout, loc)
	if err == nil {
		return soldAt, nil
	}
	return time.Parse(time.RFC3339, strings.TrimSpace(value))
}

// ListSales lista as vendas, opcionalmente filtradas por ?year=&month=&day=
func ListSales(service selling.SellingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var filter domain.SaleFilter
		params := []struct {
			name   string
			target *int
		}{
			{"year", &filter.Year},
			{"month", &filter.Month},
			{"day", &filter.Day},
		}

		for _, param := range params {
			value, err := utils.ParseOptionalInt(query.Get(param.name))
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtro de data inválido", map[string]string{param.name: query.Get(param.name)})
				return
			}
			*param.target = value
		}

		sales, err := service.ListSales(&filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sales)
	}
}

func CreateSale(service selling.SellingService, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form saleForm
		if !decodeBody(w, r, &form) {
			return
		}

		request := domain.CreateSaleRequest{
			ItemID: strings.TrimSpace(form.ItemID),
			Amount: form.Amount,
		}
		if form.Quantity != nil {
			request.Quantity = *form.Quantity
		}
		if form.SoldAt != nil {
			soldAt, err := parseSoldAt(*form.SoldAt, loc)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data da venda inválida", map[string]string{"sold_at": *form.SoldAt})
				return
			}
			request.SoldAt = soldAt
		}

		if !validateRequest(w, &request) {
			return
		}

		sale, err := service.CreateSale(&request)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, sale)
	}
}

func GetSale(service selling.SellingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sale, err := service.GetSale(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sale)
	}
}

// UpdateSale altera quantidade e data; um valor enviado no corpo é ignorado
func UpdateSale(service selling.SellingService, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form saleForm
		if !decodeBody(w, r, &form) {
			return
		}

		request := domain.UpdateSaleRequest{
			ID:       httprouter.ParamsFromContext(r.Context()).ByName("id"),
			Quantity: form.Quantity,
		}
		if form.SoldAt != nil {
			soldAt, err := parseSoldAt(*form.SoldAt, loc)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data da venda inválida", map[string]string{"sold_at": *form.SoldAt})
				return
			}
			request.SoldAt = &soldAt
		}

		if !validateRequest(w, &request) {
			return
		}

		sale, err := service.UpdateSale(&request)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sale)
	}
}

func DeleteSale(service selling.SellingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteSale(httprouter.ParamsFromContext(r.Context()).ByName("id")); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
