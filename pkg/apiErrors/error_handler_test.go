package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "validação", code: ErrInvalidFormat, wantStatus: http.StatusBadRequest},
		{name: "upload inválido", code: ErrInvalidUpload, wantStatus: http.StatusBadRequest},
		{name: "item não encontrado", code: ErrItemNotFound, wantStatus: http.StatusNotFound},
		{name: "integridade", code: ErrIntegrityViolation, wantStatus: http.StatusBadRequest},
		{name: "método não permitido", code: ErrMethodNotAllowed, wantStatus: http.StatusMethodNotAllowed},
		{name: "serviço indisponível", code: ErrServiceUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "erro"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}
