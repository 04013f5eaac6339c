package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/importing"
	"github.com/vfg2006/fruit-shop-api/pkg/apiErrors"
)

const (
	csvFormField   = "file"
	csvContentType = "text/csv"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// UploadSalesCSV importa vendas de um arquivo CSV enviado no campo "file".
// O arquivo precisa ter Content-Type text/csv e estar em UTF-8; qualquer outro
// formato é rejeitado por inteiro antes de processar as linhas.
func UploadSalesCSV(importer importing.SalesImporter, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidUpload, "Arquivo excede o tamanho máximo permitido", map[string]int64{"max_bytes": maxUploadBytes})
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidUpload, "Envie o arquivo CSV como multipart/form-data", nil)
			return
		}

		file, header, err := r.FormFile(csvFormField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'file' é obrigatório", nil)
			return
		}
		defer file.Close()

		if contentType := header.Header.Get("Content-Type"); contentType != csvContentType {
			apiErrors.WriteError(w, apiErrors.ErrInvalidUpload, "O arquivo enviado não é um CSV", map[string]string{"content_type": contentType})
			return
		}

		content, err := io.ReadAll(file)
		if err != nil {
			logrus.WithError(err).Error("Erro ao ler arquivo enviado")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao ler arquivo enviado", nil)
			return
		}

		if !utf8.Valid(content) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidUpload, "O arquivo deve estar codificado em UTF-8", nil)
			return
		}
		content = bytes.TrimPrefix(content, utf8BOM)

		summary, err := importer.ImportCSV(r.Context(), bytes.NewReader(content))
		if err != nil {
			var importErr *importing.ImportError
			if errors.As(err, &importErr) {
				apiErrors.WriteError(w, importErr.Code, importErr.Error(), summary)
				return
			}
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
