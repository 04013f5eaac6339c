package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/importing/mocks"
	"github.com/vfg2006/fruit-shop-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newUploadRequest(t *testing.T, contentType string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="sales.csv"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/sales/csv-upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestUploadSalesCSV(t *testing.T) {
	csvContent := []byte("Apple,1,100,2020-01-01 10:00\nBanana,x,5,2020-01-01 11:00\n")

	t.Run("importa arquivo CSV", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		importer := mocks.NewMockSalesImporter(ctrl)

		importer.EXPECT().
			ImportCSV(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r io.Reader) (*domain.ImportSummary, error) {
				content, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, csvContent, content)
				return &domain.ImportSummary{Rows: 2, Created: 1, Discarded: 1}, nil
			})

		rec := httptest.NewRecorder()
		UploadSalesCSV(importer, 1<<20)(rec, newUploadRequest(t, "text/csv", csvContent))

		require.Equal(t, http.StatusOK, rec.Code)
		var summary domain.ImportSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
		assert.Equal(t, domain.ImportSummary{Rows: 2, Created: 1, Discarded: 1}, summary)
	})

	t.Run("remove BOM antes de importar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		importer := mocks.NewMockSalesImporter(ctrl)

		importer.EXPECT().
			ImportCSV(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r io.Reader) (*domain.ImportSummary, error) {
				content, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, csvContent, content)
				return &domain.ImportSummary{Rows: 2, Created: 1, Discarded: 1}, nil
			})

		withBOM := append([]byte{0xEF, 0xBB, 0xBF}, csvContent...)
		rec := httptest.NewRecorder()
		UploadSalesCSV(importer, 1<<20)(rec, newUploadRequest(t, "text/csv", withBOM))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejeita arquivo que não é CSV", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		importer := mocks.NewMockSalesImporter(ctrl)

		rec := httptest.NewRecorder()
		UploadSalesCSV(importer, 1<<20)(rec, newUploadRequest(t, "application/json", []byte(`{"a":1}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidUpload, decodeAPIError(t, rec).Code)
	})

	t.Run("rejeita conteúdo fora de UTF-8", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		importer := mocks.NewMockSalesImporter(ctrl)

		rec := httptest.NewRecorder()
		UploadSalesCSV(importer, 1<<20)(rec, newUploadRequest(t, "text/csv", []byte{0xff, 0xfe, 'A'}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidUpload, decodeAPIError(t, rec).Code)
	})

	t.Run("requisição sem multipart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		importer := mocks.NewMockSalesImporter(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/sales/csv-upload", bytes.NewReader(csvContent))
		req.Header.Set("Content-Type", "text/csv")
		rec := httptest.NewRecorder()
		UploadSalesCSV(importer, 1<<20)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidUpload, decodeAPIError(t, rec).Code)
	})
}
