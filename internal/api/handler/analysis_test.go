package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Analysis: config.Analysis{
			SalesCountPolicy: "per-unit",
			TopProductsLimit: 10,
		},
	}
}

const validBody = `{
	"sellers": [{"id": "S1", "first_name": "Ana", "last_name": "Souza"}],
	"products": [{"sku": "A", "purchase_price": 10}],
	"purchase_records": [{"seller_id": "S1", "items": [{"sku": "A", "quantity": 2, "sale_price": 20, "discount": 0}]}]
}`

func TestAnalyzeSellers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	reports := []*domain.SellerReport{
		{
			SellerID:    "S1",
			Name:        "Ana Souza",
			Revenue:     40,
			Profit:      20,
			SalesCount:  2,
			TopProducts: []domain.ProductQuantity{{SKU: "A", Quantity: 2}},
			Bonus:       0,
		},
	}

	mockAnalyzer.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(data *domain.SalesData, opts analyzing.Options) ([]*domain.SellerReport, error) {
			assert.Len(t, data.Sellers, 1)
			assert.Len(t, data.Products, 1)
			assert.Len(t, data.PurchaseRecords, 1)
			assert.Equal(t, analyzing.SalesCountPerUnit, opts.SalesCountPolicy)
			assert.Equal(t, 10, opts.TopProductsLimit)
			return reports, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/sellers/analysis", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	AnalyzeSellers(mockAnalyzer, testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []*domain.SellerReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, reports, got)
}

func TestAnalyzeSellers_PolicyQueryOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	mockAnalyzer.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(data *domain.SalesData, opts analyzing.Options) ([]*domain.SellerReport, error) {
			// O parâmetro policy sobrescreve a configuração
			assert.Equal(t, analyzing.SalesCountPerRecord, opts.SalesCountPolicy)
			return []*domain.SellerReport{}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/sellers/analysis?policy=per-record", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	AnalyzeSellers(mockAnalyzer, testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnalyzeSellers_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/v1/sellers/analysis", strings.NewReader("{invalid"))
	rec := httptest.NewRecorder()

	AnalyzeSellers(mockAnalyzer, testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
}

func TestAnalyzeSellers_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	mockAnalyzer.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		Return(nil, analyzing.ErrMissingSellers)

	req := httptest.NewRequest(http.MethodPost, "/v1/sellers/analysis", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	AnalyzeSellers(mockAnalyzer, testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
}

func TestAnalyzeSellers_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	mockAnalyzer.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodPost, "/v1/sellers/analysis", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	AnalyzeSellers(mockAnalyzer, testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrAnalysisFailed, apiErr.Code)
}
