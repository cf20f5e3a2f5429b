package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AnalyzeSellers recebe as coleções de vendedores, produtos e compras e
// retorna o relatório de desempenho por vendedor, ordenado por lucro
func AnalyzeSellers(service analyzing.Analyzer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var data domain.SalesData
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			logger.WithError(err).Warn("seller-analysis: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		opts := analyzing.DefaultOptions()
		opts.SalesCountPolicy = analyzing.SalesCountPolicy(cfg.Analysis.SalesCountPolicy)
		opts.TopProductsLimit = cfg.Analysis.TopProductsLimit

		// O parâmetro policy sobrescreve a política configurada
		if policy := r.URL.Query().Get("policy"); policy != "" {
			opts.SalesCountPolicy = analyzing.SalesCountPolicy(policy)
		}

		logger.WithFields(log.Fields{
			"sellers":          len(data.Sellers),
			"purchase_records": len(data.PurchaseRecords),
		}).Info("seller-analysis: iniciando análise de desempenho")

		reports, err := service.Analyze(&data, opts)
		if err != nil {
			if errors.Is(err, analyzing.ErrInvalidInput) {
				logger.WithError(err).Warn("seller-analysis: entrada rejeitada pela validação")
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("seller-analysis: erro ao processar análise")
			apiErrors.WriteError(w, apiErrors.ErrAnalysisFailed, "Erro ao processar a análise", nil)
			return
		}

		logger.WithFields(log.Fields{
			"sellers_ranked": len(reports),
		}).Info("seller-analysis: relatório gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reports); err != nil {
			logger.WithError(err).Error("seller-analysis: erro ao codificar resposta")
		}
	})
}
