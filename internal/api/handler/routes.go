package handler

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/internal/api/handler/router"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// SellerAnalysis retorna as rotas de análise de desempenho de vendedores
func SellerAnalysis(service analyzing.Analyzer, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sellers/analysis",
			Method:  http.MethodPost,
			Handler: AnalyzeSellers(service, cfg),
		},
	}
}
