// Package ranking ordena os acumuladores de vendedores por desempenho,
// atribui bônus por posição e projeta o relatório final.
package ranking

import (
	"sort"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

// DefaultTopProductsLimit é o número máximo de produtos por vendedor no relatório
const DefaultTopProductsLimit = 10

// BonusStrategy calcula o bônus de um vendedor a partir da sua posição no
// ranking (index, base zero), do total de vendedores e do acumulador
type BonusStrategy func(index, total int, seller *domain.SellerStats) float64

type RankingService interface {
	RankSellers(stats []*domain.SellerStats, calculateBonus BonusStrategy)
	BuildReports(stats []*domain.SellerStats, topProductsLimit int) []*domain.SellerReport
}

type SellerRankingService struct{}

func NewSellerRankingService() RankingService {
	return &SellerRankingService{}
}

// RankSellers ordena os acumuladores por lucro decrescente e atribui o bônus
// de cada posição. A ordenação é estável: empates de lucro preservam a ordem
// original do roster.
func (s *SellerRankingService) RankSellers(stats []*domain.SellerStats, calculateBonus BonusStrategy) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Profit > stats[j].Profit
	})

	total := len(stats)
	for index, seller := range stats {
		seller.Bonus = calculateBonus(index, total, seller)
	}
}

// BuildReports projeta os acumuladores já ordenados no formato final do
// relatório, arredondando os valores monetários para duas casas decimais
func (s *SellerRankingService) BuildReports(stats []*domain.SellerStats, topProductsLimit int) []*domain.SellerReport {
	if topProductsLimit <= 0 {
		topProductsLimit = DefaultTopProductsLimit
	}

	reports := make([]*domain.SellerReport, 0, len(stats))
	for _, seller := range stats {
		reports = append(reports, &domain.SellerReport{
			SellerID:    seller.SellerID,
			Name:        seller.Name,
			Revenue:     utils.RoundWithTwoDecimalPlace(seller.Revenue),
			Profit:      utils.RoundWithTwoDecimalPlace(seller.Profit),
			SalesCount:  seller.SalesCount,
			TopProducts: seller.TopProducts(topProductsLimit),
			Bonus:       utils.RoundWithTwoDecimalPlace(seller.Bonus),
		})
	}

	return reports
}
