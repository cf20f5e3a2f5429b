// Package analyzing computa as métricas de desempenho de vendas por vendedor
// a partir das coleções em memória de vendedores, produtos e compras.
package analyzing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
)

type Service struct {
	rankingService ranking.RankingService
}

func NewService(rankingService ranking.RankingService) Analyzer {
	return &Service{
		rankingService: rankingService,
	}
}

// Analyze valida as entradas, agrega as métricas por vendedor e delega a
// ordenação, o bônus e a projeção ao serviço de ranking.
//
// Campos numéricos corrompidos (NaN, infinitos) não são validados e se
// propagam para o relatório final. A validação se limita à forma das
// coleções e à presença das estratégias.
func (s *Service) Analyze(data *domain.SalesData, opts Options) ([]*domain.SellerReport, error) {
	if err := validate(data, opts); err != nil {
		return nil, err
	}

	policy := opts.SalesCountPolicy
	if policy == "" {
		policy = SalesCountPerUnit
	}

	logrus.WithFields(logrus.Fields{
		"sellers":            len(data.Sellers),
		"products":           len(data.Products),
		"purchase_records":   len(data.PurchaseRecords),
		"sales_count_policy": string(policy),
	}).Debug("Iniciando análise de desempenho de vendas")

	sellerStats := s.aggregate(data, opts, policy)

	s.rankingService.RankSellers(sellerStats, opts.CalculateBonus)

	return s.rankingService.BuildReports(sellerStats, opts.TopProductsLimit), nil
}

// validate rejeita entradas malformadas antes de qualquer agregação.
// Falha no primeiro problema encontrado.
func validate(data *domain.SalesData, opts Options) error {
	if data == nil {
		return ErrNilData
	}

	if data.PurchaseRecords == nil {
		return ErrMissingPurchases
	}

	if data.Products == nil {
		return ErrMissingProducts
	}

	if data.Sellers == nil {
		return ErrMissingSellers
	}

	if opts.CalculateRevenue == nil {
		return ErrMissingRevenueCalc
	}

	if opts.CalculateBonus == nil {
		return ErrMissingBonusCalc
	}

	if opts.SalesCountPolicy != "" && !opts.SalesCountPolicy.Valid() {
		return ErrUnknownPolicy
	}

	return nil
}

// aggregate constrói um acumulador por vendedor do roster e percorre os
// registros de compra acumulando receita, lucro, contagem de vendas e
// quantidades por SKU.
//
// Compras de vendedores desconhecidos e itens de SKUs desconhecidos são
// silenciosamente ignorados, sem interromper a agregação.
func (s *Service) aggregate(data *domain.SalesData, opts Options, policy SalesCountPolicy) []*domain.SellerStats {
	sellerStats := make([]*domain.SellerStats, 0, len(data.Sellers))
	sellerIndex := make(map[string]*domain.SellerStats, len(data.Sellers))
	for _, seller := range data.Sellers {
		stats := domain.NewSellerStats(seller)
		sellerStats = append(sellerStats, stats)
		sellerIndex[seller.ID] = stats
	}

	productIndex := make(map[string]*domain.Product, len(data.Products))
	for _, product := range data.Products {
		productIndex[product.SKU] = &product
	}

	skippedRecords := 0
	skippedItems := 0

	for _, record := range data.PurchaseRecords {
		seller, found := sellerIndex[record.SellerID]
		if !found {
			skippedRecords++
			continue
		}

		if policy == SalesCountPerRecord {
			seller.SalesCount++
		}

		for _, item := range record.Items {
			product, found := productIndex[item.SKU]
			if !found {
				skippedItems++
				continue
			}

			seller.Revenue += opts.CalculateRevenue(&item, product)
			seller.Profit += itemProfit(&item, product)

			if policy == SalesCountPerUnit {
				seller.SalesCount += item.Quantity
			}

			seller.AddProductQuantity(item.SKU, item.Quantity)
		}
	}

	if skippedRecords > 0 || skippedItems > 0 {
		logrus.WithFields(logrus.Fields{
			"skipped_records": skippedRecords,
			"skipped_items":   skippedItems,
		}).Debug("Registros com vendedor ou SKU desconhecido ignorados na agregação")
	}

	return sellerStats
}

// itemProfit calcula o lucro de uma linha de item: valor líquido da venda
// menos o custo de aquisição. A fórmula é fixa e independe da estratégia de
// receita injetada.
func itemProfit(item *domain.PurchaseItem, product *domain.Product) float64 {
	quantity := float64(item.Quantity)
	return item.SalePrice*quantity*(1-item.Discount/100) - product.PurchasePrice*quantity
}
