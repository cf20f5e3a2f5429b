package analyzing

import (
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
)

// RevenueStrategy calcula a receita de uma linha de item. O produto resolvido
// pelo SKU é sempre repassado; estratégias que não precisam dele podem ignorá-lo.
type RevenueStrategy func(item *domain.PurchaseItem, product *domain.Product) float64

// SalesCountPolicy define como o contador de vendas de um vendedor é incrementado
type SalesCountPolicy string

const (
	// SalesCountPerUnit incrementa o contador pela quantidade de cada item vendido
	SalesCountPerUnit SalesCountPolicy = "per-unit"
	// SalesCountPerRecord incrementa o contador uma vez por registro de compra
	SalesCountPerRecord SalesCountPolicy = "per-record"
)

// Valid retorna verdadeiro se a política é conhecida
func (p SalesCountPolicy) Valid() bool {
	return p == SalesCountPerUnit || p == SalesCountPerRecord
}

// Options carrega as estratégias injetadas e a configuração da agregação
type Options struct {
	// CalculateRevenue é a estratégia de receita aplicada a cada item
	CalculateRevenue RevenueStrategy
	// CalculateBonus é a estratégia de bônus aplicada a cada posição do ranking
	CalculateBonus ranking.BonusStrategy
	// SalesCountPolicy define a política do contador de vendas.
	// Vazio assume SalesCountPerUnit.
	SalesCountPolicy SalesCountPolicy
	// TopProductsLimit limita os produtos por vendedor no relatório.
	// Zero assume ranking.DefaultTopProductsLimit.
	TopProductsLimit int
}

// Analyzer define a interface de análise de desempenho de vendas
type Analyzer interface {
	// Analyze computa o relatório de desempenho por vendedor, ordenado por
	// lucro decrescente
	Analyze(data *domain.SalesData, opts Options) ([]*domain.SellerReport, error)
}
