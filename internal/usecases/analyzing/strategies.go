package analyzing

import (
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// SimpleRevenue é a estratégia de receita padrão: valor da venda com o
// desconto percentual aplicado. O produto é ignorado.
func SimpleRevenue(item *domain.PurchaseItem, _ *domain.Product) float64 {
	quantity := float64(item.Quantity)
	return item.SalePrice * quantity * (1 - item.Discount/100)
}

// NetRevenue é a variante de receita que desconta o custo de aquisição do
// produto, equivalente à fórmula interna de lucro
func NetRevenue(item *domain.PurchaseItem, product *domain.Product) float64 {
	return SimpleRevenue(item, nil) - product.PurchasePrice*float64(item.Quantity)
}

// BonusByProfit é a estratégia de bônus padrão, por faixas de posição:
// último colocado não recebe bônus, primeiro recebe 15% do lucro, segundo e
// terceiro recebem 10%, os demais 5%.
//
// A regra de último colocado é avaliada primeiro: com um único vendedor no
// ranking ele é simultaneamente primeiro e último, e o bônus é zero.
func BonusByProfit(index, total int, seller *domain.SellerStats) float64 {
	if index == total-1 {
		return 0
	}

	if index == 0 {
		return seller.Profit * 0.15
	}

	if index == 1 || index == 2 {
		return seller.Profit * 0.10
	}

	return seller.Profit * 0.05
}

// DefaultOptions retorna as opções de análise com as estratégias padrão
func DefaultOptions() Options {
	return Options{
		CalculateRevenue: SimpleRevenue,
		CalculateBonus:   BonusByProfit,
		SalesCountPolicy: SalesCountPerUnit,
	}
}
