package domain

import "sort"

// SellerStats é o acumulador de desempenho de um vendedor durante a agregação.
// Uma instância é criada por vendedor do roster e descartada ao final da análise.
type SellerStats struct {
	SellerID   string
	Name       string
	Revenue    float64
	Profit     float64
	SalesCount int
	Bonus      float64

	// productQuantities acumula a quantidade vendida por SKU; skuOrder preserva
	// a ordem de primeira inserção para desempate na projeção
	productQuantities map[string]int
	skuOrder          []string
}

// NewSellerStats cria um acumulador zerado para o vendedor informado
func NewSellerStats(seller Seller) *SellerStats {
	return &SellerStats{
		SellerID:          seller.ID,
		Name:              seller.FullName(),
		productQuantities: make(map[string]int),
	}
}

// AddProductQuantity incrementa a quantidade acumulada de um SKU
func (s *SellerStats) AddProductQuantity(sku string, quantity int) {
	if _, exists := s.productQuantities[sku]; !exists {
		s.skuOrder = append(s.skuOrder, sku)
	}
	s.productQuantities[sku] += quantity
}

// TopProducts retorna os SKUs com maior quantidade acumulada, em ordem
// decrescente de quantidade. Empates mantêm a ordem de primeira inserção.
func (s *SellerStats) TopProducts(limit int) []ProductQuantity {
	products := make([]ProductQuantity, 0, len(s.skuOrder))
	for _, sku := range s.skuOrder {
		products = append(products, ProductQuantity{
			SKU:      sku,
			Quantity: s.productQuantities[sku],
		})
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Quantity > products[j].Quantity
	})

	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}

	return products
}
