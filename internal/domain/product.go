package domain

// Product representa um item do catálogo de produtos
type Product struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name,omitempty"`
	Category      string  `json:"category,omitempty"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price,omitempty"`
}
