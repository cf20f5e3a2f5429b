package domain

// PurchaseRecord representa uma compra registrada para um vendedor
type PurchaseRecord struct {
	SellerID string         `json:"seller_id"`
	Items    []PurchaseItem `json:"items"`
}

// PurchaseItem representa uma linha de item dentro de uma compra
type PurchaseItem struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	// Discount é um percentual no intervalo [0, 100)
	Discount float64 `json:"discount"`
}

// SalesData agrupa as coleções de entrada da análise de desempenho
type SalesData struct {
	Sellers         []Seller         `json:"sellers"`
	Products        []Product        `json:"products"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records"`
}
