package domain

// ProductQuantity representa um SKU e sua quantidade acumulada
type ProductQuantity struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// SellerReport é a projeção final do desempenho de um vendedor.
// Os valores monetários já estão arredondados para duas casas decimais.
type SellerReport struct {
	SellerID    string            `json:"seller_id"`
	Name        string            `json:"name"`
	Revenue     float64           `json:"revenue"`
	Profit      float64           `json:"profit"`
	SalesCount  int               `json:"sales_count"`
	TopProducts []ProductQuantity `json:"top_products"`
	Bonus       float64           `json:"bonus"`
}
