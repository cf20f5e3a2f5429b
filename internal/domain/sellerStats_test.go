package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSellerStats(t *testing.T) {
	stats := NewSellerStats(Seller{ID: "S1", FirstName: "Ana", LastName: "Souza"})

	assert.Equal(t, "S1", stats.SellerID)
	assert.Equal(t, "Ana Souza", stats.Name)
	assert.Equal(t, 0.0, stats.Revenue)
	assert.Equal(t, 0.0, stats.Profit)
	assert.Equal(t, 0, stats.SalesCount)
	assert.Equal(t, 0.0, stats.Bonus)
	assert.Empty(t, stats.TopProducts(0))
}

func TestSellerStats_AddProductQuantity(t *testing.T) {
	stats := NewSellerStats(Seller{ID: "S1", FirstName: "Ana", LastName: "Souza"})

	stats.AddProductQuantity("A", 2)
	stats.AddProductQuantity("B", 5)
	stats.AddProductQuantity("A", 3)

	products := stats.TopProducts(0)

	// A soma 5 para cada SKU; "A" veio primeiro na inserção
	assert.Equal(t, []ProductQuantity{
		{SKU: "A", Quantity: 5},
		{SKU: "B", Quantity: 5},
	}, products)
}

func TestSellerStats_TopProductsTieKeepsInsertionOrder(t *testing.T) {
	stats := NewSellerStats(Seller{ID: "S1", FirstName: "Ana", LastName: "Souza"})

	stats.AddProductQuantity("C", 4)
	stats.AddProductQuantity("A", 4)
	stats.AddProductQuantity("B", 4)

	// Quantidades iguais: prevalece a ordem de primeira inserção
	assert.Equal(t, []ProductQuantity{
		{SKU: "C", Quantity: 4},
		{SKU: "A", Quantity: 4},
		{SKU: "B", Quantity: 4},
	}, stats.TopProducts(0))
}

func TestSellerStats_TopProductsLimit(t *testing.T) {
	stats := NewSellerStats(Seller{ID: "S1", FirstName: "Ana", LastName: "Souza"})

	for i := 0; i < 15; i++ {
		stats.AddProductQuantity(string(rune('A'+i)), 15-i)
	}

	products := stats.TopProducts(10)
	assert.Len(t, products, 10)

	for i, product := range products {
		assert.Equal(t, 15-i, product.Quantity)
	}
}
