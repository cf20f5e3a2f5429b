package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func TestSimpleRevenue(t *testing.T) {
	tests := []struct {
		name string
		item domain.PurchaseItem
		want float64
	}{
		{
			name: "sem desconto",
			item: domain.PurchaseItem{Quantity: 2, SalePrice: 20},
			want: 40,
		},
		{
			name: "com desconto percentual",
			item: domain.PurchaseItem{Quantity: 4, SalePrice: 25, Discount: 10},
			want: 90,
		},
		{
			name: "quantidade zero",
			item: domain.PurchaseItem{Quantity: 0, SalePrice: 99},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimpleRevenue(&tt.item, nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNetRevenue(t *testing.T) {
	item := domain.PurchaseItem{Quantity: 2, SalePrice: 20}
	product := domain.Product{SKU: "A", PurchasePrice: 10}

	// 40 de venda menos 20 de custo
	assert.Equal(t, 20.0, NetRevenue(&item, &product))
}

func TestBonusByProfit(t *testing.T) {
	seller := &domain.SellerStats{Profit: 1000}

	tests := []struct {
		name  string
		index int
		total int
		want  float64
	}{
		{name: "primeiro colocado recebe 15%", index: 0, total: 5, want: 150},
		{name: "segundo colocado recebe 10%", index: 1, total: 5, want: 100},
		{name: "terceiro colocado recebe 10%", index: 2, total: 5, want: 100},
		{name: "posição intermediária recebe 5%", index: 3, total: 5, want: 50},
		{name: "último colocado não recebe bônus", index: 4, total: 5, want: 0},
		{name: "vendedor único não recebe bônus", index: 0, total: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BonusByProfit(tt.index, tt.total, seller)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.NotNil(t, opts.CalculateRevenue)
	assert.NotNil(t, opts.CalculateBonus)
	assert.Equal(t, SalesCountPerUnit, opts.SalesCountPolicy)
}
