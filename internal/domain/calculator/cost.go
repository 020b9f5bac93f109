package calculator

import "insumos_limpeza/internal/domain/entities"

// CostSummary is the monthly cost roll-up.
type CostSummary struct {
	Total       float64
	Discounted  float64
	DiscountPct float64
}

// AggregateCosts sums custoTotal over every category and applies the
// subscription discount multiplicatively.
func AggregateCosts(products entities.ProductsByCategory, discountPct float64) CostSummary {
	total := 0.0
	for _, c := range entities.ProductCategories {
		for _, p := range products.ByCategory(c) {
			total += p.CustoTotal
		}
	}
	return CostSummary{
		Total:       total,
		Discounted:  total * (1 - discountPct/100),
		DiscountPct: discountPct,
	}
}
