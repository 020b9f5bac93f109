// Package calculator estimates monthly cleaning-supplies needs from a business
// profile and prices them against a catalog.
//
// Every step is a pure function over plain values: aggregate usage, resolve
// multipliers, compute per-line quantities, roll up costs and assemble the
// report. Calculator only carries the catalog and is safe for concurrent use.
package calculator

import "insumos_limpeza/internal/domain/entities"

// Calculator prices inputs against the catalog it was built with by New.
type Calculator struct {
	catalog Catalog
}

// New returns a Calculator bound to a private copy of catalog.
func New(catalog Catalog) *Calculator {
	return &Calculator{catalog: catalog.Clone()}
}

// Catalog returns a copy of the catalog the calculator prices against.
func (c *Calculator) Catalog() Catalog {
	return c.catalog.Clone()
}

// Calculate runs the full estimation pipeline. It never fails; input
// validation is the caller's responsibility.
func (c *Calculator) Calculate(in entities.CalculatorInput) entities.CalculationResult {
	usage := AggregateUsage(in)
	products := Products(usage, c.catalog)
	costs := AggregateCosts(products, c.catalog.PercentualDesconto)
	estimativa, relatorio := AssembleReport(in, usage, products, costs)

	return entities.CalculationResult{
		TotalAreaM2:          usage.TotalAreaM2,
		NumeroFuncionarios:   in.NumeroFuncionarios,
		ProdutosPorCategoria: products,
		CustoMensalTotal:     costs.Total,
		PercentualDesconto:   costs.DiscountPct,
		CustoComDesconto:     costs.Discounted,
		EstimativaMensal:     estimativa,
		RelatorioDetalhado:   relatorio,
	}
}

// Calculate runs the pipeline against DefaultCatalog.
func Calculate(in entities.CalculatorInput) entities.CalculationResult {
	return New(DefaultCatalog()).Calculate(in)
}
