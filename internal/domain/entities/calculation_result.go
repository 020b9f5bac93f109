package entities

// ProductCategory groups catalog lines in the result.
type ProductCategory string

const (
	CategoriaHigiene            ProductCategory = "higiene"
	CategoriaLimpezaSuperficies ProductCategory = "limpeza_superficies"
	CategoriaColetaResiduos     ProductCategory = "coleta_residuos"
	CategoriaAcessorios         ProductCategory = "acessorios"
)

// ProductCategories is the fixed category order used by reports and exports.
var ProductCategories = []ProductCategory{
	CategoriaHigiene,
	CategoriaLimpezaSuperficies,
	CategoriaColetaResiduos,
	CategoriaAcessorios,
}

func (c ProductCategory) Valid() bool {
	for _, known := range ProductCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c ProductCategory) Label() string {
	switch c {
	case CategoriaHigiene:
		return "Higiene"
	case CategoriaLimpezaSuperficies:
		return "Limpeza de superfícies"
	case CategoriaColetaResiduos:
		return "Coleta de resíduos"
	case CategoriaAcessorios:
		return "Acessórios"
	default:
		return string(c)
	}
}

// ProductRecommendation is the result for one catalog line.
//
// Formula is a human-readable description of the derivation, kept for
// display and audit only.
type ProductRecommendation struct {
	Nome          string          `json:"nome"`
	Categoria     ProductCategory `json:"categoria"`
	Quantidade    int             `json:"quantidade"`
	Unidade       string          `json:"unidade"`
	CustoUnitario float64         `json:"custoUnitario"`
	CustoTotal    float64         `json:"custoTotal"`
	Formula       string          `json:"formula"`
}

// ProductsByCategory holds the four category lists in catalog order.
type ProductsByCategory struct {
	Higiene            []ProductRecommendation `json:"higiene"`
	LimpezaSuperficies []ProductRecommendation `json:"limpezaSuperficies"`
	ColetaResiduos     []ProductRecommendation `json:"coletaResiduos"`
	Acessorios         []ProductRecommendation `json:"acessorios"`
}

// ByCategory returns the list for c, or nil for an unknown category.
func (p ProductsByCategory) ByCategory(c ProductCategory) []ProductRecommendation {
	switch c {
	case CategoriaHigiene:
		return p.Higiene
	case CategoriaLimpezaSuperficies:
		return p.LimpezaSuperficies
	case CategoriaColetaResiduos:
		return p.ColetaResiduos
	case CategoriaAcessorios:
		return p.Acessorios
	}
	return nil
}

// All flattens the four lists in category order.
func (p ProductsByCategory) All() []ProductRecommendation {
	out := make([]ProductRecommendation, 0, len(p.Higiene)+len(p.LimpezaSuperficies)+len(p.ColetaResiduos)+len(p.Acessorios))
	for _, c := range ProductCategories {
		out = append(out, p.ByCategory(c)...)
	}
	return out
}

// EnvironmentReport is the per-environment view of the detailed report.
type EnvironmentReport struct {
	AmbienteID            string                  `json:"ambienteId"`
	Tipo                  EnvironmentType         `json:"tipo"`
	TipoDescricao         string                  `json:"tipoDescricao"`
	AreaM2                float64                 `json:"areaM2"`
	FuncionariosEstimados int                     `json:"funcionariosEstimados"`
	ProdutosRecomendados  []ProductRecommendation `json:"produtosRecomendados"`
}

// DetailedReport is the structured human-readable summary.
type DetailedReport struct {
	Ambientes []EnvironmentReport `json:"ambientes"`
	Resumo    string              `json:"resumo"`
}

// CalculationResult is the aggregate output of one calculation run.
type CalculationResult struct {
	TotalAreaM2          float64            `json:"totalAreaM2"`
	NumeroFuncionarios   int                `json:"numeroFuncionarios"`
	ProdutosPorCategoria ProductsByCategory `json:"produtosPorCategoria"`
	CustoMensalTotal     float64            `json:"custoMensalTotal"`
	PercentualDesconto   float64            `json:"percentualDesconto"`
	CustoComDesconto     float64            `json:"custoComDesconto"`
	EstimativaMensal     string             `json:"estimativaMensal"`
	RelatorioDetalhado   DetailedReport     `json:"relatorioDetalhado"`
}
