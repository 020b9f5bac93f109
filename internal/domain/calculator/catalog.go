package calculator

import "insumos_limpeza/internal/domain/entities"

// ProductLine identifies one of the fixed catalog lines the calculator prices.
type ProductLine string

const (
	LinePapelToalha      ProductLine = "papel_toalha"
	LinePapelHigienico   ProductLine = "papel_higienico"
	LineSaboneteLiquido  ProductLine = "sabonete_liquido"
	LineDesinfetante     ProductLine = "desinfetante"
	LineAlcool70         ProductLine = "alcool_70"
	LineDetergenteNeutro ProductLine = "detergente_neutro"
	LineLimpaVidros      ProductLine = "limpa_vidros"
	LineSacosLixo        ProductLine = "sacos_lixo"
	LinePanosMicrofibra  ProductLine = "panos_microfibra"
)

// ProductLines is the fixed evaluation and display order.
var ProductLines = []ProductLine{
	LinePapelToalha,
	LinePapelHigienico,
	LineSaboneteLiquido,
	LineDesinfetante,
	LineAlcool70,
	LineDetergenteNeutro,
	LineLimpaVidros,
	LineSacosLixo,
	LinePanosMicrofibra,
}

// CatalogItem is the commercial data of one product line.
type CatalogItem struct {
	Nome          string                   `yaml:"nome" json:"nome"`
	Categoria     entities.ProductCategory `yaml:"categoria" json:"categoria"`
	Unidade       string                   `yaml:"unidade" json:"unidade"`
	CustoUnitario float64                  `yaml:"custo_unitario" json:"custoUnitario"`
	Minimo        int                      `yaml:"minimo" json:"minimo"`
}

// Constants are the coefficients used by the quantity formulas.
//
// Divisors (per-package sizes and coverage per liter/cloth) must be > 0.
type Constants struct {
	DiasUteisMes            float64 `yaml:"dias_uteis_mes" json:"diasUteisMes"`
	UsosPorFuncionarioDia   float64 `yaml:"usos_por_funcionario_dia" json:"usosPorFuncionarioDia"`
	FolhasPorUso            float64 `yaml:"folhas_por_uso" json:"folhasPorUso"`
	FolhasPorFardo          float64 `yaml:"folhas_por_fardo" json:"folhasPorFardo"`
	MlSabonetePorUso        float64 `yaml:"ml_sabonete_por_uso" json:"mlSabonetePorUso"`
	MlPorRefil              float64 `yaml:"ml_por_refil" json:"mlPorRefil"`
	RolosPorFuncionario     float64 `yaml:"rolos_por_funcionario" json:"rolosPorFuncionario"`
	RolosPorFardo           float64 `yaml:"rolos_por_fardo" json:"rolosPorFardo"`
	LitrosDesinfetantePorM2 float64 `yaml:"litros_desinfetante_por_m2" json:"litrosDesinfetantePorM2"`
	M2PorLitroAlcool        float64 `yaml:"m2_por_litro_alcool" json:"m2PorLitroAlcool"`
	M2PorLitroDetergente    float64 `yaml:"m2_por_litro_detergente" json:"m2PorLitroDetergente"`
	M2PorLitroLimpaVidros   float64 `yaml:"m2_por_litro_limpa_vidros" json:"m2PorLitroLimpaVidros"`
	SacosPorBanheiroDia     float64 `yaml:"sacos_por_banheiro_dia" json:"sacosPorBanheiroDia"`
	SacosPorPacote          float64 `yaml:"sacos_por_pacote" json:"sacosPorPacote"`
	M2PorPanoMicrofibra     float64 `yaml:"m2_por_pano_microfibra" json:"m2PorPanoMicrofibra"`
}

// Catalog is the price table plus formula constants the calculator runs against.
// It is passed in rather than read from package state so alternate catalogs can
// be tested or loaded from a file.
type Catalog struct {
	Itens              map[ProductLine]CatalogItem `yaml:"itens" json:"itens"`
	Constantes         Constants                   `yaml:"constantes" json:"constantes"`
	PercentualDesconto float64                     `yaml:"percentual_desconto" json:"percentualDesconto"`
}

// DefaultPercentualDesconto is the subscription discount applied to the monthly cost.
const DefaultPercentualDesconto = 15.0

// DefaultCatalog returns the standard catalog. Each call returns a fresh copy.
func DefaultCatalog() Catalog {
	return Catalog{
		Itens: map[ProductLine]CatalogItem{
			LinePapelToalha:      {Nome: "Papel toalha interfolhado", Categoria: entities.CategoriaHigiene, Unidade: "fardo", CustoUnitario: 89.90},
			LinePapelHigienico:   {Nome: "Papel higiênico rolão", Categoria: entities.CategoriaHigiene, Unidade: "fardo", CustoUnitario: 79.90},
			LineSaboneteLiquido:  {Nome: "Sabonete líquido", Categoria: entities.CategoriaHigiene, Unidade: "refil 800 ml", CustoUnitario: 24.90},
			LineDesinfetante:     {Nome: "Desinfetante", Categoria: entities.CategoriaLimpezaSuperficies, Unidade: "litro", CustoUnitario: 12.90},
			LineAlcool70:         {Nome: "Álcool 70%", Categoria: entities.CategoriaLimpezaSuperficies, Unidade: "litro", CustoUnitario: 14.90, Minimo: 2},
			LineDetergenteNeutro: {Nome: "Detergente neutro", Categoria: entities.CategoriaLimpezaSuperficies, Unidade: "litro", CustoUnitario: 9.90},
			LineLimpaVidros:      {Nome: "Limpa vidros", Categoria: entities.CategoriaLimpezaSuperficies, Unidade: "litro", CustoUnitario: 16.90, Minimo: 1},
			LineSacosLixo:        {Nome: "Sacos de lixo", Categoria: entities.CategoriaColetaResiduos, Unidade: "pacote c/ 100", CustoUnitario: 29.90},
			LinePanosMicrofibra:  {Nome: "Pano de microfibra", Categoria: entities.CategoriaAcessorios, Unidade: "unidade", CustoUnitario: 7.90, Minimo: 5},
		},
		Constantes: Constants{
			DiasUteisMes:            22,
			UsosPorFuncionarioDia:   1.5,
			FolhasPorUso:            5,
			FolhasPorFardo:          2000,
			MlSabonetePorUso:        5,
			MlPorRefil:              800,
			RolosPorFuncionario:     3,
			RolosPorFardo:           4,
			LitrosDesinfetantePorM2: 0.05,
			M2PorLitroAlcool:        100,
			M2PorLitroDetergente:    50,
			M2PorLitroLimpaVidros:   200,
			SacosPorBanheiroDia:     2,
			SacosPorPacote:          100,
			M2PorPanoMicrofibra:     50,
		},
		PercentualDesconto: DefaultPercentualDesconto,
	}
}

// Clone returns a deep copy so callers cannot mutate a catalog in use.
func (c Catalog) Clone() Catalog {
	out := c
	out.Itens = make(map[ProductLine]CatalogItem, len(c.Itens))
	for k, v := range c.Itens {
		out.Itens[k] = v
	}
	return out
}

// Item returns the catalog entry for line. Lines missing from a custom catalog
// fall back to the default entry, and an unknown category falls back to the
// default category of that line.
func (c Catalog) Item(line ProductLine) CatalogItem {
	def := DefaultCatalog().Itens[line]
	it, ok := c.Itens[line]
	if !ok {
		return def
	}
	if !it.Categoria.Valid() {
		it.Categoria = def.Categoria
	}
	return it
}
