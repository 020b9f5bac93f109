package calculator

import (
	"fmt"
	"strings"

	"insumos_limpeza/internal/domain/entities"
)

const samplesPerEnvironment = 3

// preferred categories per environment type; the remaining categories follow in catalog order.
var samplePreference = map[entities.EnvironmentType][]entities.ProductCategory{
	entities.EnvironmentBanheiroVestiario: {entities.CategoriaHigiene, entities.CategoriaColetaResiduos},
	entities.EnvironmentCozinhaRefeitorio: {entities.CategoriaLimpezaSuperficies, entities.CategoriaColetaResiduos},
	entities.EnvironmentAreaExterna:       {entities.CategoriaColetaResiduos, entities.CategoriaLimpezaSuperficies},
}

// HeadcountShare distributes headcount proportionally to the environment's
// share of the total area, rounded up. A non-positive total area yields 0.
func HeadcountShare(areaM2, totalAreaM2 float64, headcount int) int {
	if totalAreaM2 <= 0 {
		return 0
	}
	return ceilUnits(areaM2 / totalAreaM2 * float64(headcount))
}

// SampleProducts picks up to three non-zero recommendations for an environment,
// preferring the categories most relevant to its type.
func SampleProducts(t entities.EnvironmentType, products entities.ProductsByCategory) []entities.ProductRecommendation {
	order := append([]entities.ProductCategory{}, samplePreference[t]...)
	if len(order) == 0 {
		order = append(order, entities.CategoriaLimpezaSuperficies, entities.CategoriaAcessorios)
	}
	for _, c := range entities.ProductCategories {
		if !containsCategory(order, c) {
			order = append(order, c)
		}
	}

	out := make([]entities.ProductRecommendation, 0, samplesPerEnvironment)
	for _, c := range order {
		for _, p := range products.ByCategory(c) {
			if len(out) == samplesPerEnvironment {
				return out
			}
			if p.Quantidade > 0 {
				out = append(out, p)
			}
		}
	}
	return out
}

// AssembleReport builds the monthly narrative and the detailed per-environment report.
// It only formats values already computed by the earlier steps.
func AssembleReport(in entities.CalculatorInput, u Usage, products entities.ProductsByCategory, costs CostSummary) (string, entities.DetailedReport) {
	estimativa := fmt.Sprintf(
		"Para %d funcionários e %.2f m² de área total, o consumo mensal estimado de insumos de limpeza é de R$ %.2f. "+
			"Na assinatura mensal, com %.0f%% de desconto, o valor fica em R$ %.2f.",
		u.Usuarios, u.TotalAreaM2, costs.Total, costs.DiscountPct, costs.Discounted,
	)

	rows := make([]entities.EnvironmentReport, 0, len(in.Ambientes))
	for _, amb := range in.Ambientes {
		rows = append(rows, entities.EnvironmentReport{
			AmbienteID:            amb.ID,
			Tipo:                  amb.Tipo,
			TipoDescricao:         environmentDescription(amb),
			AreaM2:                amb.AreaM2,
			FuncionariosEstimados: HeadcountShare(amb.AreaM2, u.TotalAreaM2, u.Usuarios),
			ProdutosRecomendados:  SampleProducts(amb.Tipo, products),
		})
	}

	return estimativa, entities.DetailedReport{
		Ambientes: rows,
		Resumo:    summary(in, u, products, costs),
	}
}

func summary(in entities.CalculatorInput, u Usage, products entities.ProductsByCategory, costs CostSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d ambiente(s) avaliado(s), %d banheiro(s)/vestiário(s). ", len(in.Ambientes), u.BathroomCount)
	fmt.Fprintf(&b, "Nível de sujidade %q (fator %.2f) e limpeza de manutenção %q (fator %.2f). ",
		string(in.NivelSujidadeGeral), u.DirtMultiplier, string(in.FrequenciaLimpezaManutencaoDiaria), u.FrequencyMultiplier)

	items := 0
	for _, p := range products.All() {
		if p.Quantidade > 0 {
			items++
		}
	}
	fmt.Fprintf(&b, "%d item(ns) recomendados; custo mensal R$ %.2f, assinatura R$ %.2f.", items, costs.Total, costs.Discounted)

	if gaps := complianceGaps(in); len(gaps) > 0 {
		fmt.Fprintf(&b, " Pontos de atenção: %s.", strings.Join(gaps, ", "))
	}
	return b.String()
}

func complianceGaps(in entities.CalculatorInput) []string {
	var gaps []string
	if !in.PossuiControlePragas {
		gaps = append(gaps, "programa de controle de pragas")
	}
	if !in.UsaProdutosRegistradosAnvisa {
		gaps = append(gaps, "produtos registrados na ANVISA")
	}
	if !in.PossuiFichasSeguranca {
		gaps = append(gaps, "fichas de segurança (FISPQ) disponíveis")
	}
	if !in.UtilizaEPIs {
		gaps = append(gaps, "fornecimento e uso de EPIs")
	}
	return gaps
}

func environmentDescription(e entities.Environment) string {
	label := e.Tipo.Label()
	switch e.Tipo {
	case entities.EnvironmentBanheiroVestiario:
		return fmt.Sprintf("%s (%d boxes, %d mictórios, %d pias)", label, e.NumeroBoxes, e.NumeroMictorios, e.NumeroPias)
	case entities.EnvironmentCozinhaRefeitorio:
		return fmt.Sprintf("%s (%d fogões, %d geladeiras, %d mesas)", label, e.NumeroFogoes, e.NumeroGeladeiras, e.NumeroMesas)
	case entities.EnvironmentOutro:
		if d := strings.TrimSpace(e.Descricao); d != "" {
			return fmt.Sprintf("%s: %s", label, d)
		}
	}
	return label
}

func containsCategory(list []entities.ProductCategory, c entities.ProductCategory) bool {
	for _, v := range list {
		if v == c {
			return true
		}
	}
	return false
}
