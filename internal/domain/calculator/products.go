package calculator

import (
	"fmt"
	"math"

	"insumos_limpeza/internal/domain/entities"
)

// ceilEpsilon absorbs float noise (0.1*3 == 0.30000000000000004) before rounding
// up. It is relative to the nearest integer and only snaps values that are
// that close to it; anything further away is rounded up.
const ceilEpsilon = 1e-12

type quantityFormula struct {
	raw      func(u Usage, k Constants) float64
	describe func(u Usage, k Constants) string
}

var formulas = map[ProductLine]quantityFormula{
	LinePapelToalha: {
		raw: func(u Usage, k Constants) float64 {
			return div(float64(u.Usuarios)*k.FolhasPorUso*k.UsosPorFuncionarioDia*k.DiasUteisMes, k.FolhasPorFardo)
		},
		describe: func(u Usage, k Constants) string {
			return fmt.Sprintf("%d funcionários × %g folhas × %g usos/dia × %g dias ÷ %g folhas por fardo",
				u.Usuarios, k.FolhasPorUso, k.UsosPorFuncionarioDia, k.DiasUteisMes, k.FolhasPorFardo)
		},
	},
	LinePapelHigienico: {
		raw: func(u Usage, k Constants) float64 {
			return div(float64(u.Usuarios)*k.RolosPorFuncionario, k.RolosPorFardo)
		},
		describe: func(u Usage, k Constants) string {
			return fmt.Sprintf("%d funcionários × %g rolos ÷ %g rolos por fardo", u.Usuarios, k.RolosPorFuncionario, k.RolosPorFardo)
		},
	},
	LineSaboneteLiquido: {
		raw: func(u Usage, k Constants) float64 {
			return div(float64(u.Usuarios)*k.MlSabonetePorUso*k.UsosPorFuncionarioDia*k.DiasUteisMes, k.MlPorRefil)
		},
		describe: func(u Usage, k Constants) string {
			return fmt.Sprintf("%d funcionários × %g ml × %g usos/dia × %g dias ÷ %g ml por refil",
				u.Usuarios, k.MlSabonetePorUso, k.UsosPorFuncionarioDia, k.DiasUteisMes, k.MlPorRefil)
		},
	},
	LineDesinfetante: {
		raw: func(u Usage, k Constants) float64 {
			return u.TotalAreaM2 * u.FrequencyMultiplier * k.LitrosDesinfetantePorM2 * u.DirtMultiplier
		},
		describe: func(u Usage, k Constants) string {
			return fmt.Sprintf("%g m² × frequência %g × %g L/m² × sujidade %g",
				u.TotalAreaM2, u.FrequencyMultiplier, k.LitrosDesinfetantePorM2, u.DirtMultiplier)
		},
	},
	LineAlcool70: {
		raw: func(u Usage, k Constants) float64 {
			return div(u.TotalAreaM2, k.M2PorLitroAlcool)
		},
		describe: func(u Usage, k Constants) string {
			return fmt.Sprintf("%g m² ÷ %g m² por litro", u.TotalAreaM2, k.M2PorLitroAlcool)
		},
	},
	LineDetergenteNeutro: {
		raw: func(u Usage, k Constants) float64 {
			return div(u.TotalAreaM2, k.M2PorLitroDetergente) * u.DirtMultiplier
		},
		describe: func(u Usage, k Constants) string {
			return fmt.Sprintf("%g m² ÷ %g m² por litro × sujidade %g", u.TotalAreaM2, k.M2PorLitroDetergente, u.DirtMultiplier)
		},
	},
	LineLimpaVidros: {
		raw: func(u Usage, k Constants) float64 {
			return div(u.TotalAreaM2, k.M2PorLitroLimpaVidros)
		},
		describe: func(u Usage, k Constants) string {
			return fmt.Sprintf("%g m² ÷ %g m² por litro", u.TotalAreaM2, k.M2PorLitroLimpaVidros)
		},
	},
	LineSacosLixo: {
		raw: func(u Usage, k Constants) float64 {
			return div(float64(u.BathroomCount)*k.SacosPorBanheiroDia*k.DiasUteisMes, k.SacosPorPacote)
		},
		describe: func(u Usage, k Constants) string {
			return fmt.Sprintf("%d banheiros × %g sacos/dia × %g dias ÷ %g sacos por pacote",
				u.BathroomCount, k.SacosPorBanheiroDia, k.DiasUteisMes, k.SacosPorPacote)
		},
	},
	LinePanosMicrofibra: {
		raw: func(u Usage, k Constants) float64 {
			return div(u.TotalAreaM2, k.M2PorPanoMicrofibra)
		},
		describe: func(u Usage, k Constants) string {
			return fmt.Sprintf("%g m² ÷ %g m² por pano", u.TotalAreaM2, k.M2PorPanoMicrofibra)
		},
	},
}

// Quantity returns the purchasable quantity for one line: the raw formula value
// rounded up to whole units, then raised to the line's minimum order.
func Quantity(line ProductLine, u Usage, catalog Catalog) int {
	f, ok := formulas[line]
	if !ok {
		return 0
	}
	q := ceilUnits(f.raw(u, catalog.Constantes))
	if minimo := catalog.Item(line).Minimo; q < minimo {
		q = minimo
	}
	return q
}

// Recommend builds the full recommendation for one line.
func Recommend(line ProductLine, u Usage, catalog Catalog) entities.ProductRecommendation {
	item := catalog.Item(line)
	q := Quantity(line, u, catalog)

	formula := ""
	if f, ok := formulas[line]; ok {
		formula = f.describe(u, catalog.Constantes)
	}
	if item.Minimo > 0 {
		formula += fmt.Sprintf(" (mínimo %d)", item.Minimo)
	}

	return entities.ProductRecommendation{
		Nome:          item.Nome,
		Categoria:     item.Categoria,
		Quantidade:    q,
		Unidade:       item.Unidade,
		CustoUnitario: item.CustoUnitario,
		CustoTotal:    float64(q) * item.CustoUnitario,
		Formula:       formula,
	}
}

// Products evaluates every catalog line and groups them by category, keeping
// catalog order inside each category. Lines are independent of each other.
func Products(u Usage, catalog Catalog) entities.ProductsByCategory {
	out := entities.ProductsByCategory{
		Higiene:            []entities.ProductRecommendation{},
		LimpezaSuperficies: []entities.ProductRecommendation{},
		ColetaResiduos:     []entities.ProductRecommendation{},
		Acessorios:         []entities.ProductRecommendation{},
	}
	for _, line := range ProductLines {
		rec := Recommend(line, u, catalog)
		switch rec.Categoria {
		case entities.CategoriaHigiene:
			out.Higiene = append(out.Higiene, rec)
		case entities.CategoriaColetaResiduos:
			out.ColetaResiduos = append(out.ColetaResiduos, rec)
		case entities.CategoriaLimpezaSuperficies:
			out.LimpezaSuperficies = append(out.LimpezaSuperficies, rec)
		case entities.CategoriaAcessorios:
			out.Acessorios = append(out.Acessorios, rec)
		}
	}
	return out
}

func ceilUnits(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if r := math.Round(v); math.Abs(v-r) <= ceilEpsilon*math.Max(1, r) {
		return int(r)
	}
	return int(math.Ceil(v))
}

// div returns 0 for a non-positive divisor so a malformed catalog cannot
// produce Inf quantities.
func div(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	return a / b
}
