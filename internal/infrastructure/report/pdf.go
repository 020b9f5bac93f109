package report

import (
	"fmt"
	"strconv"

	"insumos_limpeza/internal/domain/entities"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	mutedColor  = &props.Color{Red: 100, Green: 100, Blue: 100}
	headerBg    = &props.Color{Red: 33, Green: 37, Blue: 41}
	altRowBg    = &props.Color{Red: 248, Green: 249, Blue: 250}
	whiteColor  = &props.Color{Red: 255, Green: 255, Blue: 255}
	accentColor = &props.Color{Red: 0, Green: 110, Blue: 80}
)

// GeneratePDF renders the calculation as an A4 PDF.
func GeneratePDF(rec entities.CalculationRecord) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, rec)
	addSummary(m, rec.Result)
	for _, c := range entities.ProductCategories {
		addCategoryTable(m, c, rec.Result.ProdutosPorCategoria.ByCategory(c))
	}
	addTotals(m, rec.Result)
	addEnvironments(m, rec.Result.RelatorioDetalhado)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate calculation PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addHeader(m core.Maroto, rec entities.CalculationRecord) {
	m.AddRows(
		row.New(10).Add(
			col.New(8).Add(text.New("Estimativa de insumos de limpeza", props.Text{
				Size:  14,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(4).Add(text.New(rec.CreatedAt.Format("02/01/2006"), props.Text{
				Size:  9,
				Align: align.Right,
				Color: mutedColor,
			})),
		),
	)

	contact := joinNonEmpty([]string{rec.Contato.Nome, rec.Contato.Empresa, rec.Contato.Email}, " | ")
	if contact != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(contact, props.Text{Size: 8, Color: mutedColor}))))
	}
	m.AddRows(row.New(6).Add(col.New(12).Add(text.New("Cálculo "+rec.ID, props.Text{Size: 7, Color: mutedColor}))))
	m.AddRows(row.New(3))
}

func addSummary(m core.Maroto, res entities.CalculationResult) {
	label := props.Text{Size: 7, Style: fontstyle.Bold, Color: mutedColor}
	value := props.Text{Size: 9}

	m.AddRows(
		row.New(6).Add(
			col.New(4).Add(text.New("ÁREA TOTAL", label)),
			col.New(4).Add(text.New("FUNCIONÁRIOS", label)),
			col.New(4).Add(text.New("ESTIMATIVA MENSAL", label)),
		),
		row.New(7).Add(
			col.New(4).Add(text.New(FormatArea(res.TotalAreaM2), value)),
			col.New(4).Add(text.New(strconv.Itoa(res.NumeroFuncionarios), value)),
			col.New(4).Add(text.New(FormatBRL(res.CustoMensalTotal), value)),
		),
	)
	m.AddRows(row.New(4))
}

func addCategoryTable(m core.Maroto, c entities.ProductCategory, items []entities.ProductRecommendation) {
	if len(items) == 0 {
		return
	}
	headerText := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Center, Color: whiteColor}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(row.New(7).Add(col.New(12).Add(text.New(c.Label(), props.Text{Size: 9, Style: fontstyle.Bold}))))
	m.AddRows(
		row.New(7).Add(
			col.New(5).Add(text.New("Produto", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Quantidade", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unidade", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Preço unitário", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)

	cellText := props.Text{Size: 8, Align: align.Center}
	cellTextLeft := props.Text{Size: 8, Align: align.Left}
	for i, p := range items {
		var style *props.Cell
		if i%2 == 1 {
			style = &props.Cell{BackgroundColor: altRowBg}
		}
		cols := []core.Col{
			col.New(5).Add(text.New(p.Nome, cellTextLeft)),
			col.New(2).Add(text.New(strconv.Itoa(p.Quantidade), cellText)),
			col.New(1).Add(text.New(p.Unidade, cellText)),
			col.New(2).Add(text.New(FormatBRL(p.CustoUnitario), cellText)),
			col.New(2).Add(text.New(FormatBRL(p.CustoTotal), cellText)),
		}
		if style != nil {
			for j := range cols {
				cols[j] = cols[j].WithStyle(style)
			}
		}
		m.AddRows(row.New(6).Add(cols...))
	}
	m.AddRows(row.New(3))
}

func addTotals(m core.Maroto, res entities.CalculationResult) {
	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	value := props.Text{Size: 9, Align: align.Right}

	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("Custo mensal total:", label)),
			col.New(3).Add(text.New(FormatBRL(res.CustoMensalTotal), value)),
		),
		row.New(7).Add(
			col.New(9).Add(text.New(fmt.Sprintf("Assinatura (%.0f%% de desconto):", res.PercentualDesconto), label)),
			col.New(3).Add(text.New(FormatBRL(res.CustoComDesconto), props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: accentColor,
			})),
		),
	)
	m.AddRows(row.New(4))
}

func addEnvironments(m core.Maroto, rep entities.DetailedReport) {
	if len(rep.Ambientes) > 0 {
		m.AddRows(row.New(7).Add(col.New(12).Add(text.New("Ambientes", props.Text{Size: 9, Style: fontstyle.Bold}))))
	}
	for _, a := range rep.Ambientes {
		line := fmt.Sprintf("%s (%s) - %s - %d funcionário(s) estimado(s)", a.AmbienteID, a.TipoDescricao, FormatArea(a.AreaM2), a.FuncionariosEstimados)
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(line, props.Text{Size: 8}))))
	}
	if rep.Resumo != "" {
		m.AddRows(row.New(3))
		m.AddRows(row.New(12).Add(col.New(12).Add(text.New(rep.Resumo, props.Text{Size: 8, Color: mutedColor}))))
	}
}
