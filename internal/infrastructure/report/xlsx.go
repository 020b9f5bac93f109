package report

import (
	"bytes"
	"fmt"

	"insumos_limpeza/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const (
	productsSheet     = "Produtos"
	environmentsSheet = "Ambientes"
)

// GenerateXLSX renders the calculation as a workbook with a products sheet
// and an environments sheet.
func GenerateXLSX(rec entities.CalculationRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), productsSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if _, err := f.NewSheet(environmentsSheet); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}
	// 2 = "0.00"
	moneyFmt := 2
	moneyStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders(), NumFmt: moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}
	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary style: %w", err)
	}

	res := rec.Result

	// Products sheet.
	for i, w := range []float64{24, 40, 12, 12, 16, 16} {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(productsSheet, colName, colName, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", colName, err)
		}
	}
	f.SetCellValue(productsSheet, "A1", "Estimativa de insumos de limpeza")
	f.SetCellStyle(productsSheet, "A1", "A1", titleStyle)
	f.SetCellValue(productsSheet, "A2", "Cálculo "+rec.ID)

	headers := []string{"Categoria", "Produto", "Quantidade", "Unidade", "Preço unitário", "Custo total"}
	if err := f.SetSheetRow(productsSheet, "A4", &headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	f.SetCellStyle(productsSheet, "A4", "F4", headerStyle)

	r := 5
	for _, c := range entities.ProductCategories {
		for _, p := range res.ProdutosPorCategoria.ByCategory(c) {
			values := []interface{}{c.Label(), sanitizeExcelCell(p.Nome), p.Quantidade, sanitizeExcelCell(p.Unidade), p.CustoUnitario, p.CustoTotal}
			cell := fmt.Sprintf("A%d", r)
			if err := f.SetSheetRow(productsSheet, cell, &values); err != nil {
				return nil, fmt.Errorf("write row %d: %w", r, err)
			}
			f.SetCellStyle(productsSheet, cell, fmt.Sprintf("D%d", r), bodyStyle)
			f.SetCellStyle(productsSheet, fmt.Sprintf("E%d", r), fmt.Sprintf("F%d", r), moneyStyle)
			r++
		}
	}

	r++
	summary := []struct {
		label string
		value float64
	}{
		{"Custo mensal total", res.CustoMensalTotal},
		{"Desconto assinatura (%)", res.PercentualDesconto},
		{"Custo com desconto", res.CustoComDesconto},
	}
	for _, s := range summary {
		f.SetCellValue(productsSheet, fmt.Sprintf("E%d", r), s.label)
		f.SetCellStyle(productsSheet, fmt.Sprintf("E%d", r), fmt.Sprintf("E%d", r), summaryLabelStyle)
		f.SetCellValue(productsSheet, fmt.Sprintf("F%d", r), s.value)
		f.SetCellStyle(productsSheet, fmt.Sprintf("F%d", r), fmt.Sprintf("F%d", r), moneyStyle)
		r++
	}

	// Environments sheet.
	for i, w := range []float64{16, 28, 12, 22} {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(environmentsSheet, colName, colName, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", colName, err)
		}
	}
	envHeaders := []string{"Ambiente", "Tipo", "Área (m²)", "Funcionários estimados"}
	if err := f.SetSheetRow(environmentsSheet, "A1", &envHeaders); err != nil {
		return nil, fmt.Errorf("write environment header: %w", err)
	}
	f.SetCellStyle(environmentsSheet, "A1", "D1", headerStyle)
	for i, a := range res.RelatorioDetalhado.Ambientes {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{sanitizeExcelCell(a.AmbienteID), a.TipoDescricao, a.AreaM2, a.FuncionariosEstimados}
		if err := f.SetSheetRow(environmentsSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write environment %s: %w", a.AmbienteID, err)
		}
		f.SetCellStyle(environmentsSheet, cell, fmt.Sprintf("D%d", i+2), bodyStyle)
	}

	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
