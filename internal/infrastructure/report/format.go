package report

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formats an amount as Brazilian reais, e.g. R$ 1.234,50.
func FormatBRL(amount float64) string {
	if amount < 0 {
		return "-" + FormatBRL(-amount)
	}
	return "R$ " + brPrinter.Sprintf("%.2f", amount)
}

// FormatArea formats square meters with pt-BR separators.
func FormatArea(m2 float64) string {
	return brPrinter.Sprintf("%.2f", m2) + " m²"
}

// sanitizeExcelCell prefixes characters Excel would read as a formula.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func joinNonEmpty(parts []string, sep string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
