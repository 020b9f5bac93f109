package usecase

import (
	"errors"
	"fmt"
	"insumos_limpeza/internal/domain/entities"
	"strings"
)

var ErrInvalidCalculatorInput = errors.New("invalid calculator input")

// ValidateInput rejects inputs the calculator would accept but that make no
// business sense. Unknown dirt levels are allowed and priced with the neutral
// multiplier.
func ValidateInput(in entities.CalculatorInput) error {
	if in.NumeroFuncionarios < 0 {
		return invalidInput("numeroFuncionarios must not be negative")
	}

	frequencies := []struct {
		field string
		value entities.Frequency
	}{
		{"frequenciaLimpezaManutencaoDiaria", in.FrequenciaLimpezaManutencaoDiaria},
		{"frequenciaLimpezaPisoProfunda", in.FrequenciaLimpezaPisoProfunda},
		{"frequenciaSanitizacaoBanheiros", in.FrequenciaSanitizacaoBanheiros},
		{"frequenciaSuperficiesToque", in.FrequenciaSuperficiesToque},
	}
	for _, f := range frequencies {
		if f.value != "" && !f.value.Valid() {
			return invalidInput("%s: unknown frequency %q", f.field, f.value)
		}
	}

	seen := make(map[string]struct{}, len(in.Ambientes))
	for i, amb := range in.Ambientes {
		id := strings.TrimSpace(amb.ID)
		if id == "" {
			return invalidInput("ambientes[%d]: id is required", i)
		}
		if _, dup := seen[id]; dup {
			return invalidInput("ambientes[%d]: duplicated id %q", i, id)
		}
		seen[id] = struct{}{}

		if !amb.Tipo.Valid() {
			return invalidInput("ambientes[%d]: unknown tipo %q", i, amb.Tipo)
		}
		if amb.AreaM2 < 0 {
			return invalidInput("ambientes[%d]: areaM2 must not be negative", i)
		}
		counts := []struct {
			field string
			value int
		}{
			{"numeroBoxes", amb.NumeroBoxes},
			{"numeroMictorios", amb.NumeroMictorios},
			{"numeroPias", amb.NumeroPias},
			{"numeroFogoes", amb.NumeroFogoes},
			{"numeroGeladeiras", amb.NumeroGeladeiras},
			{"numeroMesas", amb.NumeroMesas},
		}
		for _, c := range counts {
			if c.value < 0 {
				return invalidInput("ambientes[%d]: %s must not be negative", i, c.field)
			}
		}
	}
	return nil
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCalculatorInput, fmt.Sprintf(format, args...))
}
