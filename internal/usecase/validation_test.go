package usecase

import (
	"errors"
	"strings"
	"testing"

	"insumos_limpeza/internal/domain/entities"
)

func TestValidateInput(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		if err := ValidateInput(officeInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty environments and zero staff are valid", func(t *testing.T) {
		if err := ValidateInput(entities.CalculatorInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown dirt level is accepted", func(t *testing.T) {
		in := officeInput()
		in.NivelSujidadeGeral = "extremo"
		if err := ValidateInput(in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("first invalid field is reported consistently", func(t *testing.T) {
		in := officeInput()
		in.FrequenciaLimpezaPisoProfunda = "anual"
		in.FrequenciaSuperficiesToque = "bienal"
		in.Ambientes[0].NumeroPias = -1
		in.Ambientes[0].NumeroBoxes = -1
		for i := 0; i < 20; i++ {
			err := ValidateInput(in)
			if err == nil || !strings.Contains(err.Error(), "frequenciaLimpezaPisoProfunda") {
				t.Fatalf("expected frequenciaLimpezaPisoProfunda error, got %v", err)
			}
		}

		in = officeInput()
		in.Ambientes[0].NumeroPias = -1
		in.Ambientes[0].NumeroBoxes = -1
		for i := 0; i < 20; i++ {
			err := ValidateInput(in)
			if err == nil || !strings.Contains(err.Error(), "numeroBoxes") {
				t.Fatalf("expected numeroBoxes error, got %v", err)
			}
		}
	})

	cases := []struct {
		name   string
		mutate func(*entities.CalculatorInput)
	}{
		{"negative headcount", func(in *entities.CalculatorInput) { in.NumeroFuncionarios = -3 }},
		{"negative area", func(in *entities.CalculatorInput) { in.Ambientes[0].AreaM2 = -1 }},
		{"negative fixture count", func(in *entities.CalculatorInput) { in.Ambientes[0].NumeroPias = -1 }},
		{"empty environment id", func(in *entities.CalculatorInput) { in.Ambientes[0].ID = "  " }},
		{"duplicate environment id", func(in *entities.CalculatorInput) {
			in.Ambientes = append(in.Ambientes, entities.Environment{ID: "amb-1", Tipo: entities.EnvironmentCorredor})
		}},
		{"unknown environment type", func(in *entities.CalculatorInput) { in.Ambientes[0].Tipo = "garagem" }},
		{"unknown frequency", func(in *entities.CalculatorInput) { in.FrequenciaSanitizacaoBanheiros = "anual" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := officeInput()
			tc.mutate(&in)
			if err := ValidateInput(in); !errors.Is(err, ErrInvalidCalculatorInput) {
				t.Fatalf("expected ErrInvalidCalculatorInput, got %v", err)
			}
		})
	}
}
