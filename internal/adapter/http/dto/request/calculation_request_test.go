package request

import (
	"testing"

	"insumos_limpeza/internal/domain/entities"
)

func TestCalculatorInputRequest_ToInput(t *testing.T) {
	r := CalculatorInputRequest{
		NumeroFuncionarios:                25,
		FrequenciaLimpezaManutencaoDiaria: " Diaria ",
		FrequenciaSanitizacaoBanheiros:    "semanal",
		NivelSujidadeGeral:                "ALTO",
		Ambientes: []EnvironmentRequest{
			{ID: " banheiro-1 ", Tipo: "banheiro_vestiario", AreaM2: 12, NumeroBoxes: 3, NumeroPias: 2, LixeirasComTampa: true},
		},
		UtilizaEPIs: true,
	}

	in := r.ToInput()
	if in.NumeroFuncionarios != 25 || !in.UtilizaEPIs {
		t.Fatalf("unexpected scalars: %+v", in)
	}
	if in.FrequenciaLimpezaManutencaoDiaria != entities.FrequenciaDiaria || in.FrequenciaSanitizacaoBanheiros != entities.FrequenciaSemanal {
		t.Fatalf("unexpected frequencies: %+v", in)
	}
	if in.FrequenciaLimpezaPisoProfunda != "" {
		t.Fatalf("omitted frequency must stay empty, got %q", in.FrequenciaLimpezaPisoProfunda)
	}
	if in.NivelSujidadeGeral != entities.NivelAlto {
		t.Fatalf("unexpected dirt level %q", in.NivelSujidadeGeral)
	}
	if len(in.Ambientes) != 1 {
		t.Fatalf("expected 1 environment, got %d", len(in.Ambientes))
	}
	env := in.Ambientes[0]
	if env.ID != "banheiro-1" || env.Tipo != entities.EnvironmentBanheiroVestiario || env.NumeroBoxes != 3 || env.NumeroPias != 2 || !env.LixeirasComTampa {
		t.Fatalf("unexpected environment: %+v", env)
	}
}

func TestCalculatorInputRequest_ToInputEmpty(t *testing.T) {
	in := CalculatorInputRequest{FrequenciaLimpezaManutencaoDiaria: "mensal"}.ToInput()
	if in.Ambientes == nil || len(in.Ambientes) != 0 {
		t.Fatalf("expected empty, non-nil environments")
	}
}

func TestContactRequest_ToContact(t *testing.T) {
	c := ContactRequest{Nome: " Ana ", Empresa: " ACME ", Email: " ana@acme.com.br ", Telefone: " 11 "}.ToContact()
	if c.Nome != "Ana" || c.Empresa != "ACME" || c.Email != "ana@acme.com.br" || c.Telefone != "11" {
		t.Fatalf("unexpected contact: %+v", c)
	}
}
