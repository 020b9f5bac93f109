package request

import (
	"strings"

	"insumos_limpeza/internal/domain/entities"
)

// EnvironmentRequest is one ambiente of the intake form.
type EnvironmentRequest struct {
	ID     string  `json:"id" binding:"required"`
	Tipo   string  `json:"tipo" binding:"required"`
	AreaM2 float64 `json:"areaM2" binding:"gte=0"`

	NumeroBoxes      int `json:"numeroBoxes" binding:"gte=0"`
	NumeroMictorios  int `json:"numeroMictorios" binding:"gte=0"`
	NumeroPias       int `json:"numeroPias" binding:"gte=0"`
	NumeroFogoes     int `json:"numeroFogoes" binding:"gte=0"`
	NumeroGeladeiras int `json:"numeroGeladeiras" binding:"gte=0"`
	NumeroMesas      int `json:"numeroMesas" binding:"gte=0"`

	Descricao string `json:"descricao"`

	PisoEmBomEstado                  bool `json:"pisoEmBomEstado"`
	ParedesLavaveis                  bool `json:"paredesLavaveis"`
	LixeirasComTampa                 bool `json:"lixeirasComTampa"`
	ReposicaoContinuaInsumos         bool `json:"reposicaoContinuaInsumos"`
	DescarteHigieneFeminina          bool `json:"descarteHigieneFeminina"`
	HigienizacaoSuperficiesAlimentos bool `json:"higienizacaoSuperficiesAlimentos"`
}

// CalculatorInputRequest is the payload of the preview route.
//
// Only the daily maintenance frequency is mandatory; the other frequencies
// fall back to neutral multipliers when omitted.
type CalculatorInputRequest struct {
	NumeroFuncionarios int `json:"numeroFuncionarios" binding:"gte=0"`

	FrequenciaLimpezaManutencaoDiaria string `json:"frequenciaLimpezaManutencaoDiaria" binding:"required,oneof=diaria semanal quinzenal mensal"`
	FrequenciaLimpezaPisoProfunda     string `json:"frequenciaLimpezaPisoProfunda" binding:"omitempty,oneof=diaria semanal quinzenal mensal"`
	FrequenciaSanitizacaoBanheiros    string `json:"frequenciaSanitizacaoBanheiros" binding:"omitempty,oneof=diaria semanal quinzenal mensal"`
	FrequenciaSuperficiesToque        string `json:"frequenciaSuperficiesToque" binding:"omitempty,oneof=diaria semanal quinzenal mensal"`

	NivelSujidadeGeral string `json:"nivelSujidadeGeral"`

	Ambientes []EnvironmentRequest `json:"ambientes" binding:"dive"`

	PossuiControlePragas         bool `json:"possuiControlePragas"`
	UsaProdutosRegistradosAnvisa bool `json:"usaProdutosRegistradosAnvisa"`
	PossuiFichasSeguranca        bool `json:"possuiFichasSeguranca"`
	UtilizaEPIs                  bool `json:"utilizaEPIs"`
}

type ContactRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Empresa  string `json:"empresa"`
	Email    string `json:"email" binding:"required,email"`
	Telefone string `json:"telefone"`
}

// CalculationCreateRequest is the payload of the persisted calculation route.
type CalculationCreateRequest struct {
	CalculatorInputRequest
	Contato ContactRequest `json:"contato" binding:"required"`
}

func (r CalculatorInputRequest) ToInput() entities.CalculatorInput {
	in := entities.CalculatorInput{
		NumeroFuncionarios:                r.NumeroFuncionarios,
		FrequenciaLimpezaManutencaoDiaria: entities.Frequency(normalizeLabel(r.FrequenciaLimpezaManutencaoDiaria)),
		FrequenciaLimpezaPisoProfunda:     entities.Frequency(normalizeLabel(r.FrequenciaLimpezaPisoProfunda)),
		FrequenciaSanitizacaoBanheiros:    entities.Frequency(normalizeLabel(r.FrequenciaSanitizacaoBanheiros)),
		FrequenciaSuperficiesToque:        entities.Frequency(normalizeLabel(r.FrequenciaSuperficiesToque)),
		NivelSujidadeGeral:                entities.DirtLevel(normalizeLabel(r.NivelSujidadeGeral)),
		Ambientes:                         make([]entities.Environment, 0, len(r.Ambientes)),
		PossuiControlePragas:              r.PossuiControlePragas,
		UsaProdutosRegistradosAnvisa:      r.UsaProdutosRegistradosAnvisa,
		PossuiFichasSeguranca:             r.PossuiFichasSeguranca,
		UtilizaEPIs:                       r.UtilizaEPIs,
	}
	for _, a := range r.Ambientes {
		in.Ambientes = append(in.Ambientes, entities.Environment{
			ID:                               strings.TrimSpace(a.ID),
			Tipo:                             entities.EnvironmentType(normalizeLabel(a.Tipo)),
			AreaM2:                           a.AreaM2,
			NumeroBoxes:                      a.NumeroBoxes,
			NumeroMictorios:                  a.NumeroMictorios,
			NumeroPias:                       a.NumeroPias,
			NumeroFogoes:                     a.NumeroFogoes,
			NumeroGeladeiras:                 a.NumeroGeladeiras,
			NumeroMesas:                      a.NumeroMesas,
			Descricao:                        strings.TrimSpace(a.Descricao),
			PisoEmBomEstado:                  a.PisoEmBomEstado,
			ParedesLavaveis:                  a.ParedesLavaveis,
			LixeirasComTampa:                 a.LixeirasComTampa,
			ReposicaoContinuaInsumos:         a.ReposicaoContinuaInsumos,
			DescarteHigieneFeminina:          a.DescarteHigieneFeminina,
			HigienizacaoSuperficiesAlimentos: a.HigienizacaoSuperficiesAlimentos,
		})
	}
	return in
}

func (r ContactRequest) ToContact() entities.Contact {
	return entities.Contact{
		Nome:     strings.TrimSpace(r.Nome),
		Empresa:  strings.TrimSpace(r.Empresa),
		Email:    strings.TrimSpace(r.Email),
		Telefone: strings.TrimSpace(r.Telefone),
	}
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
