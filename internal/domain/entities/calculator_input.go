package entities

// EnvironmentType identifies the kind of physical area (ambiente) inside a facility.
type EnvironmentType string

const (
	EnvironmentEscritorio        EnvironmentType = "escritorio"
	EnvironmentBanheiroVestiario EnvironmentType = "banheiro_vestiario"
	EnvironmentCozinhaRefeitorio EnvironmentType = "cozinha_refeitorio"
	EnvironmentProducao          EnvironmentType = "producao"
	EnvironmentEstoque           EnvironmentType = "estoque"
	EnvironmentCorredor          EnvironmentType = "corredor"
	EnvironmentAreaExterna       EnvironmentType = "area_externa"
	EnvironmentOutro             EnvironmentType = "outro"
)

// EnvironmentTypes lists every known environment type in display order.
var EnvironmentTypes = []EnvironmentType{
	EnvironmentEscritorio,
	EnvironmentBanheiroVestiario,
	EnvironmentCozinhaRefeitorio,
	EnvironmentProducao,
	EnvironmentEstoque,
	EnvironmentCorredor,
	EnvironmentAreaExterna,
	EnvironmentOutro,
}

func (t EnvironmentType) Valid() bool {
	for _, known := range EnvironmentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the pt-BR display name used in reports.
func (t EnvironmentType) Label() string {
	switch t {
	case EnvironmentEscritorio:
		return "Escritório"
	case EnvironmentBanheiroVestiario:
		return "Banheiro/Vestiário"
	case EnvironmentCozinhaRefeitorio:
		return "Cozinha/Refeitório"
	case EnvironmentProducao:
		return "Produção"
	case EnvironmentEstoque:
		return "Estoque"
	case EnvironmentCorredor:
		return "Corredor"
	case EnvironmentAreaExterna:
		return "Área externa"
	case EnvironmentOutro:
		return "Outro"
	default:
		return string(t)
	}
}

// Frequency is how often a cleaning activity recurs.
type Frequency string

const (
	FrequenciaDiaria    Frequency = "diaria"
	FrequenciaSemanal   Frequency = "semanal"
	FrequenciaQuinzenal Frequency = "quinzenal"
	FrequenciaMensal    Frequency = "mensal"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequenciaDiaria, FrequenciaSemanal, FrequenciaQuinzenal, FrequenciaMensal:
		return true
	}
	return false
}

// DirtLevel is the business-declared soil/usage intensity (nível de sujidade).
//
// NivelMuitoAlto is offered by the intake form but has no multiplier of its own;
// the calculator treats it like any unknown label.
type DirtLevel string

const (
	NivelBaixo     DirtLevel = "baixo"
	NivelMedio     DirtLevel = "medio"
	NivelAlto      DirtLevel = "alto"
	NivelMuitoAlto DirtLevel = "muito_alto"
)

// Environment is one physical area of the customer's facility.
//
// Fixture counts only apply to some types (bathroom: boxes, urinals, sinks;
// kitchen: stoves, fridges, tables). Descricao is used for EnvironmentOutro.
type Environment struct {
	ID     string          `json:"id"`
	Tipo   EnvironmentType `json:"tipo"`
	AreaM2 float64         `json:"areaM2"`

	NumeroBoxes     int `json:"numeroBoxes,omitempty"`
	NumeroMictorios int `json:"numeroMictorios,omitempty"`
	NumeroPias      int `json:"numeroPias,omitempty"`

	NumeroFogoes     int `json:"numeroFogoes,omitempty"`
	NumeroGeladeiras int `json:"numeroGeladeiras,omitempty"`
	NumeroMesas      int `json:"numeroMesas,omitempty"`

	Descricao string `json:"descricao,omitempty"`

	PisoEmBomEstado                  bool `json:"pisoEmBomEstado"`
	ParedesLavaveis                  bool `json:"paredesLavaveis"`
	LixeirasComTampa                 bool `json:"lixeirasComTampa"`
	ReposicaoContinuaInsumos         bool `json:"reposicaoContinuaInsumos"`
	DescarteHigieneFeminina          bool `json:"descarteHigieneFeminina"`
	HigienizacaoSuperficiesAlimentos bool `json:"higienizacaoSuperficiesAlimentos"`
}

// CalculatorInput is the aggregate root for one calculation run.
type CalculatorInput struct {
	NumeroFuncionarios int `json:"numeroFuncionarios"`

	FrequenciaLimpezaManutencaoDiaria Frequency `json:"frequenciaLimpezaManutencaoDiaria"`
	FrequenciaLimpezaPisoProfunda     Frequency `json:"frequenciaLimpezaPisoProfunda"`
	FrequenciaSanitizacaoBanheiros    Frequency `json:"frequenciaSanitizacaoBanheiros"`
	FrequenciaSuperficiesToque        Frequency `json:"frequenciaSuperficiesToque"`

	NivelSujidadeGeral DirtLevel `json:"nivelSujidadeGeral"`

	Ambientes []Environment `json:"ambientes"`

	PossuiControlePragas         bool `json:"possuiControlePragas"`
	UsaProdutosRegistradosAnvisa bool `json:"usaProdutosRegistradosAnvisa"`
	PossuiFichasSeguranca        bool `json:"possuiFichasSeguranca"`
	UtilizaEPIs                  bool `json:"utilizaEPIs"`
}
