package calculator

import "insumos_limpeza/internal/domain/entities"

// Usage is the scalar view of an input consumed by the quantity formulas.
type Usage struct {
	Usuarios            int
	TotalAreaM2         float64
	BathroomCount       int
	DirtMultiplier      float64
	FrequencyMultiplier float64
}

// TotalArea sums areaM2 over all environments. Negative areas are summed as-is.
func TotalArea(envs []entities.Environment) float64 {
	total := 0.0
	for _, e := range envs {
		total += e.AreaM2
	}
	return total
}

// BathroomCount counts bathroom/locker-room environments.
func BathroomCount(envs []entities.Environment) int {
	n := 0
	for _, e := range envs {
		if e.Tipo == entities.EnvironmentBanheiroVestiario {
			n++
		}
	}
	return n
}

// AggregateUsage reduces the input to the values the formulas need.
// The disinfectant frequency factor comes from the daily-maintenance frequency.
func AggregateUsage(in entities.CalculatorInput) Usage {
	return Usage{
		Usuarios:            in.NumeroFuncionarios,
		TotalAreaM2:         TotalArea(in.Ambientes),
		BathroomCount:       BathroomCount(in.Ambientes),
		DirtMultiplier:      DirtMultiplier(in.NivelSujidadeGeral),
		FrequencyMultiplier: FrequencyMultiplier(in.FrequenciaLimpezaManutencaoDiaria),
	}
}
