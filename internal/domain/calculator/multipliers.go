package calculator

import "insumos_limpeza/internal/domain/entities"

// DefaultMultiplier is returned for any label missing from a lookup table.
const DefaultMultiplier = 1.0

var dirtMultipliers = map[entities.DirtLevel]float64{
	entities.NivelBaixo: 0.8,
	entities.NivelMedio: 1.0,
	entities.NivelAlto:  1.3,
}

var frequencyMultipliers = map[entities.Frequency]float64{
	entities.FrequenciaDiaria:    1.0,
	entities.FrequenciaSemanal:   0.3,
	entities.FrequenciaQuinzenal: 0.15,
	entities.FrequenciaMensal:    0.05,
}

// DirtMultiplier maps a dirtiness level to its consumption factor.
// Unknown levels, including muito_alto, resolve to DefaultMultiplier.
func DirtMultiplier(level entities.DirtLevel) float64 {
	if m, ok := dirtMultipliers[level]; ok {
		return m
	}
	return DefaultMultiplier
}

// FrequencyMultiplier prorates consumption of a cleaning activity to a monthly basis.
func FrequencyMultiplier(f entities.Frequency) float64 {
	if m, ok := frequencyMultipliers[f]; ok {
		return m
	}
	return DefaultMultiplier
}
