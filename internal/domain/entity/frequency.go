package entity

// Frecuencias de conteo físico. El orden define la inclusión acumulativa de
// los reportes: un conteo trimestral re-verifica lo mensual, etc.
const (
	FrequencyMonthly    = "monthly"
	FrequencyQuarterly  = "quarterly"
	FrequencySemiannual = "semiannual"
	FrequencyAnnual     = "annual"
)

// Frequencies en orden ascendente de periodo.
var Frequencies = []string{
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencySemiannual,
	FrequencyAnnual,
}

// FrequencyRank posición de la frecuencia en el orden mensual < trimestral <
// semestral < anual. Desconocidas colapsan a mensual (rango 0).
func FrequencyRank(f string) int {
	switch f {
	case FrequencyQuarterly:
		return 1
	case FrequencySemiannual:
		return 2
	case FrequencyAnnual:
		return 3
	default:
		return 0
	}
}

// IsValidFrequency indica si la frecuencia es una de las cuatro conocidas.
func IsValidFrequency(f string) bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencySemiannual, FrequencyAnnual:
		return true
	}
	return false
}

// FrequencyLabel etiqueta de presentación (zh-Hant) usada en reportes y CSV.
func FrequencyLabel(f string) string {
	switch f {
	case FrequencyQuarterly:
		return "每季"
	case FrequencySemiannual:
		return "每半年"
	case FrequencyAnnual:
		return "每年"
	default:
		return "每月"
	}
}

// FrequencyCode abreviatura de un carácter usada en el formato CSV legado.
func FrequencyCode(f string) string {
	switch f {
	case FrequencyQuarterly:
		return "季"
	case FrequencySemiannual:
		return "半"
	case FrequencyAnnual:
		return "年"
	default:
		return "月"
	}
}

// FrequencyFromCode mapea la abreviatura CSV a la frecuencia interna.
// Cualquier valor no reconocido colapsa a mensual (comportamiento legado).
func FrequencyFromCode(code string) string {
	switch code {
	case "季", "每季":
		return FrequencyQuarterly
	case "半", "每半年":
		return FrequencySemiannual
	case "年", "每年":
		return FrequencyAnnual
	default:
		return FrequencyMonthly
	}
}
