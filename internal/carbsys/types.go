package carbsys

import "fmt"

type ParType int

const (
	Alkalinity ParType = 1
	DIC        ParType = 2
	PH         ParType = 3
	PCO2       ParType = 4
	FCO2       ParType = 5
)

func (p ParType) String() string {
	switch p {
	case Alkalinity:
		return "alkalinity"
	case DIC:
		return "dic"
	case PH:
		return "pH"
	case PCO2:
		return "pCO2"
	case FCO2:
		return "fCO2"
	default:
		return fmt.Sprintf("ParType(%d)", int(p))
	}
}

// Input describes one carbonate system calculation.
type Input struct {
	Par1     float64
	Par2     float64
	Par1Type ParType
	Par2Type ParType

	Temperature float64 // °C
	Salinity    float64
}

// Result is the full carbonate system at the input conditions.
// Concentrations are in µmol/kg, partial pressures in µatm and
// equilibrium constants in mol/kg-SW.
type Result struct {
	PH         float64 `json:"pH"`
	DIC        float64 `json:"dic"`
	Alkalinity float64 `json:"alkalinity"`
	PCO2       float64 `json:"pCO2"`
	FCO2       float64 `json:"fCO2"`
	CO2        float64 `json:"CO2"`
	HCO3       float64 `json:"HCO3"`
	CO3        float64 `json:"CO3"`
	BAlk       float64 `json:"BAlk"`
	OH         float64 `json:"OH"`

	RevelleFactor  float64 `json:"revelle_factor"`
	OmegaCalcite   float64 `json:"saturation_calcite"`
	OmegaAragonite float64 `json:"saturation_aragonite"`

	Temperature float64 `json:"temperature"`
	Salinity    float64 `json:"salinity"`

	K0         float64 `json:"k_CO2"`
	K1         float64 `json:"k_carbonic_1"`
	K2         float64 `json:"k_carbonic_2"`
	KB         float64 `json:"k_borate"`
	KW         float64 `json:"k_water"`
	KSO4       float64 `json:"k_bisulfate"`
	TotalBoron float64 `json:"total_borate"`
}
