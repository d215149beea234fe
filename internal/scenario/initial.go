package scenario

import (
	"fmt"

	"github.com/san-kum/carbonbox/internal/carbsys"
)

// InitialConditions solves the carbonate system for a mixed layer in
// equilibrium with pCO2 (µatm) at alkalinity alk (µmol/kg).
func InitialConditions(pCO2, alk, tempC, sal float64) (*carbsys.Result, error) {
	res, err := carbsys.Solve(carbsys.Input{
		Par1:        alk,
		Par2:        pCO2,
		Par1Type:    carbsys.Alkalinity,
		Par2Type:    carbsys.PCO2,
		Temperature: tempC,
		Salinity:    sal,
	})
	if err != nil {
		return nil, fmt.Errorf("initial conditions: %w", err)
	}
	return res, nil
}

// CarbonateState diagnoses pCO2, pH and saturation from DIC and alkalinity.
func CarbonateState(dic, alk, tempC, sal float64) (*carbsys.Result, error) {
	res, err := carbsys.Solve(carbsys.Input{
		Par1:        alk,
		Par2:        dic,
		Par1Type:    carbsys.Alkalinity,
		Par2Type:    carbsys.DIC,
		Temperature: tempC,
		Salinity:    sal,
	})
	if err != nil {
		return nil, fmt.Errorf("carbonate state: %w", err)
	}
	return res, nil
}
