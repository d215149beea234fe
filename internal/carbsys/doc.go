// Package carbsys solves the seawater carbonate system from two known
// parameters.
//
// Parameter types follow the numbering used by CO2SYS:
//
//	1 total alkalinity  (µmol/kg)
//	2 DIC               (µmol/kg)
//	3 pH                (total scale)
//	4 pCO2              (µatm)
//	5 fCO2              (µatm)
//
// Total alkalinity must be one of the two parameters. The alkalinity model
// includes carbonate, borate, water and sulfate contributions; phosphate,
// silicate and fluoride are taken to be zero. Equilibrium constants come from
// package seawater.
//
// # Example
//
//	res, err := carbsys.Solve(carbsys.Input{
//		Par1: 2300, Par1Type: carbsys.Alkalinity,
//		Par2: 395, Par2Type: carbsys.PCO2,
//		Temperature: 15, Salinity: 33.5,
//	})
package carbsys
