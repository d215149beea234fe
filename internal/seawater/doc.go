// Package seawater provides empirical seawater equilibrium and gas-exchange
// constants as functions of temperature and salinity.
//
// Every function is a closed-form fit taken from the oceanographic
// literature:
//
//   - [K0]: CO2 solubility (Weiss 1974)
//   - [Schmidt], [Kappa], [PistonVelocity]: air-sea gas transfer
//   - [K1], [K2]: carbonic acid dissociation (Sulpis et al. 2020)
//   - [Kb]: boric acid dissociation (Dickson 1990b)
//   - [Kw]: water dissociation
//   - [Boron]: total boron (Uppstrom 1974)
//
// Temperatures are in Kelvin unless the parameter is named tempC.
// Salinity is on the practical salinity scale.
//
// The functions are total: inputs outside the oceanographic range are not
// validated and yield extrapolated values, NaN or Inf. The *Series variants
// evaluate the scalar function element-wise and only fail when the inputs
// differ in length.
package seawater
