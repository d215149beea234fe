// Package scenario composes the driving series and initial conditions of a
// mixed-layer carbon box model from a forcing source and a configuration.
package scenario
