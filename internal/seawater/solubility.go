package seawater

import "math"

const (
	// ZeroCelsius is 0 °C in Kelvin.
	ZeroCelsius = 273.15

	// schmidtReference is the Schmidt number of CO2 in seawater at 20 °C
	// used to normalize the Wanninkhof (2014) transfer velocity.
	schmidtReference = 660.0

	// pistonScale converts the transfer velocity from cm/hr into m/day
	// once multiplied by K0.
	pistonScale = 0.24

	// gasConstant in cm^3 bar / (K mol).
	gasConstant = 83.14462618
	// surfacePressure in bar.
	surfacePressure = 1.01325
)

func CelsiusToKelvin(tempC float64) float64 { return tempC + ZeroCelsius }

// K0 returns Henry's constant for CO2 in mol/kg-SW/atm.
// Weiss, R. F., Marine Chemistry 2:203-215, 1974.
func K0(tempK, sal float64) float64 {
	tk100 := tempK / 100
	lnK0 := -60.2409 +
		93.4517/tk100 +
		23.3585*math.Log(tk100) +
		sal*(0.023517-0.023656*tk100+0.0047036*tk100*tk100)
	return math.Exp(lnK0)
}

// Schmidt returns the Schmidt number of CO2 in seawater.
func Schmidt(tempC float64) float64 {
	return 2073.1 - 125.62*tempC + 3.6276*tempC*tempC - 0.043219*tempC*tempC*tempC
}

// Kappa returns the gas transfer velocity in cm/hr for a wind speed in m/s
// at 10 m height.
func Kappa(wind, tempC float64) float64 {
	sc := Schmidt(tempC)
	return 0.251 * wind * wind * math.Pow(sc/schmidtReference, -0.5)
}

// PistonVelocity returns the CO2 exchange coefficient in mol/m^2/day/atm
// per unit of seawater density.
func PistonVelocity(wind, tempC, sal float64) float64 {
	return pistonScale * Kappa(wind, tempC) * K0(CelsiusToKelvin(tempC), sal)
}

// FugacityFactor converts pCO2 to fCO2 at one atmosphere total pressure
// using the virial coefficients of Weiss (1974).
func FugacityFactor(tempK float64) float64 {
	b := -1636.75 + 12.0408*tempK - 0.0327957*tempK*tempK + 3.16528e-5*tempK*tempK*tempK
	delta := 57.7 - 0.118*tempK
	return math.Exp((b + 2*delta) * surfacePressure / (gasConstant * tempK))
}
