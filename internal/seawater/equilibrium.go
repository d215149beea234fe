package seawater

import "math"

// BoronCoefficient is total borate in mol/kg-SW per unit salinity
// following Uppstrom (1974).
const BoronCoefficient = 0.0004157 / 35

// K1 returns the first carbonic acid dissociation constant on the total pH
// scale in mol/kg-SW.
// Sulpis et al. (2020), doi:10.5194/os-2020-19, Table 1.
func K1(tempK, sal float64) float64 {
	pK1 := 8510.63/tempK -
		172.4493 +
		26.32996*math.Log(tempK) -
		0.011555*sal +
		0.0001152*sal*sal
	return math.Pow(10.0, -pK1)
}

// K2 returns the second carbonic acid dissociation constant on the total pH
// scale in mol/kg-SW.
// Sulpis et al. (2020), doi:10.5194/os-2020-19, Table 1.
func K2(tempK, sal float64) float64 {
	pK2 := 4226.23/tempK -
		59.4636 +
		9.60817*math.Log(tempK) -
		0.01781*sal +
		0.0001122*sal*sal
	return math.Pow(10.0, -pK2)
}

// Kb returns the boric acid dissociation constant on the total pH scale.
// Dickson, A. G., Deep-Sea Research 37:755-766, 1990.
func Kb(tempK, sal float64) float64 {
	sqrSal := math.Sqrt(sal)
	lnKbTop := -8966.9 -
		2890.53*sqrSal -
		77.942*sal +
		1.728*sqrSal*sal -
		0.0996*sal*sal
	lnKb := lnKbTop/tempK +
		148.0248 +
		137.1942*sqrSal +
		1.62142*sal +
		(-24.4344-25.085*sqrSal-0.2474*sal)*math.Log(tempK) +
		0.053105*sqrSal*tempK
	return math.Exp(lnKb)
}

// Kw returns the ion product of water.
func Kw(tempK, sal float64) float64 {
	return math.Exp(148.9802 -
		13847.26/tempK -
		23.6521*math.Log(tempK) +
		(-79.2447+3298.72/tempK+12.0408*math.Log(tempK))*math.Sqrt(sal) -
		0.019813*sal)
}

// Boron returns total boron in mol/kg-SW.
func Boron(sal float64) float64 {
	return BoronCoefficient * sal
}

// KSO4 returns the bisulfate dissociation constant on the free pH scale.
// Dickson, A. G., J. Chem. Thermodynamics 22:113-127, 1990.
func KSO4(tempK, sal float64) float64 {
	lnT := math.Log(tempK)
	ionS := 19.924 * sal / (1000 - 1.005*sal)
	sqrIonS := math.Sqrt(ionS)
	lnKSO4 := -4276.1/tempK + 141.328 - 23.093*lnT +
		(-13856/tempK+324.57-47.986*lnT)*sqrIonS +
		(35474/tempK-771.54+114.723*lnT)*ionS -
		2698/tempK*ionS*sqrIonS +
		1776/tempK*ionS*ionS
	// convert from mol/kg-H2O to mol/kg-SW
	return math.Exp(lnKSO4) * (1 - 0.001005*sal)
}

// TotalSulfate returns total sulfate in mol/kg-SW (Morris & Riley 1966).
func TotalSulfate(sal float64) float64 {
	return (0.14 / 96.062) * (sal / 1.80655)
}

// Calcium returns total calcium in mol/kg-SW (Riley & Tongudai 1967).
func Calcium(sal float64) float64 {
	return 0.02128 / 40.087 * (sal / 1.80655)
}

// KspCalcite returns the stoichiometric solubility product of calcite
// (Mucci 1983) in (mol/kg-SW)^2.
func KspCalcite(tempK, sal float64) float64 {
	sqrSal := math.Sqrt(sal)
	logKsp := -171.9065 - 0.077993*tempK + 2839.319/tempK + 71.595*math.Log10(tempK) +
		(-0.77712+0.0028426*tempK+178.34/tempK)*sqrSal -
		0.07711*sal + 0.0041249*sqrSal*sal
	return math.Pow(10, logKsp)
}

// KspAragonite returns the stoichiometric solubility product of aragonite
// (Mucci 1983) in (mol/kg-SW)^2.
func KspAragonite(tempK, sal float64) float64 {
	sqrSal := math.Sqrt(sal)
	logKsp := -171.945 - 0.077993*tempK + 2903.293/tempK + 71.595*math.Log10(tempK) +
		(-0.068393+0.0017276*tempK+88.135/tempK)*sqrSal -
		0.10018*sal + 0.0059415*sqrSal*sal
	return math.Pow(10, logKsp)
}
