package carbsys

import (
	"fmt"
	"math"

	"github.com/san-kum/carbonbox/internal/seawater"
)

const (
	micro = 1e-6

	// [H+] search bracket, pH 11 to pH 3.
	hMin = 1e-11
	hMax = 1e-3

	maxIter = 200
	relTol  = 1e-14

	// DIC perturbation used for the Revelle factor, µmol/kg.
	revelleStep = 0.1
)

type constants struct {
	k0, k1, k2, kb, kw, kso4 float64
	bt, st, ca               float64
	kspCalcite, kspAragonite float64
	ff                       float64
}

func newConstants(tempC, sal float64) *constants {
	tk := seawater.CelsiusToKelvin(tempC)
	return &constants{
		k0:           seawater.K0(tk, sal),
		k1:           seawater.K1(tk, sal),
		k2:           seawater.K2(tk, sal),
		kb:           seawater.Kb(tk, sal),
		kw:           seawater.Kw(tk, sal),
		kso4:         seawater.KSO4(tk, sal),
		bt:           seawater.Boron(sal),
		st:           seawater.TotalSulfate(sal),
		ca:           seawater.Calcium(sal),
		kspCalcite:   seawater.KspCalcite(tk, sal),
		kspAragonite: seawater.KspAragonite(tk, sal),
		ff:           seawater.FugacityFactor(tk),
	}
}

// minorAlk is the borate, hydroxide, free hydrogen and bisulfate part of
// total alkalinity, mol/kg.
func (c *constants) minorAlk(h float64) float64 {
	hFree := h / (1 + c.st/c.kso4)
	hso4 := c.st / (1 + c.kso4/hFree)
	return c.bt*c.kb/(c.kb+h) + c.kw/h - hFree - hso4
}

func (c *constants) alkFromCO2(h, co2 float64) float64 {
	return c.k1*co2/h + 2*c.k1*c.k2*co2/(h*h) + c.minorAlk(h)
}

func (c *constants) alkFromDIC(h, dic float64) float64 {
	denom := h*h + c.k1*h + c.k1*c.k2
	return dic*c.k1*(h+2*c.k2)/denom + c.minorAlk(h)
}

func (c *constants) co2FromDIC(h, dic float64) float64 {
	return dic * h * h / (h*h + c.k1*h + c.k1*c.k2)
}

func (c *constants) dicFromCO2(h, co2 float64) float64 {
	return co2 * (1 + c.k1/h + c.k1*c.k2/(h*h))
}

// solveH bisects log[H+] until alk(h) == ta. alk must decrease with h.
func solveH(alk func(h float64) float64, ta float64) (float64, error) {
	lo, hi := hMin, hMax
	if alk(lo) < ta || alk(hi) > ta {
		return 0, ErrNoConvergence
	}
	for i := 0; i < maxIter; i++ {
		mid := math.Sqrt(lo * hi)
		if alk(mid) > ta {
			lo = mid
		} else {
			hi = mid
		}
		if hi/lo-1 < relTol {
			break
		}
	}
	return math.Sqrt(lo * hi), nil
}

// Solve computes the carbonate system from total alkalinity and one of
// DIC, pH, pCO2 or fCO2.
func Solve(in Input) (*Result, error) {
	ta, other, otherType, err := in.pair()
	if err != nil {
		return nil, err
	}
	if err := in.validate(other, otherType); err != nil {
		return nil, err
	}

	c := newConstants(in.Temperature, in.Salinity)
	taMol := ta * micro

	var h, co2, dic float64
	switch otherType {
	case PCO2, FCO2:
		fco2 := other
		if otherType == PCO2 {
			fco2 = other * c.ff
		}
		co2 = c.k0 * fco2 * micro
		h, err = solveH(func(h float64) float64 { return c.alkFromCO2(h, co2) }, taMol)
		if err != nil {
			return nil, fmt.Errorf("solve alkalinity=%g %s=%g: %w", ta, otherType, other, err)
		}
		dic = c.dicFromCO2(h, co2)
	case DIC:
		dic = other * micro
		h, err = solveH(func(h float64) float64 { return c.alkFromDIC(h, dic) }, taMol)
		if err != nil {
			return nil, fmt.Errorf("solve alkalinity=%g dic=%g: %w", ta, other, err)
		}
		co2 = c.co2FromDIC(h, dic)
	case PH:
		h = math.Pow(10, -other)
		co2 = (taMol - c.minorAlk(h)) / (c.k1/h + 2*c.k1*c.k2/(h*h))
		if co2 <= 0 {
			return nil, fmt.Errorf("%w: alkalinity %g too low for pH %g", ErrInvalidInput, ta, other)
		}
		dic = c.dicFromCO2(h, co2)
	}

	res := c.result(h, co2, dic, taMol)
	res.Temperature = in.Temperature
	res.Salinity = in.Salinity
	res.RevelleFactor = c.revelle(taMol, dic)
	return res, nil
}

func (in Input) pair() (ta, other float64, otherType ParType, err error) {
	switch {
	case in.Par1Type == Alkalinity && in.Par2Type != Alkalinity:
		ta, other, otherType = in.Par1, in.Par2, in.Par2Type
	case in.Par2Type == Alkalinity && in.Par1Type != Alkalinity:
		ta, other, otherType = in.Par2, in.Par1, in.Par1Type
	default:
		return 0, 0, 0, fmt.Errorf("%w: %s and %s", ErrUnsupportedPair, in.Par1Type, in.Par2Type)
	}
	switch otherType {
	case DIC, PH, PCO2, FCO2:
	default:
		return 0, 0, 0, fmt.Errorf("%w: alkalinity and %s", ErrUnsupportedPair, otherType)
	}
	return ta, other, otherType, nil
}

func (in Input) validate(other float64, otherType ParType) error {
	ta := in.Par1
	if in.Par2Type == Alkalinity {
		ta = in.Par2
	}
	for _, v := range []float64{in.Par1, in.Par2, in.Temperature, in.Salinity} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value", ErrInvalidInput)
		}
	}
	if ta <= 0 {
		return fmt.Errorf("%w: alkalinity must be positive, got %g", ErrInvalidInput, ta)
	}
	if otherType != PH && other <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidInput, otherType, other)
	}
	if in.Salinity < 0 {
		return fmt.Errorf("%w: salinity must be non-negative, got %g", ErrInvalidInput, in.Salinity)
	}
	if in.Temperature <= -seawater.ZeroCelsius {
		return fmt.Errorf("%w: temperature below absolute zero: %g", ErrInvalidInput, in.Temperature)
	}
	return nil
}

func (c *constants) result(h, co2, dic, ta float64) *Result {
	co3 := co2 * c.k1 * c.k2 / (h * h)
	fco2 := co2 / c.k0
	return &Result{
		PH:             -math.Log10(h),
		DIC:            dic / micro,
		Alkalinity:     ta / micro,
		PCO2:           fco2 / c.ff / micro,
		FCO2:           fco2 / micro,
		CO2:            co2 / micro,
		HCO3:           co2 * c.k1 / h / micro,
		CO3:            co3 / micro,
		BAlk:           c.bt * c.kb / (c.kb + h) / micro,
		OH:             c.kw / h / micro,
		OmegaCalcite:   c.ca * co3 / c.kspCalcite,
		OmegaAragonite: c.ca * co3 / c.kspAragonite,
		K0:             c.k0,
		K1:             c.k1,
		K2:             c.k2,
		KB:             c.kb,
		KW:             c.kw,
		KSO4:           c.kso4,
		TotalBoron:     c.bt,
	}
}

// revelle returns (dfCO2/fCO2)/(dDIC/DIC) at constant alkalinity by central difference.
func (c *constants) revelle(ta, dic float64) float64 {
	fco2 := func(dic float64) float64 {
		h, err := solveH(func(h float64) float64 { return c.alkFromDIC(h, dic) }, ta)
		if err != nil {
			return math.NaN()
		}
		return c.co2FromDIC(h, dic) / c.k0
	}
	d := revelleStep * micro
	up, mid, down := fco2(dic+d), fco2(dic), fco2(dic-d)
	return (up - down) / mid / (2 * d / dic)
}
