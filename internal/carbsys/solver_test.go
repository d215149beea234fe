package carbsys_test

import (
	"encoding/json"
	"math"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/carbonbox/internal/carbsys"
)

type goldenCase struct {
	Name  string `json:"name"`
	Input struct {
		Par1        float64 `json:"par1"`
		Par1Type    int     `json:"par1_type"`
		Par2        float64 `json:"par2"`
		Par2Type    int     `json:"par2_type"`
		Temperature float64 `json:"temperature"`
		Salinity    float64 `json:"salinity"`
	} `json:"input"`
	Expected carbsys.Result `json:"expected"`
}

func loadGolden() []goldenCase {
	data, err := os.ReadFile("testdata/initial_conditions.golden.json")
	Expect(err).NotTo(HaveOccurred())
	var cases []goldenCase
	Expect(json.Unmarshal(data, &cases)).To(Succeed())
	return cases
}

func reference() carbsys.Input {
	return carbsys.Input{
		Par1: 2300, Par1Type: carbsys.Alkalinity,
		Par2: 395, Par2Type: carbsys.PCO2,
		Temperature: 15, Salinity: 33.5,
	}
}

func near(want, rel float64) OmegaMatcher {
	return BeNumerically("~", want, math.Abs(want)*rel)
}

var _ = Describe("Solve", func() {
	Context("golden fixtures", func() {
		It("reproduces the pinned carbonate systems", func() {
			for _, tc := range loadGolden() {
				By(tc.Name)
				res, err := carbsys.Solve(carbsys.Input{
					Par1:        tc.Input.Par1,
					Par1Type:    carbsys.ParType(tc.Input.Par1Type),
					Par2:        tc.Input.Par2,
					Par2Type:    carbsys.ParType(tc.Input.Par2Type),
					Temperature: tc.Input.Temperature,
					Salinity:    tc.Input.Salinity,
				})
				Expect(err).NotTo(HaveOccurred())

				want := tc.Expected
				Expect(res.PH).To(BeNumerically("~", want.PH, 1e-9))
				Expect(res.DIC).To(near(want.DIC, 1e-9))
				Expect(res.Alkalinity).To(near(want.Alkalinity, 1e-12))
				Expect(res.PCO2).To(near(want.PCO2, 1e-9))
				Expect(res.FCO2).To(near(want.FCO2, 1e-9))
				Expect(res.CO2).To(near(want.CO2, 1e-9))
				Expect(res.HCO3).To(near(want.HCO3, 1e-9))
				Expect(res.CO3).To(near(want.CO3, 1e-8))
				Expect(res.BAlk).To(near(want.BAlk, 1e-9))
				Expect(res.OH).To(near(want.OH, 1e-8))
				Expect(res.OmegaCalcite).To(near(want.OmegaCalcite, 1e-8))
				Expect(res.OmegaAragonite).To(near(want.OmegaAragonite, 1e-8))
				Expect(res.RevelleFactor).To(near(want.RevelleFactor, 1e-5))
			}
		})
	})

	Context("alkalinity and pCO2", func() {
		It("lands in the plausible surface ocean range", func() {
			res, err := carbsys.Solve(reference())
			Expect(err).NotTo(HaveOccurred())
			Expect(res.PH).To(BeNumerically(">", 7.5))
			Expect(res.PH).To(BeNumerically("<", 8.5))
			Expect(res.DIC).To(BeNumerically(">", 1800))
			Expect(res.DIC).To(BeNumerically("<", 2200))
		})

		It("closes the alkalinity balance", func() {
			res, err := carbsys.Solve(reference())
			Expect(err).NotTo(HaveOccurred())
			h := math.Pow(10, -res.PH) / 1e-6
			sum := res.HCO3 + 2*res.CO3 + res.BAlk + res.OH - h
			// free hydrogen and bisulfate stay below 0.1 µmol/kg at this pH
			Expect(sum).To(BeNumerically("~", res.Alkalinity, 0.1))
		})

		It("accepts the parameters in either order", func() {
			in := reference()
			swapped := in
			swapped.Par1, swapped.Par2 = in.Par2, in.Par1
			swapped.Par1Type, swapped.Par2Type = in.Par2Type, in.Par1Type

			a, err := carbsys.Solve(in)
			Expect(err).NotTo(HaveOccurred())
			b, err := carbsys.Solve(swapped)
			Expect(err).NotTo(HaveOccurred())
			Expect(*b).To(Equal(*a))
		})

		It("treats fCO2 input consistently with pCO2", func() {
			a, err := carbsys.Solve(reference())
			Expect(err).NotTo(HaveOccurred())

			in := reference()
			in.Par2, in.Par2Type = a.FCO2, carbsys.FCO2
			b, err := carbsys.Solve(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(b.DIC).To(near(a.DIC, 1e-9))
		})
	})

	Context("round trips", func() {
		It("recovers pCO2 from alkalinity and DIC", func() {
			a, err := carbsys.Solve(reference())
			Expect(err).NotTo(HaveOccurred())

			b, err := carbsys.Solve(carbsys.Input{
				Par1: 2300, Par1Type: carbsys.Alkalinity,
				Par2: a.DIC, Par2Type: carbsys.DIC,
				Temperature: 15, Salinity: 33.5,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(b.PCO2).To(near(395, 1e-8))
			Expect(b.PH).To(BeNumerically("~", a.PH, 1e-9))
		})

		It("recovers DIC from alkalinity and pH", func() {
			a, err := carbsys.Solve(reference())
			Expect(err).NotTo(HaveOccurred())

			b, err := carbsys.Solve(carbsys.Input{
				Par1: a.PH, Par1Type: carbsys.PH,
				Par2: 2300, Par2Type: carbsys.Alkalinity,
				Temperature: 15, Salinity: 33.5,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(b.DIC).To(near(a.DIC, 1e-9))
		})
	})

	Context("chemistry trends", func() {
		It("lowers pH as pCO2 rises", func() {
			low, err := carbsys.Solve(reference())
			Expect(err).NotTo(HaveOccurred())
			in := reference()
			in.Par2 = 800
			high, err := carbsys.Solve(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(high.PH).To(BeNumerically("<", low.PH))
			Expect(high.DIC).To(BeNumerically(">", low.DIC))
			Expect(high.RevelleFactor).To(BeNumerically(">", low.RevelleFactor))
		})
	})

	Context("invalid requests", func() {
		It("rejects pairs without alkalinity", func() {
			_, err := carbsys.Solve(carbsys.Input{
				Par1: 2000, Par1Type: carbsys.DIC,
				Par2: 395, Par2Type: carbsys.PCO2,
				Temperature: 15, Salinity: 33.5,
			})
			Expect(err).To(MatchError(carbsys.ErrUnsupportedPair))
		})

		It("rejects alkalinity twice", func() {
			in := reference()
			in.Par2Type = carbsys.Alkalinity
			_, err := carbsys.Solve(in)
			Expect(err).To(MatchError(carbsys.ErrUnsupportedPair))
		})

		It("rejects unknown type codes", func() {
			in := reference()
			in.Par2Type = carbsys.ParType(9)
			_, err := carbsys.Solve(in)
			Expect(err).To(MatchError(carbsys.ErrUnsupportedPair))
		})

		DescribeTable("rejects non-physical inputs",
			func(mutate func(*carbsys.Input)) {
				in := reference()
				mutate(&in)
				_, err := carbsys.Solve(in)
				Expect(err).To(MatchError(carbsys.ErrInvalidInput))
			},
			Entry("negative alkalinity", func(in *carbsys.Input) { in.Par1 = -1 }),
			Entry("zero pCO2", func(in *carbsys.Input) { in.Par2 = 0 }),
			Entry("NaN temperature", func(in *carbsys.Input) { in.Temperature = math.NaN() }),
			Entry("negative salinity", func(in *carbsys.Input) { in.Salinity = -3 }),
			Entry("below absolute zero", func(in *carbsys.Input) { in.Temperature = -300 }),
		)

		It("reports an alkalinity too small for the requested pH", func() {
			_, err := carbsys.Solve(carbsys.Input{
				Par1: 10, Par1Type: carbsys.Alkalinity,
				Par2: 9.5, Par2Type: carbsys.PH,
				Temperature: 15, Salinity: 33.5,
			})
			Expect(err).To(MatchError(carbsys.ErrInvalidInput))
		})
	})
})

var _ = Describe("ParType", func() {
	It("names the CO2SYS codes", func() {
		Expect(carbsys.Alkalinity.String()).To(Equal("alkalinity"))
		Expect(carbsys.PCO2.String()).To(Equal("pCO2"))
		Expect(carbsys.ParType(42).String()).To(Equal("ParType(42)"))
	})
})
