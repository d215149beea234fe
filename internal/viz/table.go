package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/carbonbox/internal/carbsys"
	"github.com/san-kum/carbonbox/internal/seawater"
)

type row struct {
	label, value, unit string
}

func renderRows(title string, rows []row) string {
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.label))
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(title))
	b.WriteString("\n")
	for _, r := range rows {
		label := MetricLabel.Width(labelWidth + 2).Render(r.label)
		b.WriteString(label + MetricValue.Render(r.value))
		if r.unit != "" {
			b.WriteString(" " + Subtle.Render(r.unit))
		}
		b.WriteString("\n")
	}
	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderConstants tabulates the seawater constants at tempC, sal and wind.
func RenderConstants(tempC, sal, wind float64) string {
	tk := seawater.CelsiusToKelvin(tempC)
	rows := []row{
		{"K0", fmt.Sprintf("%.6e", seawater.K0(tk, sal)), "mol/kg/atm"},
		{"K1", fmt.Sprintf("%.6e", seawater.K1(tk, sal)), "mol/kg"},
		{"K2", fmt.Sprintf("%.6e", seawater.K2(tk, sal)), "mol/kg"},
		{"KB", fmt.Sprintf("%.6e", seawater.Kb(tk, sal)), "mol/kg"},
		{"KW", fmt.Sprintf("%.6e", seawater.Kw(tk, sal)), "(mol/kg)²"},
		{"KSO4", fmt.Sprintf("%.6e", seawater.KSO4(tk, sal)), "mol/kg"},
		{"Ksp calcite", fmt.Sprintf("%.6e", seawater.KspCalcite(tk, sal)), "(mol/kg)²"},
		{"Ksp aragonite", fmt.Sprintf("%.6e", seawater.KspAragonite(tk, sal)), "(mol/kg)²"},
		{"total borate", fmt.Sprintf("%.6e", seawater.Boron(sal)), "mol/kg"},
		{"Schmidt number", fmt.Sprintf("%.2f", seawater.Schmidt(tempC)), ""},
		{"kappa", fmt.Sprintf("%.4f", seawater.Kappa(wind, tempC)), "cm/h"},
		{"piston velocity", fmt.Sprintf("%.6f", seawater.PistonVelocity(wind, tempC, sal)), ""},
	}
	title := fmt.Sprintf("seawater constants  T=%.2f°C  S=%.2f  u=%.1f m/s", tempC, sal, wind)
	return renderRows(title, rows)
}

// RenderInitial tabulates a solved carbonate system.
func RenderInitial(res *carbsys.Result) string {
	rows := []row{
		{"pH", fmt.Sprintf("%.4f", res.PH), "total scale"},
		{"DIC", fmt.Sprintf("%.2f", res.DIC), "µmol/kg"},
		{"alkalinity", fmt.Sprintf("%.2f", res.Alkalinity), "µmol/kg"},
		{"pCO2", fmt.Sprintf("%.2f", res.PCO2), "µatm"},
		{"fCO2", fmt.Sprintf("%.2f", res.FCO2), "µatm"},
		{"CO2*", fmt.Sprintf("%.2f", res.CO2), "µmol/kg"},
		{"HCO3", fmt.Sprintf("%.2f", res.HCO3), "µmol/kg"},
		{"CO3", fmt.Sprintf("%.2f", res.CO3), "µmol/kg"},
		{"Revelle factor", fmt.Sprintf("%.2f", res.RevelleFactor), ""},
		{"Ω calcite", fmt.Sprintf("%.3f", res.OmegaCalcite), ""},
		{"Ω aragonite", fmt.Sprintf("%.3f", res.OmegaAragonite), ""},
	}
	title := fmt.Sprintf("carbonate system  T=%.2f°C  S=%.2f", res.Temperature, res.Salinity)
	return renderRows(title, rows)
}
