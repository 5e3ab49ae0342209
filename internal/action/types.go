package action

import (
	"fmt"
	"strings"
)

// Category is the normative family an action belongs to.
// The category decides how an action is weighted and whether it may
// become predominant during a generation pass.
type Category int

const (
	CategoryPermanent Category = iota
	CategoryVariable
	CategoryAccidental
	CategorySeismic
	CategoryGroundwater
)

func (c Category) String() string {
	switch c {
	case CategoryPermanent:
		return "permanent"
	case CategoryVariable:
		return "variable"
	case CategoryAccidental:
		return "accidental"
	case CategorySeismic:
		return "seismic"
	case CategoryGroundwater:
		return "groundwater"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Annex selects the national annex used to derive categories and ψ factors.
type Annex string

const (
	AnnexEU Annex = "eu"
	AnnexFR Annex = "fr"
)

// ParseAnnex accepts "eu" or "fr" in any case.
func ParseAnnex(s string) (Annex, error) {
	switch Annex(strings.ToLower(strings.TrimSpace(s))) {
	case AnnexEU, "":
		return AnnexEU, nil
	case AnnexFR:
		return AnnexFR, nil
	}
	return "", fmt.Errorf("unknown national annex %q (expected eu or fr)", s)
}

// Type is the normative type code of an action.
type Type string

// Type codes. Snow on Saint-Pierre-et-Miquelon and groundwater only exist
// under the French annex; Nordic snow only under the EU table.
const (
	TypePermanent   Type = "permanent"
	TypePrestress   Type = "prestress"
	TypeImposedA    Type = "imposed-a" // domestic, residential
	TypeImposedB    Type = "imposed-b" // office
	TypeImposedC    Type = "imposed-c" // congregation
	TypeImposedD    Type = "imposed-d" // shopping
	TypeImposedE    Type = "imposed-e" // storage
	TypeImposedF    Type = "imposed-f" // traffic, vehicle weight <= 30 kN
	TypeImposedG    Type = "imposed-g" // traffic, 30 kN < vehicle weight <= 160 kN
	TypeImposedH    Type = "imposed-h" // roofs
	TypeSnowNordic  Type = "snow-nordic"
	TypeSnowHigh    Type = "snow-high" // altitude > 1000 m
	TypeSnowLow     Type = "snow-low"  // altitude <= 1000 m
	TypeSnowSPM     Type = "snow-spm"
	TypeWind        Type = "wind"
	TypeTemperature Type = "temperature"
	TypeAccidental  Type = "accidental"
	TypeSeismic     Type = "seismic"
	TypeGroundwater Type = "groundwater"
)

// Coefficients describes one row of the annex table.
// EN 1990 Table A1.1 - Recommended values of ψ factors for buildings
type Coefficients struct {
	Type        Type
	Description string
	Category    Category
	Psi0        float64 // combination value
	Psi1        float64 // frequent value
	Psi2        float64 // quasi-permanent value
}

var euTable = []Coefficients{
	{TypePermanent, "Permanent", CategoryPermanent, 0, 0, 0},
	{TypePrestress, "Prestress", CategoryPermanent, 0, 0, 0},
	{TypeImposedA, "Imposed load, category A: domestic, residential", CategoryVariable, 0.7, 0.5, 0.3},
	{TypeImposedB, "Imposed load, category B: office", CategoryVariable, 0.7, 0.5, 0.3},
	{TypeImposedC, "Imposed load, category C: congregation areas", CategoryVariable, 0.7, 0.7, 0.6},
	{TypeImposedD, "Imposed load, category D: shopping areas", CategoryVariable, 0.7, 0.7, 0.6},
	{TypeImposedE, "Imposed load, category E: storage areas", CategoryVariable, 1.0, 0.9, 0.8},
	{TypeImposedF, "Traffic area, vehicle weight <= 30 kN", CategoryVariable, 0.7, 0.7, 0.6},
	{TypeImposedG, "Traffic area, 30 kN < vehicle weight <= 160 kN", CategoryVariable, 0.7, 0.5, 0.3},
	{TypeImposedH, "Roofs", CategoryVariable, 0, 0, 0},
	{TypeSnowNordic, "Snow: Finland, Iceland, Norway, Sweden", CategoryVariable, 0.7, 0.5, 0.2},
	{TypeSnowHigh, "Snow: other CEN members, H > 1000 m", CategoryVariable, 0.7, 0.5, 0.2},
	{TypeSnowLow, "Snow: other CEN members, H <= 1000 m", CategoryVariable, 0.5, 0.2, 0},
	{TypeWind, "Wind", CategoryVariable, 0.6, 0.2, 0},
	{TypeTemperature, "Temperature (non-fire)", CategoryVariable, 0.6, 0.5, 0},
	{TypeAccidental, "Accidental", CategoryAccidental, 0, 0, 0},
	{TypeSeismic, "Seismic", CategorySeismic, 0, 0, 0},
}

// French national annex, NF EN 1990/NA Table A1.1(F)
var frTable = []Coefficients{
	{TypePermanent, "Permanent", CategoryPermanent, 0, 0, 0},
	{TypePrestress, "Precontrainte", CategoryPermanent, 0, 0, 0},
	{TypeImposedA, "Exploitation, catégorie A : habitation", CategoryVariable, 0.7, 0.5, 0.3},
	{TypeImposedB, "Exploitation, catégorie B : bureaux", CategoryVariable, 0.7, 0.5, 0.3},
	{TypeImposedC, "Exploitation, catégorie C : lieux de réunion", CategoryVariable, 0.7, 0.7, 0.6},
	{TypeImposedD, "Exploitation, catégorie D : commerces", CategoryVariable, 0.7, 0.7, 0.6},
	{TypeImposedE, "Exploitation, catégorie E : stockage", CategoryVariable, 1.0, 0.9, 0.8},
	{TypeImposedF, "Circulation, véhicule <= 30 kN", CategoryVariable, 0.7, 0.7, 0.6},
	{TypeImposedG, "Circulation, 30 kN < véhicule <= 160 kN", CategoryVariable, 0.7, 0.5, 0.3},
	{TypeImposedH, "Toits", CategoryVariable, 0, 0, 0},
	{TypeSnowSPM, "Neige : Saint-Pierre-et-Miquelon", CategoryVariable, 0.7, 0.5, 0.2},
	{TypeSnowHigh, "Neige : altitude > 1000 m", CategoryVariable, 0.7, 0.5, 0.2},
	{TypeSnowLow, "Neige : altitude <= 1000 m", CategoryVariable, 0.5, 0.2, 0},
	{TypeWind, "Vent", CategoryVariable, 0.6, 0.2, 0},
	{TypeTemperature, "Température (hors incendie)", CategoryVariable, 0.6, 0.5, 0},
	{TypeAccidental, "Accidentelle", CategoryAccidental, 0, 0, 0},
	{TypeSeismic, "Sismique", CategorySeismic, 0, 0, 0},
	{TypeGroundwater, "Eaux souterraines", CategoryGroundwater, 0, 0, 0},
}

// Table returns the coefficient rows of an annex in display order.
func Table(annex Annex) []Coefficients {
	if annex == AnnexFR {
		return frTable
	}
	return euTable
}

// Lookup finds the coefficient row of a type under an annex.
func Lookup(annex Annex, t Type) (Coefficients, error) {
	for _, row := range Table(annex) {
		if row.Type == t {
			return row, nil
		}
	}
	return Coefficients{}, fmt.Errorf("action type %q is not defined by the %s annex", t, annex)
}
