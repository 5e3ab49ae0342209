package ponderation

import (
	"fmt"

	"github.com/alexiusacademia/gocomb/internal/action"
)

// Verification is one of the nine Eurocode verification categories.
type Verification int

const (
	ULSEquilibrium Verification = iota
	ULSStructural
	ULSGeotechnical
	ULSFatigue
	ULSAccidental
	ULSSeismic
	SLSCharacteristic
	SLSFrequent
	SLSQuasiPermanent
)

// Verifications lists every category in report order.
var Verifications = []Verification{
	ULSEquilibrium,
	ULSStructural,
	ULSGeotechnical,
	ULSFatigue,
	ULSAccidental,
	ULSSeismic,
	SLSCharacteristic,
	SLSFrequent,
	SLSQuasiPermanent,
}

var verificationCodes = map[Verification][2]string{
	ULSEquilibrium:    {"ULS-EQU", "Static equilibrium (EN 1990 6.4.3.2, Set A)"},
	ULSStructural:     {"ULS-STR", "Structural resistance (EN 1990 6.10, Set B)"},
	ULSGeotechnical:   {"ULS-GEO", "Geotechnical resistance (EN 1990 6.10, Set C)"},
	ULSFatigue:        {"ULS-FAT", "Fatigue (EN 1992-1-1 6.8.3)"},
	ULSAccidental:     {"ULS-ACC", "Accidental design situation (EN 1990 6.11b)"},
	ULSSeismic:        {"ULS-SEIS", "Seismic design situation (EN 1990 6.12b)"},
	SLSCharacteristic: {"SLS-CHAR", "Characteristic combination (EN 1990 6.14b)"},
	SLSFrequent:       {"SLS-FREQ", "Frequent combination (EN 1990 6.15b)"},
	SLSQuasiPermanent: {"SLS-QP", "Quasi-permanent combination (EN 1990 6.16b)"},
}

func (v Verification) String() string {
	if c, ok := verificationCodes[v]; ok {
		return c[0]
	}
	return fmt.Sprintf("Verification(%d)", int(v))
}

// Description returns the normative reference of the category.
func (v Verification) Description() string {
	return verificationCodes[v][1]
}

// ParseVerification accepts the codes returned by String.
func ParseVerification(s string) (Verification, error) {
	for _, v := range Verifications {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown verification %q", s)
}

// PartialFactors is one set of partial safety factors.
type PartialFactors struct {
	GSup        float64 // unfavourable permanent actions
	GInf        float64 // favourable permanent actions
	Prestress   float64
	Groundwater float64
	Q           float64 // variable actions
}

// Factors holds the partial factor set of every verification category.
type Factors map[Verification]PartialFactors

var unit = PartialFactors{GSup: 1, GInf: 1, Prestress: 1, Groundwater: 1, Q: 1}

// EN 1990 Tables A1.2(A), A1.2(B) and A1.2(C), recommended values
var euFactors = Factors{
	ULSEquilibrium:    {GSup: 1.10, GInf: 0.90, Prestress: 1, Groundwater: 1, Q: 1.50},
	ULSStructural:     {GSup: 1.35, GInf: 1.00, Prestress: 1, Groundwater: 1, Q: 1.50},
	ULSGeotechnical:   {GSup: 1.00, GInf: 1.00, Prestress: 1, Groundwater: 1, Q: 1.30},
	ULSFatigue:        unit,
	ULSAccidental:     unit,
	ULSSeismic:        unit,
	SLSCharacteristic: unit,
	SLSFrequent:       unit,
	SLSQuasiPermanent: unit,
}

// NF EN 1990/NA: approach 2 for geotechnics, groundwater at 1.20 in the
// fundamental combinations.
var frFactors = Factors{
	ULSEquilibrium:    {GSup: 1.10, GInf: 0.90, Prestress: 1, Groundwater: 1, Q: 1.50},
	ULSStructural:     {GSup: 1.35, GInf: 1.00, Prestress: 1, Groundwater: 1.20, Q: 1.50},
	ULSGeotechnical:   {GSup: 1.35, GInf: 1.00, Prestress: 1, Groundwater: 1.20, Q: 1.50},
	ULSFatigue:        unit,
	ULSAccidental:     unit,
	ULSSeismic:        unit,
	SLSCharacteristic: unit,
	SLSFrequent:       unit,
	SLSQuasiPermanent: unit,
}

// DefaultFactors returns the partial factors of an annex.
func DefaultFactors(annex action.Annex) Factors {
	src := euFactors
	if annex == action.AnnexFR {
		src = frFactors
	}
	out := make(Factors, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
