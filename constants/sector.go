package constants

import "strings"

// Sector is one of the fixed industrial categories used to bucket
// employment experience.
type Sector string

const (
	SectorEnergy    Sector = "ENERGY"
	SectorMetal     Sector = "METAL"
	SectorMineral   Sector = "MINERAL"
	SectorChemistry Sector = "CHEMISTRY"
	SectorWaste     Sector = "WASTE"
	SectorOther     Sector = "OTHER"
)

var allSectors = []Sector{
	SectorEnergy,
	SectorMetal,
	SectorMineral,
	SectorChemistry,
	SectorWaste,
	SectorOther,
}

func AllSectors() []Sector {
	out := make([]Sector, len(allSectors))
	copy(out, allSectors)
	return out
}

// sectorLabels maps the source system's certificate labels to sectors.
var sectorLabels = map[string]Sector{
	"enerji üretimi":             SectorEnergy,
	"enerji":                     SectorEnergy,
	"metal üretimi ve i̇şlemesi": SectorMetal,
	"metal":                      SectorMetal,
	"mineral endüstrisi":         SectorMineral,
	"mineral":                    SectorMineral,
	"kimya endüstrisi":           SectorChemistry,
	"kimya":                      SectorChemistry,
	"atık yönetimi":              SectorWaste,
	"atık":                       SectorWaste,
	"diğer üretim faaliyetleri":  SectorOther,
}

// SectorForLabel resolves a declared certificate label to a sector.
func SectorForLabel(label string) (Sector, bool) {
	s := strings.ToLower(strings.TrimSpace(label))
	if sec, ok := sectorLabels[s]; ok {
		return sec, true
	}
	for k, sec := range sectorLabels {
		if strings.Contains(s, k) {
			return sec, true
		}
	}
	return SectorOther, false
}

// ExperienceField returns the merged-record key holding the year total for
// a sector.
func ExperienceField(s Sector) string {
	switch s {
	case SectorEnergy:
		return "experience_energy"
	case SectorMetal:
		return "experience_metal"
	case SectorMineral:
		return "experience_mineral"
	case SectorChemistry:
		return "experience_chemistry"
	case SectorWaste:
		return "experience_waste"
	default:
		return "experience_other"
	}
}
