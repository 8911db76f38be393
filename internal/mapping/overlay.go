package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// WaterBody is a river, lake, reservoir, canal, pond or well near a
// facility.
type WaterBody struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	DistanceKM float64 `json:"distance_km"`
}

// Settlement is a village, town or city near a facility.
type Settlement struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	DistanceKM float64 `json:"distance_km"`
	Population int     `json:"population,omitempty"`
}

// GroundwaterSample is one reading from a CGWB monitoring well. Zero values
// mean the parameter was not measured; NaN is never used.
type GroundwaterSample struct {
	WellID      string  `json:"monitoring_well_id"`
	Location    string  `json:"location"`
	DepthM      float64 `json:"depth_m"`
	DateSampled string  `json:"date_sampled"`
	NitrateMgL  float64 `json:"nitrate_mg_l,omitempty"`
	AmmoniaMgL  float64 `json:"ammonia_mg_l,omitempty"`
	TDSMgL      float64 `json:"tds_mg_l,omitempty"`
	ColiformMPN float64 `json:"coliform_mpn,omitempty"`
	FluorideMgL float64 `json:"fluoride_mg_l,omitempty"`
	IronMgL     float64 `json:"iron_mg_l,omitempty"`
	PH          float64 `json:"ph,omitempty"`
}

// BIS 10500:2012 drinking water limits for the parameters animal
// agriculture contaminates most.
const (
	BISNitrateLimit  = 45.0
	BISAmmoniaLimit  = 0.5
	BISTDSDesirable  = 500.0
	BISColiformLimit = 0.0
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Profile overlays a facility location with nearby water bodies,
// settlements and groundwater monitoring data for advocacy and PIL support.
type Profile struct {
	FacilityName string              `json:"facility_name"`
	Latitude     float64             `json:"latitude,omitempty"`
	Longitude    float64             `json:"longitude,omitempty"`
	WaterBodies  []WaterBody         `json:"water_bodies"`
	Settlements  []Settlement        `json:"settlements"`
	Groundwater  []GroundwaterSample `json:"groundwater,omitempty"`
	Assessment   string              `json:"risk_assessment,omitempty"`
}

func NewProfile(facilityName string, lat, lon float64) *Profile {
	return &Profile{FacilityName: facilityName, Latitude: lat, Longitude: lon}
}

func (p *Profile) AddWaterBody(wb WaterBody) {
	p.WaterBodies = append(p.WaterBodies, wb)
}

func (p *Profile) AddSettlement(s Settlement) {
	p.Settlements = append(p.Settlements, s)
}

func (p *Profile) AddGroundwater(g GroundwaterSample) {
	p.Groundwater = append(p.Groundwater, g)
}

// AssessRisk checks water body proximity (<0.5 km is high risk, under 2 km
// is medium), settlement proximity (<1 km is high) and groundwater readings
// against BIS limits. The assessment text is stored on the profile and
// returned.
func (p *Profile) AssessRisk() (RiskLevel, string) {
	level := RiskLow
	var findings []string

	for _, wb := range p.WaterBodies {
		if wb.DistanceKM < 0.5 {
			level = RiskHigh
			findings = append(findings, fmt.Sprintf(
				"CRITICAL: %s (%s) is only %.1f km from the facility. Effluent runoff risk is severe.",
				wb.Name, wb.Type, wb.DistanceKM))
		}
	}
	for _, wb := range p.WaterBodies {
		if wb.DistanceKM >= 0.5 && wb.DistanceKM < 2.0 {
			if level != RiskHigh {
				level = RiskMedium
			}
			findings = append(findings, fmt.Sprintf(
				"WARNING: %s (%s) is %.1f km away. Contamination risk during monsoon season.",
				wb.Name, wb.Type, wb.DistanceKM))
		}
	}

	var closeSettlements int
	var affected int
	for _, s := range p.Settlements {
		if s.DistanceKM < 1.0 {
			closeSettlements++
			affected += s.Population
		}
	}
	if closeSettlements > 0 {
		level = RiskHigh
		findings = append(findings, fmt.Sprintf(
			"CRITICAL: %d settlements within 1 km. Estimated %d people affected by air pollution (ammonia, particulate matter) and odour.",
			closeSettlements, affected))
	}

	for _, g := range p.Groundwater {
		if g.NitrateMgL > BISNitrateLimit {
			level = RiskHigh
			findings = append(findings, fmt.Sprintf(
				"CRITICAL: Nitrate level %g mg/L at well %s exceeds BIS limit of 45 mg/L. Indicates organic (manure) contamination. Health risk: methemoglobinemia, cancer.",
				g.NitrateMgL, g.WellID))
		}
		if g.ColiformMPN > BISColiformLimit {
			level = RiskHigh
			findings = append(findings, fmt.Sprintf(
				"CRITICAL: Coliform detected (%g MPN/100ml) at well %s. BIS limit is 0. Fecal contamination likely from animal waste.",
				g.ColiformMPN, g.WellID))
		}
		if g.AmmoniaMgL > BISAmmoniaLimit {
			findings = append(findings, fmt.Sprintf(
				"WARNING: Ammonia level %g mg/L at well %s exceeds BIS limit of 0.5 mg/L.",
				g.AmmoniaMgL, g.WellID))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "RISK LEVEL: %s\n\n", level)
	if len(findings) > 0 {
		b.WriteString("FINDINGS:\n")
		for _, f := range findings {
			b.WriteString("- " + f + "\n")
		}
	} else {
		b.WriteString("No significant risks identified with available data.\n")
	}

	b.WriteString("\nRECOMMENDATIONS:\n")
	switch level {
	case RiskHigh:
		b.WriteString("- File complaint with State Pollution Control Board immediately.\n" +
			"- Consider PIL under Article 21 (right to clean environment).\n" +
			"- RTI for facility's CTO conditions and compliance reports.\n" +
			"- Document affected communities for impact statement.\n" +
			"- Contact National Green Tribunal if SPCB is non-responsive.\n")
	case RiskMedium:
		b.WriteString("- File RTI with SPCB for effluent monitoring data.\n" +
			"- Monitor groundwater quality quarterly.\n" +
			"- Document conditions during monsoon (peak runoff risk).\n" +
			"- Engage local panchayat/municipal body.\n")
	default:
		b.WriteString("- Continue monitoring.\n" +
			"- File RTI for baseline data.\n" +
			"- Establish community water quality monitoring.\n")
	}

	p.Assessment = b.String()
	return level, p.Assessment
}

// Report renders the profile as plain text, nearest features first.
func (p *Profile) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "POLLUTION PROFILE: %s\n", p.FacilityName)
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if p.Latitude != 0 && p.Longitude != 0 {
		fmt.Fprintf(&b, "Coordinates: %g, %g\n\n", p.Latitude, p.Longitude)
	}

	b.WriteString("NEARBY WATER BODIES:\n")
	if len(p.WaterBodies) > 0 {
		sorted := append([]WaterBody(nil), p.WaterBodies...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].DistanceKM < sorted[j].DistanceKM })
		for _, wb := range sorted {
			fmt.Fprintf(&b, "  - %s (%s): %.1f km\n", wb.Name, wb.Type, wb.DistanceKM)
		}
	} else {
		b.WriteString("  No data.\n")
	}

	b.WriteString("\nNEARBY SETTLEMENTS:\n")
	if len(p.Settlements) > 0 {
		sorted := append([]Settlement(nil), p.Settlements...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].DistanceKM < sorted[j].DistanceKM })
		for _, s := range sorted {
			pop := ""
			if s.Population > 0 {
				pop = fmt.Sprintf(", population: %d", s.Population)
			}
			fmt.Fprintf(&b, "  - %s (%s): %.1f km%s\n", s.Name, s.Type, s.DistanceKM, pop)
		}
	} else {
		b.WriteString("  No data.\n")
	}

	b.WriteString("\nGROUNDWATER QUALITY:\n")
	if len(p.Groundwater) > 0 {
		for _, g := range p.Groundwater {
			fmt.Fprintf(&b, "  Well %s (%s, %s):\n", g.WellID, g.Location, g.DateSampled)
			if g.NitrateMgL > 0 {
				fmt.Fprintf(&b, "    Nitrate: %g mg/L%s\n", g.NitrateMgL, exceedsFlag(g.NitrateMgL > BISNitrateLimit, "EXCEEDS BIS LIMIT"))
			}
			if g.AmmoniaMgL > 0 {
				fmt.Fprintf(&b, "    Ammonia: %g mg/L%s\n", g.AmmoniaMgL, exceedsFlag(g.AmmoniaMgL > BISAmmoniaLimit, "EXCEEDS BIS LIMIT"))
			}
			if g.TDSMgL > 0 {
				fmt.Fprintf(&b, "    TDS: %g mg/L%s\n", g.TDSMgL, exceedsFlag(g.TDSMgL > BISTDSDesirable, "EXCEEDS DESIRABLE"))
			}
			if g.ColiformMPN > 0 {
				fmt.Fprintf(&b, "    Coliform: %g MPN/100ml%s\n", g.ColiformMPN, exceedsFlag(true, "CONTAMINATED"))
			}
		}
	} else {
		b.WriteString("  No data.\n")
	}

	if p.Assessment != "" {
		b.WriteString("\n" + p.Assessment)
	}

	return b.String()
}

func exceedsFlag(exceeds bool, label string) string {
	if exceeds {
		return " [" + label + "]"
	}
	return ""
}

// Hotspot is a documented pollution cluster attributable to animal
// agriculture.
type Hotspot struct {
	Area        string   `json:"area"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Operators   []string `json:"operators"`
}

var knownHotspots = []Hotspot{
	{
		Area: "Namakkal District, Tamil Nadu",
		Type: "Poultry cluster",
		Description: "India's largest poultry cluster. ~50 million birds. Severe water " +
			"and air pollution from manure runoff and dead bird disposal. " +
			"Nitrate contamination in groundwater. Ammonia emissions.",
		Operators: []string{"Suguna", "SKM", "numerous small operators"},
	},
	{
		Area: "West Godavari District, Andhra Pradesh",
		Type: "Aquaculture (shrimp)",
		Description: "Massive shrimp farming belt. Conversion of agricultural land and " +
			"mangroves. Salinization of groundwater. Antibiotic residues in " +
			"waterways. Disease outbreaks (White Spot, EMS).",
		Operators: []string{"Avanti Feeds", "numerous small operators"},
	},
	{
		Area: "Anand-Kheda Districts, Gujarat",
		Type: "Dairy cluster (Amul belt)",
		Description: "Heart of Amul cooperative. High density of dairy animals. " +
			"Methane emissions, water consumption for fodder, effluent from " +
			"chilling centres and processing plants.",
		Operators: []string{"GCMMF/Amul member unions"},
	},
	{
		Area: "Pune-Nashik Belt, Maharashtra",
		Type: "Poultry and dairy",
		Description: "Large concentration of Venky's operations and dairy farms. " +
			"Processing plant effluent. Contract farming density.",
		Operators: []string{"Venky's", "Godrej Agrovet"},
	},
	{
		Area: "Nellore District, Andhra Pradesh",
		Type: "Aquaculture (shrimp and fish)",
		Description: "Major aquaculture zone. Coastal pollution, mangrove destruction, " +
			"antibiotic use in ponds.",
		Operators: []string{"Avanti Feeds", "Waterbase", "numerous small operators"},
	},
	{
		Area: "Banaskantha District, Gujarat",
		Type: "Dairy",
		Description: "Largest milk-producing district in India (Banas Dairy). " +
			"Massive water footprint for fodder. Groundwater depletion.",
		Operators: []string{"Banaskantha District Co-operative Milk Producers' Union"},
	},
}

func KnownHotspots() []Hotspot {
	return knownHotspots
}

// ExportProfiles writes pollution profiles to a JSON file.
func ExportProfiles(path string, profiles []*Profile) error {
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write profiles: %w", err)
	}
	return nil
}
