package mapping

import "strings"

// CensusCounts holds headcounts from the 20th Livestock Census (2019),
// Department of Animal Husbandry and Dairying.
type CensusCounts struct {
	TotalLivestock int64 `json:"total_livestock,omitempty"`
	Cattle         int64 `json:"cattle,omitempty"`
	Buffalo        int64 `json:"buffalo,omitempty"`
	Sheep          int64 `json:"sheep,omitempty"`
	Goat           int64 `json:"goat,omitempty"`
	Pig            int64 `json:"pig,omitempty"`
	Poultry        int64 `json:"poultry,omitempty"`
}

type CensusContext struct {
	National CensusCounts `json:"national"`
	State    CensusCounts `json:"state"`
	Source   string       `json:"source"`
	Note     string       `json:"note"`
}

var nationalCensus = CensusCounts{
	TotalLivestock: 535_780_000,
	Cattle:         192_490_000,
	Buffalo:        109_850_000,
	Sheep:          74_260_000,
	Goat:           148_880_000,
	Pig:            9_060_000,
	Poultry:        851_810_000,
}

// stateCensus covers the top livestock states; figures are approximate.
var stateCensus = map[string]CensusCounts{
	"uttar pradesh":  {Cattle: 19_600_000, Buffalo: 33_000_000, Goat: 15_700_000},
	"rajasthan":      {Cattle: 13_900_000, Buffalo: 12_900_000, Sheep: 7_900_000, Goat: 20_800_000},
	"madhya pradesh": {Cattle: 19_300_000, Buffalo: 10_700_000, Goat: 10_400_000},
	"west bengal":    {Cattle: 16_700_000, Buffalo: 700_000, Goat: 16_200_000},
	"bihar":          {Cattle: 12_200_000, Buffalo: 7_800_000, Goat: 12_800_000},
	"maharashtra":    {Cattle: 13_900_000, Buffalo: 6_200_000, Goat: 10_600_000},
	"andhra pradesh": {Cattle: 6_600_000, Buffalo: 10_300_000, Sheep: 13_900_000, Poultry: 227_000_000},
	"tamil nadu":     {Cattle: 8_800_000, Buffalo: 780_000, Sheep: 4_600_000, Goat: 8_100_000, Poultry: 117_000_000},
	"karnataka":      {Cattle: 9_500_000, Buffalo: 3_700_000, Sheep: 11_100_000},
	"telangana":      {Cattle: 4_600_000, Buffalo: 5_000_000, Sheep: 19_100_000, Poultry: 79_000_000},
	"gujarat":        {Cattle: 10_400_000, Buffalo: 10_700_000},
	"punjab":         {Cattle: 2_300_000, Buffalo: 5_200_000},
	"haryana":        {Cattle: 1_800_000, Buffalo: 6_100_000},
}

func normalizeState(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// LivestockCensus returns national totals plus per-state figures for the
// named state. Unknown states get zeroed state counts; district-level data
// needs an RTI to DAHD or the state animal husbandry department.
func LivestockCensus(state string) CensusContext {
	return CensusContext{
		National: nationalCensus,
		State:    stateCensus[normalizeState(state)],
		Source:   "20th Livestock Census, 2019, DAHD",
		Note:     "District-level data available via RTI to DAHD or state animal husbandry department.",
	}
}
