// Package mapping tracks industrial animal agriculture facilities across
// India: pollution board consent records, FSSAI licenses, livestock census
// context and proximity-based pollution risk profiles.
package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

type FacilityType string

const (
	PoultryBroiler    FacilityType = "poultry_broiler"
	PoultryLayer      FacilityType = "poultry_layer"
	PoultryBreeder    FacilityType = "poultry_breeder"
	PoultryHatchery   FacilityType = "poultry_hatchery"
	PoultryProcessing FacilityType = "poultry_processing"
	DairyFarm         FacilityType = "dairy_farm"
	DairyProcessing   FacilityType = "dairy_processing"
	DairyChilling     FacilityType = "dairy_chilling_centre"
	Piggery           FacilityType = "piggery"
	GoatSheepFarm     FacilityType = "goat_sheep_farm"
	AquacultureShrimp FacilityType = "aquaculture_shrimp"
	AquacultureFish   FacilityType = "aquaculture_fish"
	Slaughterhouse    FacilityType = "slaughterhouse"
	MeatProcessing    FacilityType = "meat_processing"
	FeedMill          FacilityType = "feed_mill"
	RenderingPlant    FacilityType = "rendering_plant"
)

var FacilityTypes = []FacilityType{
	PoultryBroiler, PoultryLayer, PoultryBreeder, PoultryHatchery,
	PoultryProcessing, DairyFarm, DairyProcessing, DairyChilling,
	Piggery, GoatSheepFarm, AquacultureShrimp, AquacultureFish,
	Slaughterhouse, MeatProcessing, FeedMill, RenderingPlant,
}

func (t FacilityType) Valid() bool {
	for _, ft := range FacilityTypes {
		if t == ft {
			return true
		}
	}
	return false
}

// PCBCategory is the pollution control board classification of a facility.
// Slaughterhouses and large meat processing fall under red; poultry above
// 5000 birds and large dairy under orange.
type PCBCategory string

const (
	CategoryRed    PCBCategory = "red"
	CategoryOrange PCBCategory = "orange"
	CategoryGreen  PCBCategory = "green"
	CategoryWhite  PCBCategory = "white"
)

type Facility struct {
	Name               string       `json:"name"`
	Type               FacilityType `json:"facility_type"`
	Operator           string       `json:"operator"`
	State              string       `json:"state"`
	District           string       `json:"district"`
	Address            string       `json:"address,omitempty"`
	Latitude           float64      `json:"latitude,omitempty"`
	Longitude          float64      `json:"longitude,omitempty"`
	PCBCategory        PCBCategory  `json:"pcb_category,omitempty"`
	CTONumber          string       `json:"cto_number,omitempty"`
	CTOValidUntil      string       `json:"cto_valid_until,omitempty"`
	FSSAILicense       string       `json:"fssai_license,omitempty"`
	Capacity           string       `json:"capacity,omitempty"`
	AnimalCount        int          `json:"animal_count,omitempty"`
	Employees          int          `json:"employees,omitempty"`
	AnnualRevenueCrore float64      `json:"annual_revenue_crore,omitempty"`
	ParentCompany      string       `json:"parent_company,omitempty"`
	CIN                string       `json:"cin,omitempty"`
	Notes              string       `json:"notes,omitempty"`
	DataSources        []string     `json:"data_sources,omitempty"`
}

// Mapper holds the in-memory facility register. Facilities come from SPCB
// consent records, FSSAI registries, MCA filings and RTI responses.
type Mapper struct {
	facilities []Facility
}

func NewMapper() *Mapper {
	return &Mapper{}
}

func (m *Mapper) Add(f Facility) error {
	if f.Name == "" {
		return fmt.Errorf("facility name is required")
	}
	if !f.Type.Valid() {
		return fmt.Errorf("unknown facility type %q", f.Type)
	}
	m.facilities = append(m.facilities, f)
	return nil
}

func (m *Mapper) Facilities() []Facility {
	return m.facilities
}

// LoadJSON reads facilities from a JSON array file and appends them to the
// register. A missing file is not an error; it loads zero facilities.
func (m *Mapper) LoadJSON(path string) (int, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read facilities: %w", err)
	}

	var loaded []Facility
	if err := json.Unmarshal(data, &loaded); err != nil {
		return 0, fmt.Errorf("parse facilities: %w", err)
	}
	for i, f := range loaded {
		if !f.Type.Valid() {
			return 0, fmt.Errorf("facility %d (%s): unknown type %q", i, f.Name, f.Type)
		}
	}
	m.facilities = append(m.facilities, loaded...)
	return len(loaded), nil
}

func (m *Mapper) SaveJSON(path string) error {
	data, err := json.MarshalIndent(m.facilities, "", "  ")
	if err != nil {
		return fmt.Errorf("encode facilities: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write facilities: %w", err)
	}
	return nil
}

func (m *Mapper) FilterByState(state string) []Facility {
	var out []Facility
	for _, f := range m.facilities {
		if strings.EqualFold(f.State, state) {
			out = append(out, f)
		}
	}
	return out
}

// FilterByDistrict matches by district name; pass a non-empty state to
// disambiguate districts that share a name across states.
func (m *Mapper) FilterByDistrict(district, state string) []Facility {
	var out []Facility
	for _, f := range m.facilities {
		if !strings.EqualFold(f.District, district) {
			continue
		}
		if state != "" && !strings.EqualFold(f.State, state) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (m *Mapper) FilterByType(t FacilityType) []Facility {
	var out []Facility
	for _, f := range m.facilities {
		if f.Type == t {
			out = append(out, f)
		}
	}
	return out
}

// FilterByOperator matches on a case-insensitive substring of the operator
// name, so "suguna" finds "Suguna Foods Private Limited".
func (m *Mapper) FilterByOperator(operator string) []Facility {
	needle := strings.ToLower(operator)
	var out []Facility
	for _, f := range m.facilities {
		if strings.Contains(strings.ToLower(f.Operator), needle) {
			out = append(out, f)
		}
	}
	return out
}

type Stats struct {
	Total           int                  `json:"total_facilities"`
	ByType          map[FacilityType]int `json:"by_type"`
	ByState         map[string]int       `json:"by_state"`
	ByOperator      map[string]int       `json:"by_operator"`
	WithCoordinates int                  `json:"with_coordinates"`
	WithCTO         int                  `json:"with_cto"`
}

func (m *Mapper) Stats() Stats {
	s := Stats{
		ByType:     make(map[FacilityType]int),
		ByState:    make(map[string]int),
		ByOperator: make(map[string]int),
	}
	for _, f := range m.facilities {
		s.Total++
		s.ByType[f.Type]++
		s.ByState[f.State]++
		s.ByOperator[f.Operator]++
		if f.Latitude != 0 && f.Longitude != 0 {
			s.WithCoordinates++
		}
		if f.CTONumber != "" {
			s.WithCTO++
		}
	}
	return s
}

type geoFeature struct {
	Type       string         `json:"type"`
	Geometry   geoPoint       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type FeatureCollection struct {
	Type     string       `json:"type"`
	Features []geoFeature `json:"features"`
}

// GeoJSON returns a FeatureCollection of every facility that has
// coordinates. GeoJSON ordering is longitude first.
func (m *Mapper) GeoJSON() FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection", Features: []geoFeature{}}
	for _, f := range m.facilities {
		if f.Latitude == 0 || f.Longitude == 0 {
			continue
		}
		props := map[string]any{
			"name":     f.Name,
			"type":     string(f.Type),
			"operator": f.Operator,
			"state":    f.State,
			"district": f.District,
		}
		if f.Capacity != "" {
			props["capacity"] = f.Capacity
		}
		if f.PCBCategory != "" {
			props["pcb_category"] = string(f.PCBCategory)
		}
		fc.Features = append(fc.Features, geoFeature{
			Type:       "Feature",
			Geometry:   geoPoint{Type: "Point", Coordinates: [2]float64{f.Longitude, f.Latitude}},
			Properties: props,
		})
	}
	return fc
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
