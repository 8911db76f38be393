package mapping

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleFacilities() []Facility {
	return []Facility{
		{
			Name:        "Suguna Broiler Unit 14",
			Type:        PoultryBroiler,
			Operator:    "Suguna Foods Private Limited",
			State:       "Tamil Nadu",
			District:    "Namakkal",
			Latitude:    11.2196,
			Longitude:   78.1670,
			PCBCategory: CategoryOrange,
			CTONumber:   "TNPCB/NKL/2024/0713",
			Capacity:    "50,000 birds",
		},
		{
			Name:     "Banas Dairy Chilling Centre",
			Type:     DairyChilling,
			Operator: "Banaskantha District Co-operative Milk Producers' Union",
			State:    "Gujarat",
			District: "Banaskantha",
		},
		{
			Name:      "Venky's Processing Plant",
			Type:      PoultryProcessing,
			Operator:  "Venky's (India) Limited",
			State:     "Maharashtra",
			District:  "Pune",
			Latitude:  18.5204,
			Longitude: 73.8567,
		},
	}
}

func newTestMapper(t *testing.T) *Mapper {
	t.Helper()
	m := NewMapper()
	for _, f := range sampleFacilities() {
		if err := m.Add(f); err != nil {
			t.Fatalf("add %s: %v", f.Name, err)
		}
	}
	return m
}

func TestAddRejectsInvalid(t *testing.T) {
	m := NewMapper()
	if err := m.Add(Facility{Type: PoultryBroiler, Operator: "x"}); err == nil {
		t.Error("expected error for missing name")
	}
	if err := m.Add(Facility{Name: "x", Type: FacilityType("megafarm")}); err == nil {
		t.Error("expected error for unknown facility type")
	}
	if len(m.Facilities()) != 0 {
		t.Errorf("expected empty register, got %d", len(m.Facilities()))
	}
}

func TestFilterByState(t *testing.T) {
	m := newTestMapper(t)
	got := m.FilterByState("tamil nadu")
	if len(got) != 1 || got[0].Name != "Suguna Broiler Unit 14" {
		t.Errorf("unexpected result: %+v", got)
	}
	if got := m.FilterByState("Kerala"); len(got) != 0 {
		t.Errorf("expected no facilities in Kerala, got %d", len(got))
	}
}

func TestFilterByDistrict(t *testing.T) {
	m := newTestMapper(t)
	if got := m.FilterByDistrict("Namakkal", ""); len(got) != 1 {
		t.Errorf("expected 1 facility in Namakkal, got %d", len(got))
	}
	if got := m.FilterByDistrict("Namakkal", "Gujarat"); len(got) != 0 {
		t.Errorf("state qualifier should exclude, got %d", len(got))
	}
}

func TestFilterByType(t *testing.T) {
	m := newTestMapper(t)
	if got := m.FilterByType(DairyChilling); len(got) != 1 {
		t.Errorf("expected 1 chilling centre, got %d", len(got))
	}
}

func TestFilterByOperatorPartialMatch(t *testing.T) {
	m := newTestMapper(t)
	if got := m.FilterByOperator("suguna"); len(got) != 1 {
		t.Errorf("expected partial match on suguna, got %d", len(got))
	}
	if got := m.FilterByOperator("co-operative"); len(got) != 1 {
		t.Errorf("expected match on co-operative, got %d", len(got))
	}
}

func TestStats(t *testing.T) {
	m := newTestMapper(t)
	s := m.Stats()
	if s.Total != 3 {
		t.Errorf("total = %d, want 3", s.Total)
	}
	if s.ByType[PoultryBroiler] != 1 {
		t.Errorf("broiler count = %d, want 1", s.ByType[PoultryBroiler])
	}
	if s.ByState["Gujarat"] != 1 {
		t.Errorf("gujarat count = %d, want 1", s.ByState["Gujarat"])
	}
	if s.WithCoordinates != 2 {
		t.Errorf("with coordinates = %d, want 2", s.WithCoordinates)
	}
	if s.WithCTO != 1 {
		t.Errorf("with cto = %d, want 1", s.WithCTO)
	}
}

func TestGeoJSON(t *testing.T) {
	m := newTestMapper(t)
	fc := m.GeoJSON()
	if fc.Type != "FeatureCollection" {
		t.Errorf("type = %q", fc.Type)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("expected 2 features (only facilities with coordinates), got %d", len(fc.Features))
	}
	coords := fc.Features[0].Geometry.Coordinates
	if coords[0] != 78.1670 || coords[1] != 11.2196 {
		t.Errorf("coordinates should be longitude first, got %v", coords)
	}
	if fc.Features[0].Properties["pcb_category"] != "orange" {
		t.Errorf("pcb_category = %v", fc.Features[0].Properties["pcb_category"])
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := newTestMapper(t)
	path := filepath.Join(t.TempDir(), "facilities.json")
	if err := m.SaveJSON(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	m2 := NewMapper()
	n, err := m2.LoadJSON(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if n != 3 {
		t.Errorf("loaded %d, want 3", n)
	}
	if got := m2.Facilities()[0]; got.CTONumber != "TNPCB/NKL/2024/0713" {
		t.Errorf("cto number lost on round trip: %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	m := NewMapper()
	n, err := m.LoadJSON(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if n != 0 {
		t.Errorf("loaded %d from missing file", n)
	}
}

func TestLoadRejectsUnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	body := `[{"name": "x", "facility_type": "megafarm", "operator": "y", "state": "s", "district": "d"}]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	m := NewMapper()
	if _, err := m.LoadJSON(path); err == nil {
		t.Error("expected error for unknown facility type")
	}
}

func TestOperatorInfo(t *testing.T) {
	op, ok := OperatorInfo("gcmmf_amul")
	if !ok {
		t.Fatal("gcmmf_amul should be known")
	}
	if op.Headquarters != "Anand, Gujarat" {
		t.Errorf("headquarters = %q", op.Headquarters)
	}
	if len(op.WelfareConcerns) == 0 {
		t.Error("expected welfare concerns for amul")
	}
	if _, ok := OperatorInfo("acme_farms"); ok {
		t.Error("unknown operator should not resolve")
	}
}

func TestListOperatorsSorted(t *testing.T) {
	ops := ListOperators()
	if len(ops) != 11 {
		t.Fatalf("expected 11 operators, got %d", len(ops))
	}
	for i := 1; i < len(ops); i++ {
		if ops[i-1].Key > ops[i].Key {
			t.Errorf("operators not sorted: %s before %s", ops[i-1].Key, ops[i].Key)
		}
	}
}

func TestLivestockCensus(t *testing.T) {
	ctx := LivestockCensus("Gujarat")
	if ctx.National.TotalLivestock != 535_780_000 {
		t.Errorf("national total = %d", ctx.National.TotalLivestock)
	}
	if ctx.State.Cattle != 10_400_000 {
		t.Errorf("gujarat cattle = %d", ctx.State.Cattle)
	}

	unknown := LivestockCensus("Sikkim")
	if unknown.State != (CensusCounts{}) {
		t.Errorf("unknown state should have zero counts: %+v", unknown.State)
	}
}

func TestAssessRiskHigh(t *testing.T) {
	p := NewProfile("Suguna Broiler Unit 14", 11.2196, 78.1670)
	p.AddWaterBody(WaterBody{Name: "Cauvery tributary", Type: "river", DistanceKM: 0.3})
	p.AddSettlement(Settlement{Name: "Vettambadi", Type: "village", DistanceKM: 0.8, Population: 2400})
	p.AddGroundwater(GroundwaterSample{
		WellID: "CGWB-NKL-042", Location: "Vettambadi", DepthM: 40,
		DateSampled: "2025-11-10", NitrateMgL: 68, ColiformMPN: 12,
	})

	level, text := p.AssessRisk()
	if level != RiskHigh {
		t.Fatalf("level = %s, want HIGH", level)
	}
	for _, want := range []string{
		"Effluent runoff risk is severe",
		"2400 people affected",
		"exceeds BIS limit of 45 mg/L",
		"Fecal contamination",
		"National Green Tribunal",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("assessment missing %q", want)
		}
	}
}

func TestAssessRiskMedium(t *testing.T) {
	p := NewProfile("Chilling Centre", 0, 0)
	p.AddWaterBody(WaterBody{Name: "Village pond", Type: "pond", DistanceKM: 1.2})

	level, text := p.AssessRisk()
	if level != RiskMedium {
		t.Fatalf("level = %s, want MEDIUM", level)
	}
	if !strings.Contains(text, "monsoon") {
		t.Error("medium assessment should flag monsoon runoff")
	}
	if !strings.Contains(text, "effluent monitoring data") {
		t.Error("medium assessment should recommend SPCB RTI")
	}
}

func TestAssessRiskLow(t *testing.T) {
	p := NewProfile("Feed Mill", 0, 0)
	level, text := p.AssessRisk()
	if level != RiskLow {
		t.Fatalf("level = %s, want LOW", level)
	}
	if !strings.Contains(text, "No significant risks identified") {
		t.Error("low assessment should say no risks found")
	}
}

func TestReportOrdersByDistance(t *testing.T) {
	p := NewProfile("Plant", 18.5, 73.8)
	p.AddWaterBody(WaterBody{Name: "Far lake", Type: "lake", DistanceKM: 1.8})
	p.AddWaterBody(WaterBody{Name: "Near canal", Type: "canal", DistanceKM: 0.4})

	report := p.Report()
	if !strings.HasPrefix(report, "POLLUTION PROFILE: Plant") {
		t.Errorf("unexpected header: %q", report[:40])
	}
	near := strings.Index(report, "Near canal")
	far := strings.Index(report, "Far lake")
	if near < 0 || far < 0 || near > far {
		t.Error("water bodies should be listed nearest first")
	}
	if !strings.Contains(report, "NEARBY SETTLEMENTS:\n  No data.") {
		t.Error("missing settlement placeholder")
	}
}

func TestKnownHotspots(t *testing.T) {
	hotspots := KnownHotspots()
	if len(hotspots) != 6 {
		t.Fatalf("expected 6 hotspots, got %d", len(hotspots))
	}
	var found bool
	for _, h := range hotspots {
		if strings.Contains(h.Area, "Namakkal") {
			found = true
			if h.Type != "Poultry cluster" {
				t.Errorf("namakkal type = %q", h.Type)
			}
		}
	}
	if !found {
		t.Error("namakkal hotspot missing")
	}
}

func TestExportProfiles(t *testing.T) {
	p := NewProfile("Plant", 0, 0)
	p.AssessRisk()
	path := filepath.Join(t.TempDir(), "profiles.json")
	if err := ExportProfiles(path, []*Profile{p}); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"facility_name": "Plant"`) {
		t.Error("exported json missing facility name")
	}
}
