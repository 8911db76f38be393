package research

import (
	"strings"
	"testing"
)

func TestGCMMFProfile(t *testing.T) {
	p := GCMMFProfile()
	if p.Founded != 1946 {
		t.Errorf("founded = %d", p.Founded)
	}
	if p.RevenueFY2024Crore != 72_000 {
		t.Errorf("revenue = %d", p.RevenueFY2024Crore)
	}
	if p.FarmerMembers != 3_600_000 {
		t.Errorf("farmer members = %d", p.FarmerMembers)
	}
}

func TestTopicsResolve(t *testing.T) {
	topics := Topics()
	if len(topics) != 7 {
		t.Fatalf("expected 7 topics, got %d", len(topics))
	}
	for _, key := range topics {
		p, ok := GetPoint(key)
		if !ok {
			t.Errorf("topic %q not resolvable", key)
			continue
		}
		if p.Claim == "" || p.Evidence == "" || p.Source == "" {
			t.Errorf("topic %q missing claim, evidence, or source", key)
		}
	}
}

func TestGetPointUnknown(t *testing.T) {
	if _, ok := GetPoint("ghee_exports"); ok {
		t.Error("unknown topic should not resolve")
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"oxytocin", "oxytocin_use"},
		{"mastitis", "antibiotic_use"},
		{"World Bank", "operation_flood_legacy"},
		{"Banaskantha", "water_footprint"},
	}
	for _, tt := range tests {
		got := Search(tt.query)
		var found bool
		for _, key := range got {
			if key == tt.want {
				found = true
			}
		}
		if !found {
			t.Errorf("Search(%q) = %v, missing %q", tt.query, got, tt.want)
		}
	}

	if got := Search("cryptocurrency"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestSearchPreservesTopicOrder(t *testing.T) {
	got := Search("milk")
	order := make(map[string]int)
	for i, key := range Topics() {
		order[key] = i
	}
	for i := 1; i < len(got); i++ {
		if order[got[i-1]] > order[got[i]] {
			t.Errorf("results out of topic order: %v", got)
		}
	}
}

func TestCounterNarratives(t *testing.T) {
	narratives := CounterNarratives()
	if len(narratives) != 7 {
		t.Errorf("expected all 7 topics to carry counter-narratives, got %d", len(narratives))
	}
	if !strings.Contains(narratives["male_calf_crisis"], "missing calves") {
		t.Errorf("calf narrative = %q", narratives["male_calf_crisis"])
	}
}

func TestRebuttals(t *testing.T) {
	rebuttals := Rebuttals()
	if len(rebuttals) != 3 {
		t.Fatalf("expected 3 prepared rebuttals, got %d", len(rebuttals))
	}
	for _, r := range rebuttals {
		if r.AmulLikelyResponse == "" || r.OurRebuttal == "" || r.Source == "" {
			t.Errorf("incomplete rebuttal for %q", r.Topic)
		}
	}
	if rebuttals[0].Topic != "cooperative_vs_industrial" {
		t.Errorf("first rebuttal = %q, want cooperative_vs_industrial", rebuttals[0].Topic)
	}
}

func TestFactSheet(t *testing.T) {
	sheet := FactSheet()
	for _, want := range []string{
		"AMUL / GCMMF FACT SHEET",
		"Revenue (FY24): Rs. 72000 crore",
		"--- Male Calf Crisis ---",
		"--- Operation Flood Legacy ---",
		"Source: CDSCO notification 2018",
	} {
		if !strings.Contains(sheet, want) {
			t.Errorf("fact sheet missing %q", want)
		}
	}
}

func TestGenerateNarratives(t *testing.T) {
	for _, kind := range NarrativeKinds {
		n, ok := Generate(kind, "whatsapp")
		if !ok {
			t.Errorf("kind %q not generatable", kind)
			continue
		}
		if n.Platform != "whatsapp" {
			t.Errorf("%s: platform = %q", kind, n.Platform)
		}
		if n.ContentHindi == "" || n.ContentEnglish == "" {
			t.Errorf("%s: narrative should be bilingual", kind)
		}
		if len(n.Sources) == 0 {
			t.Errorf("%s: narrative has no sources", kind)
		}
		if _, ok := GetPoint(n.Angle); !ok {
			t.Errorf("%s: angle %q has no backing research point", kind, n.Angle)
		}
	}

	if _, ok := Generate("ghee_scandal", "whatsapp"); ok {
		t.Error("unknown narrative kind should not generate")
	}
}

func TestGenerateAll(t *testing.T) {
	all := GenerateAll("article")
	if len(all) != 4 {
		t.Fatalf("expected 4 narratives, got %d", len(all))
	}
	if all[0].Title != "Amul: Cooperative Betrayed" {
		t.Errorf("first narrative = %q", all[0].Title)
	}
}

func TestMissingCalvesAvoidsSlaughterFraming(t *testing.T) {
	n := MissingCalves("whatsapp")
	if n.CasteCheckNotes == "" {
		t.Error("missing calves narrative should carry caste check notes")
	}
	if !strings.Contains(n.ContentEnglish, "Abandoned on roads") {
		t.Error("narrative should focus on abandonment")
	}
}
