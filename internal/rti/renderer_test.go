package rti

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testApplication() *Application {
	return &Application{
		AgencyCode:       "awbi",
		Questions:        []string{"How many inspections were conducted in 2025?", "Provide copies of all inspection reports."},
		ApplicantName:    "Asha Rao",
		ApplicantAddress: "12 MG Road, Pune, Maharashtra - 411001",
		Subject:          "Inspection records",
		FilingDate:       time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerateEnglish(t *testing.T) {
	g := NewGenerator("")
	app := testApplication()
	text := g.Generate(app)

	for _, want := range []string{
		"APPLICATION UNDER SECTION 6(1) OF THE RIGHT TO INFORMATION ACT, 2005",
		"Date: 01/01/2026",
		"The Public Information Officer,",
		"Animal Welfare Board of India,",
		"Subject: Inspection records",
		"1. How many inspections were conducted in 2025?",
		"2. Provide copies of all inspection reports.",
		"Rs. 10/- (Rupees Ten only)",
		"Name: Asha Rao",
		"Response deadline under Section 7(1): 31/01/2026",
		"First Appeal deadline under Section 19(1): 02/03/2026",
		"Appellate Authority: First Appellate Authority, AWBI",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if app.GeneratedText != text {
		t.Error("GeneratedText not cached")
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	g := NewGenerator("")
	app := testApplication()
	if g.Generate(app) != g.Generate(app) {
		t.Error("rendering the same application twice should yield identical text")
	}
}

func TestGenerateBPL(t *testing.T) {
	g := NewGenerator("")
	app := testApplication()
	app.IsBPL = true
	app.BPLCertificate = "BPL-2026-001"
	text := g.Generate(app)

	if !strings.Contains(text, "Section 7(5)") || !strings.Contains(text, "BPL-2026-001") {
		t.Errorf("BPL exemption text missing:\n%s", text)
	}
	if strings.Contains(text, "Indian Postal Order") {
		t.Error("fee enclosure text should be replaced by the exemption")
	}
}

func TestGenerateHindi(t *testing.T) {
	g := NewGenerator("")
	app := testApplication()
	app.Language = LanguageHindi
	text := g.Generate(app)

	for _, want := range []string{
		"सूचना का अधिकार अधिनियम, 2005 की धारा 6(1) के तहत आवेदन",
		"दिनांक: 1 जनवरी 2026",
		"भारतीय पशु कल्याण बोर्ड,",
		"नाम: Asha Rao",
		// Questions stay verbatim; only the scaffold is localized.
		"1. How many inspections were conducted in 2025?",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerateBilingual(t *testing.T) {
	g := NewGenerator("")
	app := testApplication()

	app.Language = LanguageEnglish
	english := g.Generate(app)
	app.Language = LanguageHindi
	hindi := g.Generate(app)
	app.Language = LanguageBilingual
	text := g.Generate(app)

	englishBanner := "ENGLISH VERSION / अंग्रेज़ी संस्करण"
	hindiBanner := "हिंदी संस्करण / HINDI VERSION"
	ei := strings.Index(text, englishBanner)
	hi := strings.Index(text, hindiBanner)
	if ei < 0 || hi < 0 || ei > hi {
		t.Fatalf("banners missing or out of order (english at %d, hindi at %d)", ei, hi)
	}
	if !strings.Contains(text, english) || !strings.Contains(text, hindi) {
		t.Error("bilingual output should contain both single-language renderings")
	}
}

func TestGenerateUnknownAgencyUsesPlaceholders(t *testing.T) {
	g := NewGenerator("")
	app := testApplication()
	app.AgencyCode = "unknown"
	text := g.Generate(app)

	if !strings.Contains(text, "[AGENCY NAME]") || !strings.Contains(text, "[ADDRESS]") {
		t.Errorf("placeholders missing:\n%s", text)
	}

	app.Language = LanguageHindi
	if text := g.Generate(app); !strings.Contains(text, "[पता]") {
		t.Errorf("hindi placeholder missing:\n%s", text)
	}
}

func TestCustomPIOAddressOverride(t *testing.T) {
	g := NewGenerator("")
	app := testApplication()
	app.CustomPIOAddress = "Regional Office, Nagpur - 440001"
	text := g.Generate(app)
	if !strings.Contains(text, "Regional Office, Nagpur - 440001") {
		t.Error("custom PIO address not used")
	}
}

func TestExtractQuestions(t *testing.T) {
	template := `Header line

1. foo

not a question
2. bar
10. baz
123456. skipped because the dot is too far in
3.
`
	got := ExtractQuestions(template)
	want := []string{"foo", "bar", "baz"}
	if len(got) != len(want) {
		t.Fatalf("ExtractQuestions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ExtractQuestions[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGenerateFromEmbeddedTemplate(t *testing.T) {
	g := NewGenerator("")
	names := g.ListTemplates()
	if len(names) == 0 {
		t.Fatal("no embedded templates")
	}

	app := testApplication()
	app.Questions = nil
	text, err := g.GenerateFromTemplate(names[0], app)
	if err != nil {
		t.Fatalf("GenerateFromTemplate: %v", err)
	}
	if len(app.Questions) == 0 {
		t.Fatal("questions not loaded from template")
	}
	if !strings.Contains(text, "1. ") {
		t.Error("numbered question list missing from output")
	}
}

func TestGenerateFromTemplateMissing(t *testing.T) {
	g := NewGenerator("")
	if _, err := g.GenerateFromTemplate("does_not_exist.txt", testApplication()); err == nil {
		t.Fatal("missing template must be a hard error")
	}
}

func TestGenerateFromTemplateDir(t *testing.T) {
	dir := t.TempDir()
	content := "1. Question from disk\n2. Another question\n"
	if err := os.WriteFile(filepath.Join(dir, "custom.txt"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	g := NewGenerator(dir)
	app := testApplication()
	if _, err := g.GenerateFromTemplate("custom.txt", app); err != nil {
		t.Fatalf("GenerateFromTemplate: %v", err)
	}
	if len(app.Questions) != 2 || app.Questions[0] != "Question from disk" {
		t.Errorf("questions = %v", app.Questions)
	}
}

func TestFeeAmount(t *testing.T) {
	app := testApplication()
	if got := app.FeeAmount(); got != 10 {
		t.Errorf("FeeAmount = %d, want 10", got)
	}
	app.State = "Gujarat"
	if got := app.FeeAmount(); got != 20 {
		t.Errorf("FeeAmount with gujarat = %d, want 20", got)
	}
	app.IsBPL = true
	if got := app.FeeAmount(); got != 0 {
		t.Errorf("FeeAmount with BPL = %d, want 0", got)
	}
}

func TestPrebuiltRequests(t *testing.T) {
	tests := []struct {
		name      string
		app       *Application
		agency    string
		questions int
	}{
		{"awbi inspection", AWBIInspectionRequest("Gokul Dairy", "Anand, Gujarat", "Asha Rao", "Pune"), "awbi", 5},
		{"fssai violations", FSSAIViolationsRequest("Gujarat", "Anand", "Asha Rao", "Pune", 2025), "fssai", 5},
		{"pollution board", PollutionBoardRequest("Gujarat", "Anand", "Asha Rao", "Pune"), "cpcb", 5},
		{"subsidy both", SubsidyDataRequest("Gujarat", "Asha Rao", "Pune", "both"), "dahd", 7},
		{"subsidy nlm", SubsidyDataRequest("Gujarat", "Asha Rao", "Pune", "nlm"), "nlm", 4},
		{"subsidy rgm", SubsidyDataRequest("Gujarat", "Asha Rao", "Pune", "rgm"), "rgm", 4},
		{"slaughterhouse", SlaughterhouseLicenseRequest("Anand", "Gujarat", "Asha Rao", "Pune"), "fssai", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.app.AgencyCode != tt.agency {
				t.Errorf("agency = %q, want %q", tt.app.AgencyCode, tt.agency)
			}
			if len(tt.app.Questions) != tt.questions {
				t.Errorf("questions = %d, want %d", len(tt.app.Questions), tt.questions)
			}
			if tt.app.Subject == "" {
				t.Error("subject is empty")
			}
		})
	}
}
