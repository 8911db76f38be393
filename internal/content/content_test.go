package content

import (
	"strings"
	"testing"
)

func TestLookupTerm(t *testing.T) {
	tests := []struct {
		english string
		roman   string
	}{
		{"water", "paani"},
		{"Water", "paani"},
		{"cruelty", "zulm"},
		{"antibiotic", "antibiotic"},
		{"spreadsheet", "spreadsheet"},
	}
	for _, tt := range tests {
		if got := LookupTerm(tt.english); got.Roman != tt.roman {
			t.Errorf("LookupTerm(%q).Roman = %q, want %q", tt.english, got.Roman, tt.roman)
		}
	}
}

func TestGlossaryTermsSorted(t *testing.T) {
	terms := GlossaryTerms()
	if len(terms) == 0 {
		t.Fatal("glossary is empty")
	}
	for i := 1; i < len(terms); i++ {
		if terms[i-1] > terms[i] {
			t.Errorf("terms not sorted: %q before %q", terms[i-1], terms[i])
		}
	}
}

func TestWhatsAppMessageBilingual(t *testing.T) {
	msg := WhatsAppMessage("दूध में मिलावट है।  \n  जाँच कीजिए।", "Milk is adulterated. Get it tested.")
	if !strings.Contains(msg.HindiDevanagari, "दूध में मिलावट है।\nजाँच कीजिए।") {
		t.Errorf("lines not tidied: %q", msg.HindiDevanagari)
	}
	if msg.Format != "whatsapp" {
		t.Errorf("format = %q", msg.Format)
	}
	if msg.WordCountHindi != 6 {
		t.Errorf("word count = %d, want 6", msg.WordCountHindi)
	}
	if msg.English == "" {
		t.Error("english text dropped")
	}
}

func TestWhatsAppMessageHindiOnly(t *testing.T) {
	msg := WhatsAppMessage("पानी बचाएँ।", "")
	if msg.CharacterCount != len([]rune("पानी बचाएँ।")) {
		t.Errorf("character count = %d", msg.CharacterCount)
	}
}

func TestSocialMediaPostTruncation(t *testing.T) {
	long := strings.Repeat("पानी ", 100)
	post := SocialMediaPost(long, "", "twitter")
	if post.CharacterCount != 280 {
		t.Errorf("twitter post = %d chars, want 280", post.CharacterCount)
	}
	if post.Format != "social_media_twitter" {
		t.Errorf("format = %q", post.Format)
	}

	unknown := SocialMediaPost(long, "", "koo")
	if unknown.CharacterCount != len([]rune(long)) {
		t.Errorf("unknown platform should use instagram limit, got %d", unknown.CharacterCount)
	}
}

func TestPrebuiltMessagesWithinWhatsAppLimits(t *testing.T) {
	for name, text := range map[string]string{
		"dairy": DairyFactsHindi(),
		"water": WaterCrisisHindi(),
	} {
		if n := len([]rune(text)); n > WhatsAppMaxChars {
			t.Errorf("%s message is %d chars, exceeds %d", name, n, WhatsAppMaxChars)
		}
		if !strings.Contains(text, "आगे भेजें") {
			t.Errorf("%s message missing forward prompt", name)
		}
	}
}

func TestDairyFactsContent(t *testing.T) {
	text := DairyFactsHindi()
	for _, want := range []string{"FSSAI", "1000 लीटर", "antibiotic resistance"} {
		if !strings.Contains(text, want) {
			t.Errorf("dairy facts missing %q", want)
		}
	}
}

func TestLanguageGuide(t *testing.T) {
	guide := LanguageGuide()
	for _, want := range []string{"paani, not jal", "RETAIN ENGLISH FOR TECHNICAL TERMS", "Max 300 words"} {
		if !strings.Contains(guide, want) {
			t.Errorf("guide missing %q", want)
		}
	}
}

func TestGetFrame(t *testing.T) {
	f, ok := GetFrame("water_crisis")
	if !ok {
		t.Fatal("water_crisis frame missing")
	}
	if f.Name != "Water Crisis" {
		t.Errorf("name = %q", f.Name)
	}
	if len(f.KeyMessages) == 0 || len(f.DoNotUse) == 0 {
		t.Error("frame incomplete")
	}
	if _, ok := GetFrame("astrology"); ok {
		t.Error("unknown frame should not resolve")
	}
}

func TestListFrames(t *testing.T) {
	keys := ListFrames()
	if len(keys) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(keys))
	}
	for _, k := range keys {
		if _, ok := GetFrame(k); !ok {
			t.Errorf("listed frame %q not resolvable", k)
		}
	}
}

func TestRecommendFrames(t *testing.T) {
	tests := []struct {
		topic    string
		audience string
		want     []string
	}{
		{"dairy expansion in Gujarat", "parents", []string{"health_adulteration", "water_crisis", "economics"}},
		{"slaughterhouse worker conditions", "labor unions", []string{"dalit_bahujan_solidarity"}},
		{"groundwater pollution", "villagers", []string{"water_crisis"}},
		{"village fair stall", "general public", []string{"ahimsa", "health_adulteration"}},
	}
	for _, tt := range tests {
		got := RecommendFrames(tt.topic, tt.audience)
		for _, w := range tt.want {
			if !containsString(got, w) {
				t.Errorf("RecommendFrames(%q, %q) = %v, missing %q", tt.topic, tt.audience, got, w)
			}
		}
	}
}

func TestRecommendFramesDeduplicates(t *testing.T) {
	got := RecommendFrames("dairy milk", "rural farmers")
	seen := make(map[string]bool)
	for _, f := range got {
		if seen[f] {
			t.Errorf("duplicate frame %q in %v", f, got)
		}
		seen[f] = true
	}
}

func TestContentBrief(t *testing.T) {
	brief := ContentBrief("dairy water footprint", "urban consumers", "whatsapp", nil)
	for _, want := range []string{
		"Topic: dairy water footprint",
		"--- Water Crisis ---",
		"UNIVERSAL GUIDELINES:",
		"Do not shame individuals",
	} {
		if !strings.Contains(brief, want) {
			t.Errorf("brief missing %q", want)
		}
	}
}

func TestSensitivityCheckFlagsTerms(t *testing.T) {
	warnings := SensitivityCheck("Hum sab gau mata ki raksha karenge. Pure vegetarian khana hi sahi hai.")
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "gau mata") {
		t.Errorf("first warning = %q", warnings[0])
	}
}

func TestSensitivityCheckWorkerOmission(t *testing.T) {
	warnings := SensitivityCheck("The slaughterhouse must be shut down immediately.")
	var found bool
	for _, w := range warnings {
		if strings.Contains(w, "worker welfare") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected worker welfare warning, got %v", warnings)
	}

	ok := SensitivityCheck("The slaughterhouse workers deserve safety equipment and fair wages.")
	for _, w := range ok {
		if strings.Contains(w, "worker welfare") {
			t.Error("worker mention should suppress the warning")
		}
	}
}

func TestSensitivityCheckClean(t *testing.T) {
	warnings := SensitivityCheck("Paani bachao. Plant-based doodh try kijiye.")
	if len(warnings) != 1 || !strings.Contains(warnings[0], "No automated issues detected") {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func containsString(items []string, want string) bool {
	for _, s := range items {
		if s == want {
			return true
		}
	}
	return false
}
