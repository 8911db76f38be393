package campus

import (
	"strings"
	"testing"
)

func TestAIEthicsWorkshop(t *testing.T) {
	w := AIEthicsWorkshop()
	if len(w.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(w.Sessions))
	}
	if len(w.Sessions[0].Readings) == 0 {
		t.Error("first session should have readings")
	}
	if w.Sessions[1].HandsOn == "" {
		t.Error("second session should have a hands-on component")
	}
	if !strings.Contains(w.Sessions[0].Outline[4], "Nagaraja") {
		t.Error("session 1 outline should cite the Nagaraja case")
	}
}

func TestHackathonProblems(t *testing.T) {
	problems := HackathonProblems()
	if len(problems) != 4 {
		t.Fatalf("expected 4 problems, got %d", len(problems))
	}
	valid := map[string]bool{"beginner": true, "intermediate": true, "advanced": true}
	for _, p := range problems {
		if !valid[p.Difficulty] {
			t.Errorf("%s: difficulty %q not recognized", p.Title, p.Difficulty)
		}
		if len(p.DataSources) == 0 || len(p.EvaluationCriteria) == 0 {
			t.Errorf("%s: missing data sources or evaluation criteria", p.Title)
		}
		if p.ImpactMetric == "" {
			t.Errorf("%s: missing impact metric", p.Title)
		}
	}
}

func TestConstitution(t *testing.T) {
	c := Constitution()
	if len(c.NameSuggestions) != 5 {
		t.Errorf("name suggestions = %d", len(c.NameSuggestions))
	}
	if !strings.Contains(c.MembershipCriteria, "regardless of dietary choices") {
		t.Error("membership criteria should be open to all diets")
	}
	if !strings.Contains(c.OrganizationalStructure, "No single-person veto") {
		t.Error("structure should rule out single-person veto")
	}
}

func TestCSRProposalFor(t *testing.T) {
	p := CSRProposalFor("Infosys", "food_safety")
	if !strings.Contains(p.Title, "Proposal to Infosys") {
		t.Errorf("title = %q", p.Title)
	}
	if !strings.Contains(p.AlignmentWithCSRAct, "Section 135") {
		t.Error("proposal should cite Section 135")
	}

	tech := CSRProposalFor("TCS", "tech_for_good")
	if !strings.Contains(tech.Title, "Open-Source Technology") {
		t.Errorf("tech title = %q", tech.Title)
	}

	fallback := CSRProposalFor("", "quantum_computing")
	if !strings.Contains(fallback.Title, "[COMPANY]") {
		t.Errorf("fallback should use placeholder: %q", fallback.Title)
	}
	if !strings.Contains(fallback.Title, "Food Safety") {
		t.Errorf("unknown focus should fall back to food safety: %q", fallback.Title)
	}
}

func TestTalkingPoints(t *testing.T) {
	for _, audience := range TalkingPointAudiences() {
		pts, ok := TalkingPoints(audience)
		if !ok || len(pts) == 0 {
			t.Errorf("no talking points for %q", audience)
		}
	}

	pts, ok := TalkingPoints("MESS_COMMITTEE")
	if !ok {
		t.Fatal("audience lookup should be case insensitive")
	}
	if !strings.Contains(strings.Join(pts, " "), "FSSAI test reports") {
		t.Error("mess committee points should request FSSAI reports")
	}

	if _, ok := TalkingPoints("alumni_association"); ok {
		t.Error("unknown audience should not resolve")
	}
}

func TestBangaloreMeetups(t *testing.T) {
	meetups := BangaloreMeetups()
	if len(meetups) != 3 {
		t.Fatalf("expected 3 meetup templates, got %d", len(meetups))
	}
	for _, m := range meetups {
		if len(m.Agenda) == 0 || len(m.VenueSuggestions) == 0 || len(m.PromotionChannels) == 0 {
			t.Errorf("%s: missing agenda, venues, or promotion channels", m.Title)
		}
		if m.EstimatedAttendance == "" {
			t.Errorf("%s: missing attendance estimate", m.Title)
		}
	}
	if !strings.Contains(meetups[2].Title, "RTI") {
		t.Errorf("third template should be the RTI workshop, got %q", meetups[2].Title)
	}
}

func TestBangaloreEcosystem(t *testing.T) {
	eco := BangaloreEcosystem()
	if len(eco.AltProteinStartups) != 8 {
		t.Errorf("alt-protein startups = %d, want 8", len(eco.AltProteinStartups))
	}
	if len(eco.Organizations) != 4 {
		t.Errorf("organizations = %d, want 4", len(eco.Organizations))
	}
	if len(eco.RelevantVCs) != 5 {
		t.Errorf("VCs = %d, want 5", len(eco.RelevantVCs))
	}
	if len(eco.TechCampuses) != 9 {
		t.Errorf("tech campuses = %d, want 9", len(eco.TechCampuses))
	}
	if eco.Organizations[0].Name != "CUPA (Compassion Unlimited Plus Action)" {
		t.Errorf("first organization = %q", eco.Organizations[0].Name)
	}
	if eco.TechCampuses[0] != "IISc (Indian Institute of Science) — Bangalore" {
		t.Errorf("first campus = %q", eco.TechCampuses[0])
	}
}

func TestPartnershipOpportunities(t *testing.T) {
	partners := PartnershipOpportunities()
	if len(partners) != 5 {
		t.Fatalf("expected 5 partnerships, got %d", len(partners))
	}
	for _, p := range partners {
		if p.Opportunity == "" || p.ContactMethod == "" {
			t.Errorf("%s: missing opportunity or contact method", p.Partner)
		}
	}
	if partners[0].Partner != "Good Food Institute India" {
		t.Errorf("first partner = %q", partners[0].Partner)
	}
}

func TestContentCalendar(t *testing.T) {
	cal := ContentCalendar()
	if len(cal) != 3 {
		t.Fatalf("expected 3 months, got %d", len(cal))
	}
	for i, m := range cal {
		if m.Month != i+1 {
			t.Errorf("month %d numbered %d", i+1, m.Month)
		}
		if len(m.Weeks) != 4 {
			t.Errorf("month %d has %d weeks, want 4", m.Month, len(m.Weeks))
		}
	}
	if !strings.Contains(cal[0].Weeks[2], "RTI Workshop") {
		t.Errorf("month 1 week 3 = %q, want the RTI workshop", cal[0].Weeks[2])
	}
}
