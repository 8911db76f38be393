// Package rti generates Section 6(1) applications under the Right to
// Information Act, 2005, in English, Hindi, or bilingual form.
package rti

import (
	"strings"
	"time"

	"github.com/openpaws/adhikar/internal/agency"
)

// Language selects the rendering register.
type Language string

const (
	LanguageEnglish   Language = "english"
	LanguageHindi     Language = "hindi"
	LanguageBilingual Language = "bilingual"
)

// ParseLanguage maps a flag value to a Language, defaulting to English.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hindi":
		return LanguageHindi
	case "bilingual":
		return LanguageBilingual
	default:
		return LanguageEnglish
	}
}

// Application is a single RTI request being drafted. It is pure data; the
// renderer and the tracker each consume it independently.
type Application struct {
	AgencyCode       string
	Questions        []string
	ApplicantName    string
	ApplicantAddress string
	ApplicantPhone   string
	ApplicantEmail   string
	IsBPL            bool
	BPLCertificate   string
	Language         Language
	State            string
	District         string
	Subject          string
	FilingDate       time.Time
	CustomPIOName    string
	CustomPIOAddress string

	// GeneratedText caches the last rendered output for convenience.
	GeneratedText string
}

// EffectiveFilingDate returns the filing date, defaulting to now.
func (a *Application) EffectiveFilingDate() time.Time {
	if a.FilingDate.IsZero() {
		return time.Now()
	}
	return a.FilingDate
}

// FeeAmount is the application fee in rupees: zero for BPL applicants,
// otherwise resolved through the state fee table and the agency's fee
// category.
func (a *Application) FeeAmount() int {
	ag, _ := agency.Lookup(a.AgencyCode)
	return agency.ResolveFee(ag, normalizeState(a.State), a.IsBPL)
}

// ResponseDeadline is the Section 7(1) deadline estimated at draft time.
func (a *Application) ResponseDeadline() time.Time {
	return agency.ResponseDeadline(a.EffectiveFilingDate())
}

// FirstAppealDeadline is the Section 19(1) deadline estimated at draft
// time. Once an appeal is actually filed, the tracker recomputes the
// record's deadline from the real appeal date instead.
func (a *Application) FirstAppealDeadline() time.Time {
	return agency.FirstAppealDeadline(a.EffectiveFilingDate())
}

// SecondAppealDeadline is the Section 19(3) deadline estimated at draft time.
func (a *Application) SecondAppealDeadline() time.Time {
	return agency.SecondAppealDeadline(a.EffectiveFilingDate())
}

func normalizeState(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}
