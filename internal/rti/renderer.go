package rti

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/openpaws/adhikar/internal/agency"
)

//go:embed templates/*.txt
var templatesFS embed.FS

// Generator renders applications into formatted letter text. Rendering is
// pure: the same application always produces the same output.
type Generator struct {
	fsys fs.FS
}

// NewGenerator returns a Generator reading named templates from
// templateDir, or from the embedded set when templateDir is empty.
func NewGenerator(templateDir string) *Generator {
	if templateDir == "" {
		sub, err := fs.Sub(templatesFS, "templates")
		if err != nil {
			// The embedded directory always exists.
			panic(err)
		}
		return &Generator{fsys: sub}
	}
	return &Generator{fsys: os.DirFS(templateDir)}
}

// Generate renders the application in its selected language. An unknown
// agency code renders with bracketed placeholders instead of failing;
// callers validate codes against the directory beforehand.
func (g *Generator) Generate(app *Application) string {
	var text string
	switch app.Language {
	case LanguageHindi:
		text = g.renderHindi(app)
	case LanguageBilingual:
		text = g.renderBilingual(app)
	default:
		text = g.renderEnglish(app)
	}
	app.GeneratedText = text
	return text
}

// GenerateFromTemplate loads a named template, replaces the application's
// questions with the template's numbered list, and renders. A missing
// template file is a hard error: it indicates a packaging defect, not bad
// user input.
func (g *Generator) GenerateFromTemplate(name string, app *Application) (string, error) {
	content, err := fs.ReadFile(g.fsys, name)
	if err != nil {
		return "", fmt.Errorf("template %q: %w", name, err)
	}
	if questions := ExtractQuestions(string(content)); len(questions) > 0 {
		app.Questions = questions
	}
	return g.Generate(app), nil
}

// ListTemplates returns the available template file names, sorted.
func (g *Generator) ListTemplates() []string {
	matches, err := fs.Glob(g.fsys, "*.txt")
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

func (g *Generator) renderEnglish(app *Application) string {
	ag, known := agency.Lookup(app.AgencyCode)

	agencyName := ag.Name
	pioAddress := ag.Address
	pioDesignation := ag.PIODesignation
	appellate := ag.AppellateAuthority
	secondAppeal := ag.SecondAppealForum
	if !known {
		agencyName = "[AGENCY NAME]"
		pioAddress = "[ADDRESS]"
		pioDesignation = "Public Information Officer"
		appellate = "First Appellate Authority"
		secondAppeal = "Central/State Information Commission"
	}
	if app.CustomPIOAddress != "" {
		pioAddress = app.CustomPIOAddress
	}

	subject := app.Subject
	if subject == "" {
		subject = "Request for Information under RTI Act, 2005"
	}

	lines := []string{
		"APPLICATION UNDER SECTION 6(1) OF THE RIGHT TO INFORMATION ACT, 2005",
		"",
		"Date: " + app.EffectiveFilingDate().Format("02/01/2006"),
		"",
		"To,",
		"The " + pioDesignation + ",",
		agencyName + ",",
		pioAddress,
		"",
		"Subject: " + subject,
		"",
		"Respected Sir/Madam,",
		"",
		"I, the undersigned, am a citizen of India and wish to seek information",
		"under Section 6(1) of the Right to Information Act, 2005. The details",
		"of the information sought are as follows:",
		"",
	}

	for i, q := range app.Questions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, q), "")
	}

	fee := app.FeeAmount()
	feeText := fmt.Sprintf(
		"I am enclosing an Indian Postal Order / Demand Draft / Court Fee Stamp "+
			"of Rs. %d/- (Rupees %s only) as the prescribed fee under the RTI Act, 2005.",
		fee, numberToWords(fee))
	if app.IsBPL {
		cert := app.BPLCertificate
		if cert == "" {
			cert = "[BPL NUMBER]"
		}
		feeText = "I belong to Below Poverty Line (BPL) category and am exempt from " +
			"payment of fee under Section 7(5) of the RTI Act, 2005. " +
			"My BPL Certificate Number is: " + cert + "."
	}

	lines = append(lines,
		feeText,
		"",
		"I request that the above information be provided within 30 days as",
		"stipulated under Section 7(1) of the RTI Act, 2005.",
		"",
		"If the information sought or any part thereof concerns the life or",
		"liberty of a person, it shall be provided within 48 hours of receipt",
		"of this request as per Section 7(1) of the Act.",
		"",
		"If this application is transferred to another public authority under",
		"Section 6(3), I request to be informed of the same.",
		"",
		"Yours faithfully,",
		"",
		"Name: "+app.ApplicantName,
		"Address: "+app.ApplicantAddress,
	)
	if app.ApplicantPhone != "" {
		lines = append(lines, "Phone: "+app.ApplicantPhone)
	}
	if app.ApplicantEmail != "" {
		lines = append(lines, "Email: "+app.ApplicantEmail)
	}

	lines = append(lines,
		"",
		"---",
		"NOTE: Response deadline under Section 7(1): "+app.ResponseDeadline().Format("02/01/2006"),
		"First Appeal deadline under Section 19(1): "+app.FirstAppealDeadline().Format("02/01/2006"),
		"Appellate Authority: "+appellate,
		"Second Appeal: "+secondAppeal,
	)

	return strings.Join(lines, "\n")
}

func (g *Generator) renderHindi(app *Application) string {
	ag, known := agency.Lookup(app.AgencyCode)

	agencyName := ag.NameHindi
	pioAddress := ag.Address
	if !known {
		agencyName = "[विभाग का नाम]"
		pioAddress = "[पता]"
	}
	if app.CustomPIOAddress != "" {
		pioAddress = app.CustomPIOAddress
	}

	subject := app.Subject
	if subject == "" {
		subject = "सूचना का अधिकार अधिनियम, 2005 के तहत सूचना प्राप्त करने का आवेदन"
	}

	lines := []string{
		"सूचना का अधिकार अधिनियम, 2005 की धारा 6(1) के तहत आवेदन",
		"",
		"दिनांक: " + formatDateHindi(app.EffectiveFilingDate()),
		"",
		"सेवा में,",
		"जन सूचना अधिकारी,",
		agencyName + ",",
		pioAddress,
		"",
		"विषय: " + subject,
		"",
		"महोदय/महोदया,",
		"",
		"मैं, नीचे हस्ताक्षरकर्ता, भारत का नागरिक हूं और सूचना का अधिकार",
		"अधिनियम, 2005 की धारा 6(1) के तहत निम्नलिखित सूचना प्राप्त करना चाहता/चाहती हूं:",
		"",
	}

	// Question text is inserted verbatim; only the scaffold is localized.
	for i, q := range app.Questions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, q), "")
	}

	if app.IsBPL {
		cert := app.BPLCertificate
		if cert == "" {
			cert = "[BPL संख्या]"
		}
		lines = append(lines,
			"मैं गरीबी रेखा से नीचे (BPL) की श्रेणी में आता/आती हूं और RTI अधिनियम, 2005",
			"की धारा 7(5) के तहत शुल्क से मुक्त हूं।",
			"BPL प्रमाणपत्र संख्या: "+cert,
		)
	} else {
		lines = append(lines,
			"मैं RTI अधिनियम, 2005 के तहत निर्धारित शुल्क के रूप में",
			fmt.Sprintf("₹%d/- का भारतीय पोस्टल ऑर्डर / डिमांड ड्राफ्ट संलग्न कर रहा/रही हूं।", app.FeeAmount()),
		)
	}

	lines = append(lines,
		"",
		"कृपया उपरोक्त सूचना RTI अधिनियम, 2005 की धारा 7(1) के तहत",
		"निर्धारित 30 दिनों के भीतर उपलब्ध कराएं।",
		"",
		"भवदीय/भवदीया,",
		"",
		"नाम: "+app.ApplicantName,
		"पता: "+app.ApplicantAddress,
	)
	if app.ApplicantPhone != "" {
		lines = append(lines, "फोन: "+app.ApplicantPhone)
	}
	if app.ApplicantEmail != "" {
		lines = append(lines, "ईमेल: "+app.ApplicantEmail)
	}

	return strings.Join(lines, "\n")
}

func (g *Generator) renderBilingual(app *Application) string {
	banner := strings.Repeat("=", 70)
	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString("ENGLISH VERSION / अंग्रेज़ी संस्करण\n")
	b.WriteString(banner + "\n\n")
	b.WriteString(g.renderEnglish(app))
	b.WriteString("\n\n")
	b.WriteString(banner + "\n")
	b.WriteString("हिंदी संस्करण / HINDI VERSION\n")
	b.WriteString(banner + "\n\n")
	b.WriteString(g.renderHindi(app))
	return b.String()
}

// ExtractQuestions pulls the numbered questions out of template text.
// Blank lines and lines without a digit-dot prefix in the first few
// characters are skipped; original ordering is preserved.
func ExtractQuestions(text string) []string {
	var questions []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] < '0' || line[0] > '9' {
			continue
		}
		head := line
		if len(head) > 4 {
			head = head[:4]
		}
		if !strings.Contains(head, ".") {
			continue
		}
		_, rest, _ := strings.Cut(line, ".")
		if q := strings.TrimSpace(rest); q != "" {
			questions = append(questions, q)
		}
	}
	return questions
}

var hindiMonths = [...]string{
	"जनवरी", "फरवरी", "मार्च", "अप्रैल", "मई", "जून",
	"जुलाई", "अगस्त", "सितंबर", "अक्टूबर", "नवंबर", "दिसंबर",
}

func formatDateHindi(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), hindiMonths[t.Month()-1], t.Year())
}

// numberToWords covers the fee amounts that actually occur.
func numberToWords(n int) string {
	words := map[int]string{
		0: "Zero", 2: "Two", 5: "Five", 10: "Ten",
		20: "Twenty", 50: "Fifty", 100: "One Hundred",
	}
	if w, ok := words[n]; ok {
		return w
	}
	return fmt.Sprintf("%d", n)
}
