package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/openpaws/adhikar/internal/agency"
	"github.com/openpaws/adhikar/internal/config"
	"github.com/openpaws/adhikar/internal/docextract"
	"github.com/openpaws/adhikar/internal/rti"
	"github.com/openpaws/adhikar/internal/tracker"
)

var rtiCmd = &cobra.Command{
	Use:   "rti",
	Short: "Draft RTI applications and track their lifecycle",
}

// --- generate ---

var rtiGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an RTI application",
	Long: `Generate a Right to Information application for a central agency.

Examples:
  adhikar rti generate --agency awbi --subject "Inspection reports" \
    --question "Number of inspections conducted in 2025" \
    --question "Copies of all inspection reports for Tamil Nadu"
  adhikar rti generate --agency fssai --template fssai_violations --language bilingual
  adhikar rti generate --agency cpcb --question "..." --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		app, err := applicationFromFlags(cmd, cfg)
		if err != nil {
			return err
		}

		gen := rti.NewGenerator(cfg.Templates.Dir)

		templateName, _ := cmd.Flags().GetString("template")
		var text string
		if templateName != "" {
			text, err = gen.GenerateFromTemplate(templateName, app)
			if err != nil {
				return err
			}
		} else {
			if len(app.Questions) == 0 {
				return fmt.Errorf("at least one --question is required (or use --template)")
			}
			text = gen.Generate(app)
		}

		printStatus("Agency", "%s", app.AgencyCode)
		printStatus("Fee", "Rs. %d", app.FeeAmount())
		printStatus("Response due", "%s", app.ResponseDeadline().Format(dateLayout))
		printStatus("1st appeal by", "%s", app.FirstAppealDeadline().Format(dateLayout))

		if save, _ := cmd.Flags().GetBool("save"); save {
			path, err := saveDraft(cfg.Storage.DataDir, text)
			if err != nil {
				return err
			}
			printSuccess("Draft saved to %s", path)
		}

		output, _ := cmd.Flags().GetString("output")
		return writeDocument(output, text)
	},
}

func applicationFromFlags(cmd *cobra.Command, cfg config.Config) (*rti.Application, error) {
	agencyCode, _ := cmd.Flags().GetString("agency")
	if agencyCode == "" {
		return nil, fmt.Errorf("--agency is required (see: adhikar rti agencies)")
	}
	if _, ok := agency.Lookup(agencyCode); !ok {
		printWarning("Unknown agency %q; the letter will contain placeholders", agencyCode)
	}

	questions, _ := cmd.Flags().GetStringArray("question")
	subject, _ := cmd.Flags().GetString("subject")
	lang, _ := cmd.Flags().GetString("language")
	if lang == "" {
		lang = cfg.Output.Language
	}
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = cfg.Applicant.Name
	}
	address, _ := cmd.Flags().GetString("address")
	if address == "" {
		address = cfg.Applicant.Address
	}
	state, _ := cmd.Flags().GetString("state")
	district, _ := cmd.Flags().GetString("district")
	phone, _ := cmd.Flags().GetString("phone")
	email, _ := cmd.Flags().GetString("email")
	bpl, _ := cmd.Flags().GetBool("bpl")
	bplCert, _ := cmd.Flags().GetString("bpl-certificate")

	return &rti.Application{
		AgencyCode:       agencyCode,
		Questions:        questions,
		Subject:          subject,
		ApplicantName:    name,
		ApplicantAddress: address,
		ApplicantPhone:   phone,
		ApplicantEmail:   email,
		IsBPL:            bpl,
		BPLCertificate:   bplCert,
		Language:         rti.ParseLanguage(lang),
		State:            state,
		District:         district,
	}, nil
}

// saveDraft writes rendered text into the data dir under a fresh id so
// drafts never clobber each other.
func saveDraft(dataDir, text string) (string, error) {
	dir := filepath.Join(dataDir, "drafts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating drafts dir: %w", err)
	}
	path := filepath.Join(dir, uuid.NewString()+".txt")
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("saving draft: %w", err)
	}
	return path, nil
}

func init() {
	f := rtiGenerateCmd.Flags()
	f.String("agency", "", "agency code (awbi, fssai, cpcb, dahd, nlm, rgm)")
	f.StringArray("question", nil, "question to ask (repeatable)")
	f.String("subject", "", "subject line for the application")
	f.String("language", "", "english, hindi, or bilingual")
	f.String("name", "", "applicant name (default from config)")
	f.String("address", "", "applicant address (default from config)")
	f.String("phone", "", "applicant phone")
	f.String("email", "", "applicant email")
	f.String("state", "", "applicant state, for the fee schedule")
	f.String("district", "", "applicant district")
	f.Bool("bpl", false, "applicant holds a Below Poverty Line card (fee exempt)")
	f.String("bpl-certificate", "", "BPL certificate number")
	f.String("template", "", "named request template instead of ad-hoc questions")
	f.String("output", "", "write the letter to a file instead of stdout")
	f.Bool("save", false, "also save the letter into the data directory")
}

// --- prebuilt ---

var rtiPrebuiltCmd = &cobra.Command{
	Use:   "prebuilt <kind>",
	Short: "Generate a prebuilt request for a common campaign",
	Long: `Generate one of the ready-made RTI requests:

  awbi-inspection     facility inspection reports from AWBI
  fssai-violations    food safety violations in a state/district
  pollution-board     CPCB consent and effluent data
  subsidy-data        NLM/RGM subsidy disbursements
  slaughterhouse      slaughterhouse licensing in a district`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = cfg.Applicant.Name
		}
		address, _ := cmd.Flags().GetString("address")
		if address == "" {
			address = cfg.Applicant.Address
		}
		facility, _ := cmd.Flags().GetString("facility")
		location, _ := cmd.Flags().GetString("location")
		state, _ := cmd.Flags().GetString("state")
		district, _ := cmd.Flags().GetString("district")
		year, _ := cmd.Flags().GetInt("year")
		scheme, _ := cmd.Flags().GetString("scheme")

		var app *rti.Application
		switch args[0] {
		case "awbi-inspection":
			app = rti.AWBIInspectionRequest(facility, location, name, address)
		case "fssai-violations":
			app = rti.FSSAIViolationsRequest(state, district, name, address, year)
		case "pollution-board":
			app = rti.PollutionBoardRequest(state, district, name, address)
		case "subsidy-data":
			app = rti.SubsidyDataRequest(state, name, address, scheme)
		case "slaughterhouse":
			app = rti.SlaughterhouseLicenseRequest(district, state, name, address)
		default:
			return fmt.Errorf("unknown prebuilt request %q", args[0])
		}

		gen := rti.NewGenerator(cfg.Templates.Dir)
		text := gen.Generate(app)

		printStatus("Agency", "%s", app.AgencyCode)
		printStatus("Fee", "Rs. %d", app.FeeAmount())
		printStatus("Response due", "%s", app.ResponseDeadline().Format(dateLayout))

		output, _ := cmd.Flags().GetString("output")
		return writeDocument(output, text)
	},
}

func init() {
	f := rtiPrebuiltCmd.Flags()
	f.String("name", "", "applicant name (default from config)")
	f.String("address", "", "applicant address (default from config)")
	f.String("facility", "", "facility name (awbi-inspection)")
	f.String("location", "", "facility location (awbi-inspection)")
	f.String("state", "", "state")
	f.String("district", "", "district")
	f.Int("year", time.Now().Year()-1, "year of interest (fssai-violations)")
	f.String("scheme", "", "subsidy scheme (subsidy-data)")
	f.String("output", "", "write the letter to a file instead of stdout")
}

// --- agencies / templates ---

var rtiAgenciesCmd = &cobra.Command{
	Use:   "agencies",
	Short: "List the agencies in the directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, code := range agency.Codes() {
			a, _ := agency.Lookup(code)
			fmt.Printf("%s  %s (%s)\n", colorize(colorBold, fmt.Sprintf("%-6s", a.Code)), a.Name, a.NameHindi)
			fmt.Printf("        %s\n", a.ParentMinistry)
			fmt.Printf("        Appeals: %s; then %s\n", a.AppellateAuthority, a.SecondAppealForum)
		}
		return nil
	},
}

var rtiTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available request templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		gen := rti.NewGenerator(cfg.Templates.Dir)
		for _, name := range gen.ListTemplates() {
			fmt.Println(name)
		}
		return nil
	},
}

// --- add ---

var rtiAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Start tracking a filed (or drafted) application",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		agencyCode, _ := cmd.Flags().GetString("agency")
		if agencyCode == "" {
			return fmt.Errorf("--agency is required")
		}
		subject, _ := cmd.Flags().GetString("subject")
		questions, _ := cmd.Flags().GetStringArray("question")
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = cfg.Applicant.Name
		}
		address, _ := cmd.Flags().GetString("address")
		if address == "" {
			address = cfg.Applicant.Address
		}
		state, _ := cmd.Flags().GetString("state")
		lang, _ := cmd.Flags().GetString("language")
		if lang == "" {
			lang = cfg.Output.Language
		}
		ref, _ := cmd.Flags().GetString("reference")
		filedStr, _ := cmd.Flags().GetString("filed")
		filed, err := parseDateFlag(filedStr)
		if err != nil {
			return err
		}

		id, err := store.Add(tracker.Record{
			AgencyCode:       agencyCode,
			Subject:          subject,
			Questions:        questions,
			ApplicantName:    name,
			ApplicantAddress: address,
			State:            state,
			Language:         lang,
			ReferenceNumber:  ref,
			FilingDate:       filed,
		})
		if err != nil {
			return err
		}

		r, err := store.Get(id)
		if err != nil {
			return err
		}
		printSuccess("Tracking application #%d (%s)", id, r.Status)
		if !r.ResponseDeadline.IsZero() {
			printStatus("Response due", "%s", fmtDay(r.ResponseDeadline))
		}
		return nil
	},
}

func init() {
	f := rtiAddCmd.Flags()
	f.String("agency", "", "agency code")
	f.String("subject", "", "subject line")
	f.StringArray("question", nil, "question asked (repeatable)")
	f.String("name", "", "applicant name (default from config)")
	f.String("address", "", "applicant address (default from config)")
	f.String("state", "", "state the application concerns")
	f.String("language", "", "language the application was filed in")
	f.String("reference", "", "registration number issued by the PIO")
	f.String("filed", "", "filing date YYYY-MM-DD (omit for a draft)")
}

// --- show / list ---

var rtiShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a tracked application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		r, err := store.Get(id)
		if err != nil {
			return err
		}
		printRecord(r)
		return nil
	},
}

var rtiListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		agencyCode, _ := cmd.Flags().GetString("agency")
		statusStr, _ := cmd.Flags().GetString("status")

		var records []tracker.Record
		if agencyCode != "" {
			records, err = store.ByAgency(agencyCode)
		} else {
			records, err = store.All(tracker.Status(statusStr))
		}
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("No applications found.")
			return nil
		}
		for _, r := range records {
			fmt.Println(summaryLine(r))
		}
		return nil
	},
}

func init() {
	rtiListCmd.Flags().String("status", "", "filter by status")
	rtiListCmd.Flags().String("agency", "", "filter by agency code")
}

// --- status / note / reference / transfer ---

var rtiStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Update the status of an application",
	Long: "Update the status of an application.\n\nValid statuses: " +
		statusNames(),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		note, _ := cmd.Flags().GetString("note")

		if err := store.UpdateStatus(id, tracker.Status(args[1]), note); err != nil {
			return err
		}
		printSuccess("Application #%d is now %s", id, args[1])
		return nil
	},
}

func statusNames() string {
	names := make([]string, len(tracker.Statuses))
	for i, s := range tracker.Statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

var rtiNoteCmd = &cobra.Command{
	Use:   "note <id> <text>",
	Short: "Append a note to an application's log",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := store.AddNote(id, strings.Join(args[1:], " ")); err != nil {
			return err
		}
		printSuccess("Note added to #%d", id)
		return nil
	},
}

var rtiReferenceCmd = &cobra.Command{
	Use:   "reference <id> <number>",
	Short: "Record the registration number issued by the PIO",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := store.SetReference(id, args[1]); err != nil {
			return err
		}
		printSuccess("Reference for #%d set to %s", id, args[1])
		return nil
	},
}

var rtiTransferCmd = &cobra.Command{
	Use:   "transfer <id>",
	Short: "Record a Section 6(3) transfer to another authority",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		to, _ := cmd.Flags().GetString("to")
		if to == "" {
			return fmt.Errorf("--to is required")
		}
		note, _ := cmd.Flags().GetString("note")

		if err := store.MarkTransferred(id, to, note); err != nil {
			return err
		}
		printSuccess("Application #%d marked transferred to %s", id, to)
		return nil
	},
}

func init() {
	rtiStatusCmd.Flags().String("note", "", "note to append with the change")
	rtiTransferCmd.Flags().String("to", "", "authority the application was transferred to")
	rtiTransferCmd.Flags().String("note", "", "note to append")
}

// --- respond ---

var rtiRespondCmd = &cobra.Command{
	Use:   "respond <id>",
	Short: "Record a response from the PIO",
	Long: `Record a response from the PIO.

With --pdf, the response document is read and its text used to prefill
the summary; --summary still wins when both are given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		summary, _ := cmd.Flags().GetString("summary")
		documents, _ := cmd.Flags().GetStringArray("document")
		dateStr, _ := cmd.Flags().GetString("date")
		date, err := parseDateFlag(dateStr)
		if err != nil {
			return err
		}

		if pdfPath, _ := cmd.Flags().GetString("pdf"); pdfPath != "" {
			text, err := docextract.ExtractText(pdfPath)
			if err != nil {
				return fmt.Errorf("reading response PDF: %w", err)
			}
			documents = append(documents, filepath.Base(pdfPath))
			if summary == "" {
				summary = docextract.Summarize(text, 500)
			}
		}

		if err := store.MarkResponseReceived(id, summary, documents, date); err != nil {
			return err
		}
		printSuccess("Response recorded for #%d", id)
		return nil
	},
}

func init() {
	f := rtiRespondCmd.Flags()
	f.String("summary", "", "summary of the response")
	f.StringArray("document", nil, "document received (repeatable)")
	f.String("date", "", "response date YYYY-MM-DD (default today)")
	f.String("pdf", "", "PDF of the response; its text prefills the summary")
}

// --- appeals ---

var rtiAppealCmd = &cobra.Command{
	Use:   "appeal <id>",
	Short: "Record that a first appeal was filed",
	Long: `Record that a Section 19(1) first appeal was filed. The second
appeal deadline is recomputed from the actual appeal date, replacing the
estimate made at draft time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		authority, _ := cmd.Flags().GetString("authority")
		note, _ := cmd.Flags().GetString("note")
		dateStr, _ := cmd.Flags().GetString("date")
		date, err := parseDateFlag(dateStr)
		if err != nil {
			return err
		}

		if err := store.FileFirstAppeal(id, authority, date, note); err != nil {
			return err
		}
		r, err := store.Get(id)
		if err != nil {
			return err
		}
		printSuccess("First appeal recorded for #%d", id)
		printStatus("2nd appeal by", "%s", fmtDay(r.SecondAppealDeadline))
		return nil
	},
}

var rtiSecondAppealCmd = &cobra.Command{
	Use:   "second-appeal <id>",
	Short: "Record that a second appeal was filed with the Commission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		commission, _ := cmd.Flags().GetString("commission")
		note, _ := cmd.Flags().GetString("note")
		dateStr, _ := cmd.Flags().GetString("date")
		date, err := parseDateFlag(dateStr)
		if err != nil {
			return err
		}

		if err := store.FileSecondAppeal(id, commission, date, note); err != nil {
			return err
		}
		printSuccess("Second appeal recorded for #%d", id)
		return nil
	},
}

var rtiDecidedCmd = &cobra.Command{
	Use:   "decided <id> <outcome>",
	Short: "Record the outcome of a pending appeal",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		outcome := strings.Join(args[1:], " ")
		note, _ := cmd.Flags().GetString("note")
		second, _ := cmd.Flags().GetBool("second")

		if second {
			err = store.RecordSecondAppealOutcome(id, outcome, note)
		} else {
			err = store.RecordFirstAppealOutcome(id, outcome, note)
		}
		if err != nil {
			return err
		}
		printSuccess("Appeal outcome recorded for #%d", id)
		return nil
	},
}

func init() {
	rtiAppealCmd.Flags().String("authority", "", "first appellate authority")
	rtiAppealCmd.Flags().String("date", "", "appeal date YYYY-MM-DD (default today)")
	rtiAppealCmd.Flags().String("note", "", "note to append")
	rtiSecondAppealCmd.Flags().String("commission", "", "information commission")
	rtiSecondAppealCmd.Flags().String("date", "", "appeal date YYYY-MM-DD (default today)")
	rtiSecondAppealCmd.Flags().String("note", "", "note to append")
	rtiDecidedCmd.Flags().Bool("second", false, "the outcome is for the second appeal")
	rtiDecidedCmd.Flags().String("note", "", "note to append")
}

// --- deadlines / stats ---

var rtiOverdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "List applications past their response deadline",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.Overdue()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("Nothing overdue.")
			return nil
		}
		for _, r := range records {
			days := int(time.Since(r.ResponseDeadline).Hours() / 24)
			fmt.Printf("%s  (%d days overdue)\n", summaryLine(r), days)
		}
		printWarning("%d application(s) are overdue; consider a first appeal or CIC complaint", len(records))
		return nil
	},
}

var rtiUpcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "List deadlines in the next N days",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		days, _ := cmd.Flags().GetInt("days")
		if !cmd.Flags().Changed("days") {
			days = cfg.Tracker.UpcomingDays
		}

		records, err := store.Upcoming(days)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Printf("No deadlines in the next %d days.\n", days)
			return nil
		}
		for _, r := range records {
			fmt.Println(summaryLine(r))
		}
		return nil
	},
}

var rtiStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the tracking database",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.GetStats()
		if err != nil {
			return err
		}

		fmt.Printf("Total applications: %d\n", stats.Total)
		for _, s := range tracker.Statuses {
			if n := stats.ByStatus[s]; n > 0 {
				fmt.Printf("  %-22s %d\n", s, n)
			}
		}
		fmt.Printf("Overdue: %d\n", stats.Overdue)
		fmt.Printf("Due within 7 days: %d\n", stats.Upcoming)
		return nil
	},
}

func init() {
	rtiUpcomingCmd.Flags().Int("days", 7, "window in days (default from config)")
}

// --- export / import ---

var rtiExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all tracked applications as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		output, _ := cmd.Flags().GetString("output")
		w := os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		if err := store.ExportJSON(w); err != nil {
			return err
		}
		if output != "" {
			printSuccess("Exported to %s", output)
		}
		return nil
	},
}

var rtiImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import applications from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening import file: %w", err)
		}
		defer f.Close()

		n, err := store.ImportJSON(f)
		if err != nil {
			return err
		}
		printSuccess("Imported %d application(s)", n)
		return nil
	},
}

func init() {
	rtiExportCmd.Flags().String("output", "", "output file path (default: stdout)")

	rtiCmd.AddCommand(rtiGenerateCmd)
	rtiCmd.AddCommand(rtiPrebuiltCmd)
	rtiCmd.AddCommand(rtiAgenciesCmd)
	rtiCmd.AddCommand(rtiTemplatesCmd)
	rtiCmd.AddCommand(rtiAddCmd)
	rtiCmd.AddCommand(rtiShowCmd)
	rtiCmd.AddCommand(rtiListCmd)
	rtiCmd.AddCommand(rtiStatusCmd)
	rtiCmd.AddCommand(rtiNoteCmd)
	rtiCmd.AddCommand(rtiReferenceCmd)
	rtiCmd.AddCommand(rtiTransferCmd)
	rtiCmd.AddCommand(rtiRespondCmd)
	rtiCmd.AddCommand(rtiAppealCmd)
	rtiCmd.AddCommand(rtiSecondAppealCmd)
	rtiCmd.AddCommand(rtiDecidedCmd)
	rtiCmd.AddCommand(rtiOverdueCmd)
	rtiCmd.AddCommand(rtiUpcomingCmd)
	rtiCmd.AddCommand(rtiStatsCmd)
	rtiCmd.AddCommand(rtiExportCmd)
	rtiCmd.AddCommand(rtiImportCmd)
}
