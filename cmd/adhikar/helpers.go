package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/openpaws/adhikar/internal/config"
	"github.com/openpaws/adhikar/internal/tracker"
)

const dateLayout = "2006-01-02"

// openStore loads config and opens the tracking database. Callers must
// Close the returned store.
func openStore() (*tracker.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	store, err := tracker.Open(cfg.Storage.DataDir)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("opening tracking database: %w", err)
	}
	slog.Debug("opened tracking database", "data_dir", cfg.Storage.DataDir)
	return store, cfg, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid application id %q", arg)
	}
	return id, nil
}

// parseDateFlag parses a --date style value. Empty means "not given" and
// returns the zero time, which the store treats as "now".
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

func fmtDay(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

// summaryLine is the one-line form used by list, overdue, and upcoming.
func summaryLine(r tracker.Record) string {
	subject := r.Subject
	if runes := []rune(subject); len(runes) > 60 {
		subject = string(runes[:60]) + "..."
	}
	return fmt.Sprintf("#%-4d %-6s %-22s filed %-10s due %-10s %s",
		r.ID, r.AgencyCode, r.Status, fmtDay(r.FilingDate), fmtDay(r.ResponseDeadline), subject)
}

func printRecord(r tracker.Record) {
	fmt.Printf("Application #%d\n", r.ID)
	fmt.Printf("  Agency:            %s\n", r.AgencyCode)
	fmt.Printf("  Subject:           %s\n", r.Subject)
	fmt.Printf("  Status:            %s\n", r.Status)
	fmt.Printf("  Applicant:         %s\n", r.ApplicantName)
	if r.ReferenceNumber != "" {
		fmt.Printf("  Reference:         %s\n", r.ReferenceNumber)
	}
	if r.State != "" {
		fmt.Printf("  State:             %s\n", r.State)
	}
	fmt.Printf("  Filed:             %s\n", fmtDay(r.FilingDate))
	fmt.Printf("  Response deadline: %s\n", fmtDay(r.ResponseDeadline))
	if !r.FirstAppealDeadline.IsZero() {
		fmt.Printf("  1st appeal by:     %s\n", fmtDay(r.FirstAppealDeadline))
	}
	if !r.SecondAppealDeadline.IsZero() {
		fmt.Printf("  2nd appeal by:     %s\n", fmtDay(r.SecondAppealDeadline))
	}
	if !r.ResponseDate.IsZero() {
		fmt.Printf("  Response received: %s\n", fmtDay(r.ResponseDate))
	}
	if r.ResponseSummary != "" {
		fmt.Printf("  Response summary:  %s\n", r.ResponseSummary)
	}
	for _, d := range r.DocumentsReceived {
		fmt.Printf("  Document:          %s\n", d)
	}
	if r.TransferInfo != "" {
		fmt.Printf("  Transferred to:    %s\n", r.TransferInfo)
	}
	if !r.FirstAppealDate.IsZero() {
		fmt.Printf("  1st appeal filed:  %s (authority: %s)\n", fmtDay(r.FirstAppealDate), r.FirstAppealAuthority)
	}
	if r.FirstAppealOutcome != "" {
		fmt.Printf("  1st appeal result: %s\n", r.FirstAppealOutcome)
	}
	if !r.SecondAppealDate.IsZero() {
		fmt.Printf("  2nd appeal filed:  %s (forum: %s)\n", fmtDay(r.SecondAppealDate), r.SecondAppealAuthority)
	}
	if r.SecondAppealOutcome != "" {
		fmt.Printf("  2nd appeal result: %s\n", r.SecondAppealOutcome)
	}
	if len(r.Questions) > 0 {
		fmt.Println("  Questions:")
		for i, q := range r.Questions {
			fmt.Printf("    %d. %s\n", i+1, q)
		}
	}
	if r.Notes != "" {
		fmt.Println("  Notes:")
		fmt.Print(indent(r.Notes, "    "))
	}
}

func indent(text, prefix string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
