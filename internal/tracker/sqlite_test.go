package tracker

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/openpaws/adhikar/internal/agency"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open(%q): %v", dir, err)
	}
	defer s.Close()

	versions, err := s.AppliedMigrations()
	if err != nil {
		t.Fatalf("AppliedMigrations: %v", err)
	}
	if len(versions) == 0 {
		t.Fatal("no migrations applied")
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	first, err := s.AppliedMigrations()
	if err != nil {
		t.Fatalf("AppliedMigrations: %v", err)
	}
	s.Close()

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer s.Close()
	second, err := s.AppliedMigrations()
	if err != nil {
		t.Fatalf("AppliedMigrations: %v", err)
	}
	if len(first) != len(second) {
		t.Errorf("migrations reapplied: %v then %v", first, second)
	}
}

func TestAddAndGet(t *testing.T) {
	s := openTestStore(t)

	filed := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	id, err := s.Add(Record{
		AgencyCode:       "awbi",
		Subject:          "Inspection reports for recognized facilities",
		Questions:        []string{"Number of inspections in 2025", "Copies of inspection reports"},
		ApplicantName:    "Asha Rao",
		ApplicantAddress: "12 MG Road, Pune",
		Language:         "english",
		FilingDate:       filed,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	r, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if r.Status != StatusFiled {
		t.Errorf("status = %q, want filed", r.Status)
	}
	if r.AgencyCode != "awbi" || r.ApplicantName != "Asha Rao" {
		t.Errorf("fields not round-tripped: %+v", r)
	}
	if len(r.Questions) != 2 || r.Questions[0] != "Number of inspections in 2025" {
		t.Errorf("questions = %v", r.Questions)
	}
	if want := agency.ResponseDeadline(filed); !r.ResponseDeadline.Equal(want) {
		t.Errorf("response deadline = %v, want %v", r.ResponseDeadline, want)
	}
	if !r.FirstAppealDeadline.IsZero() || !r.SecondAppealDeadline.IsZero() {
		t.Error("appeal deadlines should stay unset until an appeal is filed")
	}
}

func TestAddWithoutFilingDateIsDrafted(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Add(Record{AgencyCode: "fssai", ApplicantName: "Asha Rao"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	r, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if r.Status != StatusDrafted {
		t.Errorf("status = %q, want drafted", r.Status)
	}
	if !r.ResponseDeadline.IsZero() {
		t.Errorf("response deadline should be unset, got %v", r.ResponseDeadline)
	}
}

func TestGetNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Get(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(999) = %v, want ErrNotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.Add(Record{AgencyCode: "cpcb", FilingDate: time.Now().UTC()})

	if err := s.UpdateStatus(id, StatusAcknowledged, "ack letter received"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	r, _ := s.Get(id)
	if r.Status != StatusAcknowledged {
		t.Errorf("status = %q", r.Status)
	}
	if r.AcknowledgmentDate.IsZero() {
		t.Error("acknowledgment date not stamped")
	}
	if !strings.Contains(r.Notes, "ack letter received") {
		t.Errorf("note not appended: %q", r.Notes)
	}

	if err := s.UpdateStatus(id, StatusResponseReceived, ""); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	r, _ = s.Get(id)
	if r.ResponseDate.IsZero() {
		t.Error("response date not stamped on response_received")
	}
}

func TestUpdateStatusUnknownValue(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.Add(Record{AgencyCode: "awbi"})
	if err := s.UpdateStatus(id, Status("bogus"), ""); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	s := openTestStore(t)
	if err := s.UpdateStatus(42, StatusClosed, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestNoTerminalStatus(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.Add(Record{AgencyCode: "awbi", FilingDate: time.Now().UTC()})

	if err := s.UpdateStatus(id, StatusClosed, ""); err != nil {
		t.Fatalf("UpdateStatus(closed): %v", err)
	}
	// No transition is blocked; closed records can be reopened.
	if err := s.UpdateStatus(id, StatusFiled, "reopened"); err != nil {
		t.Fatalf("UpdateStatus after closed: %v", err)
	}
	r, _ := s.Get(id)
	if r.Status != StatusFiled {
		t.Errorf("status = %q, want filed", r.Status)
	}
}

func TestNotesAccumulate(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.Add(Record{AgencyCode: "awbi"})

	if err := s.AddNote(id, "called PIO office"); err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if err := s.AddNote(id, "called PIO office"); err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	r, _ := s.Get(id)
	if n := strings.Count(r.Notes, "called PIO office"); n != 2 {
		t.Errorf("duplicate notes should accumulate, found %d lines:\n%s", n, r.Notes)
	}
}

func TestMarkResponseReceived(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.Add(Record{AgencyCode: "fssai", FilingDate: time.Now().UTC()})

	respDate := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)
	err := s.MarkResponseReceived(id, "partial records provided", []string{"inspection_log.pdf"}, respDate)
	if err != nil {
		t.Fatalf("MarkResponseReceived: %v", err)
	}
	r, _ := s.Get(id)
	if r.Status != StatusResponseReceived {
		t.Errorf("status = %q", r.Status)
	}
	if !r.ResponseDate.Equal(respDate) {
		t.Errorf("response date = %v, want %v", r.ResponseDate, respDate)
	}
	if r.ResponseSummary != "partial records provided" {
		t.Errorf("summary = %q", r.ResponseSummary)
	}
	if len(r.DocumentsReceived) != 1 || r.DocumentsReceived[0] != "inspection_log.pdf" {
		t.Errorf("documents = %v", r.DocumentsReceived)
	}
}

func TestFileFirstAppealRecomputesDeadline(t *testing.T) {
	s := openTestStore(t)
	filed := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	id, _ := s.Add(Record{AgencyCode: "awbi", FilingDate: filed})

	// Appeal filed well past the 60-day estimate from the filing date.
	appealDate := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	if err := s.FileFirstAppeal(id, "First Appellate Authority, AWBI", appealDate, "no response in 90 days"); err != nil {
		t.Fatalf("FileFirstAppeal: %v", err)
	}

	r, _ := s.Get(id)
	if r.Status != StatusFirstAppealFiled {
		t.Errorf("status = %q", r.Status)
	}
	want := agency.AppealWindowFrom(appealDate)
	if !r.FirstAppealDeadline.Equal(want) {
		t.Errorf("first appeal deadline = %v, want %v (from appeal date)", r.FirstAppealDeadline, want)
	}
	// Must differ from the draft-time estimate of filing + 60 days.
	if estimate := filed.AddDate(0, 0, 60); r.FirstAppealDeadline.Equal(estimate) {
		t.Error("deadline matches draft-time estimate; should be recomputed from the appeal date")
	}
}

func TestFileSecondAppeal(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.Add(Record{AgencyCode: "cpcb", FilingDate: time.Now().UTC()})

	appealDate := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	if err := s.FileSecondAppeal(id, "Central Information Commission", appealDate, ""); err != nil {
		t.Fatalf("FileSecondAppeal: %v", err)
	}
	r, _ := s.Get(id)
	if r.Status != StatusSecondAppealFiled {
		t.Errorf("status = %q", r.Status)
	}
	if want := agency.SecondAppealWindowFrom(appealDate); !r.SecondAppealDeadline.Equal(want) {
		t.Errorf("second appeal deadline = %v, want %v", r.SecondAppealDeadline, want)
	}
	if r.SecondAppealAuthority != "Central Information Commission" {
		t.Errorf("authority = %q", r.SecondAppealAuthority)
	}
}

func TestAppealOutcomes(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.Add(Record{AgencyCode: "dahd", FilingDate: time.Now().UTC()})

	if err := s.RecordFirstAppealOutcome(id, "PIO directed to supply records", "order dated 2026-03-10"); err != nil {
		t.Fatalf("RecordFirstAppealOutcome: %v", err)
	}
	r, _ := s.Get(id)
	if r.Status != StatusFirstAppealDecided || r.FirstAppealOutcome == "" {
		t.Errorf("record = %+v", r)
	}

	if err := s.RecordSecondAppealOutcome(id, "penalty imposed on PIO", ""); err != nil {
		t.Fatalf("RecordSecondAppealOutcome: %v", err)
	}
	r, _ = s.Get(id)
	if r.Status != StatusSecondAppealDecided || r.SecondAppealOutcome == "" {
		t.Errorf("record = %+v", r)
	}
}

func TestSetReferenceUnique(t *testing.T) {
	s := openTestStore(t)
	a, _ := s.Add(Record{AgencyCode: "awbi"})
	b, _ := s.Add(Record{AgencyCode: "awbi"})

	if err := s.SetReference(a, "AWBI/RTI/2026/001"); err != nil {
		t.Fatalf("SetReference: %v", err)
	}
	if err := s.SetReference(b, "AWBI/RTI/2026/001"); err == nil {
		t.Fatal("duplicate reference number should be rejected")
	}
	// Clearing a reference back to unset never collides.
	if err := s.SetReference(a, ""); err != nil {
		t.Fatalf("SetReference(clear): %v", err)
	}
	if err := s.SetReference(b, ""); err != nil {
		t.Fatalf("SetReference(clear second): %v", err)
	}
}

func TestMarkTransferred(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.Add(Record{AgencyCode: "dahd", FilingDate: time.Now().UTC()})

	if err := s.MarkTransferred(id, "transferred to state animal husbandry dept", ""); err != nil {
		t.Fatalf("MarkTransferred: %v", err)
	}
	r, _ := s.Get(id)
	if r.Status != StatusTransferred || r.TransferInfo == "" {
		t.Errorf("record = %+v", r)
	}
}

func TestOverdueAndUpcoming(t *testing.T) {
	s := openTestStore(t)
	now := time.Now().UTC()

	overdueID, _ := s.Add(Record{AgencyCode: "awbi", Subject: "old", FilingDate: now.AddDate(0, 0, -35)})
	// Filed today: deadline 30 days out, in neither window.
	s.Add(Record{AgencyCode: "awbi", Subject: "fresh", FilingDate: now})
	answeredID, _ := s.Add(Record{AgencyCode: "awbi", Subject: "answered", FilingDate: now.AddDate(0, 0, -35)})
	if err := s.MarkResponseReceived(answeredID, "done", nil, time.Time{}); err != nil {
		t.Fatalf("MarkResponseReceived: %v", err)
	}
	dueSoonID, _ := s.Add(Record{AgencyCode: "fssai", Subject: "due soon", FilingDate: now.AddDate(0, 0, -28)})

	overdue, err := s.Overdue()
	if err != nil {
		t.Fatalf("Overdue: %v", err)
	}
	if len(overdue) != 1 || overdue[0].ID != overdueID {
		t.Errorf("Overdue = %v, want only record %d", ids(overdue), overdueID)
	}

	upcoming, err := s.Upcoming(7)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].ID != dueSoonID {
		t.Errorf("Upcoming(7) = %v, want only record %d", ids(upcoming), dueSoonID)
	}
}

func ids(records []Record) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestAllOrderingAndFilter(t *testing.T) {
	s := openTestStore(t)
	now := time.Now().UTC()

	older, _ := s.Add(Record{AgencyCode: "awbi", FilingDate: now.AddDate(0, 0, -10)})
	newer, _ := s.Add(Record{AgencyCode: "fssai", FilingDate: now})
	drafted, _ := s.Add(Record{AgencyCode: "cpcb"})

	all, err := s.All("")
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("All returned %d records", len(all))
	}
	if all[0].ID != newer || all[1].ID != older || all[2].ID != drafted {
		t.Errorf("order = %v, want [%d %d %d]", ids(all), newer, older, drafted)
	}

	filed, err := s.All(StatusFiled)
	if err != nil {
		t.Fatalf("All(filed): %v", err)
	}
	if len(filed) != 2 {
		t.Errorf("All(filed) returned %d records", len(filed))
	}

	if _, err := s.All(Status("bogus")); err == nil {
		t.Error("expected error for unknown status filter")
	}
}

func TestByAgency(t *testing.T) {
	s := openTestStore(t)
	s.Add(Record{AgencyCode: "awbi"})
	s.Add(Record{AgencyCode: "awbi"})
	s.Add(Record{AgencyCode: "fssai"})

	got, err := s.ByAgency("awbi")
	if err != nil {
		t.Fatalf("ByAgency: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("ByAgency(awbi) returned %d records", len(got))
	}
}

func TestGetStats(t *testing.T) {
	s := openTestStore(t)
	now := time.Now().UTC()

	s.Add(Record{AgencyCode: "awbi", FilingDate: now.AddDate(0, 0, -35)}) // overdue
	s.Add(Record{AgencyCode: "awbi", FilingDate: now.AddDate(0, 0, -28)}) // due within 7d
	s.Add(Record{AgencyCode: "cpcb"})                                     // drafted

	st, err := s.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if st.Total != 3 {
		t.Errorf("Total = %d", st.Total)
	}
	if st.ByStatus[StatusFiled] != 2 || st.ByStatus[StatusDrafted] != 1 {
		t.Errorf("ByStatus = %v", st.ByStatus)
	}
	if _, ok := st.ByStatus[StatusClosed]; ok {
		t.Error("zero-count statuses should be absent")
	}
	if st.Overdue != 1 {
		t.Errorf("Overdue = %d", st.Overdue)
	}
	if st.Upcoming != 1 {
		t.Errorf("Upcoming = %d", st.Upcoming)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := openTestStore(t)
	filed := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	id, _ := src.Add(Record{
		AgencyCode:       "awbi",
		Subject:          "Inspection reports",
		Questions:        []string{"q1", "q2"},
		ApplicantName:    "Asha Rao",
		ApplicantAddress: "12 MG Road, Pune",
		IsExempt:         true,
		ExemptionID:      "BPL-123",
		Language:         "bilingual",
		State:            "maharashtra",
		FilingDate:       filed,
	})
	src.SetReference(id, "AWBI/2026/42")
	src.FileFirstAppeal(id, "FAA, AWBI", filed.AddDate(0, 0, 70), "no response")

	var buf bytes.Buffer
	if err := src.ExportJSON(&buf); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	dst := openTestStore(t)
	n, err := dst.ImportJSON(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if n != 1 {
		t.Fatalf("imported %d records", n)
	}

	orig, _ := src.Get(id)
	got, err := dst.Get(1)
	if err != nil {
		t.Fatalf("Get after import: %v", err)
	}

	if got.AgencyCode != orig.AgencyCode || got.Subject != orig.Subject ||
		got.ApplicantName != orig.ApplicantName || got.ApplicantAddress != orig.ApplicantAddress ||
		got.IsExempt != orig.IsExempt || got.ExemptionID != orig.ExemptionID ||
		got.Language != orig.Language || got.State != orig.State ||
		got.ReferenceNumber != orig.ReferenceNumber || got.Status != orig.Status ||
		got.FirstAppealAuthority != orig.FirstAppealAuthority || got.Notes != orig.Notes {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, orig)
	}
	if !got.FilingDate.Equal(orig.FilingDate) || !got.ResponseDeadline.Equal(orig.ResponseDeadline) ||
		!got.FirstAppealDate.Equal(orig.FirstAppealDate) || !got.FirstAppealDeadline.Equal(orig.FirstAppealDeadline) {
		t.Errorf("dates not round-tripped:\n got %+v\nwant %+v", got, orig)
	}
	if len(got.Questions) != 2 {
		t.Errorf("questions = %v", got.Questions)
	}
}

func TestImportMalformed(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.ImportJSON(strings.NewReader("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := s.ImportJSON(strings.NewReader(`[{"agency_code":"awbi","status":"bogus"}]`)); err == nil {
		t.Fatal("expected unknown status error")
	}
}
