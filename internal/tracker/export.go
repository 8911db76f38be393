package tracker

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// exportRecord is the JSON shape of a Record. Dates are RFC3339 strings,
// empty when unset, so exports stay readable and diffable.
type exportRecord struct {
	ID                    int64    `json:"id"`
	AgencyCode            string   `json:"agency_code"`
	Subject               string   `json:"subject"`
	Questions             []string `json:"questions"`
	ApplicantName         string   `json:"applicant_name"`
	ApplicantAddress      string   `json:"applicant_address"`
	ApplicantPhone        string   `json:"applicant_phone,omitempty"`
	ApplicantEmail        string   `json:"applicant_email,omitempty"`
	IsExempt              bool     `json:"is_exempt"`
	ExemptionID           string   `json:"exemption_id,omitempty"`
	Language              string   `json:"language"`
	State                 string   `json:"state,omitempty"`
	ReferenceNumber       string   `json:"reference_number,omitempty"`
	Status                string   `json:"status"`
	FilingDate            string   `json:"filing_date,omitempty"`
	ResponseDeadline      string   `json:"response_deadline,omitempty"`
	FirstAppealDeadline   string   `json:"first_appeal_deadline,omitempty"`
	SecondAppealDeadline  string   `json:"second_appeal_deadline,omitempty"`
	AcknowledgmentDate    string   `json:"acknowledgment_date,omitempty"`
	ResponseDate          string   `json:"response_date,omitempty"`
	TransferInfo          string   `json:"transfer_info,omitempty"`
	FirstAppealDate       string   `json:"first_appeal_date,omitempty"`
	FirstAppealAuthority  string   `json:"first_appeal_authority,omitempty"`
	FirstAppealOutcome    string   `json:"first_appeal_outcome,omitempty"`
	SecondAppealDate      string   `json:"second_appeal_date,omitempty"`
	SecondAppealAuthority string   `json:"second_appeal_authority,omitempty"`
	SecondAppealOutcome   string   `json:"second_appeal_outcome,omitempty"`
	ResponseSummary       string   `json:"response_summary,omitempty"`
	DocumentsReceived     []string `json:"documents_received"`
	Notes                 string   `json:"notes,omitempty"`
	CreatedAt             string   `json:"created_at"`
	UpdatedAt             string   `json:"updated_at"`
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", field, err)
	}
	return t, nil
}

func toExport(r Record) exportRecord {
	return exportRecord{
		ID:                    r.ID,
		AgencyCode:            r.AgencyCode,
		Subject:               r.Subject,
		Questions:             nonNil(r.Questions),
		ApplicantName:         r.ApplicantName,
		ApplicantAddress:      r.ApplicantAddress,
		ApplicantPhone:        r.ApplicantPhone,
		ApplicantEmail:        r.ApplicantEmail,
		IsExempt:              r.IsExempt,
		ExemptionID:           r.ExemptionID,
		Language:              r.Language,
		State:                 r.State,
		ReferenceNumber:       r.ReferenceNumber,
		Status:                string(r.Status),
		FilingDate:            fmtDate(r.FilingDate),
		ResponseDeadline:      fmtDate(r.ResponseDeadline),
		FirstAppealDeadline:   fmtDate(r.FirstAppealDeadline),
		SecondAppealDeadline:  fmtDate(r.SecondAppealDeadline),
		AcknowledgmentDate:    fmtDate(r.AcknowledgmentDate),
		ResponseDate:          fmtDate(r.ResponseDate),
		TransferInfo:          r.TransferInfo,
		FirstAppealDate:       fmtDate(r.FirstAppealDate),
		FirstAppealAuthority:  r.FirstAppealAuthority,
		FirstAppealOutcome:    r.FirstAppealOutcome,
		SecondAppealDate:      fmtDate(r.SecondAppealDate),
		SecondAppealAuthority: r.SecondAppealAuthority,
		SecondAppealOutcome:   r.SecondAppealOutcome,
		ResponseSummary:       r.ResponseSummary,
		DocumentsReceived:     nonNil(r.DocumentsReceived),
		Notes:                 r.Notes,
		CreatedAt:             fmtDate(r.CreatedAt),
		UpdatedAt:             fmtDate(r.UpdatedAt),
	}
}

func fromExport(e exportRecord) (Record, error) {
	r := Record{
		ID:                    e.ID,
		AgencyCode:            e.AgencyCode,
		Subject:               e.Subject,
		Questions:             nonNil(e.Questions),
		ApplicantName:         e.ApplicantName,
		ApplicantAddress:      e.ApplicantAddress,
		ApplicantPhone:        e.ApplicantPhone,
		ApplicantEmail:        e.ApplicantEmail,
		IsExempt:              e.IsExempt,
		ExemptionID:           e.ExemptionID,
		Language:              e.Language,
		State:                 e.State,
		ReferenceNumber:       e.ReferenceNumber,
		Status:                Status(e.Status),
		TransferInfo:          e.TransferInfo,
		FirstAppealAuthority:  e.FirstAppealAuthority,
		FirstAppealOutcome:    e.FirstAppealOutcome,
		SecondAppealAuthority: e.SecondAppealAuthority,
		SecondAppealOutcome:   e.SecondAppealOutcome,
		ResponseSummary:       e.ResponseSummary,
		DocumentsReceived:     nonNil(e.DocumentsReceived),
		Notes:                 e.Notes,
	}
	var err error
	for _, f := range []struct {
		name string
		src  string
		dst  *time.Time
	}{
		{"filing_date", e.FilingDate, &r.FilingDate},
		{"response_deadline", e.ResponseDeadline, &r.ResponseDeadline},
		{"first_appeal_deadline", e.FirstAppealDeadline, &r.FirstAppealDeadline},
		{"second_appeal_deadline", e.SecondAppealDeadline, &r.SecondAppealDeadline},
		{"acknowledgment_date", e.AcknowledgmentDate, &r.AcknowledgmentDate},
		{"response_date", e.ResponseDate, &r.ResponseDate},
		{"first_appeal_date", e.FirstAppealDate, &r.FirstAppealDate},
		{"second_appeal_date", e.SecondAppealDate, &r.SecondAppealDate},
	} {
		if *f.dst, err = parseDate(f.name, f.src); err != nil {
			return Record{}, err
		}
	}
	return r, nil
}

// ExportJSON writes every record as a JSON array, ordered by id.
func (s *Store) ExportJSON(w io.Writer) error {
	records, err := s.queryRecords(`SELECT ` + recordColumns + ` FROM applications ORDER BY id ASC`)
	if err != nil {
		return err
	}
	out := make([]exportRecord, 0, len(records))
	for _, r := range records {
		out = append(out, toExport(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ImportJSON reads a JSON array of records and inserts each one with a
// fresh id. Returns the number of records imported. Exported ids are not
// preserved; the store always assigns its own.
func (s *Store) ImportJSON(r io.Reader) (int, error) {
	var in []exportRecord
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return 0, fmt.Errorf("decoding records: %w", err)
	}

	count := 0
	for i, e := range in {
		rec, err := fromExport(e)
		if err != nil {
			return count, fmt.Errorf("record %d: %w", i, err)
		}
		if rec.Status != "" && !rec.Status.Valid() {
			return count, fmt.Errorf("record %d: unknown status %q", i, rec.Status)
		}
		if _, err := s.insertFull(rec); err != nil {
			return count, fmt.Errorf("record %d: %w", i, err)
		}
		count++
	}
	return count, nil
}

// insertFull inserts a record preserving every lifecycle field, used by
// import where deadlines and appeal dates already exist.
func (s *Store) insertFull(r Record) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	status := r.Status
	if status == "" {
		status = StatusDrafted
		if !r.FilingDate.IsZero() {
			status = StatusFiled
		}
	}
	if r.ResponseDeadline.IsZero() && !r.FilingDate.IsZero() {
		r.ResponseDeadline = r.FilingDate.AddDate(0, 0, 30)
	}
	if r.Language == "" {
		r.Language = "english"
	}

	questions, err := json.Marshal(nonNil(r.Questions))
	if err != nil {
		return 0, fmt.Errorf("encoding questions: %w", err)
	}
	documents, err := json.Marshal(nonNil(r.DocumentsReceived))
	if err != nil {
		return 0, fmt.Errorf("encoding documents_received: %w", err)
	}

	res, err := s.db.Exec(`
		INSERT INTO applications (agency_code, subject, questions, applicant_name, applicant_address,
			applicant_phone, applicant_email, is_exempt, exemption_id, language, state,
			reference_number, status, filing_date, response_deadline, first_appeal_deadline,
			second_appeal_deadline, acknowledgment_date, response_date, transfer_info,
			first_appeal_date, first_appeal_authority, first_appeal_outcome,
			second_appeal_date, second_appeal_authority, second_appeal_outcome,
			response_summary, documents_received, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.AgencyCode, r.Subject, string(questions), r.ApplicantName, r.ApplicantAddress,
		r.ApplicantPhone, r.ApplicantEmail, r.IsExempt, r.ExemptionID, r.Language, r.State,
		stringArg(r.ReferenceNumber), string(status), timeArg(r.FilingDate), timeArg(r.ResponseDeadline),
		timeArg(r.FirstAppealDeadline), timeArg(r.SecondAppealDeadline),
		timeArg(r.AcknowledgmentDate), timeArg(r.ResponseDate), r.TransferInfo,
		timeArg(r.FirstAppealDate), r.FirstAppealAuthority, r.FirstAppealOutcome,
		timeArg(r.SecondAppealDate), r.SecondAppealAuthority, r.SecondAppealOutcome,
		r.ResponseSummary, string(documents), r.Notes, now, now,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
