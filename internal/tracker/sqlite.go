package tracker

import (
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/openpaws/adhikar/internal/agency"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store wraps a SQLite database holding tracked RTI applications.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database in dataDir and runs pending migrations.
// Pass ":memory:" as dataDir for an in-memory database (used by tests).
func Open(dataDir string) (*Store, error) {
	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "adhikar.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Limit to single connection to avoid "database is locked" errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate reads embedded SQL migration files and applies any that haven't been run yet.
func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, err := parseMigrationVersion(entry.Name())
		if err != nil {
			return err
		}

		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction for migration %d: %w", version, err)
		}

		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
		slog.Debug("applied migration", "version", version)
	}

	return nil
}

func parseMigrationVersion(filename string) (int, error) {
	var version int
	if _, err := fmt.Sscanf(filename, "%d_", &version); err != nil {
		return 0, fmt.Errorf("parsing migration version from %q: %w", filename, err)
	}
	return version, nil
}

// AppliedMigrations returns the list of applied migration versions in ascending order.
func (s *Store) AppliedMigrations() ([]int, error) {
	rows, err := s.db.Query("SELECT version FROM schema_version ORDER BY version ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// recordColumns is the scan order shared by all SELECTs over applications.
const recordColumns = `id, agency_code, subject, questions, applicant_name, applicant_address,
	applicant_phone, applicant_email, is_exempt, exemption_id, language, state,
	reference_number, status, filing_date, response_deadline, first_appeal_deadline,
	second_appeal_deadline, acknowledgment_date, response_date, transfer_info,
	first_appeal_date, first_appeal_authority, first_appeal_outcome,
	second_appeal_date, second_appeal_authority, second_appeal_outcome,
	response_summary, documents_received, notes, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var r Record
	var questions, documents string
	var status string
	var refNum sql.NullString
	var filing, respDL, faDL, saDL, ackDate, respDate, faDate, saDate sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&r.ID, &r.AgencyCode, &r.Subject, &questions, &r.ApplicantName, &r.ApplicantAddress,
		&r.ApplicantPhone, &r.ApplicantEmail, &r.IsExempt, &r.ExemptionID, &r.Language, &r.State,
		&refNum, &status, &filing, &respDL, &faDL,
		&saDL, &ackDate, &respDate, &r.TransferInfo,
		&faDate, &r.FirstAppealAuthority, &r.FirstAppealOutcome,
		&saDate, &r.SecondAppealAuthority, &r.SecondAppealOutcome,
		&r.ResponseSummary, &documents, &r.Notes, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}

	r.Status = Status(status)
	r.ReferenceNumber = refNum.String
	if err := json.Unmarshal([]byte(questions), &r.Questions); err != nil {
		return Record{}, fmt.Errorf("parsing questions: %w", err)
	}
	if err := json.Unmarshal([]byte(documents), &r.DocumentsReceived); err != nil {
		return Record{}, fmt.Errorf("parsing documents_received: %w", err)
	}

	for _, f := range []struct {
		name string
		src  sql.NullString
		dst  *time.Time
	}{
		{"filing_date", filing, &r.FilingDate},
		{"response_deadline", respDL, &r.ResponseDeadline},
		{"first_appeal_deadline", faDL, &r.FirstAppealDeadline},
		{"second_appeal_deadline", saDL, &r.SecondAppealDeadline},
		{"acknowledgment_date", ackDate, &r.AcknowledgmentDate},
		{"response_date", respDate, &r.ResponseDate},
		{"first_appeal_date", faDate, &r.FirstAppealDate},
		{"second_appeal_date", saDate, &r.SecondAppealDate},
	} {
		if !f.src.Valid || f.src.String == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, f.src.String)
		if err != nil {
			return Record{}, fmt.Errorf("parsing %s: %w", f.name, err)
		}
		*f.dst = t
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return Record{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return Record{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return r, nil
}

// timeArg converts a time to its stored RFC3339 form, NULL when zero.
func timeArg(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// stringArg stores the empty string as NULL, used for the unique
// reference_number column so missing references don't collide.
func stringArg(v string) any {
	if v == "" {
		return nil
	}
	return v
}

// Add inserts a new record and returns its assigned id. The initial status
// is filed when a filing date is supplied, drafted otherwise; the response
// deadline is derived from the filing date. Appeal deadlines stay unset
// until an appeal is actually filed.
func (s *Store) Add(r Record) (int64, error) {
	now := time.Now().UTC()
	status := StatusDrafted
	var respDL time.Time
	if !r.FilingDate.IsZero() {
		status = StatusFiled
		respDL = agency.ResponseDeadline(r.FilingDate)
	}
	if r.Status != "" {
		status = r.Status
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
	_ = documents // documents_received keeps its schema default on insert

	res, err := s.db.Exec(`
		INSERT INTO applications (agency_code, subject, questions, applicant_name, applicant_address,
			applicant_phone, applicant_email, is_exempt, exemption_id, language, state,
			reference_number, status, filing_date, response_deadline, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.AgencyCode, r.Subject, string(questions), r.ApplicantName, r.ApplicantAddress,
		r.ApplicantPhone, r.ApplicantEmail, r.IsExempt, r.ExemptionID, r.Language, r.State,
		stringArg(r.ReferenceNumber), string(status), timeArg(r.FilingDate), timeArg(respDL),
		r.Notes, now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Get returns the record with the given id.
func (s *Store) Get(id int64) (Record, error) {
	row := s.db.QueryRow(`SELECT `+recordColumns+` FROM applications WHERE id = ?`, id)
	return scanRecord(row)
}

// noteLine formats an audit log entry. The notes column only grows;
// repeated identical notes produce duplicate lines on purpose.
func noteLine(note string) string {
	return fmt.Sprintf("[%s] %s\n", time.Now().UTC().Format("2006-01-02 15:04"), note)
}

// UpdateStatus sets a record's status and optionally appends a note.
// Moving to response_received stamps the response date; moving to
// acknowledged stamps the acknowledgment date.
func (s *Store) UpdateStatus(id int64, status Status, note string) error {
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", status)
	}
	now := time.Now().UTC().Format(time.RFC3339)

	query := `UPDATE applications SET status = ?, updated_at = ?`
	args := []any{string(status), now}
	if status == StatusResponseReceived {
		query += `, response_date = ?`
		args = append(args, now)
	}
	if status == StatusAcknowledged {
		query += `, acknowledgment_date = ?`
		args = append(args, now)
	}
	if note != "" {
		query += `, notes = notes || ?`
		args = append(args, noteLine(note))
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// SetReference records the external reference number assigned by the PIO.
func (s *Store) SetReference(id int64, ref string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(`UPDATE applications SET reference_number = ?, updated_at = ? WHERE id = ?`,
		stringArg(ref), now, id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// MarkResponseReceived records a response: status, response date (defaults
// to now), summary, and any documents received.
func (s *Store) MarkResponseReceived(id int64, summary string, documents []string, responseDate time.Time) error {
	if responseDate.IsZero() {
		responseDate = time.Now().UTC()
	}
	docs, err := json.Marshal(nonNil(documents))
	if err != nil {
		return fmt.Errorf("encoding documents_received: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(`
		UPDATE applications SET status = ?, response_date = ?, response_summary = ?,
			documents_received = ?, updated_at = ? WHERE id = ?`,
		string(StatusResponseReceived), responseDate.UTC().Format(time.RFC3339),
		summary, string(docs), now, id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// MarkTransferred records a Section 6(3) transfer to another authority.
func (s *Store) MarkTransferred(id int64, info, note string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE applications SET status = ?, transfer_info = ?, updated_at = ?`
	args := []any{string(StatusTransferred), info, now}
	if note != "" {
		query += `, notes = notes || ?`
		args = append(args, noteLine(note))
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// FileFirstAppeal records a first appeal. The first appeal deadline is
// recomputed from the actual appeal date (30 days for the appellate
// authority to decide), overwriting any earlier estimate.
func (s *Store) FileFirstAppeal(id int64, authority string, date time.Time, note string) error {
	if date.IsZero() {
		date = time.Now().UTC()
	}
	deadline := agency.AppealWindowFrom(date)
	now := time.Now().UTC().Format(time.RFC3339)

	query := `UPDATE applications SET status = ?, first_appeal_date = ?, first_appeal_authority = ?,
		first_appeal_deadline = ?, updated_at = ?`
	args := []any{string(StatusFirstAppealFiled), date.UTC().Format(time.RFC3339), authority,
		deadline.UTC().Format(time.RFC3339), now}
	if note != "" {
		query += `, notes = notes || ?`
		args = append(args, noteLine(note))
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// FileSecondAppeal records a second appeal before the Information
// Commission, with a 90 day window counted from the appeal date.
func (s *Store) FileSecondAppeal(id int64, commission string, date time.Time, note string) error {
	if date.IsZero() {
		date = time.Now().UTC()
	}
	deadline := agency.SecondAppealWindowFrom(date)
	now := time.Now().UTC().Format(time.RFC3339)

	query := `UPDATE applications SET status = ?, second_appeal_date = ?, second_appeal_authority = ?,
		second_appeal_deadline = ?, updated_at = ?`
	args := []any{string(StatusSecondAppealFiled), date.UTC().Format(time.RFC3339), commission,
		deadline.UTC().Format(time.RFC3339), now}
	if note != "" {
		query += `, notes = notes || ?`
		args = append(args, noteLine(note))
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// RecordFirstAppealOutcome stores the appellate authority's decision.
func (s *Store) RecordFirstAppealOutcome(id int64, outcome, note string) error {
	return s.recordOutcome(id, StatusFirstAppealDecided, "first_appeal_outcome", outcome, note)
}

// RecordSecondAppealOutcome stores the Information Commission's decision.
func (s *Store) RecordSecondAppealOutcome(id int64, outcome, note string) error {
	return s.recordOutcome(id, StatusSecondAppealDecided, "second_appeal_outcome", outcome, note)
}

func (s *Store) recordOutcome(id int64, status Status, column, outcome, note string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE applications SET status = ?, ` + column + ` = ?, updated_at = ?`
	args := []any{string(status), outcome, now}
	if note != "" {
		query += `, notes = notes || ?`
		args = append(args, noteLine(note))
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// AddNote appends a timestamped line to a record's audit log.
func (s *Store) AddNote(id int64, note string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(`UPDATE applications SET notes = notes || ?, updated_at = ? WHERE id = ?`,
		noteLine(note), now, id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func mustAffect(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
