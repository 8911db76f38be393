package tracker

import (
	"fmt"
	"time"
)

// waitingStatuses are the states where a response is still owed: the
// response deadline only matters while nothing has been received and no
// appeal has superseded the wait.
const waitingStatuses = `('filed', 'acknowledged')`

// Overdue returns records whose response deadline is strictly in the past
// and which are still waiting on a response, oldest deadline first.
func (s *Store) Overdue() ([]Record, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	return s.queryRecords(`
		SELECT `+recordColumns+` FROM applications
		WHERE response_deadline IS NOT NULL AND response_deadline < ?
		  AND status IN `+waitingStatuses+`
		ORDER BY response_deadline ASC`, now)
}

// Upcoming returns waiting records whose response deadline falls within
// the next withinDays days, soonest first.
func (s *Store) Upcoming(withinDays int) ([]Record, error) {
	now := time.Now().UTC()
	until := now.AddDate(0, 0, withinDays)
	return s.queryRecords(`
		SELECT `+recordColumns+` FROM applications
		WHERE response_deadline IS NOT NULL AND response_deadline >= ? AND response_deadline <= ?
		  AND status IN `+waitingStatuses+`
		ORDER BY response_deadline ASC`,
		now.Format(time.RFC3339), until.Format(time.RFC3339))
}

// All returns every record, newest filing first. Pass an empty status to
// skip filtering. Drafted records without a filing date sort last.
func (s *Store) All(statusFilter Status) ([]Record, error) {
	if statusFilter == "" {
		return s.queryRecords(`
			SELECT ` + recordColumns + ` FROM applications
			ORDER BY filing_date DESC, id DESC`)
	}
	if !statusFilter.Valid() {
		return nil, fmt.Errorf("unknown status %q", statusFilter)
	}
	return s.queryRecords(`
		SELECT `+recordColumns+` FROM applications
		WHERE status = ? ORDER BY filing_date DESC, id DESC`, string(statusFilter))
}

// ByAgency returns all records addressed to the given agency.
func (s *Store) ByAgency(code string) ([]Record, error) {
	return s.queryRecords(`
		SELECT `+recordColumns+` FROM applications
		WHERE agency_code = ? ORDER BY filing_date DESC, id DESC`, code)
}

// Stats aggregates the whole store: totals, per-status counts (only
// statuses with records), overdue count, and deadlines due in 7 days.
func (s *Store) GetStats() (Stats, error) {
	st := Stats{ByStatus: make(map[Status]int)}

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM applications`).Scan(&st.Total); err != nil {
		return Stats{}, err
	}

	rows, err := s.db.Query(`SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return Stats{}, err
		}
		st.ByStatus[Status(status)] = n
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	now := time.Now().UTC()
	if err := s.db.QueryRow(`
		SELECT COUNT(*) FROM applications
		WHERE response_deadline IS NOT NULL AND response_deadline < ?
		  AND status IN `+waitingStatuses,
		now.Format(time.RFC3339)).Scan(&st.Overdue); err != nil {
		return Stats{}, err
	}
	if err := s.db.QueryRow(`
		SELECT COUNT(*) FROM applications
		WHERE response_deadline IS NOT NULL AND response_deadline >= ? AND response_deadline <= ?
		  AND status IN `+waitingStatuses,
		now.Format(time.RFC3339), now.AddDate(0, 0, 7).Format(time.RFC3339)).Scan(&st.Upcoming); err != nil {
		return Stats{}, err
	}

	return st, nil
}

func (s *Store) queryRecords(query string, args ...any) ([]Record, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
