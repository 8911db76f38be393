// Package tracker persists RTI applications and their lifecycle in a local
// SQLite database. Records are never deleted; closure is a status value.
package tracker

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Status is the lifecycle state of a tracked application. Transitions are
// not enforced: any status may be set at any time, and any record may be
// closed directly.
type Status string

const (
	StatusDrafted             Status = "drafted"
	StatusFiled               Status = "filed"
	StatusAcknowledged        Status = "acknowledged"
	StatusTransferred         Status = "transferred"
	StatusResponseReceived    Status = "response_received"
	StatusPartialResponse     Status = "partial_response"
	StatusDenied              Status = "denied"
	StatusNoResponse          Status = "no_response"
	StatusFirstAppealFiled    Status = "first_appeal_filed"
	StatusFirstAppealDecided  Status = "first_appeal_decided"
	StatusSecondAppealFiled   Status = "second_appeal_filed"
	StatusSecondAppealDecided Status = "second_appeal_decided"
	StatusComplaintFiled      Status = "complaint_filed"
	StatusClosed              Status = "closed"
)

// Statuses lists every valid status in lifecycle order.
var Statuses = []Status{
	StatusDrafted, StatusFiled, StatusAcknowledged, StatusTransferred,
	StatusResponseReceived, StatusPartialResponse, StatusDenied, StatusNoResponse,
	StatusFirstAppealFiled, StatusFirstAppealDecided,
	StatusSecondAppealFiled, StatusSecondAppealDecided,
	StatusComplaintFiled, StatusClosed,
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Record is a tracked RTI application. Optional dates are zero when unset.
// Notes is an append-only audit log of timestamped lines.
type Record struct {
	ID                    int64
	AgencyCode            string
	Subject               string
	Questions             []string
	ApplicantName         string
	ApplicantAddress      string
	ApplicantPhone        string
	ApplicantEmail        string
	IsExempt              bool
	ExemptionID           string
	Language              string
	State                 string
	ReferenceNumber       string
	Status                Status
	FilingDate            time.Time
	ResponseDeadline      time.Time
	FirstAppealDeadline   time.Time
	SecondAppealDeadline  time.Time
	AcknowledgmentDate    time.Time
	ResponseDate          time.Time
	TransferInfo          string
	FirstAppealDate       time.Time
	FirstAppealAuthority  string
	FirstAppealOutcome    string
	SecondAppealDate      time.Time
	SecondAppealAuthority string
	SecondAppealOutcome   string
	ResponseSummary       string
	DocumentsReceived     []string
	Notes                 string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Stats aggregates the state of the whole store. ByStatus contains only
// statuses with at least one record.
type Stats struct {
	Total    int
	ByStatus map[Status]int
	Overdue  int
	Upcoming int
}
