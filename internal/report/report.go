package report

import (
	"github.com/symposcan/symposcan/internal/model"
)

// Suspect flag reasons.
const (
	// ReasonSentinel marks records stored with the "N/A" sentinel after
	// a failed detail retrieval.
	ReasonSentinel = "detail retrieval failed"

	// ReasonShortAbstract marks records whose abstract is shorter than
	// the plausibility threshold.
	ReasonShortAbstract = "abstract too short"

	// ReasonShortAuthors marks records whose author list is shorter
	// than the plausibility threshold.
	ReasonShortAuthors = "author list too short"
)

// Suspect is a talk record flagged by the consistency check, together
// with the reasons it was flagged.
type Suspect struct {
	// Record is the flagged talk record.
	Record model.TalkRecord `json:"record"`

	// Reasons lists why the record was flagged.
	Reasons []string `json:"reasons"`
}

// CheckReport is the outcome of one consistency check pass over all
// stored talk records.
type CheckReport struct {
	// Total is the number of records examined.
	Total int `json:"total"`

	// SentinelCount is the number of sentineled records.
	SentinelCount int `json:"sentinel_count"`

	// Suspects are the flagged records in store order.
	Suspects []Suspect `json:"suspects"`
}

// NewCheckReport runs the consistency check over the given records.
func NewCheckReport(recs []model.TalkRecord) *CheckReport {
	r := &CheckReport{
		Total:    len(recs),
		Suspects: make([]Suspect, 0),
	}

	for _, rec := range recs {
		reasons := flagReasons(rec)
		if len(reasons) == 0 {
			continue
		}
		if rec.Authors == model.NotAvailable && rec.Abstract == model.NotAvailable {
			r.SentinelCount++
		}
		r.Suspects = append(r.Suspects, Suspect{Record: rec, Reasons: reasons})
	}

	return r
}

// SuspectCount returns the number of flagged records.
func (r *CheckReport) SuspectCount() int {
	return len(r.Suspects)
}

// Clean reports whether the check flagged nothing.
func (r *CheckReport) Clean() bool {
	return len(r.Suspects) == 0
}

// flagReasons classifies why a record is suspect, empty when it is not.
func flagReasons(rec model.TalkRecord) []string {
	if !rec.Suspect() {
		return nil
	}

	if rec.Authors == model.NotAvailable && rec.Abstract == model.NotAvailable {
		return []string{ReasonSentinel}
	}

	var reasons []string
	if len(rec.Abstract) < model.MinAbstractLen {
		reasons = append(reasons, ReasonShortAbstract)
	}
	if len(rec.Authors) < model.MinAuthorsLen {
		reasons = append(reasons, ReasonShortAuthors)
	}
	return reasons
}
