package model

// NotAvailable is the sentinel stored in place of authors and abstract
// text when detail retrieval fails for a talk. Records carrying it are
// complete as far as ingestion is concerned; they are flagged later by
// the consistency check, never refetched.
const NotAvailable = "N/A"

// Length thresholds used by the consistency check. Values below these
// almost always indicate a page whose layout the detail extractor
// misread rather than a genuinely short abstract or author list.
const (
	// MinAbstractLen is the shortest abstract considered plausible.
	MinAbstractLen = 100

	// MinAuthorsLen is the shortest author list considered plausible.
	MinAuthorsLen = 10
)

// SymposiumLink is a symposium discovered under a meeting root page.
// Immutable once stored. Uniqueness is by name in practice only; the
// store does not enforce it, and repeated discovery runs append
// duplicate rows.
type SymposiumLink struct {
	// Name is the symposium name as displayed in the anchor text.
	Name string `json:"name"`

	// URL is the absolute symposium page URL.
	URL string `json:"url"`
}

// TalkLink records that a talk is known to exist under a symposium,
// independent of whether its detail page has been fetched yet.
type TalkLink struct {
	// TalkName is the talk title as displayed in the anchor text.
	TalkName string `json:"talk_name"`

	// TalkURL is the absolute talk detail page URL.
	TalkURL string `json:"talk_url"`

	// SymposiumName is the name of the symposium the talk belongs to.
	SymposiumName string `json:"symposium_name"`

	// SymposiumURL is the absolute URL of that symposium's page.
	SymposiumURL string `json:"symposium_url"`
}

// TalkRecord is the terminal, fully enriched record for a talk.
// Authors and Abstract hold NotAvailable when detail retrieval failed.
type TalkRecord struct {
	// TalkName is the talk title as displayed in the anchor text.
	TalkName string `json:"talk_name"`

	// TalkURL is the absolute talk detail page URL.
	TalkURL string `json:"talk_url"`

	// SymposiumName is the name of the symposium the talk belongs to.
	SymposiumName string `json:"symposium_name"`

	// SymposiumURL is the absolute URL of that symposium's page.
	SymposiumURL string `json:"symposium_url"`

	// Authors is the author list text from the detail page.
	Authors string `json:"authors"`

	// Abstract is the abstract text from the detail page.
	Abstract string `json:"abstract"`
}

// DetailResult is the outcome of fetching and extracting one talk
// detail page. Exactly one of the two states holds: extracted text, or
// a failure reason.
//
// Design decision: We model per-talk failure as a value rather than a
// propagated error because the detail-retrieval phase must complete a
// full pass over all talk links regardless of individual page
// failures. Keeping the error inside the result makes the sentinel
// substitution an explicit, single-place decision in the orchestrator.
type DetailResult struct {
	// Authors is the extracted author list. Empty when Err is set.
	Authors string

	// Abstract is the extracted abstract text. Empty when Err is set.
	Abstract string

	// Err is the fetch or extraction failure, nil on success.
	Err error
}

// Failed reports whether detail retrieval failed for this talk.
func (r DetailResult) Failed() bool {
	return r.Err != nil
}

// NewTalkRecord builds the terminal record for a talk link from a
// detail result, substituting the NotAvailable sentinel for both text
// fields when retrieval failed.
func NewTalkRecord(link TalkLink, detail DetailResult) TalkRecord {
	rec := TalkRecord{
		TalkName:      link.TalkName,
		TalkURL:       link.TalkURL,
		SymposiumName: link.SymposiumName,
		SymposiumURL:  link.SymposiumURL,
		Authors:       detail.Authors,
		Abstract:      detail.Abstract,
	}
	if detail.Failed() {
		rec.Authors = NotAvailable
		rec.Abstract = NotAvailable
	}
	return rec
}

// Suspect reports whether the record should be flagged by the
// consistency check: an abstract shorter than MinAbstractLen or an
// author list shorter than MinAuthorsLen. Sentineled records are
// always suspect.
func (r TalkRecord) Suspect() bool {
	return len(r.Abstract) < MinAbstractLen || len(r.Authors) < MinAuthorsLen
}
