// Package model defines the data model shared across symposcan.
//
// The three persistent record types mirror the three store tables:
//   - SymposiumLink: a symposium discovered under a meeting root
//   - TalkLink: a talk known to exist under a symposium
//   - TalkRecord: a fully detailed talk (the terminal record)
//
// DetailResult is the in-memory outcome of a detail-page fetch. It is
// deliberately not persisted; the orchestrator converts it into a
// TalkRecord, substituting the NotAvailable sentinel on failure.
package model
