// Package scraper implements the crawl orchestrator: the three
// resumable scrape phases and the one-shot combined scrape.
//
// The phases are independent and idempotent where the data model
// allows it:
//   - DiscoverSymposia appends symposium links found on a meeting
//     root page (no duplicate check; rerun discipline is the
//     operator's responsibility).
//   - DiscoverTalkLinks scans each stored symposium for talk links,
//     skipping symposia that already have any talk link row.
//   - RetrieveDetails fetches each talk's detail page, skipping talks
//     that already have a detail record, and containing per-talk
//     failures by storing the "N/A" sentinel instead of aborting.
//
// Transport failures are fatal in the discovery phases and recoverable
// per talk in detail retrieval. Everything runs strictly sequentially:
// one fetch in flight, one query-then-insert per item, no concurrent
// store writer.
package scraper
