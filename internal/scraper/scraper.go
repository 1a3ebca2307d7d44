package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/symposcan/symposcan/internal/database"
	"github.com/symposcan/symposcan/internal/extract"
	"github.com/symposcan/symposcan/internal/model"
)

// Fetcher retrieves the raw markup of a page, retrying transient
// transport failures internally. After its retry budget is exhausted
// the last transport error is returned.
type Fetcher interface {
	Get(ctx context.Context, pageURL string) (string, error)
}

// Scraper sequences the scrape phases against a single store. It owns
// exclusive, serialized access: one query-then-insert per item, no
// cross-item transactions.
type Scraper struct {
	// fetcher performs the page retrievals.
	fetcher Fetcher

	// db is the record store all phases read from and write to.
	db *database.ProceedingsDB

	// logger narrates progress. Per-item lines go out at debug level.
	logger *slog.Logger

	// skipNames are substrings excluding symposia and talks by name.
	skipNames []string

	// skipURLs are substrings excluding talks by URL during detail
	// retrieval.
	skipURLs []string

	// delay is the politeness pause between page fetches.
	delay time.Duration
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithLogger sets the progress logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scraper) {
		s.logger = logger
	}
}

// WithSkipNames sets the name-substring skip filters.
func WithSkipNames(subs []string) Option {
	return func(s *Scraper) {
		s.skipNames = subs
	}
}

// WithSkipURLs sets the URL-substring skip filters.
func WithSkipURLs(subs []string) Option {
	return func(s *Scraper) {
		s.skipURLs = subs
	}
}

// WithDelay sets the politeness delay between page fetches.
func WithDelay(d time.Duration) Option {
	return func(s *Scraper) {
		s.delay = d
	}
}

// New creates a Scraper bound to a fetcher and a store.
func New(fetcher Fetcher, db *database.ProceedingsDB, opts ...Option) *Scraper {
	s := &Scraper{
		fetcher: fetcher,
		db:      db,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// DiscoverSymposia runs phase 1: extract the symposium anchors from a
// meeting root page and append one SymposiumLink per anchor, in page
// order. Name skip filters apply. There is no duplicate check:
// repeated runs append duplicate rows, a known limitation left to
// rerun discipline. Any transport failure here is fatal to the run.
func (s *Scraper) DiscoverSymposia(ctx context.Context, meetingURL string) error {
	root, err := extract.URLRoot(meetingURL)
	if err != nil {
		return err
	}

	markup, err := s.fetcher.Get(ctx, meetingURL)
	if err != nil {
		return err
	}

	anchors, err := extract.SymposiumAnchors(markup, meetingURL)
	if err != nil {
		return fmt.Errorf("parse meeting page %s: %w", meetingURL, err)
	}

	s.logger.Info("discovered symposia", "meeting", meetingURL, "count", len(anchors))

	for _, a := range anchors {
		if matchesAny(a.Text, s.skipNames) {
			s.logger.Debug("skipping symposium by name filter", "symposium", a.Text)
			continue
		}

		link := model.SymposiumLink{Name: a.Text, URL: root + a.Href}
		if err := s.db.InsertSymposiumLink(ctx, link); err != nil {
			return err
		}
		s.logger.Debug("stored symposium", "symposium", link.Name)
	}

	return nil
}

// DiscoverTalkLinks runs phase 2 over every stored SymposiumLink. A
// symposium whose name matches a skip filter is excluded; a symposium
// that already has any talk link row is treated as fully scanned and
// skipped, which is what makes reruns of this phase no-ops. Any
// transport failure here is fatal to the run; rerunning resumes after
// the symposia already scanned.
func (s *Scraper) DiscoverTalkLinks(ctx context.Context) error {
	symposia, err := s.db.ListSymposiumLinks(ctx)
	if err != nil {
		return err
	}

	for _, symp := range symposia {
		if err := ctx.Err(); err != nil {
			return err
		}

		if matchesAny(symp.Name, s.skipNames) {
			s.logger.Debug("skipping symposium by name filter", "symposium", symp.Name)
			continue
		}

		scanned, err := s.db.HasTalkLinks(ctx, symp.Name)
		if err != nil {
			return err
		}
		if scanned {
			s.logger.Debug("symposium already scanned", "symposium", symp.Name)
			continue
		}

		root, err := extract.URLRoot(symp.URL)
		if err != nil {
			return err
		}

		markup, err := s.fetcher.Get(ctx, symp.URL)
		if err != nil {
			return err
		}

		anchors, err := extract.TalkAnchors(markup)
		if err != nil {
			return fmt.Errorf("parse symposium page %s: %w", symp.URL, err)
		}

		s.logger.Debug("scanning symposium", "symposium", symp.Name, "talks", len(anchors))

		for _, a := range anchors {
			link := model.TalkLink{
				TalkName:      a.Text,
				TalkURL:       root + a.Href,
				SymposiumName: symp.Name,
				SymposiumURL:  symp.URL,
			}
			if err := s.db.InsertTalkLink(ctx, link); err != nil {
				return err
			}
		}

		if err := s.pause(ctx); err != nil {
			return err
		}
	}

	return nil
}

// RetrieveDetails runs phase 3 over every stored TalkLink. A talk is
// excluded when its URL matches any URL filter or its name matches
// any name filter (a match on either suffices), and skipped when a
// detail record for its (talk name, symposium name) pair already
// exists. Otherwise the detail page is fetched and extracted; any
// failure is folded into the record as the "N/A" sentinel, so a full
// pass over all talk links always completes and exactly one record is
// inserted per talk.
func (s *Scraper) RetrieveDetails(ctx context.Context) error {
	links, err := s.db.ListTalkLinks(ctx)
	if err != nil {
		return err
	}

	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return err
		}

		if matchesAny(link.TalkURL, s.skipURLs) {
			s.logger.Debug("skipping talk by url filter", "talk", link.TalkName, "url", link.TalkURL)
			continue
		}
		if matchesAny(link.TalkName, s.skipNames) {
			s.logger.Debug("skipping talk by name filter", "talk", link.TalkName)
			continue
		}

		detailed, err := s.db.HasTalkRecord(ctx, link.TalkName, link.SymposiumName)
		if err != nil {
			return err
		}
		if detailed {
			s.logger.Debug("talk already detailed", "talk", link.TalkName, "symposium", link.SymposiumName)
			continue
		}

		detail := s.fetchDetail(ctx, link.TalkURL)
		// Cancellation also surfaces as a failed detail; stop instead
		// of sentineling the rest of the table.
		if err := ctx.Err(); err != nil {
			return err
		}
		if detail.Failed() {
			s.logger.Warn("detail retrieval failed, storing sentinel",
				"talk", link.TalkName, "error", detail.Err.Error())
		} else {
			s.logger.Debug("talk detailed", "talk", link.TalkName)
		}

		if err := s.db.InsertTalkRecord(ctx, model.NewTalkRecord(link, detail)); err != nil {
			return err
		}

		if err := s.pause(ctx); err != nil {
			return err
		}
	}

	return nil
}

// ScrapeMeeting is the one-shot combined scrape: symposium discovery
// and, inline for each symposium, talk discovery and detail retrieval
// in a single pass, inserting directly into the detail table. Per-talk
// detail failures are sentineled exactly as in RetrieveDetails, but
// there is no skip-list support and no resumption: a failure partway
// through requires restarting the whole meeting. Kept for small,
// low-risk meetings where staged resumption is unnecessary.
func (s *Scraper) ScrapeMeeting(ctx context.Context, meetingURL string) error {
	root, err := extract.URLRoot(meetingURL)
	if err != nil {
		return err
	}

	markup, err := s.fetcher.Get(ctx, meetingURL)
	if err != nil {
		return err
	}

	sympAnchors, err := extract.SymposiumAnchors(markup, meetingURL)
	if err != nil {
		return fmt.Errorf("parse meeting page %s: %w", meetingURL, err)
	}

	for _, sympAnchor := range sympAnchors {
		sympURL := root + sympAnchor.Href
		s.logger.Debug("starting symposium", "symposium", sympAnchor.Text)

		sympMarkup, err := s.fetcher.Get(ctx, sympURL)
		if err != nil {
			return err
		}

		talkAnchors, err := extract.TalkAnchors(sympMarkup)
		if err != nil {
			return fmt.Errorf("parse symposium page %s: %w", sympURL, err)
		}

		for _, talkAnchor := range talkAnchors {
			link := model.TalkLink{
				TalkName:      talkAnchor.Text,
				TalkURL:       root + talkAnchor.Href,
				SymposiumName: sympAnchor.Text,
				SymposiumURL:  sympURL,
			}
			s.logger.Debug("talk", "talk", link.TalkName)

			detail := s.fetchDetail(ctx, link.TalkURL)
			if err := ctx.Err(); err != nil {
				return err
			}
			if detail.Failed() {
				s.logger.Warn("detail retrieval failed, storing sentinel",
					"talk", link.TalkName, "error", detail.Err.Error())
			}

			if err := s.db.InsertTalkRecord(ctx, model.NewTalkRecord(link, detail)); err != nil {
				return err
			}

			if err := s.pause(ctx); err != nil {
				return err
			}
		}

		s.logger.Debug("done with symposium", "symposium", sympAnchor.Text)
	}

	return nil
}

// fetchDetail fetches and extracts one talk detail page, returning
// the outcome as a value. Fetch and extraction failures end up in
// DetailResult.Err; nothing propagates.
func (s *Scraper) fetchDetail(ctx context.Context, talkURL string) model.DetailResult {
	markup, err := s.fetcher.Get(ctx, talkURL)
	if err != nil {
		return model.DetailResult{Err: err}
	}

	authors, abstract, err := extract.Detail(markup)
	if err != nil {
		return model.DetailResult{Err: err}
	}

	return model.DetailResult{Authors: authors, Abstract: abstract}
}

// pause waits the politeness delay between page fetches, or returns
// early when ctx is cancelled.
func (s *Scraper) pause(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.delay):
		return nil
	}
}

// matchesAny reports whether s contains any of the given substrings.
// An empty filter list matches nothing.
func matchesAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
