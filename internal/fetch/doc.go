// Package fetch provides the retrying HTTP page fetcher used by the
// crawl phases.
//
// The retry behavior is an explicit, injectable Policy (attempt
// ceiling, overall time window, retryable-error predicate) rather than
// an ambient decorator, so it can be unit-tested with a fake clock
// instead of wall-clock sleeps.
//
// Every request carries explicit dial, TLS-handshake,
// response-header, and whole-attempt timeouts. The proceedings site is
// known to hang silently on some requests; the timeouts convert such
// hangs into transport errors the policy can retry, instead of
// blocking the run forever.
package fetch
