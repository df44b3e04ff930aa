// Package providersim implements the provider boundary with simulated
// clients: one per external gig-work source, all reading from a shared
// fixture dataset held in an in-memory sqlite database.
//
// The simulator keeps its dataset mostly static, which gives it a quirk
// worth knowing: Accept returns an accepted copy of the job without
// persisting the acceptance, so a later listing re-offers the job as
// available.
// The aggregation engine's dedup-by-id merge rule is what keeps that
// stale re-listing from duplicating an accepted job. Decline, by
// contrast, persists: a declined id leaves future listings for good,
// as the provider contract requires.
package providersim
