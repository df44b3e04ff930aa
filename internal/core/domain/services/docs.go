// Package services provides domain services for the order orchestration
// core: logic that works over the whole worklist rather than a single job.
//
// The package includes:
//   - Ranker: score-based ordering and best-available selection
//   - IntentClassifier: keyword matching from free-form transcripts to
//     discrete command symbols
//
// Both services are pure: they hold no state and have no side effects.
package services
