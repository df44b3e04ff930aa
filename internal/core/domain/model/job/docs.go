// Package job provides the domain model for delivery jobs aggregated from
// external gig-work providers. It implements the Job aggregate with its
// lifecycle state machine and the closed set of provider identifiers.
//
// The package includes:
//   - Job: a single delivery task with payout, distance, ETAs and status
//   - Status: a state machine enforcing the fixed lifecycle sequence
//   - Provider: the closed enum of external job sources
//
// Key business rules:
//   - Jobs must have a non-empty id, a known provider and positive distance
//   - Status progresses only forward: available -> accepted -> enroute_pickup
//     -> picked_up -> enroute_dropoff -> delivered, with available -> declined
//     as the single side exit
//   - Delivered and declined are terminal; advancing a terminal status is a
//     no-op rather than an error
//   - Score (payout / distance) ranks jobs for display and auto-selection
package job
