// Package reconcile drives the desired state onto the server.
//
// The reconciler reads current state over the API, computes the writes needed
// to converge each declared item, and issues them in a fixed order: libraries
// first, then global server options, then scheduled task triggers. Failures
// are recorded per item and never stop the run; the final report aggregates
// every outcome and an overall success flag. There are no retries and no
// rollback — a partially applied run is reported as exactly that.
package reconcile
