// Package workers runs the background jobs of the server: currently the
// ledger anchoring loop. The Workers aggregate starts every registered
// worker and the provided context stops them all.
package workers

import "context"

// Worker is one background job. Run must not block: implementations start
// their own goroutines and stop when ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
