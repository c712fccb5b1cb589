// Package resource enforces process-wide limits on sentence preparation.
//
// A Controller tracks two resources:
//
//   - Memory: bytes held by the slab pools of prepared sentences. Acquisition
//     is non-blocking and fails fast with ErrMemoryLimitExceeded.
//   - Workers: concurrent sentence preparations in a batch.
//
// Pools grow while a sentence is expanded, so callers track their usage with
// an Account and resize it after every word:
//
//	acct := rc.NewAccount()
//	defer acct.Close()
//
//	if err := acct.Resize(bctx.BytesReserved()); err != nil {
//	    return err // ErrMemoryLimitExceeded
//	}
//
// All methods are safe for concurrent use, except that a single Account must
// not be resized from several goroutines. A nil Controller imposes no limits.
package resource
