// Package existence answers one question: is this object in this bucket?
//
// A Checker builds an authenticated storage client, sends a single
// metadata-only request (StatObject, an HTTP HEAD) and classifies the
// answer into a tri-state Result:
//
//   - Exists: the provider returned the object's metadata.
//   - NotExists: the provider answered 404. This is a valid outcome, not an error.
//   - Unknown: anything else. Reason carries a human-readable message and Err
//     the underlying error. Missing credentials yield the reason
//     "credentials not found"; rejected credentials are prefixed with
//     "credentials rejected".
//
// The checker never retries and never caches, so repeated checks against an
// unchanged bucket return the same result.
//
// # Usage
//
//	checker := existence.NewChecker(cfg.Storage, cfg.AWS, storage.NewClient, log)
//	res := checker.Check(ctx, existence.Reference{Bucket: "assets", Key: "logo.png"})
//	if res.IsUnknown() {
//	    fmt.Println(res.Reason)
//	}
package existence
