// Package api is the HTTP client for the OctoFit REST API.
//
// Every resource is read the same way:
//
//	GET {baseURL}/api/{resource}/
//
// The body is either a bare JSON array of records or an object whose
// "results" field holds the array; both normalize to the same []record.Record.
//
// # Failure Classification
//
//	┌──────────────────────────┬────────────┐
//	│ Cause                    │ Kind       │
//	├──────────────────────────┼────────────┤
//	│ transport / ctx error    │ network    │
//	│ non-2xx status           │ status     │
//	│ body is not JSON         │ decode     │
//	│ JSON is not a collection │ shape      │
//	└──────────────────────────┴────────────┘
//
// Failures are never retried here; callers re-issue the request on demand.
//
// # Thread Safety
//
// A Client is safe for concurrent use. Overlapping requests are independent;
// ordering their results is the caller's concern.
package api
