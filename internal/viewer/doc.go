// Package viewer holds the state machine shared by all five resource views.
//
// A State is mounted for one resource.Definition and driven by two kinds of
// input: fetch results and user actions. Fetches are sequenced by Token so
// that when refreshes overlap only the newest response is applied; an older
// one arriving late is dropped.
//
//	s := viewer.New(def)
//	tok := s.BeginFetch()             // Loading = true, banner cleared
//	records, err := client.FetchCollection(ctx, def)
//	if err != nil {
//	    s.Fail(tok, err)              // banner set, old rows kept
//	} else {
//	    s.Complete(tok, records)      // rows and columns replaced
//	}
//
// Filtering is a case-insensitive substring match over the formatted values
// of the derived columns; an empty filter shows every row.
package viewer
