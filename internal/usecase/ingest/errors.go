package ingest

import "errors"

// ErrPartialIngest marks a batch where at least one report failed;
// the returned tally still covers every report.
var ErrPartialIngest = errors.New("ingest: some reports failed")
