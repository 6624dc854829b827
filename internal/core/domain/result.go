package domain

// ResultStatus discriminates the outcome of a ledger posting attempt.
type ResultStatus string

const (
	ResultCreated  ResultStatus = "CREATED"  // Entry stored, as draft or posted
	ResultSkipped  ResultStatus = "SKIPPED"  // Required settings missing, nothing attempted
	ResultRejected ResultStatus = "REJECTED" // Business validation declined the entry
	ResultFailed   ResultStatus = "FAILED"   // Infrastructure error, nothing committed
)

// PostingResult is returned instead of an error by the journal engine and event adapters.
// Callers must treat anything but ResultCreated as "no entry was created".
type PostingResult struct {
	Status ResultStatus
	Entry  *JournalEntry
	Reason string
	Err    error
}

func Created(entry *JournalEntry) PostingResult {
	return PostingResult{Status: ResultCreated, Entry: entry}
}

func Skipped(reason string) PostingResult {
	return PostingResult{Status: ResultSkipped, Reason: reason}
}

func Rejected(err error) PostingResult {
	return PostingResult{Status: ResultRejected, Reason: err.Error(), Err: err}
}

func Failed(err error) PostingResult {
	return PostingResult{Status: ResultFailed, Reason: err.Error(), Err: err}
}

func (r PostingResult) IsCreated() bool  { return r.Status == ResultCreated }
func (r PostingResult) IsSkipped() bool  { return r.Status == ResultSkipped }
func (r PostingResult) IsRejected() bool { return r.Status == ResultRejected }
func (r PostingResult) IsFailed() bool   { return r.Status == ResultFailed }
