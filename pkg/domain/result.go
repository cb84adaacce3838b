package domain

import "time"

// ErrorCode classifies a failed feed fetch
type ErrorCode string

// error codes reported in per-feed outcomes
const (
	ErrNetwork ErrorCode = "NETWORK"
	ErrHTTP    ErrorCode = "HTTP_ERROR"
	ErrParse   ErrorCode = "PARSE_ERROR"
	ErrTimeout ErrorCode = "TIMEOUT"
	ErrUnknown ErrorCode = "UNKNOWN"
)

// FetchError is a classified failure of one feed's fetch cycle.
// Status carries the HTTP status for ErrHTTP, zero otherwise.
type FetchError struct {
	Code   ErrorCode
	Status int
	Msg    string
	Cause  error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

// Unwrap exposes the underlying cause for errors.Is/As
func (e *FetchError) Unwrap() error { return e.Cause }

// FetchResult is the outcome of one successful feed fetch, including the
// not-modified case where nothing new was found.
type FetchResult struct {
	FeedID          int64     `json:"feedId"`
	Status          int       `json:"status"`
	Updated         bool      `json:"updated"`
	FetchedAt       time.Time `json:"fetchedAt"`
	ArticlesCreated int       `json:"articlesCreated"`
	ArticlesSkipped int       `json:"articlesSkipped"`
}

// FeedOutcome is one feed's entry in a batch run: either a result or an error
type FeedOutcome struct {
	FeedID int64         `json:"feedId"`
	Result *FetchResult  `json:"result,omitempty"`
	Error  *OutcomeError `json:"error,omitempty"`
}

// OutcomeError is the serializable form of a per-feed failure
type OutcomeError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// BatchSummary aggregates one scheduler run over all due feeds
type BatchSummary struct {
	TotalFeeds      int           `json:"totalFeeds"`
	Successes       int           `json:"successes"`
	Failures        int           `json:"failures"`
	UpdatedFeeds    int           `json:"updatedFeeds"`
	ArticlesCreated int           `json:"articlesCreated"`
	ArticlesSkipped int           `json:"articlesSkipped"`
	Results         []FeedOutcome `json:"results"`
}
