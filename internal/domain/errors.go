package domain

import "errors"

var (
	ErrRetrievalFailed = errors.New("resource retrieval failed")
	ErrReportNotFound  = errors.New("ranking report not found")
	ErrHistoryDisabled = errors.New("ranking history is not configured")
	ErrRunIDConflict   = errors.New("ranking report already stored for run id")
)
