package repository

import "errors"

var (
	ErrInvalidReportData = errors.New("invalid ranking report data")
)
