package shiftsapi

import "errors"

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrDecode           = errors.New("failed to decode page")
	ErrMalformedCursor  = errors.New("malformed pagination cursor")
	ErrCursorCycle      = errors.New("pagination cursor revisits a fetched page")
)
