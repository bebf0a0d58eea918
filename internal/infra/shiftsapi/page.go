package shiftsapi

import "encoding/json"

// Links carries the pagination cursor. Next is nil when the upstream omitted
// it (or sent null); a present value, even an empty one, is a cursor.
type Links struct {
	Next *string `json:"next,omitempty"`
}

func (l Links) HasNext() bool {
	return l.Next != nil
}

type Page[T any] struct {
	Data  []T   `json:"data"`
	Links Links `json:"links"`
}

// RawPage is a page whose items have not been decoded yet.
type RawPage = Page[json.RawMessage]
