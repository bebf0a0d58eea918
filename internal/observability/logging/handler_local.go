//go:build !gcloud

package logging

import (
	"context"
	"log/slog"
)

// Outside GCP the plain trace_id/span_id attributes are enough.
func gcpTraceAttrs(context.Context, string) []slog.Attr {
	return nil
}
