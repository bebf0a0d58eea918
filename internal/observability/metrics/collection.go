package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	collectionMeterName = "shiftsapi.collector"
)

type CollectionMetrics struct {
	pagesFetched       metric.Int64Counter
	itemsFetched       metric.Int64Counter
	collectionDuration metric.Float64Histogram
	collections        metric.Int64Counter
}

func NewCollectionMetrics() (*CollectionMetrics, error) {
	meter := otel.Meter(collectionMeterName)

	pagesFetched, err := meter.Int64Counter(
		"collector_pages_total",
		metric.WithDescription("Total number of pages fetched from the upstream API"),
		metric.WithUnit("{page}"),
	)
	if err != nil {
		return nil, err
	}

	itemsFetched, err := meter.Int64Counter(
		"collector_items_total",
		metric.WithDescription("Total number of items decoded from fetched pages"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, err
	}

	collectionDuration, err := meter.Float64Histogram(
		"collector_collection_duration_seconds",
		metric.WithDescription("Time spent collecting a whole resource"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	collections, err := meter.Int64Counter(
		"collector_collections_total",
		metric.WithDescription("Total number of resource collections by outcome"),
		metric.WithUnit("{collection}"),
	)
	if err != nil {
		return nil, err
	}

	return &CollectionMetrics{
		pagesFetched:       pagesFetched,
		itemsFetched:       itemsFetched,
		collectionDuration: collectionDuration,
		collections:        collections,
	}, nil
}

func (m *CollectionMetrics) RecordPageFetched(ctx context.Context, resource string, items int) {
	attrs := metric.WithAttributes(attribute.String("resource", resource))
	m.pagesFetched.Add(ctx, 1, attrs)
	m.itemsFetched.Add(ctx, int64(items), attrs)
}

func (m *CollectionMetrics) RecordCollection(ctx context.Context, resource, outcome string, duration time.Duration) {
	m.collectionDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("resource", resource),
	))
	m.collections.Add(ctx, 1, metric.WithAttributes(
		attribute.String("resource", resource),
		attribute.String("outcome", outcome),
	))
}
