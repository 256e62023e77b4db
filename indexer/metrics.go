package indexer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blocksIngested = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "movewire",
		Subsystem: "indexer",
		Name:      "blocks_ingested_total",
		Help:      "Blocks decoded, validated and written to the output handler.",
	})

	transactionsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "movewire",
		Subsystem: "indexer",
		Name:      "transactions_ingested_total",
		Help:      "Transactions contained in ingested blocks.",
	})

	validationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "movewire",
		Subsystem: "indexer",
		Name:      "validation_failures_total",
		Help:      "Blocks rejected by structural validation.",
	})

	streamRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "movewire",
		Subsystem: "indexer",
		Name:      "stream_retries_total",
		Help:      "Block stream reconnect attempts after a transport error.",
	})
)
