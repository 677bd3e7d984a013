package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOperations counts store operations by entity, operation and outcome.
	StoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_store_operations_total",
		Help: "Total number of store operations by entity, operation and outcome",
	}, []string{"entity", "operation", "outcome"})

	// StoreEntities is the gauge of live entities per collection.
	StoreEntities = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ripple_store_entities",
		Help: "Number of live entities per store collection",
	}, []string{"entity"})
)

// RecordStoreOp records one store operation outcome.
func RecordStoreOp(entity, operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	StoreOperations.WithLabelValues(entity, operation, outcome).Inc()
}

// SetEntityCount updates the live-entity gauge for a collection.
func SetEntityCount(entity string, n int) {
	StoreEntities.WithLabelValues(entity).Set(float64(n))
}
