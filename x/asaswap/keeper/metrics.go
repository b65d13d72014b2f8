package keeper

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

// Metrics exposes engine activity to prometheus. All methods are nil-safe
// so a keeper without metrics pays nothing.
type Metrics struct {
	operations        *prometheus.CounterVec
	primaryReserves   *prometheus.GaugeVec
	secondaryReserves *prometheus.GaugeVec
	liquidityShares   *prometheus.GaugeVec
}

// NewMetrics registers the module's collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: types.ModuleName,
			Name:      "operations_total",
			Help:      "Batches processed by the pool engine, by operation and result.",
		}, []string{"operation", "result"}),
		primaryReserves: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: types.ModuleName,
			Name:      "pool_primary_reserve",
			Help:      "Custodied primary-asset balance per pool.",
		}, []string{"app_id"}),
		secondaryReserves: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: types.ModuleName,
			Name:      "pool_secondary_reserve",
			Help:      "Custodied secondary-asset balance per pool.",
		}, []string{"app_id"}),
		liquidityShares: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: types.ModuleName,
			Name:      "pool_liquidity_shares",
			Help:      "Total liquidity shares outstanding per pool.",
		}, []string{"app_id"}),
	}
}

func (m *Metrics) operationObserved(operation, result string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) poolObserved(pool types.Pool) {
	if m == nil {
		return
	}
	id := strconv.FormatUint(pool.AppID, 10)
	m.primaryReserves.WithLabelValues(id).Set(float64(pool.PrimaryBalance))
	m.secondaryReserves.WithLabelValues(id).Set(float64(pool.SecondaryBalance))
	m.liquidityShares.WithLabelValues(id).Set(float64(pool.TotalLiquidityShares))
}
