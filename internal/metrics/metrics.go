package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	PlantsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlantsPlanted,
			Help: HelpTextPlantsPlanted,
		},
		[]string{LabelSeed},
	)

	PlantsHarvested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlantsHarvested,
			Help: HelpTextPlantsHarvested,
		},
	)

	ItemsGained = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsGained,
			Help: HelpTextItemsGained,
		},
		[]string{LabelItem},
	)

	ItemsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsConsumed,
			Help: HelpTextItemsConsumed,
		},
		[]string{LabelItem},
	)

	MoneyEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
		[]string{LabelReason},
	)

	MoneySpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
		[]string{LabelReason},
	)

	RecipesMade = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipesMade,
			Help: HelpTextRecipesMade,
		},
		[]string{LabelType, LabelRecipe},
	)

	ShopRestocks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameShopRestocks,
			Help: HelpTextShopRestocks,
		},
	)

	PlotsPurchased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlotsPurchased,
			Help: HelpTextPlotsPurchased,
		},
	)

	SaveOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSaveOperations,
			Help: HelpTextSaveOperations,
		},
		[]string{LabelResult},
	)
)
