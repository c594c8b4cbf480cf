package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Game metric names
const (
	MetricNamePlantsPlanted   = "garden_plants_planted_total"
	MetricNamePlantsHarvested = "garden_plants_harvested_total"
	MetricNameItemsGained     = "garden_items_gained_total"
	MetricNameItemsConsumed   = "garden_items_consumed_total"
	MetricNameMoneyEarned     = "garden_money_earned_total"
	MetricNameMoneySpent      = "garden_money_spent_total"
	MetricNameRecipesMade     = "garden_recipes_made_total"
	MetricNameShopRestocks    = "garden_shop_restocks_total"
	MetricNamePlotsPurchased  = "garden_plots_purchased_total"
	MetricNameSaveOperations  = "garden_save_operations_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events observed on the bus"
)

// Game metric help text
const (
	HelpTextPlantsPlanted   = "Total number of seeds planted"
	HelpTextPlantsHarvested = "Total number of plants harvested"
	HelpTextItemsGained     = "Total quantity of items added to the inventory"
	HelpTextItemsConsumed   = "Total quantity of items removed from the inventory"
	HelpTextMoneyEarned     = "Total money credited"
	HelpTextMoneySpent      = "Total money debited"
	HelpTextRecipesMade     = "Total number of recipe executions"
	HelpTextShopRestocks    = "Total number of shop restocks"
	HelpTextPlotsPurchased  = "Total number of plots purchased"
	HelpTextSaveOperations  = "Total number of save attempts by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelItem   = "item"
	LabelSeed   = "seed"
	LabelReason = "reason"
	LabelRecipe = "recipe"
	LabelResult = "result"
)

// Result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Unexpected event payload"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
