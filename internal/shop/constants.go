package shop

// Log messages
const (
	LogMsgShopRestocked   = "Shop restocked"
	LogMsgShopRepopulated = "Shop repopulated"
	LogMsgPlotPurchased   = "Plot purchased"
)
