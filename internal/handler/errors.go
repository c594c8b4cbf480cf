package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidPathParam      = "Invalid %s"

	ErrMsgPlantFailed    = "Failed to plant"
	ErrMsgHarvestFailed  = "Failed to harvest"
	ErrMsgSelectFailed   = "Failed to select"
	ErrMsgGetPlotFailed  = "Failed to get plot"
	ErrMsgBuyFailed      = "Failed to buy"
	ErrMsgRestockFailed  = "Failed to restock shop"
	ErrMsgSellFailed     = "Failed to sell item"
	ErrMsgMakeFailed     = "Failed to make recipe"
	ErrMsgSaveFailed     = "Failed to save game"
	ErrMsgExportFailed   = "Failed to export save"
	ErrMsgImportFailed   = "Failed to import save"
	ErrMsgResetFailed    = "Failed to reset game"
	ErrMsgUnknownStation = "Unknown recipe kind"
)

// Success messages for API responses
const (
	MsgPlantedSuccess   = "Seed planted"
	MsgSelectedSuccess  = "Selection updated"
	MsgBoughtSuccess    = "Purchase complete"
	MsgSavedSuccess     = "Game saved"
	MsgImportedSuccess  = "Save imported"
	MsgResetSuccess     = "Game reset"
	MsgNothingToHarvest = "Nothing ready to harvest"
)
