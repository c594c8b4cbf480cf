package crafting

// UnknownItemEmoji stands in for ingredients missing from the catalog
const UnknownItemEmoji = "❓"

const (
	LogMsgMade       = "Recipe made"
	LogMsgMakeFailed = "Recipe could not be made"
)
