package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Money errors
	ErrMsgInsufficientFunds = "not enough money"
	ErrMsgInvalidAmount     = "amount must be positive"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgItemNotFound         = "item not found"
	ErrMsgNotSellable          = "item is not sellable"

	// Garden errors
	ErrMsgPlotNotFound   = "plot not found"
	ErrMsgSlotNotFound   = "slot not found"
	ErrMsgSlotOccupied   = "slot is occupied"
	ErrMsgSlotEmpty      = "slot is empty"
	ErrMsgNotReady       = "plant is not ready"
	ErrMsgUnknownSeed    = "unknown seed"
	ErrMsgNoSeed         = "no seeds in inventory"
	ErrMsgNoSeedSelected = "no seed selected"
	ErrMsgNoEmptySlot    = "no empty slots"
	ErrMsgNothingReady   = "nothing ready to harvest"

	// Shop errors
	ErrMsgNotInStock        = "item not in stock"
	ErrMsgInsufficientStock = "not enough stock"
	ErrMsgMaxPlotsReached   = "maximum plots reached"

	// Recipe errors
	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgCannotMake     = "missing ingredients"

	// Persistence errors
	ErrMsgSaveNotFound   = "save not found"
	ErrMsgInvalidSave    = "invalid save data"
	ErrMsgStorageFailure = "storage failure"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrItemNotFound         = errors.New(ErrMsgItemNotFound)
	ErrNotSellable          = errors.New(ErrMsgNotSellable)

	ErrPlotNotFound   = errors.New(ErrMsgPlotNotFound)
	ErrSlotNotFound   = errors.New(ErrMsgSlotNotFound)
	ErrSlotOccupied   = errors.New(ErrMsgSlotOccupied)
	ErrSlotEmpty      = errors.New(ErrMsgSlotEmpty)
	ErrNotReady       = errors.New(ErrMsgNotReady)
	ErrUnknownSeed    = errors.New(ErrMsgUnknownSeed)
	ErrNoSeed         = errors.New(ErrMsgNoSeed)
	ErrNoSeedSelected = errors.New(ErrMsgNoSeedSelected)
	ErrNoEmptySlot    = errors.New(ErrMsgNoEmptySlot)
	ErrNothingReady   = errors.New(ErrMsgNothingReady)

	ErrNotInStock        = errors.New(ErrMsgNotInStock)
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)
	ErrMaxPlotsReached   = errors.New(ErrMsgMaxPlotsReached)

	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)
	ErrCannotMake     = errors.New(ErrMsgCannotMake)

	ErrSaveNotFound   = errors.New(ErrMsgSaveNotFound)
	ErrInvalidSave    = errors.New(ErrMsgInvalidSave)
	ErrStorageFailure = errors.New(ErrMsgStorageFailure)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
