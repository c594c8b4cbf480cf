package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PocketGarden_Go/internal/domain"
)

func TestValidator_CatalogID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"seed_tomato", true},
		{"recipe_bread", true},
		{"crop2", true},
		{"Seed_Tomato", false},
		{"seed tomato", false},
		{"_seed", false},
		{"seed/../../etc", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := GetValidator().ValidateStruct(SelectSeedRequest{SeedID: tt.id})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, "Must be a catalog id like seed_tomato", FormatValidationError(err)["seedid"])
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	err := GetValidator().ValidateStruct(SellRequest{})

	fields := FormatValidationError(err)

	assert.Equal(t, "This field is required", fields["itemid"])
	assert.Equal(t, "Must be at least 1", fields["quantity"])
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{fmt.Errorf("%w: need 500", domain.ErrInsufficientFunds), http.StatusBadRequest, ErrMsgNotEnoughMoneyError},
		{fmt.Errorf("plot 2: %w", domain.ErrPlotNotFound), http.StatusNotFound, ErrMsgPlotNotFoundError},
		{domain.ErrNotReady, http.StatusConflict, ErrMsgNotReadyError},
		{domain.ErrStorageFailure, http.StatusServiceUnavailable, ErrMsgStorageUnavailableErr},
		{errors.New("pq: relation does not exist"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.expectedStatus, status)
		assert.Equal(t, tt.expectedMsg, msg)
	}
}
