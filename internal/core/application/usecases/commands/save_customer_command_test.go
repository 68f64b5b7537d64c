package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verduleria/internal/core/application/usecases/commands"
	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/errs"
)

func TestNewSaveCustomerCommand(t *testing.T) {
	customerID := kernel.NewUUID()

	cmd, err := commands.NewSaveCustomerCommand(customerID,
		"Verduleria Don Jose", "11-4567-8901", "Av. Rivadavia 1234", "donjose@example.com", "20-12345678-9")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.CustomerID().IsEqual(customerID))
	assert.Equal(t, "Verduleria Don Jose", cmd.BusinessName())
	assert.Equal(t, "20-12345678-9", cmd.TaxID())
}

func TestNewSaveCustomerCommand_RequiredFields(t *testing.T) {
	customerID := kernel.NewUUID()

	tests := map[string]struct {
		businessName string
		address      string
		taxID        string
	}{
		"missing business name": {"", "Av. Rivadavia 1234", "20-12345678-9"},
		"missing address":       {"Verduleria Don Jose", "", "20-12345678-9"},
		"missing tax id":        {"Verduleria Don Jose", "Av. Rivadavia 1234", ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := commands.NewSaveCustomerCommand(customerID, tt.businessName, "", tt.address, "", tt.taxID)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestNewSaveCustomerCommand_OptionalFields(t *testing.T) {
	cmd, err := commands.NewSaveCustomerCommand(kernel.NewUUID(),
		"Verduleria Don Jose", "", "Av. Rivadavia 1234", "", "20-12345678-9")
	require.NoError(t, err)
	assert.Empty(t, cmd.Phone())
	assert.Empty(t, cmd.Email())
}

func TestSaveCustomerCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.SaveCustomerCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrSaveCustomerCommandIsNotConstructed)
}
