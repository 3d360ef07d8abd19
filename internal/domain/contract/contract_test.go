package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContract(t *testing.T) {
	origination := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	maturity := time.Date(2029, 1, 15, 0, 0, 0, 0, time.UTC)

	c, err := NewContract(7, "Acme Industrial", 25_000_000, origination, maturity, "active")
	require.NoError(t, err)

	assert.Zero(t, c.ID())
	assert.Equal(t, uint(7), c.BankID())
	assert.Equal(t, "Acme Industrial", c.BorrowerName())
	assert.Equal(t, 25_000_000.0, c.PrincipalAmount())
}

func TestNewContract_Invalid(t *testing.T) {
	origination := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	maturity := time.Date(2029, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		fn   func() (*Contract, error)
	}{
		{"missing bank", func() (*Contract, error) {
			return NewContract(0, "Acme", 1_000_000, origination, maturity, "active")
		}},
		{"empty borrower", func() (*Contract, error) {
			return NewContract(7, "", 1_000_000, origination, maturity, "active")
		}},
		{"zero principal", func() (*Contract, error) {
			return NewContract(7, "Acme", 0, origination, maturity, "active")
		}},
		{"negative principal", func() (*Contract, error) {
			return NewContract(7, "Acme", -5, origination, maturity, "active")
		}},
		{"principal over ceiling", func() (*Contract, error) {
			return NewContract(7, "Acme", PrincipalCeiling+1, origination, maturity, "active")
		}},
		{"maturity before origination", func() (*Contract, error) {
			return NewContract(7, "Acme", 1_000_000, maturity, origination, "active")
		}},
		{"maturity equals origination", func() (*Contract, error) {
			return NewContract(7, "Acme", 1_000_000, origination, origination, "active")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			assert.Error(t, err)
		})
	}
}

func TestNewContract_PrincipalAtCeiling(t *testing.T) {
	origination := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	maturity := time.Date(2029, 1, 15, 0, 0, 0, 0, time.UTC)

	c, err := NewContract(7, "Megacorp", PrincipalCeiling, origination, maturity, "active")
	require.NoError(t, err)
	assert.Equal(t, PrincipalCeiling, c.PrincipalAmount())
}
