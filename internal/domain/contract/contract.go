package contract

import (
	"fmt"
	"time"
)

// PrincipalCeiling caps a single loan's principal amount. Larger facilities
// are syndicated outside this platform.
const PrincipalCeiling = 5_000_000_000.0

// Contract is a loan agreement. The compliance core treats it mostly as an
// opaque foreign key plus the display fields used in portfolio aggregation.
type Contract struct {
	id              uint
	bankID          uint
	borrowerName    string
	principalAmount float64
	originationDate time.Time
	maturityDate    time.Time
	status          string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewContract(
	bankID uint,
	borrowerName string,
	principalAmount float64,
	originationDate time.Time,
	maturityDate time.Time,
	status string,
) (*Contract, error) {
	if bankID == 0 {
		return nil, fmt.Errorf("bank ID is required")
	}
	if len(borrowerName) == 0 {
		return nil, fmt.Errorf("borrower name is required")
	}
	if principalAmount <= 0 {
		return nil, fmt.Errorf("principal amount must be positive")
	}
	if principalAmount > PrincipalCeiling {
		return nil, fmt.Errorf("principal amount exceeds ceiling")
	}
	if !maturityDate.After(originationDate) {
		return nil, fmt.Errorf("maturity date must be after origination date")
	}

	now := time.Now()
	return &Contract{
		bankID:          bankID,
		borrowerName:    borrowerName,
		principalAmount: principalAmount,
		originationDate: originationDate,
		maturityDate:    maturityDate,
		status:          status,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructContract(
	id uint,
	bankID uint,
	borrowerName string,
	principalAmount float64,
	originationDate time.Time,
	maturityDate time.Time,
	status string,
	createdAt, updatedAt time.Time,
) (*Contract, error) {
	if id == 0 {
		return nil, fmt.Errorf("contract ID cannot be zero")
	}
	if bankID == 0 {
		return nil, fmt.Errorf("bank ID is required")
	}

	return &Contract{
		id:              id,
		bankID:          bankID,
		borrowerName:    borrowerName,
		principalAmount: principalAmount,
		originationDate: originationDate,
		maturityDate:    maturityDate,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (c *Contract) ID() uint                   { return c.id }
func (c *Contract) BankID() uint               { return c.bankID }
func (c *Contract) BorrowerName() string       { return c.borrowerName }
func (c *Contract) PrincipalAmount() float64   { return c.principalAmount }
func (c *Contract) OriginationDate() time.Time { return c.originationDate }
func (c *Contract) MaturityDate() time.Time    { return c.maturityDate }
func (c *Contract) Status() string             { return c.status }
func (c *Contract) CreatedAt() time.Time       { return c.createdAt }
func (c *Contract) UpdatedAt() time.Time       { return c.updatedAt }

func (c *Contract) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("contract ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("contract ID cannot be zero")
	}
	c.id = id
	return nil
}
