package covenant

import (
	"fmt"
	"time"

	vo "covena/internal/domain/covenant/valueobjects"
)

// Covenant is a contractual obligation a borrower must satisfy. It is owned
// by its contract and immutable except through an authorized update.
type Covenant struct {
	id            uint
	contractID    uint
	bankID        uint
	name          string
	metricName    string
	covenantType  vo.CovenantType
	operator      vo.Operator
	threshold     float64
	thresholdUnit string
	frequency     vo.CheckFrequency
	createdAt     time.Time
	updatedAt     time.Time
}

func NewCovenant(
	contractID uint,
	bankID uint,
	name string,
	metricName string,
	covenantType vo.CovenantType,
	operator vo.Operator,
	threshold float64,
	thresholdUnit string,
	frequency vo.CheckFrequency,
) (*Covenant, error) {
	if contractID == 0 {
		return nil, fmt.Errorf("contract ID is required")
	}
	if bankID == 0 {
		return nil, fmt.Errorf("bank ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if len(metricName) == 0 {
		return nil, fmt.Errorf("metric name is required")
	}
	if !covenantType.IsValid() {
		return nil, fmt.Errorf("invalid covenant type")
	}
	if !operator.IsValid() {
		return nil, fmt.Errorf("invalid operator")
	}
	if !frequency.IsValid() {
		return nil, fmt.Errorf("invalid check frequency")
	}

	now := time.Now()
	return &Covenant{
		contractID:    contractID,
		bankID:        bankID,
		name:          name,
		metricName:    metricName,
		covenantType:  covenantType,
		operator:      operator,
		threshold:     threshold,
		thresholdUnit: thresholdUnit,
		frequency:     frequency,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructCovenant(
	id uint,
	contractID uint,
	bankID uint,
	name string,
	metricName string,
	covenantType vo.CovenantType,
	operator vo.Operator,
	threshold float64,
	thresholdUnit string,
	frequency vo.CheckFrequency,
	createdAt, updatedAt time.Time,
) (*Covenant, error) {
	if id == 0 {
		return nil, fmt.Errorf("covenant ID cannot be zero")
	}
	if contractID == 0 {
		return nil, fmt.Errorf("contract ID is required")
	}
	if bankID == 0 {
		return nil, fmt.Errorf("bank ID is required")
	}
	if !covenantType.IsValid() {
		return nil, fmt.Errorf("invalid covenant type")
	}
	if !operator.IsValid() {
		return nil, fmt.Errorf("invalid operator")
	}
	if !frequency.IsValid() {
		return nil, fmt.Errorf("invalid check frequency")
	}

	return &Covenant{
		id:            id,
		contractID:    contractID,
		bankID:        bankID,
		name:          name,
		metricName:    metricName,
		covenantType:  covenantType,
		operator:      operator,
		threshold:     threshold,
		thresholdUnit: thresholdUnit,
		frequency:     frequency,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (c *Covenant) ID() uint                      { return c.id }
func (c *Covenant) ContractID() uint              { return c.contractID }
func (c *Covenant) BankID() uint                  { return c.bankID }
func (c *Covenant) Name() string                  { return c.name }
func (c *Covenant) MetricName() string            { return c.metricName }
func (c *Covenant) Type() vo.CovenantType         { return c.covenantType }
func (c *Covenant) Operator() vo.Operator         { return c.operator }
func (c *Covenant) Threshold() float64            { return c.threshold }
func (c *Covenant) ThresholdUnit() string         { return c.thresholdUnit }
func (c *Covenant) Frequency() vo.CheckFrequency  { return c.frequency }
func (c *Covenant) CreatedAt() time.Time          { return c.createdAt }
func (c *Covenant) UpdatedAt() time.Time          { return c.updatedAt }

func (c *Covenant) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("covenant ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("covenant ID cannot be zero")
	}
	c.id = id
	return nil
}

// UpdateTerms changes the contractual terms of the covenant. Only reachable
// through the authorized update use case.
func (c *Covenant) UpdateTerms(
	name string,
	operator vo.Operator,
	threshold float64,
	thresholdUnit string,
	frequency vo.CheckFrequency,
) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if !operator.IsValid() {
		return fmt.Errorf("invalid operator")
	}
	if !frequency.IsValid() {
		return fmt.Errorf("invalid check frequency")
	}

	c.name = name
	c.operator = operator
	c.threshold = threshold
	c.thresholdUnit = thresholdUnit
	c.frequency = frequency
	c.updatedAt = time.Now()
	return nil
}

func (c *Covenant) Validate() error {
	if c.contractID == 0 {
		return fmt.Errorf("contract ID is required")
	}
	if c.bankID == 0 {
		return fmt.Errorf("bank ID is required")
	}
	if len(c.name) == 0 {
		return fmt.Errorf("name is required")
	}
	if !c.covenantType.IsValid() {
		return fmt.Errorf("invalid covenant type")
	}
	if !c.operator.IsValid() {
		return fmt.Errorf("invalid operator")
	}
	if !c.frequency.IsValid() {
		return fmt.Errorf("invalid check frequency")
	}
	return nil
}
