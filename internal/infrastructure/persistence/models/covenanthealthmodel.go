package models

import "gorm.io/datatypes"

// CovenantHealthModel holds one row per covenant, overwritten on every
// recomputation. MetricHistory keeps the evaluation window that produced the
// stored values for audit display.
type CovenantHealthModel struct {
	CovenantID     uint           `gorm:"primaryKey;autoIncrement:false"`
	ContractID     uint           `gorm:"not null;index"`
	BankID         uint           `gorm:"not null;index"`
	Status         string         `gorm:"size:20;not null;index"`
	Trend          string         `gorm:"size:20;not null"`
	BufferPct      float64        `gorm:"not null"`
	CurrentValue   float64        `gorm:"not null"`
	DaysToBreach   *float64
	MetricHistory  datatypes.JSON
	LastCalculated int64          `gorm:"not null"`
	CreatedAt      int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (CovenantHealthModel) TableName() string {
	return "covenant_health"
}
