package models

type CovenantModel struct {
	ID            uint    `gorm:"primaryKey"`
	ContractID    uint    `gorm:"not null;index"`
	BankID        uint    `gorm:"not null;index"`
	Name          string  `gorm:"size:200;not null"`
	MetricName    string  `gorm:"size:100;not null"`
	Type          string  `gorm:"size:20;not null;index"`
	Operator      string  `gorm:"size:5;not null"`
	Threshold     float64 `gorm:"not null"`
	ThresholdUnit string  `gorm:"size:20"`
	Frequency     string  `gorm:"size:20;not null"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (CovenantModel) TableName() string {
	return "covenants"
}
