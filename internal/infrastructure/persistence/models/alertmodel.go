package models

type AlertModel struct {
	ID                 uint    `gorm:"primaryKey"`
	CovenantID         uint    `gorm:"not null;index"`
	ContractID         uint    `gorm:"not null;index"`
	BankID             uint    `gorm:"not null;index"`
	Type               string  `gorm:"size:20;not null;index"`
	Severity           string  `gorm:"size:20;not null;index"`
	Title              string  `gorm:"size:255;not null"`
	Description        string  `gorm:"type:text"`
	TriggerMetricValue float64 `gorm:"not null"`
	ThresholdValue     float64 `gorm:"not null"`
	Status             string  `gorm:"size:20;not null;index"`
	TriggeredAt        int64   `gorm:"not null;index"`
	AcknowledgedAt     *int64
	AcknowledgedBy     *uint
	ResolutionNotes    string `gorm:"type:text"`
	EscalatedAt        *int64
	EscalationReason   string `gorm:"size:255"`
	CreatedAt          int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AlertModel) TableName() string {
	return "alerts"
}
