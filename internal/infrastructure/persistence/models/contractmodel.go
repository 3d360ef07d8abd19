package models

type ContractModel struct {
	ID              uint    `gorm:"primaryKey"`
	BankID          uint    `gorm:"not null;index"`
	BorrowerName    string  `gorm:"size:200;not null"`
	PrincipalAmount float64 `gorm:"not null"`
	OriginationDate int64   `gorm:"not null"`
	MaturityDate    int64   `gorm:"not null"`
	Status          string  `gorm:"size:20;not null;index"`
	CreatedAt       int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (ContractModel) TableName() string {
	return "contracts"
}
