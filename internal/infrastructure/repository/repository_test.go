package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"covena/internal/domain/alert"
	alertvo "covena/internal/domain/alert/valueobjects"
	"covena/internal/domain/compliance"
	"covena/internal/domain/covenant"
	vo "covena/internal/domain/covenant/valueobjects"
	"covena/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.ContractModel{},
		&models.CovenantModel{},
		&models.CovenantHealthModel{},
		&models.AlertModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestCovenant(t *testing.T, contractID, bankID uint, name string) *covenant.Covenant {
	c, err := covenant.NewCovenant(
		contractID, bankID, name, "debt_to_ebitda",
		vo.TypeFinancial, vo.OperatorLessOrEqual, 3.5, "ratio", vo.FrequencyQuarterly,
	)
	require.NoError(t, err)
	return c
}

func createTestAlert(t *testing.T, covenantID, contractID, bankID uint) *alert.Alert {
	gen := alert.NewGenerator(compliance.DefaultPolicy())
	a, err := gen.FromStatusChange(alert.StatusChangeEvent{
		CovenantID:     covenantID,
		ContractID:     contractID,
		BankID:         bankID,
		CovenantName:   "Max Leverage",
		MetricName:     "debt_to_ebitda",
		PreviousStatus: vo.StatusCompliant,
		NewStatus:      vo.StatusBreached,
		CurrentValue:   4.2,
		ThresholdValue: 3.5,
		Operator:       vo.OperatorLessOrEqual,
	})
	require.NoError(t, err)
	require.NotNil(t, a)
	require.Equal(t, alertvo.SeverityCritical, a.Severity())
	return a
}
