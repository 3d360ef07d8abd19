package valueobjects

import "fmt"

type AlertType string

const (
	TypeWarning      AlertType = "warning"
	TypeBreach       AlertType = "breach"
	TypeReportingDue AlertType = "reporting_due"
)

var validAlertTypes = map[AlertType]bool{
	TypeWarning:      true,
	TypeBreach:       true,
	TypeReportingDue: true,
}

func NewAlertType(s string) (AlertType, error) {
	at := AlertType(s)
	if !at.IsValid() {
		return "", fmt.Errorf("invalid alert type: %s", s)
	}
	return at, nil
}

func (at AlertType) String() string {
	return string(at)
}

func (at AlertType) IsValid() bool {
	return validAlertTypes[at]
}

func (at AlertType) IsBreach() bool {
	return at == TypeBreach
}
