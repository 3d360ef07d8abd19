package valueobjects

import "fmt"

type CovenantType string

const (
	TypeFinancial   CovenantType = "financial"
	TypeOperational CovenantType = "operational"
	TypeReporting   CovenantType = "reporting"
	TypeOther       CovenantType = "other"
)

var validCovenantTypes = map[CovenantType]bool{
	TypeFinancial:   true,
	TypeOperational: true,
	TypeReporting:   true,
	TypeOther:       true,
}

func NewCovenantType(s string) (CovenantType, error) {
	ct := CovenantType(s)
	if !ct.IsValid() {
		return "", fmt.Errorf("invalid covenant type: %s", s)
	}
	return ct, nil
}

func (ct CovenantType) String() string {
	return string(ct)
}

func (ct CovenantType) IsValid() bool {
	return validCovenantTypes[ct]
}

func (ct CovenantType) IsFinancial() bool {
	return ct == TypeFinancial
}

func (ct CovenantType) IsReporting() bool {
	return ct == TypeReporting
}
