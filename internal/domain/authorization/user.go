package authorization

import "fmt"

// AuthUser is the validated user/role/bank triple supplied by the external
// identity provider. The platform never creates or mutates these records;
// it only consumes them for access decisions.
type AuthUser struct {
	ID     uint
	Role   Role
	BankID uint
}

func NewAuthUser(id uint, role Role, bankID uint) (*AuthUser, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if bankID == 0 {
		return nil, fmt.Errorf("bank ID is required")
	}
	return &AuthUser{ID: id, Role: role, BankID: bankID}, nil
}
