package authorization

// HasPermission reports whether the user's role grants the (resource,
// action) pair. A missing user never has permission.
func HasPermission(u *AuthUser, resource Resource, action Action) bool {
	if u == nil {
		return false
	}
	return RoleHasPermission(u.Role, resource, action)
}

// CanAccessBankResource is the tenant-isolation predicate: strict equality
// between the user's bank and the resource's bank. Resources without a bank
// id are the caller's leniency decision, not this predicate's.
func CanAccessBankResource(u *AuthUser, resourceBankID uint) bool {
	if u == nil {
		return false
	}
	return u.BankID == resourceBankID
}

// The resource-specific helpers below compose the permission check AND the
// tenant check; both must hold, never either alone.

func CanViewContract(u *AuthUser, contractBankID uint) bool {
	return HasPermission(u, ResourceContract, ActionRead) && CanAccessBankResource(u, contractBankID)
}

func CanManageContract(u *AuthUser, contractBankID uint) bool {
	return HasPermission(u, ResourceContract, ActionUpdate) && CanAccessBankResource(u, contractBankID)
}

func CanViewCovenant(u *AuthUser, covenantBankID uint) bool {
	return HasPermission(u, ResourceCovenant, ActionRead) && CanAccessBankResource(u, covenantBankID)
}

func CanCreateCovenant(u *AuthUser, covenantBankID uint) bool {
	return HasPermission(u, ResourceCovenant, ActionCreate) && CanAccessBankResource(u, covenantBankID)
}

func CanUpdateCovenant(u *AuthUser, covenantBankID uint) bool {
	return HasPermission(u, ResourceCovenant, ActionUpdate) && CanAccessBankResource(u, covenantBankID)
}

func CanViewAlert(u *AuthUser, alertBankID uint) bool {
	return HasPermission(u, ResourceAlert, ActionRead) && CanAccessBankResource(u, alertBankID)
}

func CanAcknowledgeAlert(u *AuthUser, alertBankID uint) bool {
	return HasPermission(u, ResourceAlert, ActionAcknowledge) && CanAccessBankResource(u, alertBankID)
}

func CanResolveAlert(u *AuthUser, alertBankID uint) bool {
	return HasPermission(u, ResourceAlert, ActionResolve) && CanAccessBankResource(u, alertBankID)
}

func CanEscalateAlert(u *AuthUser, alertBankID uint) bool {
	return HasPermission(u, ResourceAlert, ActionEscalate) && CanAccessBankResource(u, alertBankID)
}

func CanViewReport(u *AuthUser, reportBankID uint) bool {
	return HasPermission(u, ResourceReport, ActionRead) && CanAccessBankResource(u, reportBankID)
}

func CanGenerateReport(u *AuthUser, reportBankID uint) bool {
	return HasPermission(u, ResourceReport, ActionCreate) && CanAccessBankResource(u, reportBankID)
}

func CanViewAudit(u *AuthUser, auditBankID uint) bool {
	return HasPermission(u, ResourceAudit, ActionRead) && CanAccessBankResource(u, auditBankID)
}
