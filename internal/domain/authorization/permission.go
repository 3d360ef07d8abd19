// Package authorization is the pure access-control model: a closed
// role/resource/action vocabulary, an immutable role-to-permission matrix
// with strict superset inheritance, and the tenant-isolation predicate.
// It makes decisions only; redirects and responses belong to callers.
package authorization

import "fmt"

// Resource is the closed set of protected resource kinds.
type Resource string

const (
	ResourceContract Resource = "contract"
	ResourceCovenant Resource = "covenant"
	ResourceAlert    Resource = "alert"
	ResourceReport   Resource = "report"
	ResourceUser     Resource = "user"
	ResourceAudit    Resource = "audit"
)

// Action is the closed set of operations on resources.
type Action string

const (
	ActionRead        Action = "read"
	ActionCreate      Action = "create"
	ActionUpdate      Action = "update"
	ActionAcknowledge Action = "acknowledge"
	ActionResolve     Action = "resolve"
	ActionEscalate    Action = "escalate"
	ActionExport      Action = "export"
)

// Permission is a (resource, action) pair.
type Permission struct {
	Resource Resource
	Action   Action
}

func (p Permission) Code() string {
	return fmt.Sprintf("%s:%s", p.Resource, p.Action)
}

// viewerGrants, analystGrants and adminGrants are the role-specific
// additions; each role's effective set is the union of its own grants and
// every lower role's (built once in init, never mutated afterwards).
var viewerGrants = []Permission{
	{ResourceContract, ActionRead},
	{ResourceCovenant, ActionRead},
	{ResourceAlert, ActionRead},
	{ResourceReport, ActionRead},
}

var analystGrants = []Permission{
	{ResourceCovenant, ActionCreate},
	{ResourceCovenant, ActionUpdate},
	{ResourceAlert, ActionAcknowledge},
	{ResourceAlert, ActionResolve},
	{ResourceReport, ActionCreate},
	{ResourceReport, ActionExport},
}

var adminGrants = []Permission{
	{ResourceContract, ActionCreate},
	{ResourceContract, ActionUpdate},
	{ResourceAlert, ActionEscalate},
	{ResourceUser, ActionRead},
	{ResourceAudit, ActionRead},
	{ResourceAudit, ActionExport},
}

// rolePermissions is the immutable matrix. Built at package init; there is
// deliberately no mutation path afterwards.
var rolePermissions map[Role]map[Permission]bool

func init() {
	rolePermissions = buildMatrix()
}

func buildMatrix() map[Role]map[Permission]bool {
	grants := map[Role][]Permission{
		RoleViewer:  viewerGrants,
		RoleAnalyst: analystGrants,
		RoleAdmin:   adminGrants,
	}

	matrix := make(map[Role]map[Permission]bool, len(grants))
	for _, role := range AllRoles() {
		set := make(map[Permission]bool)
		// Union of every inherited role's grants, base role first.
		for r := role; r != ""; r = r.Inherits() {
			for _, p := range grants[r] {
				set[p] = true
			}
		}
		matrix[role] = set
	}
	return matrix
}

// PermissionsForRole returns a copy of the role's effective permission set.
func PermissionsForRole(role Role) []Permission {
	set := rolePermissions[role]
	out := make([]Permission, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	return out
}

// RoleHasPermission reports whether the role's effective set contains the
// (resource, action) pair.
func RoleHasPermission(role Role, resource Resource, action Action) bool {
	return rolePermissions[role][Permission{Resource: resource, Action: action}]
}
