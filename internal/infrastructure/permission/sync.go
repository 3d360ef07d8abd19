package permission

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"covena/internal/domain/authorization"
	"covena/internal/shared/logger"
)

// SyncRoleMatrix mirrors the in-code role-to-permission matrix into casbin
// so HTTP-layer enforcement and domain checks can never drift apart. The
// matrix is the source of truth; casbin rows are derived state.
func SyncRoleMatrix(e *Enforcer, log logger.Interface) error {
	var rules [][]string
	for _, role := range authorization.AllRoles() {
		for _, p := range authorization.PermissionsForRole(role) {
			rules = append(rules, []string{role.String(), string(p.Resource), string(p.Action)})
		}
	}

	if err := e.addPolicies(rules); err != nil {
		return fmt.Errorf("failed to sync role matrix: %w", err)
	}

	log.Infow("role matrix synced to casbin", "rules", len(rules))
	return nil
}

// policyFile is the shape of the optional extra-grants file. It exists for
// operational one-offs (e.g. granting a reporting service read access)
// without a redeploy; role inheritance still comes from the matrix.
type policyFile struct {
	Grants []struct {
		Subject  string   `yaml:"subject"`
		Resource string   `yaml:"resource"`
		Actions  []string `yaml:"actions"`
	} `yaml:"grants"`
}

// LoadExtraPolicies reads the grants file at path and installs its rules.
// A missing file is not an error.
func LoadExtraPolicies(e *Enforcer, path string, log logger.Interface) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugw("no extra policy file found", "path", path)
			return nil
		}
		return fmt.Errorf("failed to read policy file: %w", err)
	}

	var pf policyFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("failed to parse policy file %s: %w", path, err)
	}

	var rules [][]string
	for _, g := range pf.Grants {
		if g.Subject == "" || g.Resource == "" {
			return fmt.Errorf("policy file %s: grant needs subject and resource", path)
		}
		for _, action := range g.Actions {
			rules = append(rules, []string{g.Subject, g.Resource, action})
		}
	}

	if len(rules) == 0 {
		return nil
	}

	if err := e.addPolicies(rules); err != nil {
		return fmt.Errorf("failed to install extra policies: %w", err)
	}

	log.Infow("extra policies installed", "path", path, "rules", len(rules))
	return nil
}
