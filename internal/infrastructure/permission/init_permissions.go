package permission

import (
	"fmt"

	"yordam/internal/shared/logger"
)

// SeedHelpdeskPolicies installs the baseline role policies. The role
// hierarchy is flat on purpose: a technician is not a superset of a
// user, because technicians act on assigned tickets while users act on
// their own. Superadmin inherits admin through a g rule.
func SeedHelpdeskPolicies(enforcer *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Regular users work with their own tickets.
		{"user", "ticket", "create"},
		{"user", "ticket", "read"},
		{"user", "ticket", "rate"},
		{"user", "ticket", "reopen"},
		{"user", "ticket_message", "create"},
		{"user", "ticket_message", "read"},
		{"user", "notification", "read"},
		{"user", "notification", "update"},

		// Technicians work the queue.
		{"technician", "ticket", "read"},
		{"technician", "ticket", "update"},
		{"technician", "ticket", "take"},
		{"technician", "ticket_message", "create"},
		{"technician", "ticket_message", "read"},
		{"technician", "notification", "read"},
		{"technician", "notification", "update"},

		// Admins additionally assign and see reports within their scope.
		{"admin", "ticket", "read"},
		{"admin", "ticket", "update"},
		{"admin", "ticket", "assign"},
		{"admin", "ticket_message", "create"},
		{"admin", "ticket_message", "read"},
		{"admin", "report", "read"},
		{"admin", "notification", "read"},
		{"admin", "notification", "update"},

		// Superadmins manage the directory itself.
		{"superadmin", "user", "create"},
		{"superadmin", "user", "read"},
		{"superadmin", "user", "update"},
		{"superadmin", "user", "delete"},
		{"superadmin", "region", "create"},
		{"superadmin", "region", "update"},
		{"superadmin", "region", "delete"},
		{"superadmin", "system", "create"},
		{"superadmin", "system", "update"},
		{"superadmin", "system", "delete"},
		{"superadmin", "responsibility", "create"},
		{"superadmin", "responsibility", "delete"},
	}

	for _, policy := range policies {
		_, err := enforcer.enforcer.AddPolicy(policy)
		if err != nil {
			log.Errorw("failed to add policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	if _, err := enforcer.enforcer.AddGroupingPolicy("superadmin", "admin"); err != nil {
		return fmt.Errorf("failed to add role inheritance: %w", err)
	}

	if err := enforcer.enforcer.SavePolicy(); err != nil {
		log.Error("failed to save policies", "error", err)
		return fmt.Errorf("failed to save policies: %w", err)
	}

	log.Info("helpdesk policies initialized successfully")
	return nil
}
