// Package auth holds the endpoint role policy and the allow/deny decision
// rule. Policies are fixed role checks; there is no dynamic policy engine.
package auth

import "github.com/coreledger/banking-api/internal/core/domain"

// Claim-form role requirements used when wiring routes. Listing, updating and
// deleting users is admin-only; fetching a single user is open to any
// authenticated role. Account and transaction routes carry no requirement.
var (
	AdminOnly   = []string{domain.RolePrefix + domain.RoleAdmin}
	UserOrAdmin = []string{domain.RolePrefix + domain.RoleUser, domain.RolePrefix + domain.RoleAdmin}
)

// Authorize decides allow/deny for a validated token's claim roles against
// the roles a route requires. An empty requirement always allows; otherwise
// the intersection must be non-empty. Both sides are in claim form (ROLE_
// prefixed) — the prefix was applied once, at claim extraction.
func Authorize(claimRoles []string, required ...string) error {
	if len(required) == 0 {
		return nil
	}
	want := make(map[string]struct{}, len(required))
	for _, r := range required {
		want[r] = struct{}{}
	}
	for _, r := range claimRoles {
		if _, ok := want[r]; ok {
			return nil
		}
	}
	return domain.ErrForbidden
}
