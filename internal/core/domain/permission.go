package domain

import (
	"sort"
	"strings"
)

// Known permission identifiers. Permissions are opaque strings; these are the
// ones the API itself checks.
const (
	PermCurrenciesRead   = "currencies.read"
	PermCurrenciesWrite  = "currencies.write"
	PermCurrenciesDelete = "currencies.delete"
	PermRolesRead        = "roles.read"
	PermRolesWrite       = "roles.write"
	PermUsersRead        = "users.read"
	PermUsersWrite       = "users.write"
)

// AllPermissions lists every permission the API checks.
var AllPermissions = []string{
	PermCurrenciesRead,
	PermCurrenciesWrite,
	PermCurrenciesDelete,
	PermRolesRead,
	PermRolesWrite,
	PermUsersRead,
	PermUsersWrite,
}

// PermissionSet is an unordered set of permission identifiers.
type PermissionSet map[string]struct{}

// NewPermissionSet builds a set, dropping blanks and duplicates.
func NewPermissionSet(perms ...string) PermissionSet {
	s := make(PermissionSet, len(perms))
	for _, p := range perms {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether p is in the set.
func (s PermissionSet) Has(p string) bool {
	_, ok := s[p]
	return ok
}

// Intersects reports whether s and other share at least one permission.
func (s PermissionSet) Intersects(other PermissionSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for p := range small {
		if large.Has(p) {
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether every permission in s is also in other.
func (s PermissionSet) IsSubsetOf(other PermissionSet) bool {
	if len(s) > len(other) {
		return false
	}
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}

// Sorted returns the permissions in lexical order.
func (s PermissionSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// MatchMode selects how a required permission set is compared with a user's.
type MatchMode string

const (
	MatchAny MatchMode = "ANY" // at least one required permission
	MatchAll MatchMode = "ALL" // every required permission
)

const (
	DefaultLoginPath   = "/login"
	DefaultLandingPath = "/dashboard"
)

// AccessDecision is the outcome of an authorization check.
type AccessDecision struct {
	Allowed    bool
	RedirectTo string
	Reason     string
}

// Gate decides whether a user may access something guarded by a permission set.
type Gate struct {
	LoginPath   string // where unauthenticated callers are sent
	LandingPath string // where authenticated but unauthorized callers are sent
}

// NewGate returns a Gate, falling back to the default paths for empty arguments.
func NewGate(loginPath, landingPath string) Gate {
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}
	if landingPath == "" {
		landingPath = DefaultLandingPath
	}
	return Gate{LoginPath: loginPath, LandingPath: landingPath}
}

// Authorize checks user against required using mode. An empty requirement only
// demands an authenticated user.
func (g Gate) Authorize(user *User, required PermissionSet, mode MatchMode) AccessDecision {
	if user == nil {
		return AccessDecision{RedirectTo: g.LoginPath, Reason: "authentication required"}
	}
	if len(required) == 0 {
		return AccessDecision{Allowed: true}
	}

	granted := user.Permissions()
	var ok bool
	switch mode {
	case MatchAll:
		ok = required.IsSubsetOf(granted)
	default:
		ok = required.Intersects(granted)
	}
	if !ok {
		return AccessDecision{RedirectTo: g.LandingPath, Reason: "insufficient permissions"}
	}
	return AccessDecision{Allowed: true}
}

// Authorize applies the default gate.
func Authorize(user *User, required PermissionSet, mode MatchMode) AccessDecision {
	return NewGate("", "").Authorize(user, required, mode)
}
