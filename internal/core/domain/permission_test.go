package domain_test

import (
	"testing"

	"github.com/SscSPs/adminpro/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func userWith(perms ...string) *domain.User {
	return &domain.User{
		ID:       "u1",
		IsActive: true,
		Role: &domain.Role{
			ID:          "r1",
			IsActive:    true,
			Permissions: domain.NewPermissionSet(perms...),
		},
	}
}

func TestNewPermissionSet_DropsBlanksAndDuplicates(t *testing.T) {
	set := domain.NewPermissionSet("a", " ", "b", "a", "")
	assert.Equal(t, []string{"a", "b"}, set.Sorted())
}

func TestPermissionSet_Intersects(t *testing.T) {
	tests := []struct {
		name  string
		left  domain.PermissionSet
		right domain.PermissionSet
		want  bool
	}{
		{"shared permission", domain.NewPermissionSet("a", "b"), domain.NewPermissionSet("b", "c"), true},
		{"disjoint", domain.NewPermissionSet("a"), domain.NewPermissionSet("b"), false},
		{"empty left", domain.NewPermissionSet(), domain.NewPermissionSet("a"), false},
		{"both empty", domain.NewPermissionSet(), domain.NewPermissionSet(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.left.Intersects(tt.right))
			assert.Equal(t, tt.want, tt.right.Intersects(tt.left))
		})
	}
}

func TestPermissionSet_IsSubsetOf(t *testing.T) {
	assert.True(t, domain.NewPermissionSet().IsSubsetOf(domain.NewPermissionSet()))
	assert.True(t, domain.NewPermissionSet("a").IsSubsetOf(domain.NewPermissionSet("a", "b")))
	assert.False(t, domain.NewPermissionSet("a", "c").IsSubsetOf(domain.NewPermissionSet("a", "b")))
	assert.False(t, domain.NewPermissionSet("a", "b").IsSubsetOf(domain.NewPermissionSet("a")))
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name         string
		user         *domain.User
		required     []string
		mode         domain.MatchMode
		wantAllowed  bool
		wantRedirect string
	}{
		{"no user is sent to login", nil, []string{"a"}, domain.MatchAny, false, domain.DefaultLoginPath},
		{"no user with empty requirement is still sent to login", nil, nil, domain.MatchAny, false, domain.DefaultLoginPath},
		{"empty requirement allows any authenticated user", userWith(), nil, domain.MatchAny, true, ""},
		{"empty requirement in ALL mode", userWith(), nil, domain.MatchAll, true, ""},
		{"ANY with one match", userWith("a"), []string{"a", "b"}, domain.MatchAny, true, ""},
		{"ANY with no match", userWith("c"), []string{"a", "b"}, domain.MatchAny, false, domain.DefaultLandingPath},
		{"ALL with every permission", userWith("a", "b", "c"), []string{"a", "b"}, domain.MatchAll, true, ""},
		{"ALL missing one", userWith("a"), []string{"a", "b"}, domain.MatchAll, false, domain.DefaultLandingPath},
		{"unknown mode behaves as ANY", userWith("b"), []string{"a", "b"}, domain.MatchMode("whatever"), true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := domain.Authorize(tt.user, domain.NewPermissionSet(tt.required...), tt.mode)
			assert.Equal(t, tt.wantAllowed, d.Allowed)
			assert.Equal(t, tt.wantRedirect, d.RedirectTo)
			if !d.Allowed {
				assert.NotEmpty(t, d.Reason)
			}
		})
	}
}

func TestAuthorize_ALLImpliesANY(t *testing.T) {
	perms := []string{"a", "b", "c"}
	users := []*domain.User{userWith(), userWith("a"), userWith("a", "b"), userWith("a", "b", "c"), userWith("d")}
	reqs := [][]string{{"a"}, {"a", "b"}, {"b", "c"}, perms, {"d"}}

	for _, u := range users {
		for _, r := range reqs {
			required := domain.NewPermissionSet(r...)
			if domain.Authorize(u, required, domain.MatchAll).Allowed {
				assert.True(t, domain.Authorize(u, required, domain.MatchAny).Allowed,
					"ALL allowed but ANY denied for %v with %v", u.Permissions().Sorted(), r)
			}
		}
	}
}

func TestAuthorize_InactiveUserOrRoleGrantsNothing(t *testing.T) {
	inactiveUser := userWith("a")
	inactiveUser.IsActive = false
	assert.False(t, domain.Authorize(inactiveUser, domain.NewPermissionSet("a"), domain.MatchAny).Allowed)

	inactiveRole := userWith("a")
	inactiveRole.Role.IsActive = false
	d := domain.Authorize(inactiveRole, domain.NewPermissionSet("a"), domain.MatchAny)
	assert.False(t, d.Allowed)
	assert.Equal(t, domain.DefaultLandingPath, d.RedirectTo)

	noRole := &domain.User{ID: "u", IsActive: true}
	assert.False(t, domain.Authorize(noRole, domain.NewPermissionSet("a"), domain.MatchAny).Allowed)
}

func TestGate_CustomPaths(t *testing.T) {
	gate := domain.NewGate("/signin", "/home")

	assert.Equal(t, "/signin", gate.Authorize(nil, domain.NewPermissionSet("a"), domain.MatchAny).RedirectTo)
	assert.Equal(t, "/home", gate.Authorize(userWith("b"), domain.NewPermissionSet("a"), domain.MatchAny).RedirectTo)

	defaults := domain.NewGate("", "")
	assert.Equal(t, domain.DefaultLoginPath, defaults.LoginPath)
	assert.Equal(t, domain.DefaultLandingPath, defaults.LandingPath)
}
