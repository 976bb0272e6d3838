package auth

import (
	"slices"
	"strings"
)

// Role grants access to a portal area.
type Role string

const (
	// RoleEmployee is granted to every signed-in user.
	RoleEmployee Role = "employee"
	// RoleCommunity may write to the ACE community and PlayDay galleries.
	RoleCommunity Role = "community"
	// RoleOperator manages home content, access logs and Playbook posts.
	RoleOperator Role = "operator"
)

// User identifies a signed-in portal user. ID is an employee number or email.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// DisplayName returns the name used as a post author: name, then email, then id.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return u.ID
}

// Matches reports whether author refers to this user by name, email or id.
func (u User) Matches(author string) bool {
	if author == "" {
		return false
	}
	return author == u.Name || author == u.Email || author == u.ID
}

// Policy resolves roles from the operator and community allowlists.
type Policy struct {
	operator  string
	operators map[string]struct{}
	community map[string]struct{}
}

// NewPolicy builds a Policy. Entries are compared trimmed and lower-cased.
func NewPolicy(operatorEmail string, operators, community []string) *Policy {
	return &Policy{
		operator:  normalize(operatorEmail),
		operators: toSet(operators),
		community: toSet(community),
	}
}

// Roles returns the roles held by u, always starting with employee.
func (p *Policy) Roles(u User) []Role {
	roles := []Role{RoleEmployee}

	id := normalize(u.ID)
	email := normalize(u.Email)

	fixed := p.operator != "" && (email == p.operator || id == p.operator)

	switch {
	case fixed || p.inSet(p.operators, id, email):
		roles = append(roles, RoleCommunity, RoleOperator)
	case p.inSet(p.community, id, email):
		roles = append(roles, RoleCommunity)
	}

	return roles
}

// HasRole reports whether u holds role.
func (p *Policy) HasRole(u User, role Role) bool {
	return slices.Contains(p.Roles(u), role)
}

func (p *Policy) inSet(set map[string]struct{}, id, email string) bool {
	if email != "" {
		if _, ok := set[email]; ok {
			return true
		}
	}
	_, ok := set[id]
	return ok && id != ""
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if n := normalize(v); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
