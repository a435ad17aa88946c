package appclient

import (
	"sort"
	"strings"
)

// RoleTag is a normalized authorization label: uppercase, with the
// transport authority prefix stripped. All role comparisons happen in this
// form; raw server strings are never compared directly.
type RoleTag = string

const (
	RoleAdmin         RoleTag = "ADMIN"
	RoleManager       RoleTag = "MANAGER"
	RoleCashier       RoleTag = "CASHIER"
	RoleWaiter        RoleTag = "WAITER"
	RoleSecurity      RoleTag = "SECURITY"
	RoleBartender     RoleTag = "BARTENDER"
	RoleChef          RoleTag = "CHEF"
	RoleChefAssistant RoleTag = "CHEF_ASSISTANT"
	RoleStocker       RoleTag = "STOCKER"
	RoleMaintenance   RoleTag = "MAINTENANCE"
	RoleHost          RoleTag = "HOST"
	RoleDJ            RoleTag = "DJ"
)

// RoleLabels maps role tags to their display labels.
var RoleLabels = map[RoleTag]string{
	RoleSecurity:      "Seguridad",
	RoleWaiter:        "Salonero/a",
	RoleCashier:       "Cajero/a",
	RoleBartender:     "Bartender",
	RoleChef:          "Cocinero/a Principal",
	RoleChefAssistant: "Ayudante de Cocina",
	RoleStocker:       "Bodeguero/a",
	RoleMaintenance:   "Mantenimiento",
	RoleAdmin:         "Administrador/a",
	RoleManager:       "Gerente",
	RoleHost:          "Anfitrión/a",
	RoleDJ:            "DJ",
}

const roleAuthorityPrefix = "ROLE_"

// NormalizeRole strips the authority prefix and uppercases the tag.
// Normalizing an already normalized tag is a no-op.
func NormalizeRole(raw string) RoleTag {
	tag := strings.TrimSpace(raw)
	tag = strings.TrimPrefix(strings.ToUpper(tag), roleAuthorityPrefix)
	return tag
}

// RoleSet is a set of normalized role tags.
type RoleSet map[RoleTag]struct{}

// NewRoleSet normalizes the given raw tags into a set. Empty entries are
// dropped.
func NewRoleSet(raw ...string) RoleSet {
	set := make(RoleSet, len(raw))
	for _, r := range raw {
		if tag := NormalizeRole(r); tag != "" {
			set[tag] = struct{}{}
		}
	}
	return set
}

// Has reports whether the set contains the tag, normalizing the input
// before comparing.
func (s RoleSet) Has(raw string) bool {
	_, ok := s[NormalizeRole(raw)]
	return ok
}

// Intersects reports whether both sets share at least one tag.
func (s RoleSet) Intersects(other RoleSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for tag := range small {
		if _, ok := large[tag]; ok {
			return true
		}
	}
	return false
}

// List returns the tags in sorted order.
func (s RoleSet) List() []RoleTag {
	tags := make([]RoleTag, 0, len(s))
	for tag := range s {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func (s RoleSet) String() string {
	return strings.Join(s.List(), ",")
}
