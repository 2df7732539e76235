package entities

// Session is the explicit actor context carried into every tenant-scoped
// operation. It replaces any ambient "current user / current tenant" lookup.

type Session struct {
	ActorID  string `json:"actor_id"`
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
}

const (
	RoleAdmin  = "admin"
	RoleTenant = "tenant"
)

// IsAdmin reports whether the actor holds the platform-admin role.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// CanAccessTenant reports whether the actor may operate on tenantID.
func (s Session) CanAccessTenant(tenantID string) bool {
	return s.IsAdmin() || (s.TenantID != "" && s.TenantID == tenantID)
}
