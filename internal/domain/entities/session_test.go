package entities

import "testing"

func TestSessionCanAccessTenant(t *testing.T) {
	admin := Session{ActorID: "op-1", Role: RoleAdmin}
	if !admin.CanAccessTenant("ten-1") || !admin.CanAccessTenant("ten-2") {
		t.Fatalf("admin must access any tenant")
	}

	tenant := Session{ActorID: "op-2", TenantID: "ten-1", Role: RoleTenant}
	if !tenant.CanAccessTenant("ten-1") {
		t.Fatalf("tenant must access its own tenant")
	}
	if tenant.CanAccessTenant("ten-2") {
		t.Fatalf("tenant must not access another tenant")
	}

	anonymous := Session{Role: RoleTenant}
	if anonymous.CanAccessTenant("") || anonymous.CanAccessTenant("ten-1") {
		t.Fatalf("session without tenant must not access tenant-scoped data")
	}
}
