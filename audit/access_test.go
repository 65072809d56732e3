package audit

import (
	"fmt"
	"testing"
)

func TestGateGrantsAndDenies(t *testing.T) {
	fmt.Println("Test: Gate grants operator encrypt/decrypt, denies audit log")

	g := NewGate()

	if !g.Allow(RoleOperator, PermEncrypt) {
		t.Fatal("operator should be allowed to encrypt")
	}
	if !g.Allow(RoleOperator, PermDecrypt) {
		t.Fatal("operator should be allowed to decrypt")
	}
	if g.Allow(RoleOperator, PermViewAuditLog) {
		t.Fatal("operator should not be allowed to view the audit log")
	}
	if !g.Allow(RoleAuditor, PermViewAuditLog) {
		t.Fatal("auditor should be allowed to view the audit log")
	}
	if g.Allow(RoleAuditor, PermEncrypt) {
		t.Fatal("auditor should not be allowed to encrypt")
	}

	fmt.Println("✓ role/permission matrix behaves as configured")
}

func TestGateRequireReturnsError(t *testing.T) {
	g := NewGate()

	if err := g.Require(RoleOperator, PermEncrypt); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := g.Require(RoleOperator, PermViewAuditLog); err == nil {
		t.Fatal("expected an error for a missing permission")
	}
}

func TestUnknownRoleHasNoPermissions(t *testing.T) {
	g := NewGate()
	if g.Allow(Role("nonexistent"), PermEncrypt) {
		t.Fatal("unknown role should not carry any permission")
	}
}
