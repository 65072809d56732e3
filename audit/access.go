package audit

import (
	"fmt"
	"sync"
	"time"
)

// Role names a class of operator for the façade-level Gate. None of this
// reaches into the core engine: Gate only decides whether a CLI/operator
// call is allowed to proceed before it invokes triplesec.EncryptWithCipher
// or triplesec.DecryptWithCipher.
type Role string

const (
	RoleAdmin    Role = "admin"    // full access, including auditor views
	RoleOperator Role = "operator" // encrypt and decrypt
	RoleAuditor  Role = "auditor"  // read-only: view audit log and reports
)

// Permission names a single gated operation.
type Permission string

const (
	// PermEncrypt gates calls into EncryptWithCipher/Encrypt.
	PermEncrypt Permission = "encrypt"
	// PermDecrypt gates calls into DecryptWithCipher/Decrypt.
	PermDecrypt Permission = "decrypt"
	// PermViewAuditLog gates reading the Tracker's recorded Entries.
	PermViewAuditLog Permission = "view_audit_log"
)

// Gate is an optional, in-memory role-to-permission check for multi-operator
// deployments of the CLI. The core library never consults a Gate; gating is
// strictly the caller's choice.
type Gate struct {
	mu        sync.RWMutex
	rolePerms map[Role]map[Permission]bool
}

// NewGate builds a Gate with the standard role/permission assignments:
// admins may encrypt, decrypt, and view the audit log; operators may
// encrypt and decrypt; auditors may only view the audit log.
func NewGate() *Gate {
	g := &Gate{rolePerms: make(map[Role]map[Permission]bool)}
	g.rolePerms[RoleAdmin] = set(PermEncrypt, PermDecrypt, PermViewAuditLog)
	g.rolePerms[RoleOperator] = set(PermEncrypt, PermDecrypt)
	g.rolePerms[RoleAuditor] = set(PermViewAuditLog)
	return g
}

func set(perms ...Permission) map[Permission]bool {
	m := make(map[Permission]bool, len(perms))
	for _, p := range perms {
		m[p] = true
	}
	return m
}

// Allow reports whether role carries permission. An unknown role carries no
// permissions.
func (g *Gate) Allow(role Role, permission Permission) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rolePerms[role][permission]
}

// Require returns an error naming the missing permission if role does not
// carry it; nil otherwise. CLI commands call this before invoking the core
// engine.
func (g *Gate) Require(role Role, permission Permission) error {
	if g.Allow(role, permission) {
		return nil
	}
	return fmt.Errorf("audit: role %q lacks permission %q", role, permission)
}

// Event records a single gating decision for later review.
type Event struct {
	Timestamp  time.Time
	Role       Role
	Permission Permission
	Allowed    bool
}
