// Package scope decides whose records a request may touch. The decision
// is pure: it depends only on the caller's role and the subject the
// request asked for, never on the database.
package scope

import "github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"

// Identity is the verified caller, as established by the auth middleware.
type Identity struct {
	UserID   int64
	Username string
	Role     models.Role
}

// EffectiveSubject maps the subject a request asked for (0 when none was
// supplied) onto the subject the caller may actually read or write.
// Agents always resolve to themselves; any requested subject is
// ignored, so an agent cannot read or write another user's rows by
// naming them. Admins and managers get the requested subject when one
// was supplied, else their own id (they keep personal records too).
func EffectiveSubject(id Identity, requested int64) int64 {
	if !id.Role.CanActForOthers() {
		return id.UserID
	}
	if requested > 0 {
		return requested
	}
	return id.UserID
}
