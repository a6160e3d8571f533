package rbac

import (
	"context"
	"errors"
	"fmt"

	"jybooking/internal/domain"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient permissions")
	ErrNotOwner        = errors.New("not resource owner")
	ErrNotFound        = errors.New("resource not found")
	ErrOwnershipCheck  = errors.New("ownership check failed")
)

// Identity is the authenticated caller as supplied by the identity
// provider. This package never verifies credentials itself.
type Identity struct {
	SubjectID string
	Role      domain.UserRole
}

// OwnerResolver resolves the owning subject of a resource. ok=false
// means the resource does not exist; err is reserved for transient
// failures and must not be used for absence.
type OwnerResolver func(ctx context.Context, resourceID string) (ownerID string, ok bool, err error)

// Authorize allows the identity only if it holds every listed
// permission. A nil identity fails with ErrUnauthenticated so callers
// can distinguish a missing login from a missing capability.
func Authorize(identity *Identity, permissions ...string) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	for _, p := range permissions {
		if !HasPermission(identity.Role, p) {
			return fmt.Errorf("%w: role %q lacks %q", ErrForbidden, identity.Role, p)
		}
	}
	return nil
}

// AuthorizeOwnership allows admins unconditionally; everyone else must
// be the owner of the resource. Resolver absence maps to ErrNotFound
// and resolver failure to ErrOwnershipCheck; neither is a denial.
func AuthorizeOwnership(ctx context.Context, identity *Identity, resourceID string, resolve OwnerResolver) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	if identity.Role == domain.RoleAdmin {
		return nil
	}

	ownerID, ok, err := resolve(ctx, resourceID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOwnershipCheck, err)
	}
	if !ok {
		return ErrNotFound
	}
	if ownerID != identity.SubjectID {
		return ErrNotOwner
	}
	return nil
}
