// Package gate is the central authorization checkpoint: a registry of
// per-resource policies consulted by the HTTP boundary. Role checks live
// here rather than being scattered through handler bodies.
package gate

import (
	"context"
	"errors"

	"github.com/archemics/salessnap/internal/models"
)

// Action describes the kind of operation a user wants to perform.
type Action string

const (
	ActionView    Action = "view"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionList    Action = "list"
	ActionApprove Action = "approve"
)

// Sentinel errors returned by Gate.Authorize.
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNoPolicyDefined = errors.New("no policy defined for resource")
)

// Policy defines authorization rules for one resource type.
type Policy interface {
	Can(ctx context.Context, user *models.User, action Action) bool
}

// PolicyFunc adapts a plain function to the Policy interface.
type PolicyFunc func(ctx context.Context, user *models.User, action Action) bool

func (f PolicyFunc) Can(ctx context.Context, user *models.User, action Action) bool {
	return f(ctx, user, action)
}

// Gate maps resource type names (e.g. "user", "delivery_note") to policies.
type Gate struct {
	policies map[string]Policy
}

func New() *Gate {
	return &Gate{policies: make(map[string]Policy)}
}

// Register adds a policy for a resource type, replacing any existing one.
func (g *Gate) Register(resourceType string, p Policy) {
	g.policies[resourceType] = p
}

// Authorize returns ErrUnauthorized for a nil user or denied action, and
// ErrNoPolicyDefined when the resource type has no registered policy.
func (g *Gate) Authorize(ctx context.Context, user *models.User, action Action, resourceType string) error {
	if user == nil {
		return ErrUnauthorized
	}
	p, ok := g.policies[resourceType]
	if !ok {
		return ErrNoPolicyDefined
	}
	if !p.Can(ctx, user, action) {
		return ErrUnauthorized
	}
	return nil
}

// Can is a convenience wrapper returning bool instead of error.
func (g *Gate) Can(ctx context.Context, user *models.User, action Action, resourceType string) bool {
	return g.Authorize(ctx, user, action, resourceType) == nil
}

// HasRole reports whether the user holds any of the given roles.
func HasRole(user *models.User, roles ...models.Role) bool {
	if user == nil {
		return false
	}
	for _, r := range roles {
		if user.Role == r {
			return true
		}
	}
	return false
}

// AllowRoles builds a policy granting every action to the listed roles.
func AllowRoles(roles ...models.Role) Policy {
	return PolicyFunc(func(_ context.Context, user *models.User, _ Action) bool {
		return HasRole(user, roles...)
	})
}

// AllowAllButApprove grants the listed approver roles everything and every
// other role all actions except approval — the sample/delivery-note rule.
func AllowAllButApprove(approvers ...models.Role) Policy {
	return PolicyFunc(func(_ context.Context, user *models.User, action Action) bool {
		if user == nil {
			return false
		}
		if action == ActionApprove {
			return HasRole(user, approvers...)
		}
		return true
	})
}
