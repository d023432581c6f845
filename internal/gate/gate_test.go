package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/archemics/salessnap/internal/models"
)

func TestAuthorizeNilUser(t *testing.T) {
	g := New()
	g.Register("user", AllowRoles(models.RoleAdmin))
	if err := g.Authorize(context.Background(), nil, ActionList, "user"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized got %v", err)
	}
}

func TestAuthorizeNoPolicy(t *testing.T) {
	g := New()
	u := &models.User{ID: "1", Role: models.RoleAdmin}
	if err := g.Authorize(context.Background(), u, ActionList, "ghost"); !errors.Is(err, ErrNoPolicyDefined) {
		t.Fatalf("expected ErrNoPolicyDefined got %v", err)
	}
}

func TestAllowRoles(t *testing.T) {
	g := New()
	g.Register("user", AllowRoles(models.RoleAdmin))
	admin := &models.User{ID: "1", Role: models.RoleAdmin}
	sales := &models.User{ID: "2", Role: models.RoleSales}
	if !g.Can(context.Background(), admin, ActionCreate, "user") {
		t.Fatalf("admin should manage users")
	}
	if g.Can(context.Background(), sales, ActionCreate, "user") {
		t.Fatalf("sales must not manage users")
	}
}

func TestAllowAllButApprove(t *testing.T) {
	g := New()
	g.Register("delivery_note", AllowAllButApprove(models.RoleManager, models.RoleAdmin))
	sales := &models.User{ID: "2", Role: models.RoleSales}
	manager := &models.User{ID: "3", Role: models.RoleManager}
	if !g.Can(context.Background(), sales, ActionCreate, "delivery_note") {
		t.Fatalf("sales may create delivery notes")
	}
	if g.Can(context.Background(), sales, ActionApprove, "delivery_note") {
		t.Fatalf("sales must not approve delivery notes")
	}
	if !g.Can(context.Background(), manager, ActionApprove, "delivery_note") {
		t.Fatalf("manager approves delivery notes")
	}
}

func TestHasRole(t *testing.T) {
	u := &models.User{Role: models.RoleManager}
	if !HasRole(u, models.RoleManager, models.RoleAdmin) {
		t.Fatalf("expected role match")
	}
	if HasRole(nil, models.RoleAdmin) {
		t.Fatalf("nil user never has a role")
	}
}
