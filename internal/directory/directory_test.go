package directory

import (
	"errors"
	"reflect"
	"testing"

	"github.com/siteguard/api/internal/policy"
	"github.com/siteguard/api/internal/session"
)

func seedUsers() []User {
	return []User{
		{ID: 1, Name: "John Smith", Email: "john@siteguard.com", Role: session.RoleAdmin, Status: "active"},
		{ID: 2, Name: "Sarah Johnson", Email: "sarah@siteguard.com", Role: session.RoleManager, Status: "active"},
	}
}

func TestCreate(t *testing.T) {
	d := NewDirectory(seedUsers())

	user, err := d.Create(session.RoleAdmin, UpdateInput{
		Name:  "Mike Wilson",
		Email: "mike@siteguard.com",
		Role:  session.RoleRepresentative,
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if user.ID != 3 {
		t.Fatalf("esperava id 3, veio %d", user.ID)
	}
	if user.Status != "active" {
		t.Fatalf("novo usuário deveria nascer ativo, veio %q", user.Status)
	}
}

func TestMutationsDeniedLeaveDirectoryUntouched(t *testing.T) {
	d := NewDirectory(seedUsers())
	before := d.List()

	input := UpdateInput{Name: "Mike Wilson", Email: "mike@siteguard.com", Role: session.RoleRepresentative}
	for _, actor := range []session.Role{session.RoleManager, session.RoleRepresentative, session.RoleNone} {
		if _, err := d.Create(actor, input); !errors.Is(err, policy.ErrForbidden) {
			t.Fatalf("Create por %q deveria ser negado, veio %v", actor, err)
		}
		if _, err := d.Update(actor, 1, input); !errors.Is(err, policy.ErrForbidden) {
			t.Fatalf("Update por %q deveria ser negado, veio %v", actor, err)
		}
		if err := d.Delete(actor, 1); !errors.Is(err, policy.ErrForbidden) {
			t.Fatalf("Delete por %q deveria ser negado, veio %v", actor, err)
		}
	}

	if !reflect.DeepEqual(before, d.List()) {
		t.Fatal("diretório mudou após tentativas negadas")
	}
}

func TestCreateValidation(t *testing.T) {
	d := NewDirectory(nil)

	cases := []struct {
		name  string
		input UpdateInput
	}{
		{"sem nome", UpdateInput{Email: "a@b.com", Role: session.RoleManager}},
		{"email inválido", UpdateInput{Name: "x", Email: "não-é-email", Role: session.RoleManager}},
		{"sem papel", UpdateInput{Name: "x", Email: "a@b.com"}},
	}

	for _, tc := range cases {
		if _, err := d.Create(session.RoleAdmin, tc.input); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: esperava ErrInvalid, veio %v", tc.name, err)
		}
	}

	if d.Count() != 0 {
		t.Fatalf("cadastros inválidos foram persistidos: %d", d.Count())
	}
}

func TestUpdate(t *testing.T) {
	d := NewDirectory(seedUsers())

	updated, err := d.Update(session.RoleAdmin, 2, UpdateInput{
		Name:  "Sarah Johnson-Lee",
		Email: "sarah.lee@siteguard.com",
		Role:  session.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if updated.Name != "Sarah Johnson-Lee" || updated.Role != session.RoleAdmin {
		t.Fatalf("atualização não aplicada: %+v", updated)
	}

	if _, err := d.Update(session.RoleAdmin, 99, UpdateInput{Name: "x", Email: "a@b.com", Role: session.RoleManager}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("esperava ErrNotFound, veio %v", err)
	}
}

func TestDelete(t *testing.T) {
	d := NewDirectory(seedUsers())

	if err := d.Delete(session.RoleAdmin, 1); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if d.Count() != 1 {
		t.Fatalf("esperava 1 usuário, veio %d", d.Count())
	}
	if err := d.Delete(session.RoleAdmin, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("esperava ErrNotFound, veio %v", err)
	}
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	d := NewDirectory(seedUsers())

	if err := d.Delete(session.RoleAdmin, 2); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	user, err := d.Create(session.RoleAdmin, UpdateInput{Name: "Mike Wilson", Email: "mike@siteguard.com", Role: session.RoleRepresentative})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if user.ID != 3 {
		t.Fatalf("id removido foi reaproveitado: %d", user.ID)
	}
}
