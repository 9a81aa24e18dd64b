package directory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/siteguard/api/internal/policy"
	"github.com/siteguard/api/internal/session"
	"github.com/siteguard/api/internal/util"
)

var (
	// ErrNotFound é retornado quando o usuário não existe.
	ErrNotFound = errors.New("usuário não encontrado")
	// ErrInvalid agrupa falhas de validação de cadastro.
	ErrInvalid = errors.New("usuário inválido")
)

// User é um membro da equipe com papel atribuído.
type User struct {
	ID     int          `json:"id"`
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Role   session.Role `json:"role"`
	Status string       `json:"status"`
}

// UpdateInput reúne os campos editáveis de um usuário.
type UpdateInput struct {
	Name  string
	Email string
	Role  session.Role
}

// Directory mantém a equipe em memória. Mutações exigem a capacidade
// manageUsers e falham sem efeito colateral quando negadas.
type Directory struct {
	mu     sync.Mutex
	users  []User
	lastID int
}

// NewDirectory cria o diretório com os usuários iniciais.
func NewDirectory(seed []User) *Directory {
	d := &Directory{users: make([]User, 0, len(seed))}
	for _, u := range seed {
		d.users = append(d.users, u)
		if u.ID > d.lastID {
			d.lastID = u.ID
		}
	}
	return d
}

// List devolve os usuários em ordem de inserção.
func (d *Directory) List() []User {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]User, len(d.users))
	copy(out, d.users)
	return out
}

// Create adiciona um usuário após validação.
func (d *Directory) Create(actor session.Role, input UpdateInput) (User, error) {
	if !policy.Allows(actor, policy.ManageUsers) {
		return User{}, policy.ErrForbidden
	}
	if err := validate(input); err != nil {
		return User{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.lastID++
	user := User{
		ID:     d.lastID,
		Name:   input.Name,
		Email:  input.Email,
		Role:   input.Role,
		Status: "active",
	}
	d.users = append(d.users, user)
	return user, nil
}

// Update edita nome, e-mail e papel do usuário.
func (d *Directory) Update(actor session.Role, id int, input UpdateInput) (User, error) {
	if !policy.Allows(actor, policy.ManageUsers) {
		return User{}, policy.ErrForbidden
	}
	if err := validate(input); err != nil {
		return User{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i, u := range d.users {
		if u.ID == id {
			d.users[i].Name = input.Name
			d.users[i].Email = input.Email
			d.users[i].Role = input.Role
			return d.users[i], nil
		}
	}
	return User{}, ErrNotFound
}

// Delete remove o usuário pelo id.
func (d *Directory) Delete(actor session.Role, id int) error {
	if !policy.Allows(actor, policy.ManageUsers) {
		return policy.ErrForbidden
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i, u := range d.users {
		if u.ID == id {
			d.users = append(d.users[:i], d.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Count devolve o total de usuários cadastrados.
func (d *Directory) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.users)
}

func validate(input UpdateInput) error {
	if err := util.RequireString(input.Name, "nome"); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, err.Error())
	}
	if err := util.ValidateEmail(input.Email); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, err.Error())
	}
	if !input.Role.IsSet() {
		return fmt.Errorf("%w: papel obrigatório", ErrInvalid)
	}
	return nil
}
