// Package memory es un doble de prueba de los puertos de persistencia, con las
// mismas restricciones que el esquema SQL (únicos y claves foráneas). Solo lo usan
// las pruebas de casos de uso y de HTTP; cmd/api trabaja siempre con postgres.
//
// Los valores se copian al guardar y al leer: nunca se retienen strings del
// llamador.
package memory

import (
	"context"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/mis-libros/internal/domain"
	"github.com/jhoicas/mis-libros/internal/domain/entity"
	"github.com/jhoicas/mis-libros/internal/domain/repository"
)

// Store guarda las tres tablas bajo un único mutex.
type Store struct {
	mu        sync.Mutex
	roles     map[int64]entity.Role
	users     map[int64]entity.User
	libros    map[int64]entity.Libro
	nextRole  int64
	nextUser  int64
	nextLibro int64
}

// NewStore crea un store con los roles iniciales (Lector, Moderador, Admin).
func NewStore() *Store {
	s := &Store{
		roles:  make(map[int64]entity.Role),
		users:  make(map[int64]entity.User),
		libros: make(map[int64]entity.Libro),
	}
	for _, k := range entity.KnownRoles() {
		s.AddRole(k.String())
	}
	return s
}

// AddRole inserta un rol y devuelve su ID.
func (s *Store) AddRole(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextRole++
	s.roles[s.nextRole] = entity.Role{ID: s.nextRole, Name: name}
	return s.nextRole
}

// RenameRole cambia el nombre de un rol existente.
func (s *Store) RenameRole(id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.roles[id]; ok {
		r.Name = name
		s.roles[id] = r
	}
}

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Roles devuelve el repositorio de roles.
func (s *Store) Roles() *RoleRepo { return &RoleRepo{s: s} }

// Libros devuelve el repositorio de libros.
func (s *Store) Libros() *LibroRepo { return &LibroRepo{s: s} }

// TxRunner devuelve un runner que ejecuta fn sobre el mismo store.
// No hay rollback: las pruebas no dependen de él.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

var (
	_ repository.UserRepository  = (*UserRepo)(nil)
	_ repository.RoleRepository  = (*RoleRepo)(nil)
	_ repository.LibroRepository = (*LibroRepo)(nil)
	_ repository.LibroTxRunner   = (*TxRunner)(nil)
)

// RoleRepo roles en memoria.
type RoleRepo struct{ s *Store }

func (r *RoleRepo) GetByID(_ context.Context, id int64) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	role, ok := r.s.roles[id]
	if !ok {
		return nil, nil
	}
	return &role, nil
}

func (r *RoleRepo) GetByName(_ context.Context, name string) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, role := range r.s.roles {
		if role.Name == name {
			role := role
			return &role, nil
		}
	}
	return nil, nil
}

func (r *RoleRepo) List(_ context.Context) ([]*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Role, 0, len(r.s.roles))
	for _, id := range sortedKeys(r.s.roles) {
		role := r.s.roles[id]
		list = append(list, &role)
	}
	return list, nil
}

// UserRepo usuarios en memoria.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.roles[u.RoleID]; !ok {
		return domain.ErrInvalidReference
	}
	for _, existing := range r.s.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.nextUser++
	u.ID = r.s.nextUser
	r.s.users[u.ID] = cloneUser(*u)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) UpdatePassword(_ context.Context, id int64, hash string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = strings.Clone(hash)
	u.UpdatedAt = at
	r.s.users[id] = u
	return nil
}

func (r *UserRepo) ListWithRoles(_ context.Context) ([]*entity.UserWithRole, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.UserWithRole, 0, len(r.s.users))
	for _, id := range sortedKeys(r.s.users) {
		u := r.s.users[id]
		list = append(list, &entity.UserWithRole{User: u, Role: r.s.roles[u.RoleID]})
	}
	return list, nil
}

// LibroRepo libros en memoria.
type LibroRepo struct{ s *Store }

func (r *LibroRepo) Create(_ context.Context, l *entity.Libro) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkLocked(l); err != nil {
		return err
	}
	r.s.nextLibro++
	l.ID = r.s.nextLibro
	r.s.libros[l.ID] = cloneLibro(*l)
	return nil
}

func (r *LibroRepo) GetByID(_ context.Context, id int64) (*entity.Libro, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.libros[id]
	if !ok {
		return nil, nil
	}
	c := cloneLibro(l)
	return &c, nil
}

func (r *LibroRepo) List(_ context.Context) ([]*entity.Libro, error) {
	return r.filter(func(entity.Libro) bool { return true }), nil
}

func (r *LibroRepo) ListByPropietario(_ context.Context, propietarioID int64) ([]*entity.Libro, error) {
	return r.filter(func(l entity.Libro) bool { return l.PropietarioID == propietarioID }), nil
}

func (r *LibroRepo) Update(_ context.Context, l *entity.Libro) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.libros[l.ID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.checkLocked(l); err != nil {
		return err
	}
	r.s.libros[l.ID] = cloneLibro(*l)
	return nil
}

func (r *LibroRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.libros[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.libros, id)
	return nil
}

// checkLocked replica las restricciones de la tabla libros.
func (r *LibroRepo) checkLocked(l *entity.Libro) error {
	if _, ok := r.s.users[l.PropietarioID]; !ok {
		return domain.ErrInvalidReference
	}
	if len([]rune(l.Titulo)) > 150 || len([]rune(l.Autor)) > 100 {
		return domain.ErrInvalidInput
	}
	return nil
}

func (r *LibroRepo) filter(keep func(entity.Libro) bool) []*entity.Libro {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Libro, 0)
	for _, id := range sortedKeys(r.s.libros) {
		l := r.s.libros[id]
		if keep(l) {
			c := cloneLibro(l)
			list = append(list, &c)
		}
	}
	return list
}

// TxRunner ejecuta fn con el repositorio de libros del store. Si fn falla se
// restaura la tabla libros tal como estaba al empezar.
type TxRunner struct{ s *Store }

func (t *TxRunner) RunLibros(_ context.Context, fn func(libros repository.LibroRepository) error) error {
	t.s.mu.Lock()
	snapshot, next := maps.Clone(t.s.libros), t.s.nextLibro
	t.s.mu.Unlock()

	if err := fn(t.s.Libros()); err != nil {
		t.s.mu.Lock()
		t.s.libros, t.s.nextLibro = snapshot, next
		t.s.mu.Unlock()
		return err
	}
	return nil
}

func cloneUser(u entity.User) entity.User {
	c := u
	c.Username = strings.Clone(u.Username)
	c.Email = strings.Clone(u.Email)
	c.PasswordHash = strings.Clone(u.PasswordHash)
	return c
}

func cloneLibro(l entity.Libro) entity.Libro {
	c := l
	c.Titulo = strings.Clone(l.Titulo)
	c.Autor = strings.Clone(l.Autor)
	c.AnioPublicacion = clonePtr(l.AnioPublicacion)
	c.Genero = cloneString(l.Genero)
	c.URL = cloneString(l.URL)
	c.Notas = cloneString(l.Notas)
	c.Etiquetas = cloneString(l.Etiquetas)
	return c
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.Clone(*p)
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
