package usecase

import (
	"gridworks/internal/domain"
	"gridworks/internal/repo"
)

// Service exposes every resource operation of the backend. It is safe for
// concurrent use as long as its stores are. Paging holds the workspace's
// configured page bounds; the zero value applies the package defaults.
type Service struct {
	Stores Stores
	Hasher PasswordHasher
	Paging domain.PageBounds
}

func (s Service) normalize(q domain.PageQuery) domain.PageInput {
	return domain.NormalizePageWith(q, s.Paging)
}

// New wires a Service onto the SQLite repository.
func New(r repo.Repo, h PasswordHasher) Service {
	return Service{
		Stores: Stores{
			Employees:   r,
			Equipments:  r,
			Teams:       r,
			Foundations: r,
			Towers:      r,
			Tasks:       r,
			Productions: r,
			Works:       r,
			Users:       r,
		},
		Hasher: h,
	}
}
