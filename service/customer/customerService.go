package customersvc

import (
	"context"
	"errors"

	"github.com/fernandollisboa/boardcamp/model"
)

var (
	ErrDuplicateCPF = errors.New("cpf already registered")
	ErrNotFound     = errors.New("customer not found")
)

type Repo interface {
	List(ctx context.Context, cpfPrefix string) ([]model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	ExistsByCPF(ctx context.Context, cpf string, excludeID int64) (bool, error)
	Insert(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error
}

type Service interface {
	List(ctx context.Context, cpfPrefix string) ([]model.Customer, error)
	Detail(ctx context.Context, id int64) (model.Customer, error)
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) (model.Customer, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context, cpfPrefix string) ([]model.Customer, error) {
	return s.r.List(ctx, cpfPrefix)
}

func (s *service) Detail(ctx context.Context, id int64) (model.Customer, error) {
	c, err := s.r.GetByID(ctx, id)
	if err != nil {
		return model.Customer{}, err
	}
	if c == nil {
		return model.Customer{}, ErrNotFound
	}
	return *c, nil
}

func (s *service) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	dup, err := s.r.ExistsByCPF(ctx, c.CPF, 0)
	if err != nil {
		return model.Customer{}, err
	}
	if dup {
		return model.Customer{}, ErrDuplicateCPF
	}
	return s.r.Insert(ctx, c)
}

func (s *service) Update(ctx context.Context, c model.Customer) (model.Customer, error) {
	existing, err := s.r.GetByID(ctx, c.ID)
	if err != nil {
		return model.Customer{}, err
	}
	if existing == nil {
		return model.Customer{}, ErrNotFound
	}

	// another customer holding the same cpf blocks the update
	dup, err := s.r.ExistsByCPF(ctx, c.CPF, c.ID)
	if err != nil {
		return model.Customer{}, err
	}
	if dup {
		return model.Customer{}, ErrDuplicateCPF
	}

	if err := s.r.Update(ctx, c); err != nil {
		return model.Customer{}, err
	}
	return c, nil
}
