package categorysvc

import (
	"context"
	"errors"

	"github.com/fernandollisboa/boardcamp/model"
)

var ErrDuplicate = errors.New("category name already exists")

type Repo interface {
	List(ctx context.Context) ([]model.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Insert(ctx context.Context, name string) (model.Category, error)
}

type Service interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, name string) (model.Category, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Category, error) {
	return s.r.List(ctx)
}

func (s *service) Create(ctx context.Context, name string) (model.Category, error) {
	dup, err := s.r.ExistsByName(ctx, name)
	if err != nil {
		return model.Category{}, err
	}
	if dup {
		return model.Category{}, ErrDuplicate
	}
	return s.r.Insert(ctx, name)
}
