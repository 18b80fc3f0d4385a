package gamesvc

import (
	"context"
	"errors"

	"github.com/fernandollisboa/boardcamp/model"
)

var (
	ErrDuplicate       = errors.New("game name already exists")
	ErrCategoryMissing = errors.New("referenced category does not exist")
)

type Repo interface {
	List(ctx context.Context, namePrefix string) ([]model.Game, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	CategoryExists(ctx context.Context, categoryID int64) (bool, error)
	Insert(ctx context.Context, g model.Game) (model.Game, error)
}

type Service interface {
	List(ctx context.Context, namePrefix string) ([]model.Game, error)
	Create(ctx context.Context, g model.Game) (model.Game, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context, namePrefix string) ([]model.Game, error) {
	return s.r.List(ctx, namePrefix)
}

func (s *service) Create(ctx context.Context, g model.Game) (model.Game, error) {
	dup, err := s.r.ExistsByName(ctx, g.Name)
	if err != nil {
		return model.Game{}, err
	}
	if dup {
		return model.Game{}, ErrDuplicate
	}

	ok, err := s.r.CategoryExists(ctx, g.CategoryID)
	if err != nil {
		return model.Game{}, err
	}
	if !ok {
		return model.Game{}, ErrCategoryMissing
	}

	return s.r.Insert(ctx, g)
}
