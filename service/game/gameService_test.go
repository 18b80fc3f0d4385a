package gamesvc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fernandollisboa/boardcamp/model"
	gamesvc "github.com/fernandollisboa/boardcamp/service/game"
)

type repoMock struct {
	listFn     func(ctx context.Context, namePrefix string) ([]model.Game, error)
	existsFn   func(ctx context.Context, name string) (bool, error)
	categoryFn func(ctx context.Context, categoryID int64) (bool, error)
	insertFn   func(ctx context.Context, g model.Game) (model.Game, error)
}

func (m *repoMock) List(ctx context.Context, namePrefix string) ([]model.Game, error) {
	return m.listFn(ctx, namePrefix)
}
func (m *repoMock) ExistsByName(ctx context.Context, name string) (bool, error) {
	return m.existsFn(ctx, name)
}
func (m *repoMock) CategoryExists(ctx context.Context, categoryID int64) (bool, error) {
	return m.categoryFn(ctx, categoryID)
}
func (m *repoMock) Insert(ctx context.Context, g model.Game) (model.Game, error) {
	return m.insertFn(ctx, g)
}

func sampleGame() model.Game {
	return model.Game{Name: "Detetive", Image: "http://img.test/detetive.jpg", StockTotal: 3, CategoryID: 1, PricePerDay: 1500}
}

func TestCreate_DuplicateName(t *testing.T) {
	m := &repoMock{
		existsFn: func(ctx context.Context, name string) (bool, error) { return true, nil },
	}
	s := gamesvc.New(m)

	if _, err := s.Create(context.Background(), sampleGame()); !errors.Is(err, gamesvc.ErrDuplicate) {
		t.Fatalf("got %v; want ErrDuplicate", err)
	}
}

func TestCreate_CategoryMissing(t *testing.T) {
	inserts := 0
	m := &repoMock{
		existsFn:   func(ctx context.Context, name string) (bool, error) { return false, nil },
		categoryFn: func(ctx context.Context, categoryID int64) (bool, error) { return false, nil },
		insertFn: func(ctx context.Context, g model.Game) (model.Game, error) {
			inserts++
			return g, nil
		},
	}
	s := gamesvc.New(m)

	if _, err := s.Create(context.Background(), sampleGame()); !errors.Is(err, gamesvc.ErrCategoryMissing) {
		t.Fatalf("got %v; want ErrCategoryMissing", err)
	}
	if inserts != 0 {
		t.Fatal("insert must not run when category is missing")
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		existsFn:   func(ctx context.Context, name string) (bool, error) { return false, nil },
		categoryFn: func(ctx context.Context, categoryID int64) (bool, error) { return true, nil },
		insertFn: func(ctx context.Context, g model.Game) (model.Game, error) {
			g.ID = 2
			return g, nil
		},
	}
	s := gamesvc.New(m)

	out, err := s.Create(context.Background(), sampleGame())
	if err != nil || out.ID != 2 {
		t.Fatalf("got %+v err=%v; want id=2", out, err)
	}
}
