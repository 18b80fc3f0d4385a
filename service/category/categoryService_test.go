// service/category/category_service_test.go
package categorysvc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fernandollisboa/boardcamp/model"
	categorysvc "github.com/fernandollisboa/boardcamp/service/category"
)

type repoMock struct {
	listFn   func(ctx context.Context) ([]model.Category, error)
	existsFn func(ctx context.Context, name string) (bool, error)
	insertFn func(ctx context.Context, name string) (model.Category, error)
}

func (m *repoMock) List(ctx context.Context) ([]model.Category, error) { return m.listFn(ctx) }
func (m *repoMock) ExistsByName(ctx context.Context, name string) (bool, error) {
	return m.existsFn(ctx, name)
}
func (m *repoMock) Insert(ctx context.Context, name string) (model.Category, error) {
	return m.insertFn(ctx, name)
}

func TestCreate_Duplicate(t *testing.T) {
	inserts := 0
	m := &repoMock{
		existsFn: func(ctx context.Context, name string) (bool, error) { return true, nil },
		insertFn: func(ctx context.Context, name string) (model.Category, error) {
			inserts++
			return model.Category{}, nil
		},
	}
	s := categorysvc.New(m)

	_, err := s.Create(context.Background(), "Estratégia")
	if !errors.Is(err, categorysvc.ErrDuplicate) {
		t.Fatalf("got %v; want ErrDuplicate", err)
	}
	if inserts != 0 {
		t.Fatalf("insert called %d times on duplicate", inserts)
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		existsFn: func(ctx context.Context, name string) (bool, error) { return false, nil },
		insertFn: func(ctx context.Context, name string) (model.Category, error) {
			return model.Category{ID: 4, Name: name}, nil
		},
	}
	s := categorysvc.New(m)

	out, err := s.Create(context.Background(), "Estratégia")
	if err != nil || out.ID != 4 || out.Name != "Estratégia" {
		t.Fatalf("got %+v err=%v; want id=4", out, err)
	}
}

func TestList_PassThrough(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context) ([]model.Category, error) {
			return []model.Category{{ID: 1, Name: "Euro"}}, nil
		},
	}
	s := categorysvc.New(m)

	out, err := s.List(context.Background())
	if err != nil || len(out) != 1 {
		t.Fatalf("got %v err=%v; want one category", out, err)
	}
}
