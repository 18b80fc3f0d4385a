package categoryrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fernandollisboa/boardcamp/model"
)

type Repo interface {
	List(ctx context.Context) ([]model.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Insert(ctx context.Context, name string) (model.Category, error)
}

type repo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) Repo { return &repo{db: db} }

func (r *repo) List(ctx context.Context) ([]model.Category, error) {
	const q = `SELECT id, name FROM categories ORDER BY id`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) ExistsByName(ctx context.Context, name string) (bool, error) {
	// case-insensitive, matching the duplicate check the API always applied
	const q = `SELECT EXISTS (SELECT 1 FROM categories WHERE name ILIKE $1)`
	var exists bool
	err := r.db.QueryRow(ctx, q, name).Scan(&exists)
	return exists, err
}

func (r *repo) Insert(ctx context.Context, name string) (model.Category, error) {
	const q = `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	c := model.Category{Name: name}
	err := r.db.QueryRow(ctx, q, name).Scan(&c.ID)
	return c, err
}
