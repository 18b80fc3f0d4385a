package gamerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fernandollisboa/boardcamp/model"
)

type Repo interface {
	List(ctx context.Context, namePrefix string) ([]model.Game, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	CategoryExists(ctx context.Context, categoryID int64) (bool, error)
	Insert(ctx context.Context, g model.Game) (model.Game, error)
}

type repo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) Repo { return &repo{db: db} }

func (r *repo) List(ctx context.Context, namePrefix string) ([]model.Game, error) {
	const base = `SELECT id, name, COALESCE(image, ''), "stockTotal", "categoryId", "pricePerDay" FROM games`

	var (
		rows pgx.Rows
		err  error
	)
	if namePrefix != "" {
		rows, err = r.db.Query(ctx, base+` WHERE name ILIKE $1 ORDER BY id`, namePrefix+"%")
	} else {
		rows, err = r.db.Query(ctx, base+` ORDER BY id`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Game{}
	for rows.Next() {
		var g model.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.CategoryID, &g.PricePerDay); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *repo) ExistsByName(ctx context.Context, name string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM games WHERE name ILIKE $1)`
	var exists bool
	err := r.db.QueryRow(ctx, q, name).Scan(&exists)
	return exists, err
}

func (r *repo) CategoryExists(ctx context.Context, categoryID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, q, categoryID).Scan(&exists)
	return exists, err
}

func (r *repo) Insert(ctx context.Context, g model.Game) (model.Game, error) {
	const q = `
		INSERT INTO games (name, image, "stockTotal", "categoryId", "pricePerDay")
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.QueryRow(ctx, q, g.Name, g.Image, g.StockTotal, g.CategoryID, g.PricePerDay).Scan(&g.ID)
	return g, err
}
