package customerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fernandollisboa/boardcamp/model"
	"github.com/fernandollisboa/boardcamp/util/date"
)

type Repo interface {
	List(ctx context.Context, cpfPrefix string) ([]model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	// ExistsByCPF with excludeID > 0 ignores that customer's own row, so an
	// update does not conflict with itself.
	ExistsByCPF(ctx context.Context, cpf string, excludeID int64) (bool, error)
	Insert(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error
}

type repo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) Repo { return &repo{db: db} }

func (r *repo) List(ctx context.Context, cpfPrefix string) ([]model.Customer, error) {
	const base = `SELECT id, name, phone, cpf, birthday FROM customers`

	var (
		rows pgx.Rows
		err  error
	)
	if cpfPrefix != "" {
		rows, err = r.db.Query(ctx, base+` WHERE cpf LIKE $1 ORDER BY id`, cpfPrefix+"%")
	} else {
		rows, err = r.db.Query(ctx, base+` ORDER BY id`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const q = `SELECT id, name, phone, cpf, birthday FROM customers WHERE id = $1`
	row := r.db.QueryRow(ctx, q, id)

	c, err := scanCustomer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) ExistsByCPF(ctx context.Context, cpf string, excludeID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM customers WHERE cpf = $1 AND id <> $2)`
	var exists bool
	err := r.db.QueryRow(ctx, q, cpf, excludeID).Scan(&exists)
	return exists, err
}

func (r *repo) Insert(ctx context.Context, c model.Customer) (model.Customer, error) {
	const q = `
		INSERT INTO customers (name, phone, cpf, birthday)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRow(ctx, q, c.Name, c.Phone, c.CPF, c.Birthday.Time()).Scan(&c.ID)
	return c, err
}

func (r *repo) Update(ctx context.Context, c model.Customer) error {
	const q = `
		UPDATE customers
		SET name = $2, phone = $3, cpf = $4, birthday = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, q, c.ID, c.Name, c.Phone, c.CPF, c.Birthday.Time())
	return err
}

func scanCustomer(row pgx.Row) (model.Customer, error) {
	var (
		c        model.Customer
		birthday time.Time
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.CPF, &birthday); err != nil {
		return model.Customer{}, err
	}
	c.Birthday = date.FromTime(birthday)
	return c, nil
}
