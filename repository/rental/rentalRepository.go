// repository/rental/repo.go
package rentalrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fernandollisboa/boardcamp/model"
	"github.com/fernandollisboa/boardcamp/util/date"
)

type Repo interface {
	// Listing (outside any transaction)
	List(ctx context.Context, customerID, gameID int64) ([]model.RentalWithRefs, error)

	// Open sequence: the game row is locked so the outstanding count and the
	// insert behave as one atomic unit per game.
	CustomerExists(ctx context.Context, tx pgx.Tx, id int64) (bool, error)
	GameForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*model.Game, error)
	CountOutstanding(ctx context.Context, tx pgx.Tx, gameID int64) (int64, error)
	Insert(ctx context.Context, tx pgx.Tx, r *model.Rental) (int64, error)

	// Close/delete sequence: the rental row is locked for the duration of the
	// already-returned check.
	GetForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*model.Rental, error)
	SetReturned(ctx context.Context, tx pgx.Tx, id int64, returnDate date.Date, delayFee int) error
	Delete(ctx context.Context, tx pgx.Tx, id int64) error
}

type repo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) Repo { return &repo{db: db} }

func (r *repo) List(ctx context.Context, customerID, gameID int64) ([]model.RentalWithRefs, error) {
	q := `
		SELECT r.id, r."customerId", r."gameId", r."rentDate", r."daysRented",
		       r."returnDate", r."originalPrice", r."delayFee",
		       c.name  AS customer_name,
		       g.name  AS game_name,
		       g."categoryId",
		       cat.name AS category_name
		FROM rentals r
		JOIN customers c   ON c.id = r."customerId"
		JOIN games g       ON g.id = r."gameId"
		JOIN categories cat ON cat.id = g."categoryId"`

	var conds []string
	var args []any
	if customerID > 0 {
		args = append(args, customerID)
		conds = append(conds, fmt.Sprintf(`r."customerId" = $%d`, len(args)))
	}
	if gameID > 0 {
		args = append(args, gameID)
		conds = append(conds, fmt.Sprintf(`r."gameId" = $%d`, len(args)))
	}
	if len(conds) > 0 {
		q += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	q += "\n\t\tORDER BY r.id"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.RentalWithRefs{}
	for rows.Next() {
		var (
			rr         model.RentalWithRefs
			rentDate   time.Time
			returnDate *time.Time
		)
		if err := rows.Scan(
			&rr.ID, &rr.CustomerID, &rr.GameID, &rentDate, &rr.DaysRented,
			&returnDate, &rr.OriginalPrice, &rr.DelayFee,
			&rr.Customer.Name, &rr.Game.Name, &rr.Game.CategoryID, &rr.Game.CategoryName,
		); err != nil {
			return nil, err
		}
		rr.RentDate = date.FromTime(rentDate)
		if returnDate != nil {
			d := date.FromTime(*returnDate)
			rr.ReturnDate = &d
		}
		rr.Customer.ID = rr.CustomerID
		rr.Game.ID = rr.GameID
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *repo) CustomerExists(ctx context.Context, tx pgx.Tx, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`
	var exists bool
	err := tx.QueryRow(ctx, q, id).Scan(&exists)
	return exists, err
}

func (r *repo) GameForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*model.Game, error) {
	const q = `
		SELECT id, name, COALESCE(image, ''), "stockTotal", "categoryId", "pricePerDay"
		FROM games
		WHERE id = $1
		FOR UPDATE`
	var g model.Game
	err := tx.QueryRow(ctx, q, id).Scan(&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.CategoryID, &g.PricePerDay)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repo) CountOutstanding(ctx context.Context, tx pgx.Tx, gameID int64) (int64, error) {
	const q = `SELECT COUNT(*) FROM rentals WHERE "gameId" = $1 AND "returnDate" IS NULL`
	var n int64
	err := tx.QueryRow(ctx, q, gameID).Scan(&n)
	return n, err
}

func (r *repo) Insert(ctx context.Context, tx pgx.Tx, rental *model.Rental) (int64, error) {
	const q = `
		INSERT INTO rentals ("customerId", "gameId", "rentDate", "daysRented", "returnDate", "originalPrice", "delayFee")
		VALUES ($1, $2, $3, $4, NULL, $5, NULL)
		RETURNING id`
	var id int64
	err := tx.QueryRow(ctx, q,
		rental.CustomerID, rental.GameID, rental.RentDate.Time(), rental.DaysRented, rental.OriginalPrice,
	).Scan(&id)
	return id, err
}

func (r *repo) GetForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*model.Rental, error) {
	const q = `
		SELECT id, "customerId", "gameId", "rentDate", "daysRented", "returnDate", "originalPrice", "delayFee"
		FROM rentals
		WHERE id = $1
		FOR UPDATE`
	var (
		rental     model.Rental
		rentDate   time.Time
		returnDate *time.Time
	)
	err := tx.QueryRow(ctx, q, id).Scan(
		&rental.ID, &rental.CustomerID, &rental.GameID, &rentDate,
		&rental.DaysRented, &returnDate, &rental.OriginalPrice, &rental.DelayFee,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rental.RentDate = date.FromTime(rentDate)
	if returnDate != nil {
		d := date.FromTime(*returnDate)
		rental.ReturnDate = &d
	}
	return &rental, nil
}

func (r *repo) SetReturned(ctx context.Context, tx pgx.Tx, id int64, returnDate date.Date, delayFee int) error {
	// Both fields in one statement: a rental with only one of them set must
	// never be observable.
	const q = `
		UPDATE rentals
		SET "returnDate" = $2,
		    "delayFee"   = $3
		WHERE id = $1`
	_, err := tx.Exec(ctx, q, id, returnDate.Time(), delayFee)
	return err
}

func (r *repo) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	const q = `DELETE FROM rentals WHERE id = $1`
	_, err := tx.Exec(ctx, q, id)
	return err
}
