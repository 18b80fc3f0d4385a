package rentalsvc

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/fernandollisboa/boardcamp/model"
	"github.com/fernandollisboa/boardcamp/util/date"
)

// errors used by controllers

type ErrCode string

const (
	ErrInvalidReference ErrCode = "INVALID_REFERENCE" // customer or game id does not exist
	ErrOutOfStock       ErrCode = "OUT_OF_STOCK"
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrAlreadyClosed    ErrCode = "ALREADY_CLOSED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts the error code; any error without one is a storage failure
// the caller maps to a server error.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// DB begins transactions; satisfied by *pgxpool.Pool.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repo interface {
	List(ctx context.Context, customerID, gameID int64) ([]model.RentalWithRefs, error)

	CustomerExists(ctx context.Context, tx pgx.Tx, id int64) (bool, error)
	GameForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*model.Game, error)
	CountOutstanding(ctx context.Context, tx pgx.Tx, gameID int64) (int64, error)
	Insert(ctx context.Context, tx pgx.Tx, r *model.Rental) (int64, error)

	GetForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*model.Rental, error)
	SetReturned(ctx context.Context, tx pgx.Tx, id int64, returnDate date.Date, delayFee int) error
	Delete(ctx context.Context, tx pgx.Tx, id int64) error
}

type Service interface {
	// List returns rentals joined with customer/game data, optionally
	// filtered by customer and/or game id (0 = no filter).
	List(ctx context.Context, customerID, gameID int64) ([]model.RentalWithRefs, error)

	// Open creates a rental after validating the referenced customer and
	// game and that the game still has a unit in stock.
	Open(ctx context.Context, customerID, gameID int64, daysRented int) (*model.Rental, error)

	// Close marks a rental returned, computing the delay fee. A rental can
	// be closed exactly once.
	Close(ctx context.Context, rentalID int64) (*model.Rental, error)

	// Delete removes a rental that has not been returned yet.
	Delete(ctx context.Context, rentalID int64) error
}

// ----- Service implementation -----

type service struct {
	db DB
	r  Repo
}

func New(db DB, r Repo) Service {
	return &service{db: db, r: r}
}

func (s *service) List(ctx context.Context, customerID, gameID int64) ([]model.RentalWithRefs, error) {
	return s.r.List(ctx, customerID, gameID)
}

// Open runs the stock check and the insert in one transaction, with the game
// row locked, so two concurrent opens cannot both take the last unit.
func (s *service) Open(ctx context.Context, customerID, gameID int64, daysRented int) (*model.Rental, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	exists, err := s.r.CustomerExists(ctx, tx, customerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		err = makeErr(ErrInvalidReference)
		return nil, err
	}

	game, err := s.r.GameForUpdate(ctx, tx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		err = makeErr(ErrInvalidReference)
		return nil, err
	}

	outstanding, err := s.r.CountOutstanding(ctx, tx, gameID)
	if err != nil {
		return nil, err
	}
	if !Available(game.StockTotal, outstanding) {
		err = makeErr(ErrOutOfStock)
		return nil, err
	}

	rental := &model.Rental{
		CustomerID:    customerID,
		GameID:        gameID,
		RentDate:      date.Today(),
		DaysRented:    daysRented,
		OriginalPrice: daysRented * game.PricePerDay,
	}
	rental.ID, err = s.r.Insert(ctx, tx, rental)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *service) Close(ctx context.Context, rentalID int64) (*model.Rental, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	rental, err := s.r.GetForUpdate(ctx, tx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		err = makeErr(ErrNotFound)
		return nil, err
	}
	if rental.ReturnDate != nil {
		err = makeErr(ErrAlreadyClosed)
		return nil, err
	}

	returnDate := date.Today()
	fee := ComputeDelayFee(rental.RentDate, rental.DaysRented, rental.OriginalPrice, returnDate)

	if err = s.r.SetReturned(ctx, tx, rentalID, returnDate, fee); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	rental.ReturnDate = &returnDate
	rental.DelayFee = &fee
	return rental, nil
}

func (s *service) Delete(ctx context.Context, rentalID int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	rental, err := s.r.GetForUpdate(ctx, tx, rentalID)
	if err != nil {
		return err
	}
	if rental == nil {
		err = makeErr(ErrNotFound)
		return err
	}
	if rental.ReturnDate != nil {
		// only open rentals may be deleted
		err = makeErr(ErrAlreadyClosed)
		return err
	}

	if err = s.r.Delete(ctx, tx, rentalID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
