package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/model"
)

func newSale(vehicleID uint64) *model.Sale {
	return &model.Sale{
		VehicleID: vehicleID,
		BuyerName: "Carlos Mendes",
		Amount:    decimal.NewFromInt(25000),
		SoldAt:    time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestSaleRepoRecord(t *testing.T) {
	t.Run("happy path commits sale and status flip", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT status FROM vehicles").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusInStock))
		mock.ExpectExec("INSERT INTO sales").
			WillReturnResult(sqlmock.NewResult(7, 1))
		mock.ExpectExec("UPDATE vehicles SET status").
			WithArgs(model.StatusSold, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		s := newSale(1)
		require.NoError(t, NewSaleRepo(db).Record(context.Background(), s))
		require.Equal(t, uint64(7), s.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already sold vehicle is rejected and rolled back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT status FROM vehicles").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusSold))
		mock.ExpectRollback()

		err = NewSaleRepo(db).Record(context.Background(), newSale(1))
		require.ErrorIs(t, err, ErrVehicleSold)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown vehicle is not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT status FROM vehicles").
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"status"}))
		mock.ExpectRollback()

		err = NewSaleRepo(db).Record(context.Background(), newSale(99))
		require.ErrorIs(t, err, ErrVehicleNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit failure reaches the caller", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		commitErr := errors.New("commit: connection reset")
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT status FROM vehicles").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusInStock))
		mock.ExpectExec("INSERT INTO sales").
			WillReturnResult(sqlmock.NewResult(7, 1))
		mock.ExpectExec("UPDATE vehicles SET status").
			WithArgs(model.StatusSold, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit().WillReturnError(commitErr)

		// An uncommitted sale must never look successful: the handler
		// turns a nil error into a 201 and the vehicle would appear
		// sold without ever leaving the stock.
		err = NewSaleRepo(db).Record(context.Background(), newSale(1))
		require.ErrorIs(t, err, commitErr)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
