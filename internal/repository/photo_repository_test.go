package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestPhotoRepoCoversByVehicle(t *testing.T) {
	t.Run("empty id list reads nothing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		covers, err := NewPhotoRepo(db).CoversByVehicle(context.Background(), nil)
		require.NoError(t, err)
		require.Empty(t, covers)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query is restricted to the requested ids", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"vehicle_id", "image"}).
			AddRow(1, []byte{0xff, 0xd8}).
			AddRow(3, []byte{0x89, 0x50})
		mock.ExpectQuery(`vehicle_id IN \(\?,\?\)`).
			WithArgs(1, 3).
			WillReturnRows(rows)

		covers, err := NewPhotoRepo(db).CoversByVehicle(context.Background(), []uint64{1, 3})
		require.NoError(t, err)
		require.Len(t, covers, 2)
		require.Equal(t, []byte{0xff, 0xd8}, covers[1])
		require.Equal(t, []byte{0x89, 0x50}, covers[3])
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
