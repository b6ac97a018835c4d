package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"museum-chat/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

var hourColumns = []string{"id", "giorno", "apertura", "chiusura", "created_at"}

func TestOpeningHourRepository_FindAll(t *testing.T) {
	mock := newMock(t)
	repo := NewOpeningHourRepository(mock, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM orari")).
		WillReturnRows(pgxmock.NewRows(hourColumns).
			AddRow(int64(1), "Lunedì", "9:00", "18:00", now).
			AddRow(int64(2), "Martedì", "9:00", "18:00", now))

	hours, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, hours, 2)
	assert.Equal(t, "Lunedì", hours[0].Day)
	assert.Equal(t, "18:00", hours[1].Closes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpeningHourRepository_FindByID(t *testing.T) {
	mock := newMock(t)
	repo := NewOpeningHourRepository(mock, zap.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(hourColumns).AddRow(int64(3), "Mercoledì", "9:00", "18:00", time.Now()))

	h, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "Mercoledì", h.Day)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	h, err = repo.FindByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, h)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpeningHourRepository_Count(t *testing.T) {
	mock := newMock(t)
	repo := NewOpeningHourRepository(mock, zap.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM orari")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}

func TestOpeningHourRepository_CreateBatch(t *testing.T) {
	mock := newMock(t)
	repo := NewOpeningHourRepository(mock, zap.NewNop())
	now := time.Now()

	hours := entity.DefaultOpeningHours()[:2]

	mock.ExpectBegin()
	for i, h := range hours {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orari")).
			WithArgs(h.Day, h.Opens, h.Closes).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(i+1), now))
	}
	mock.ExpectCommit()

	require.NoError(t, repo.CreateBatch(context.Background(), hours))
	assert.Equal(t, int64(1), hours[0].ID)
	assert.Equal(t, int64(2), hours[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpeningHourRepository_CreateBatchRollsBack(t *testing.T) {
	mock := newMock(t)
	repo := NewOpeningHourRepository(mock, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orari")).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := repo.CreateBatch(context.Background(), entity.DefaultOpeningHours())
	assert.ErrorContains(t, err, "insert opening hour Lunedì")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpeningHourRepository_Update(t *testing.T) {
	mock := newMock(t)
	repo := NewOpeningHourRepository(mock, zap.NewNop())

	h := &entity.OpeningHour{ID: 1, Day: "Lunedì", Opens: "10:00", Closes: "19:00"}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orari")).
		WithArgs(h.ID, h.Day, h.Opens, h.Closes).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.Update(context.Background(), h))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orari")).
		WithArgs(h.ID, h.Day, h.Opens, h.Closes).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorContains(t, repo.Update(context.Background(), h), "not found")

	assert.NoError(t, mock.ExpectationsWereMet())
}
