package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	domain "github.com/fadeandco/barbershop-api/internal/domain/booking"
	"github.com/fadeandco/barbershop-api/internal/httperr"
	"github.com/fadeandco/barbershop-api/internal/models"
)

func newMockRepo(t *testing.T) (*BookingGormRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return NewBookingGormRepository(gdb), mock
}

// The in-transaction conflict check must lock the candidate rows with a
// plain row select. Postgres rejects FOR UPDATE on aggregate queries
// (SQLSTATE 0A000), so asserting the exact statement shape here keeps a
// count-based variant from sneaking back in.
func TestCreateAppointmentLocksRowsNotAggregates(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE barber_id = \$1 AND date = \$2 AND time = \$3 AND status IN \(\$4,\$5\) FOR UPDATE`).
		WithArgs(uint(1), "2026-09-07", "10:00", "pending", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(queue_number\), 0\) FROM "appointments" WHERE date = \$1`).
		WithArgs("2026-09-07").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	ap := &models.Appointment{
		CustomerID: 2,
		BarberID:   1,
		ServiceID:  10,
		Date:       "2026-09-07",
		Time:       "10:00",
		Status:     "pending",
	}

	err := repo.CreateAppointment(context.Background(), ap)
	require.NoError(t, err)

	assert.Equal(t, 4, ap.QueueNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentConflictRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE barber_id = \$1 AND date = \$2 AND time = \$3 AND status IN \(\$4,\$5\) FOR UPDATE`).
		WithArgs(uint(1), "2026-09-07", "10:00", "pending", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"id", "barber_id", "date", "time", "status"}).
			AddRow(5, 1, "2026-09-07", "10:00", "confirmed"))
	mock.ExpectRollback()

	ap := &models.Appointment{
		CustomerID: 2,
		BarberID:   1,
		ServiceID:  10,
		Date:       "2026-09-07",
		Time:       "10:00",
		Status:     "pending",
	}

	err := repo.CreateAppointment(context.Background(), ap)
	assert.Equal(t, domain.ReasonAlreadyBooked, httperr.BusinessCode(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
