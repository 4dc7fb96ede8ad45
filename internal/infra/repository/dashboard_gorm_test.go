package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardGormRepository_ClientActivity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardGormRepository(db)

	owner := uuid.New()

	mock.ExpectQuery(q(`SELECT "id","active" FROM "clients" WHERE user_id = $1`)).
		WithArgs(owner.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "active"}).
			AddRow(uuid.NewString(), true).
			AddRow(uuid.NewString(), false))

	clients, err := repo.ClientActivity(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.True(t, clients[0].Active)
	assert.False(t, clients[1].Active)
}

func TestDashboardGormRepository_AppointmentDates_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardGormRepository(db)

	mock.ExpectQuery(`FROM "appointments"`).WillReturnError(errBoom)

	_, err := repo.AppointmentDates(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errBoom)
}
