package queries_test

import (
	"context"
	"testing"
	"time"

	"smartlogi/internal/adapters/out/postgres"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/testdb"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var t0 = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

// store writes a parcel with its creation record and then walks it through the
// given statuses, one minute apart.
func store(t *testing.T, db *gorm.DB, f testdb.Fixture, created time.Time, statuses ...parcel.Status) *parcel.Parcel {
	t.Helper()
	ctx := context.Background()
	uow := postgres.NewGormUnitOfWorkFactory(db).Create()

	p := f.NewParcel(t, created)
	require.NoError(t, uow.ParcelRepository().Add(ctx, p))

	record, err := parcel.NewHistoryRecord(p.ID(), parcel.Created, created, nil)
	require.NoError(t, err)
	require.NoError(t, uow.HistoryRepository().Append(ctx, record))

	at := created
	for _, s := range statuses {
		at = at.Add(time.Minute)

		current, err := uow.ParcelRepository().Get(ctx, p.ID())
		require.NoError(t, err)
		require.NoError(t, current.ChangeStatus(s, at))
		require.NoError(t, uow.ParcelRepository().Update(ctx, current))

		record, err := parcel.NewHistoryRecord(p.ID(), s, current.StatusChangedAt(), nil)
		require.NoError(t, err)
		require.NoError(t, uow.HistoryRepository().Append(ctx, record))
	}

	p, err = uow.ParcelRepository().Get(ctx, p.ID())
	require.NoError(t, err)
	return p
}
