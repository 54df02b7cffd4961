package zonerepo_test

import (
	"context"
	"testing"

	"smartlogi/internal/adapters/out/postgres/zonerepo"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/zone"
	"smartlogi/internal/pkg/errs"
	"smartlogi/internal/pkg/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormZoneRepository(t *testing.T) {
	ctx := context.Background()
	repo := zonerepo.NewGormZoneRepository(testdb.SQLite(t))

	z, err := zone.NewZone(kernel.NewUUID(), "Ain Sebaa", "20250")
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, z))

	got, err := repo.Get(ctx, z.ID())
	require.NoError(t, err)
	assert.Equal(t, "Ain Sebaa", got.Name())
	assert.Equal(t, "20250", got.PostalCode())

	_, err = repo.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
