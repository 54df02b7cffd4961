package postgres

import (
	"smartlogi/internal/adapters/out/postgres/actorrepo"
	"smartlogi/internal/adapters/out/postgres/historyrepo"
	"smartlogi/internal/adapters/out/postgres/parcelrepo"
	"smartlogi/internal/adapters/out/postgres/productrepo"
	"smartlogi/internal/adapters/out/postgres/zonerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&zonerepo.ZoneDTO{},
		&productrepo.ProductDTO{},
		&actorrepo.ActorDTO{},
		&parcelrepo.ParcelDTO{},
		&parcelrepo.LineItemDTO{},
		&historyrepo.HistoryDTO{},
	)
}
