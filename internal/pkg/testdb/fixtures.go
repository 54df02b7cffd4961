package testdb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"smartlogi/internal/adapters/out/postgres"
	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/core/domain/model/product"
	"smartlogi/internal/core/domain/model/zone"

	"gorm.io/gorm"
)

// Fixture is a minimal cast: one actor per role, an unrelated courier and sender,
// one zone and two products weighing 2.5 and 0.2.
type Fixture struct {
	Administrator *actor.Actor
	Manager       *actor.Actor
	Courier       *actor.Actor
	OtherCourier  *actor.Actor
	Sender        *actor.Actor
	OtherSender   *actor.Actor
	Recipient     *actor.Actor
	Zone          *zone.Zone
	Laptop        *product.Product
	Charger       *product.Product
}

// Seed stores a fresh Fixture in db.
func Seed(t testing.TB, db *gorm.DB) Fixture {
	t.Helper()

	ctx := context.Background()
	uow := postgres.NewGormUnitOfWorkFactory(db).Create()

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	z, err := zone.NewZone(kernel.NewUUID(), "Maarif", "20330")
	must(err)
	must(uow.ZoneRepository().Add(ctx, z))

	laptop, err := product.NewProduct(kernel.NewUUID(), "Laptop", 2.5)
	must(err)
	must(uow.ProductRepository().Add(ctx, laptop))

	charger, err := product.NewProduct(kernel.NewUUID(), "Charger", 0.2)
	must(err)
	must(uow.ProductRepository().Add(ctx, charger))

	zoneID := z.ID()
	contact := func(name string) actor.Contact {
		return actor.Contact{
			Name:  name,
			Phone: "+212600000000",
			Email: fmt.Sprintf("%s.%s@smartlogi.ma", name, kernel.NewUUID().String()[:8]),
		}
	}

	var f Fixture
	f.Zone, f.Laptop, f.Charger = z, laptop, charger

	f.Administrator, err = actor.NewAdministrator(kernel.NewUUID(), contact("admin"))
	must(err)
	f.Manager, err = actor.NewManager(kernel.NewUUID(), contact("manager"))
	must(err)
	f.Courier, err = actor.NewCourier(kernel.NewUUID(), contact("courier"), "van", &zoneID)
	must(err)
	f.OtherCourier, err = actor.NewCourier(kernel.NewUUID(), contact("other-courier"), "bike", nil)
	must(err)
	f.Sender, err = actor.NewSender(kernel.NewUUID(), contact("sender"), "12 Rue Atlas, Casablanca")
	must(err)
	f.OtherSender, err = actor.NewSender(kernel.NewUUID(), contact("other-sender"), "4 Av. Hassan II, Rabat")
	must(err)
	f.Recipient, err = actor.NewRecipient(kernel.NewUUID(), contact("recipient"), "3 Bd Zerktouni, Casablanca")
	must(err)

	for _, a := range []*actor.Actor{f.Administrator, f.Manager, f.Courier, f.OtherCourier, f.Sender, f.OtherSender, f.Recipient} {
		must(uow.ActorRepository().Add(ctx, a))
	}

	return f
}

// NewParcel builds, without storing, a CREATED parcel from Sender to Recipient holding
// two laptops.
func (f Fixture) NewParcel(t testing.TB, now time.Time) *parcel.Parcel {
	t.Helper()

	item, err := parcel.NewLineItem(f.Laptop.ID(), 2, f.Laptop.Weight())
	if err != nil {
		t.Fatalf("line item: %v", err)
	}

	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		f.Sender.ID(),
		f.Recipient.ID(),
		"two laptops",
		parcel.PriorityNormal,
		"Casablanca",
		[]parcel.LineItem{item},
		now,
	)
	if err != nil {
		t.Fatalf("parcel: %v", err)
	}
	return p
}
