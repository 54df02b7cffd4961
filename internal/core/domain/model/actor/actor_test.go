package actor_test

import (
	"testing"

	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contact = actor.Contact{Name: "Amina Idrissi", Phone: "+212600000000", Email: " Amina@SmartLogi.ma "}

func TestRoleConstructors(t *testing.T) {
	zoneID := kernel.NewUUID()

	testCases := []struct {
		name    string
		build   func() (*actor.Actor, error)
		role    actor.Role
		profile actor.Profile
	}{
		{
			name:    "administrator",
			build:   func() (*actor.Actor, error) { return actor.NewAdministrator(kernel.NewUUID(), contact) },
			role:    actor.RoleAdministrator,
			profile: actor.StaffProfile{},
		},
		{
			name:    "manager",
			build:   func() (*actor.Actor, error) { return actor.NewManager(kernel.NewUUID(), contact) },
			role:    actor.RoleManager,
			profile: actor.StaffProfile{},
		},
		{
			name: "courier",
			build: func() (*actor.Actor, error) {
				return actor.NewCourier(kernel.NewUUID(), contact, "van", &zoneID)
			},
			role:    actor.RoleCourier,
			profile: actor.CourierProfile{Vehicle: "van", ZoneID: &zoneID},
		},
		{
			name:    "sender",
			build:   func() (*actor.Actor, error) { return actor.NewSender(kernel.NewUUID(), contact, "12 Rue Atlas") },
			role:    actor.RoleSender,
			profile: actor.AddressProfile{Address: "12 Rue Atlas"},
		},
		{
			name:    "recipient",
			build:   func() (*actor.Actor, error) { return actor.NewRecipient(kernel.NewUUID(), contact, "3 Bd Zerktouni") },
			role:    actor.RoleRecipient,
			profile: actor.AddressProfile{Address: "3 Bd Zerktouni"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := tc.build()
			require.NoError(t, err)
			require.NoError(t, a.Validate())

			assert.Equal(t, tc.role, a.Role())
			assert.True(t, a.HasRole(tc.role))
			assert.Equal(t, tc.profile, a.Profile())
			assert.Equal(t, "amina@smartlogi.ma", a.Email())

			p := a.Principal()
			assert.True(t, p.IsAuthenticated())
			assert.True(t, p.Is(a.ID()))
			assert.True(t, p.HasRole(tc.role))
		})
	}
}

func TestNewActor_Validation(t *testing.T) {
	t.Run("name and email", func(t *testing.T) {
		_, err := actor.NewManager(kernel.NewUUID(), actor.Contact{Name: " ", Email: "not-an-email"})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("courier needs a vehicle", func(t *testing.T) {
		_, err := actor.NewCourier(kernel.NewUUID(), contact, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("restored profile must match role", func(t *testing.T) {
		_, err := actor.RestoreActor(kernel.NewUUID(), contact, actor.RoleCourier, actor.AddressProfile{Address: "x"})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "does not match role COURIER")
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := actor.RestoreActor(kernel.NewUUID(), contact, actor.Role("DRIVER"), actor.StaffProfile{})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseRole(t *testing.T) {
	r, err := actor.ParseRole("manager")
	require.NoError(t, err)
	assert.Equal(t, actor.RoleManager, r)

	_, err = actor.ParseRole("ROOT")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPrincipal(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("anonymous", func(t *testing.T) {
		p := actor.Anonymous()
		assert.False(t, p.IsAuthenticated())
		assert.False(t, p.HasRole(""))
		assert.False(t, p.Is(kernel.UUID{}))
	})

	t.Run("invalid inputs collapse to anonymous", func(t *testing.T) {
		assert.False(t, actor.NewPrincipal(kernel.UUID{}, actor.RoleManager).IsAuthenticated())
		assert.False(t, actor.NewPrincipal(id, actor.Role("GUEST")).IsAuthenticated())
	})

	t.Run("authenticated", func(t *testing.T) {
		p := actor.NewPrincipal(id, actor.RoleCourier)
		assert.True(t, p.IsAuthenticated())
		assert.True(t, p.Is(id))
		assert.False(t, p.Is(kernel.NewUUID()))
		assert.True(t, p.HasRole(actor.RoleCourier))
		assert.False(t, p.HasRole(actor.RoleManager))
	})
}

func TestActor_ZeroValueIsNotConstructed(t *testing.T) {
	var a actor.Actor
	require.ErrorIs(t, a.Validate(), actor.ErrActorIsNotConstructed)
}
