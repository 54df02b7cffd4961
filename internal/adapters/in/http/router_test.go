package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartlogi/cmd"
	httpin "smartlogi/internal/adapters/in/http"
	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/clock"
	"smartlogi/internal/pkg/testdb"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const jwtSecret = "test-secret-0123456789abcdef"

var t0 = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

type testAPI struct {
	t       *testing.T
	e       *echo.Echo
	auth    *httpin.Authenticator
	fixture testdb.Fixture
	clock   *clock.FakeClock
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	db := testdb.SQLite(t)
	clk := clock.NewFakeClock(t0)
	config := cmd.Config{JWTSecret: jwtSecret, StatusReportSchedule: "@every 1m"}

	app, err := cmd.NewCompositionRoot(config, db, zap.NewNop(), clk)
	require.NoError(t, err)

	e, err := app.CreateRouter(context.Background())
	require.NoError(t, err)

	return &testAPI{
		t:       t,
		e:       e,
		auth:    app.CreateAuthenticator(),
		fixture: testdb.Seed(t, db),
		clock:   clk,
	}
}

func (a *testAPI) token(who *actor.Actor) string {
	a.t.Helper()
	token, err := a.auth.Issue(who.ID(), who.Role(), time.Now(), time.Hour)
	require.NoError(a.t, err)
	return token
}

func (a *testAPI) do(method, path string, who *actor.Actor, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if who != nil {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+a.token(who))
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (a *testAPI) createParcel(who *actor.Actor) httpin.Parcel {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/parcels", who, map[string]any{
		"recipientId":     a.fixture.Recipient.ID().String(),
		"description":     "two laptops",
		"destinationCity": "Casablanca",
		"items": []map[string]any{
			{"productId": a.fixture.Laptop.ID().String(), "quantity": 2},
		},
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[httpin.Parcel](a.t, rec)
}

func (a *testAPI) setStatus(id kernel.UUID, who *actor.Actor, status string, comment *string) *httptest.ResponseRecorder {
	a.t.Helper()
	a.clock.Advance(time.Minute)

	body := map[string]any{"status": status}
	if comment != nil {
		body["comment"] = *comment
	}
	return a.do(http.MethodPatch, "/parcels/"+id.String()+"/status", who, body)
}

func parcelID(t *testing.T, p httpin.Parcel) kernel.UUID {
	t.Helper()
	id, err := kernel.UUIDFromBytes(p.ID[:])
	require.NoError(t, err)
	return id
}

func TestRouter_PublicEndpoints(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "smartlogi_http_requests_total")

	rec = api.do(http.MethodGet, "/swagger/doc.json", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SmartLogi Delivery Management API")
}

func TestRouter_RequiresBearerToken(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/parcels", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decode[httpin.Error](t, rec)
	assert.Equal(t, http.StatusUnauthorized, body.Code)

	req := httptest.NewRequest(http.MethodGet, "/parcels", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")
	rec = httptest.NewRecorder()
	api.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	other := httpin.NewAuthenticator("some-other-secret-0123456789")
	token, err := other.Issue(api.fixture.Manager.ID(), actor.RoleManager, time.Now(), time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/parcels", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec = httptest.NewRecorder()
	api.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RolePolicy(t *testing.T) {
	api := newTestAPI(t)
	f := api.fixture

	tests := []struct {
		name   string
		method string
		path   string
		who    *actor.Actor
		body   any
	}{
		{"recipient creates parcel", http.MethodPost, "/parcels", f.Recipient, map[string]any{}},
		{"courier lists parcels", http.MethodGet, "/parcels", f.Courier, nil},
		{"sender lists parcels", http.MethodGet, "/parcels", f.Sender, nil},
		{"manager deletes parcel", http.MethodDelete, "/parcels/" + kernel.NewUUID().String(), f.Manager, nil},
		{"sender updates status", http.MethodPatch, "/parcels/" + kernel.NewUUID().String() + "/status", f.Sender, map[string]any{"status": "COLLECTED"}},
		{"courier assigns courier", http.MethodPatch, "/parcels/" + kernel.NewUUID().String() + "/courier/" + kernel.NewUUID().String(), f.Courier, nil},
		{"manager creates actor", http.MethodPost, "/actors", f.Manager, map[string]any{}},
		{"manager creates product", http.MethodPost, "/products", f.Manager, map[string]any{}},
		{"sender creates zone", http.MethodPost, "/zones", f.Sender, map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(tt.method, tt.path, tt.who, tt.body)
			assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_ParcelLifecycle(t *testing.T) {
	api := newTestAPI(t)
	f := api.fixture

	created := api.createParcel(f.Sender)
	id := parcelID(t, created)
	assert.Equal(t, "CREATED", created.Status)
	assert.Equal(t, "NORMAL", created.Priority)
	assert.InDelta(t, 5.0, created.Weight, 1e-9)
	assert.Equal(t, f.Sender.ID().String(), created.SenderID.String())
	require.Len(t, created.Items, 1)

	history := decode[[]httpin.HistoryEntry](t, api.do(http.MethodGet, "/parcels/"+id.String()+"/history", f.Sender, nil))
	require.Len(t, history, 1)
	assert.Equal(t, "CREATED", history[0].Status)

	rec := api.do(http.MethodPatch, "/parcels/"+id.String()+"/courier/"+f.Courier.ID().String(), f.Manager, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assigned := decode[httpin.Parcel](t, rec)
	require.NotNil(t, assigned.CourierID)
	assert.Equal(t, f.Courier.ID().String(), assigned.CourierID.String())

	comment := "picked up"
	rec = api.setStatus(id, f.Courier, "COLLECTED", &comment)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "COLLECTED", decode[httpin.Parcel](t, rec).Status)

	history = decode[[]httpin.HistoryEntry](t, api.do(http.MethodGet, "/parcels/"+id.String()+"/history", f.Recipient, nil))
	require.Len(t, history, 2)
	assert.Equal(t, "COLLECTED", history[0].Status)
	require.NotNil(t, history[0].Comment)
	assert.Equal(t, "picked up", *history[0].Comment)

	rec = api.setStatus(id, f.Manager, "DELIVERED", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	history = decode[[]httpin.HistoryEntry](t, api.do(http.MethodGet, "/parcels/"+id.String()+"/history", f.Courier, nil))
	require.Len(t, history, 3)
	assert.Equal(t, "DELIVERED", history[0].Status)
	assert.Equal(t, "CREATED", history[2].Status)

	rec = api.setStatus(id, f.Manager, "IN_TRANSIT", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "parcel already delivered", decode[httpin.Error](t, rec).Message)

	got := decode[httpin.Parcel](t, api.do(http.MethodGet, "/parcels/"+id.String(), f.Sender, nil))
	assert.Equal(t, "DELIVERED", got.Status)
}

func TestRouter_ParcelAccess(t *testing.T) {
	api := newTestAPI(t)
	f := api.fixture

	created := api.createParcel(f.Sender)
	id := parcelID(t, created)
	path := "/parcels/" + id.String()

	rec := api.do(http.MethodPatch, path+"/courier/"+f.Courier.ID().String(), f.Manager, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	for name, who := range map[string]*actor.Actor{
		"sender":    f.Sender,
		"recipient": f.Recipient,
		"courier":   f.Courier,
		"manager":   f.Manager,
	} {
		assert.Equal(t, http.StatusOK, api.do(http.MethodGet, path, who, nil).Code, name)
	}

	assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, path, f.OtherSender, nil).Code)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, path, f.OtherCourier, nil).Code)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, path, f.Administrator, nil).Code)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, path+"/history", f.OtherSender, nil).Code)

	rec = api.setStatus(id, f.OtherCourier, "COLLECTED", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	unknown := "/parcels/" + kernel.NewUUID().String()
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, unknown, f.Manager, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, unknown, f.Sender, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, unknown+"/history", f.Sender, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.setStatus(kernel.NewUUID(), f.Manager, "COLLECTED", nil).Code)

	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/parcels/not-a-uuid", f.Manager, nil).Code)
}

func TestRouter_CreateParcelErrors(t *testing.T) {
	api := newTestAPI(t)
	f := api.fixture

	item := func(productID string, qty int) []map[string]any {
		return []map[string]any{{"productId": productID, "quantity": qty}}
	}

	tests := []struct {
		name string
		who  *actor.Actor
		body map[string]any
		code int
	}{
		{
			name: "empty items",
			who:  f.Sender,
			body: map[string]any{"recipientId": f.Recipient.ID().String(), "items": []map[string]any{}},
			code: http.StatusBadRequest,
		},
		{
			name: "unknown product",
			who:  f.Sender,
			body: map[string]any{"recipientId": f.Recipient.ID().String(), "items": item(kernel.NewUUID().String(), 1)},
			code: http.StatusBadRequest,
		},
		{
			name: "unknown recipient",
			who:  f.Sender,
			body: map[string]any{"recipientId": kernel.NewUUID().String(), "items": item(f.Laptop.ID().String(), 1)},
			code: http.StatusBadRequest,
		},
		{
			name: "zero quantity",
			who:  f.Sender,
			body: map[string]any{"recipientId": f.Recipient.ID().String(), "items": item(f.Laptop.ID().String(), 0)},
			code: http.StatusBadRequest,
		},
		{
			name: "unknown priority",
			who:  f.Sender,
			body: map[string]any{"recipientId": f.Recipient.ID().String(), "priority": "ASAP", "items": item(f.Laptop.ID().String(), 1)},
			code: http.StatusBadRequest,
		},
		{
			name: "manager without sender",
			who:  f.Manager,
			body: map[string]any{"recipientId": f.Recipient.ID().String(), "items": item(f.Laptop.ID().String(), 1)},
			code: http.StatusBadRequest,
		},
		{
			name: "sender on behalf of another sender",
			who:  f.Sender,
			body: map[string]any{"senderId": f.OtherSender.ID().String(), "recipientId": f.Recipient.ID().String(), "items": item(f.Laptop.ID().String(), 1)},
			code: http.StatusForbidden,
		},
		{
			name: "manager on behalf of a sender",
			who:  f.Manager,
			body: map[string]any{"senderId": f.OtherSender.ID().String(), "recipientId": f.Recipient.ID().String(), "priority": "URGENT", "items": item(f.Charger.ID().String(), 3)},
			code: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(http.MethodPost, "/parcels", tt.who, tt.body)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_DeleteAndReplace(t *testing.T) {
	api := newTestAPI(t)
	f := api.fixture

	id := parcelID(t, api.createParcel(f.Sender))
	path := "/parcels/" + id.String()

	rec := api.do(http.MethodPut, path, f.Administrator, nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)

	rec = api.do(http.MethodDelete, path, f.Administrator, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, path, f.Manager, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, path, f.Administrator, nil).Code)
}

func TestRouter_ListParcels(t *testing.T) {
	api := newTestAPI(t)
	f := api.fixture

	first := api.createParcel(f.Sender)
	api.clock.Advance(time.Minute)
	second := api.createParcel(f.Sender)

	rec := api.do(http.MethodGet, "/parcels", f.Manager, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	parcels := decode[[]httpin.Parcel](t, rec)
	require.Len(t, parcels, 2)
	assert.Equal(t, second.ID, parcels[0].ID)
	assert.Equal(t, first.ID, parcels[1].ID)

	rec = api.do(http.MethodGet, "/parcels?limit=1&offset=1", f.Administrator, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	parcels = decode[[]httpin.Parcel](t, rec)
	require.Len(t, parcels, 1)
	assert.Equal(t, first.ID, parcels[0].ID)

	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/parcels?limit=500", f.Manager, nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/parcels?offset=-1", f.Manager, nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/parcels?status=LOST", f.Manager, nil).Code)
}

func TestRouter_AssignZone(t *testing.T) {
	api := newTestAPI(t)
	f := api.fixture
	id := parcelID(t, api.createParcel(f.Sender))

	rec := api.do(http.MethodPatch, "/parcels/"+id.String()+"/zone/"+f.Zone.ID().String(), f.Manager, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	p := decode[httpin.Parcel](t, rec)
	require.NotNil(t, p.ZoneID)
	assert.Equal(t, f.Zone.ID().String(), p.ZoneID.String())

	rec = api.do(http.MethodPatch, "/parcels/"+id.String()+"/zone/"+kernel.NewUUID().String(), f.Manager, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodPatch, "/parcels/"+id.String()+"/courier/"+f.Sender.ID().String(), f.Manager, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Catalog(t *testing.T) {
	api := newTestAPI(t)
	f := api.fixture

	rec := api.do(http.MethodPost, "/zones", f.Administrator, map[string]any{"name": "Anfa", "postalCode": "20050"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	z := decode[httpin.Zone](t, rec)
	assert.Equal(t, "Anfa", z.Name)

	rec = api.do(http.MethodPost, "/products", f.Administrator, map[string]any{"name": "Monitor", "weight": 4.2})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.InDelta(t, 4.2, decode[httpin.Product](t, rec).Weight, 1e-9)

	rec = api.do(http.MethodPost, "/products", f.Administrator, map[string]any{"name": "Air", "weight": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPost, "/zones", f.Administrator, map[string]any{"name": "Nowhere"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPost, "/actors", f.Administrator, map[string]any{
		"role":    "COURIER",
		"name":    "Yassine",
		"email":   "yassine@smartlogi.ma",
		"vehicle": "scooter",
		"zoneId":  z.ID.String(),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	courier := decode[httpin.Actor](t, rec)
	assert.Equal(t, "COURIER", courier.Role)
	assert.Equal(t, "scooter", courier.Vehicle)
	require.NotNil(t, courier.ZoneID)

	rec = api.do(http.MethodPost, "/actors", f.Administrator, map[string]any{
		"role":  "SENDER",
		"name":  "Yassine again",
		"email": "YASSINE@smartlogi.ma",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email is already registered", decode[httpin.Error](t, rec).Message)

	rec = api.do(http.MethodPost, "/actors", f.Administrator, map[string]any{
		"role":   "COURIER",
		"name":   "Lost",
		"email":  "lost@smartlogi.ma",
		"zoneId": kernel.NewUUID().String(),
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
