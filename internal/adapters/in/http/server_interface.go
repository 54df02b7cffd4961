package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists the operations of api/openapi.json.
type ServerInterface interface {
	// (POST /parcels)
	CreateParcel(ctx echo.Context) error
	// (GET /parcels)
	ListParcels(ctx echo.Context, params ListParcelsParams) error
	// (GET /parcels/{id})
	GetParcel(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /parcels/{id})
	ReplaceParcel(ctx echo.Context, id openapi_types.UUID) error
	// (DELETE /parcels/{id})
	DeleteParcel(ctx echo.Context, id openapi_types.UUID) error
	// (PATCH /parcels/{id}/status)
	UpdateParcelStatus(ctx echo.Context, id openapi_types.UUID) error
	// (PATCH /parcels/{id}/courier/{courierId})
	AssignCourier(ctx echo.Context, id openapi_types.UUID, courierID openapi_types.UUID) error
	// (PATCH /parcels/{id}/zone/{zoneId})
	AssignZone(ctx echo.Context, id openapi_types.UUID, zoneID openapi_types.UUID) error
	// (GET /parcels/{id}/history)
	GetParcelHistory(ctx echo.Context, id openapi_types.UUID) error
	// (POST /actors)
	CreateActor(ctx echo.Context) error
	// (POST /products)
	CreateProduct(ctx echo.Context) error
	// (POST /zones)
	CreateZone(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindUUIDPathParam(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func (w *ServerInterfaceWrapper) CreateParcel(ctx echo.Context) error {
	return w.Handler.CreateParcel(ctx)
}

func (w *ServerInterfaceWrapper) ListParcels(ctx echo.Context) error {
	var params ListParcelsParams

	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "offset", ctx.QueryParams(), &params.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
	}

	return w.Handler.ListParcels(ctx, params)
}

func (w *ServerInterfaceWrapper) GetParcel(ctx echo.Context) error {
	id, err := bindUUIDPathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.GetParcel(ctx, id)
}

func (w *ServerInterfaceWrapper) ReplaceParcel(ctx echo.Context) error {
	id, err := bindUUIDPathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.ReplaceParcel(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteParcel(ctx echo.Context) error {
	id, err := bindUUIDPathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.DeleteParcel(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateParcelStatus(ctx echo.Context) error {
	id, err := bindUUIDPathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.UpdateParcelStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) AssignCourier(ctx echo.Context) error {
	id, err := bindUUIDPathParam(ctx, "id")
	if err != nil {
		return err
	}
	courierID, err := bindUUIDPathParam(ctx, "courierId")
	if err != nil {
		return err
	}
	return w.Handler.AssignCourier(ctx, id, courierID)
}

func (w *ServerInterfaceWrapper) AssignZone(ctx echo.Context) error {
	id, err := bindUUIDPathParam(ctx, "id")
	if err != nil {
		return err
	}
	zoneID, err := bindUUIDPathParam(ctx, "zoneId")
	if err != nil {
		return err
	}
	return w.Handler.AssignZone(ctx, id, zoneID)
}

func (w *ServerInterfaceWrapper) GetParcelHistory(ctx echo.Context) error {
	id, err := bindUUIDPathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.GetParcelHistory(ctx, id)
}

func (w *ServerInterfaceWrapper) CreateActor(ctx echo.Context) error {
	return w.Handler.CreateActor(ctx)
}

func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	return w.Handler.CreateProduct(ctx)
}

func (w *ServerInterfaceWrapper) CreateZone(ctx echo.Context) error {
	return w.Handler.CreateZone(ctx)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation to router. The middlewares run on each of
// these routes only.
func RegisterHandlers(router EchoRouter, si ServerInterface, m ...echo.MiddlewareFunc) {
	RegisterHandlersWithBaseURL(router, si, "", m...)
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string, m ...echo.MiddlewareFunc) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/parcels", wrapper.CreateParcel, m...)
	router.GET(baseURL+"/parcels", wrapper.ListParcels, m...)
	router.GET(baseURL+"/parcels/:id", wrapper.GetParcel, m...)
	router.PUT(baseURL+"/parcels/:id", wrapper.ReplaceParcel, m...)
	router.DELETE(baseURL+"/parcels/:id", wrapper.DeleteParcel, m...)
	router.PATCH(baseURL+"/parcels/:id/status", wrapper.UpdateParcelStatus, m...)
	router.PATCH(baseURL+"/parcels/:id/courier/:courierId", wrapper.AssignCourier, m...)
	router.PATCH(baseURL+"/parcels/:id/zone/:zoneId", wrapper.AssignZone, m...)
	router.GET(baseURL+"/parcels/:id/history", wrapper.GetParcelHistory, m...)
	router.POST(baseURL+"/actors", wrapper.CreateActor, m...)
	router.POST(baseURL+"/products", wrapper.CreateProduct, m...)
	router.POST(baseURL+"/zones", wrapper.CreateZone, m...)
}
