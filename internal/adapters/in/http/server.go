package http

import (
	"errors"
	"net/http"
	"strings"

	"smartlogi/internal/core/application/access"
	"smartlogi/internal/core/application/usecases/commands"
	"smartlogi/internal/core/application/usecases/queries"
	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/core/domain/model/product"
	"smartlogi/internal/core/domain/model/zone"
	"smartlogi/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	// Command handlers
	createParcelHandler  commands.CreateParcelCommandHandler
	updateStatusHandler  commands.UpdateParcelStatusCommandHandler
	assignCourierHandler commands.AssignCourierCommandHandler
	assignZoneHandler    commands.AssignZoneCommandHandler
	deleteParcelHandler  commands.DeleteParcelCommandHandler
	createActorHandler   commands.CreateActorCommandHandler
	createProductHandler commands.CreateProductCommandHandler
	createZoneHandler    commands.CreateZoneCommandHandler

	// Query handlers
	getParcelHandler   queries.GetParcelQueryHandler
	getHistoryHandler  queries.GetParcelHistoryQueryHandler
	listParcelsHandler queries.ListParcelsQueryHandler

	guard *access.Guard
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateParcel  commands.CreateParcelCommandHandler
	UpdateStatus  commands.UpdateParcelStatusCommandHandler
	AssignCourier commands.AssignCourierCommandHandler
	AssignZone    commands.AssignZoneCommandHandler
	DeleteParcel  commands.DeleteParcelCommandHandler
	CreateActor   commands.CreateActorCommandHandler
	CreateProduct commands.CreateProductCommandHandler
	CreateZone    commands.CreateZoneCommandHandler

	GetParcel   queries.GetParcelQueryHandler
	GetHistory  queries.GetParcelHistoryQueryHandler
	ListParcels queries.ListParcelsQueryHandler
}

func NewServer(handlers Handlers, guard *access.Guard) *Server {
	return &Server{
		createParcelHandler:  handlers.CreateParcel,
		updateStatusHandler:  handlers.UpdateStatus,
		assignCourierHandler: handlers.AssignCourier,
		assignZoneHandler:    handlers.AssignZone,
		deleteParcelHandler:  handlers.DeleteParcel,
		createActorHandler:   handlers.CreateActor,
		createProductHandler: handlers.CreateProduct,
		createZoneHandler:    handlers.CreateZone,
		getParcelHandler:     handlers.GetParcel,
		getHistoryHandler:    handlers.GetHistory,
		listParcelsHandler:   handlers.ListParcels,
		guard:                guard,
	}
}

func toKernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body: "+err.Error()).SetInternal(err)
}

// denied answers 404 when the parcel does not exist and 403 when it does.
func (s *Server) denied(ctx echo.Context, id kernel.UUID, action string) error {
	if !s.guard.Exists(ctx.Request().Context(), id) {
		return errs.NewObjectNotFoundError("parcel", id.String())
	}
	return errs.NewAccessDeniedError("parcel", action)
}

// CreateParcel handles POST /parcels. A sender always ships on their own behalf.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body NewParcel
	if err := ctx.Bind(&body); err != nil {
		return badRequest(err)
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(err)
	}

	principal := PrincipalFrom(ctx)
	senderID, err := s.resolveSender(principal, body.SenderID)
	if err != nil {
		return err
	}

	recipientID, err := toKernelID(body.RecipientID)
	if err != nil {
		return badRequest(err)
	}

	priority := parcel.PriorityUnknown
	if body.Priority != nil {
		if priority, err = parcel.ParsePriority(*body.Priority); err != nil {
			return badRequest(err)
		}
	}

	items := make([]commands.ParcelItem, 0, len(body.Items))
	for _, item := range body.Items {
		productID, idErr := toKernelID(item.ProductID)
		if idErr != nil {
			return badRequest(idErr)
		}
		items = append(items, commands.ParcelItem{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), senderID, recipientID,
		body.Description, priority, body.DestinationCity, items)
	if err != nil {
		return err
	}

	created, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		// the unresolved ids come from the body
		if errors.Is(err, errs.ErrObjectNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
		}
		return err
	}

	return ctx.JSON(http.StatusCreated, toParcel(queries.NewParcelView(created)))
}

func (s *Server) resolveSender(principal actor.Principal, requested *openapi_types.UUID) (kernel.UUID, error) {
	if requested == nil {
		if principal.HasRole(actor.RoleSender) {
			return principal.ID(), nil
		}
		return kernel.UUID{}, errs.NewValueIsRequiredError("senderId")
	}

	senderID, err := toKernelID(*requested)
	if err != nil {
		return kernel.UUID{}, badRequest(err)
	}
	if principal.HasRole(actor.RoleSender) && !principal.Is(senderID) {
		return kernel.UUID{}, errs.NewAccessDeniedError("parcel", "create for another sender")
	}
	return senderID, nil
}

// ListParcels handles GET /parcels.
func (s *Server) ListParcels(ctx echo.Context, params ListParcelsParams) error {
	statuses := make([]parcel.Status, 0, len(params.Status))
	for _, raw := range params.Status {
		for _, name := range strings.Split(raw, ",") {
			status, err := parcel.ParseStatus(name)
			if err != nil {
				return err
			}
			statuses = append(statuses, status)
		}
	}

	var limit, offset int
	if params.Limit != nil {
		limit = *params.Limit
	}
	if params.Offset != nil {
		offset = *params.Offset
	}

	query, err := queries.NewListParcelsQuery(statuses, limit, offset)
	if err != nil {
		return err
	}

	views, err := s.listParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Parcel, len(views))
	for i, view := range views {
		response[i] = toParcel(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetParcel handles GET /parcels/{id}.
func (s *Server) GetParcel(ctx echo.Context, id openapi_types.UUID) error {
	parcelID, err := toKernelID(id)
	if err != nil {
		return err
	}
	if !s.guard.CanAccess(ctx.Request().Context(), parcelID, PrincipalFrom(ctx)) {
		return s.denied(ctx, parcelID, "read")
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return err
	}

	view, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toParcel(view))
}

// ReplaceParcel handles PUT /parcels/{id}. Wholesale replacement is not offered.
func (s *Server) ReplaceParcel(_ echo.Context, _ openapi_types.UUID) error {
	return errs.NewUnsupportedOperationError("replace parcel")
}

// DeleteParcel handles DELETE /parcels/{id}; the history goes with it.
func (s *Server) DeleteParcel(ctx echo.Context, id openapi_types.UUID) error {
	parcelID, err := toKernelID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return err
	}
	if err = s.deleteParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateParcelStatus handles PATCH /parcels/{id}/status.
func (s *Server) UpdateParcelStatus(ctx echo.Context, id openapi_types.UUID) error {
	parcelID, err := toKernelID(id)
	if err != nil {
		return err
	}

	principal := PrincipalFrom(ctx)
	if !s.guard.CanUpdateStatus(ctx.Request().Context(), parcelID, principal) {
		return s.denied(ctx, parcelID, "update status of")
	}

	var body StatusUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(err)
	}
	if err = ctx.Validate(&body); err != nil {
		return badRequest(err)
	}

	// an unknown name is left to the transition policy to reject
	status, parseErr := parcel.ParseStatus(body.Status)
	if parseErr != nil {
		status = parcel.Unknown
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(parcelID, status, body.Comment, principal)
	if err != nil {
		return err
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toParcel(queries.NewParcelView(updated)))
}

// AssignCourier handles PATCH /parcels/{id}/courier/{courierId}.
func (s *Server) AssignCourier(ctx echo.Context, id openapi_types.UUID, courierID openapi_types.UUID) error {
	parcelID, err := toKernelID(id)
	if err != nil {
		return err
	}
	courier, err := toKernelID(courierID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignCourierCommand(parcelID, courier)
	if err != nil {
		return err
	}

	updated, err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toParcel(queries.NewParcelView(updated)))
}

// AssignZone handles PATCH /parcels/{id}/zone/{zoneId}.
func (s *Server) AssignZone(ctx echo.Context, id openapi_types.UUID, zoneID openapi_types.UUID) error {
	parcelID, err := toKernelID(id)
	if err != nil {
		return err
	}
	z, err := toKernelID(zoneID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignZoneCommand(parcelID, z)
	if err != nil {
		return err
	}

	updated, err := s.assignZoneHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toParcel(queries.NewParcelView(updated)))
}

// GetParcelHistory handles GET /parcels/{id}/history.
func (s *Server) GetParcelHistory(ctx echo.Context, id openapi_types.UUID) error {
	parcelID, err := toKernelID(id)
	if err != nil {
		return err
	}
	if !s.guard.CanAccess(ctx.Request().Context(), parcelID, PrincipalFrom(ctx)) {
		return s.denied(ctx, parcelID, "read history of")
	}

	query, err := queries.NewGetParcelHistoryQuery(parcelID)
	if err != nil {
		return err
	}

	records, err := s.getHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]HistoryEntry, len(records))
	for i, record := range records {
		response[i] = HistoryEntry{
			ID:        record.ID.Bytes(),
			Status:    record.Status.String(),
			ChangedAt: record.ChangedAt,
			Comment:   record.Comment,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateActor handles POST /actors.
func (s *Server) CreateActor(ctx echo.Context) error {
	var body NewActor
	if err := ctx.Bind(&body); err != nil {
		return badRequest(err)
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(err)
	}

	role, err := actor.ParseRole(body.Role)
	if err != nil {
		return err
	}

	var zoneID *kernel.UUID
	if body.ZoneID != nil {
		id, idErr := toKernelID(*body.ZoneID)
		if idErr != nil {
			return badRequest(idErr)
		}
		zoneID = &id
	}

	contact := actor.Contact{Name: body.Name, Phone: body.Phone, Email: body.Email}
	cmd, err := commands.NewCreateActorCommand(kernel.NewUUID(), role, contact, body.Vehicle, zoneID, body.Address)
	if err != nil {
		return err
	}

	created, err := s.createActorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toActor(created))
}

// CreateProduct handles POST /products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return badRequest(err)
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(err)
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), body.Name, body.Weight)
	if err != nil {
		return err
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toProduct(created))
}

// CreateZone handles POST /zones.
func (s *Server) CreateZone(ctx echo.Context) error {
	var body NewZone
	if err := ctx.Bind(&body); err != nil {
		return badRequest(err)
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(err)
	}

	cmd, err := commands.NewCreateZoneCommand(kernel.NewUUID(), body.Name, body.PostalCode)
	if err != nil {
		return err
	}

	created, err := s.createZoneHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toZone(created))
}

func optionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func toParcel(view queries.ParcelView) Parcel {
	items := make([]LineItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = LineItem{
			ProductID:  item.ProductID.Bytes(),
			Quantity:   item.Quantity,
			UnitWeight: item.UnitWeight,
		}
	}

	return Parcel{
		ID:              view.ID.Bytes(),
		Description:     view.Description,
		Weight:          view.Weight,
		Status:          view.Status.String(),
		Priority:        view.Priority.String(),
		DestinationCity: view.DestinationCity,
		SenderID:        view.SenderID.Bytes(),
		RecipientID:     view.RecipientID.Bytes(),
		CourierID:       optionalUUID(view.CourierID),
		ZoneID:          optionalUUID(view.ZoneID),
		CreatedAt:       view.CreatedAt,
		StatusChangedAt: view.StatusChangedAt,
		Items:           items,
	}
}

func toActor(a *actor.Actor) Actor {
	response := Actor{
		ID:    a.ID().Bytes(),
		Role:  string(a.Role()),
		Name:  a.Name(),
		Phone: a.Phone(),
		Email: a.Email(),
	}

	switch profile := a.Profile().(type) {
	case actor.CourierProfile:
		response.Vehicle = profile.Vehicle
		response.ZoneID = optionalUUID(profile.ZoneID)
	case actor.AddressProfile:
		response.Address = profile.Address
	}
	return response
}

func toProduct(p *product.Product) Product {
	return Product{ID: p.ID().Bytes(), Name: p.Name(), Weight: p.Weight()}
}

func toZone(z *zone.Zone) Zone {
	return Zone{ID: z.ID().Bytes(), Name: z.Name(), PostalCode: z.PostalCode()}
}
