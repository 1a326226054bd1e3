package http

import (
	"errors"
	"net/http"
	"time"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the uniform error payload returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
// The acting user always comes from the verified token identity, never
// from the request body.
type Server struct {
	// Command handlers
	createParcelHandler    commands.CreateParcelCommandHandler
	cancelParcelHandler    commands.CancelParcelCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	rescheduleHandler      commands.RescheduleDeliveryCommandHandler
	returnParcelHandler    commands.ReturnParcelCommandHandler
	updateStatusHandler    commands.UpdateParcelStatusCommandHandler
	toggleBlockHandler     commands.ToggleParcelBlockCommandHandler

	// Query handlers
	getMyParcelsHandler       queries.GetMyParcelsQueryHandler
	getIncomingParcelsHandler queries.GetIncomingParcelsQueryHandler
	getDeliveryHistoryHandler queries.GetDeliveryHistoryQueryHandler
	getAllParcelsHandler      queries.GetAllParcelsQueryHandler
	getStatusLogHandler       queries.GetStatusLogQueryHandler
	trackParcelHandler        queries.TrackParcelQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	cancelParcelHandler commands.CancelParcelCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	rescheduleHandler commands.RescheduleDeliveryCommandHandler,
	returnParcelHandler commands.ReturnParcelCommandHandler,
	updateStatusHandler commands.UpdateParcelStatusCommandHandler,
	toggleBlockHandler commands.ToggleParcelBlockCommandHandler,
	getMyParcelsHandler queries.GetMyParcelsQueryHandler,
	getIncomingParcelsHandler queries.GetIncomingParcelsQueryHandler,
	getDeliveryHistoryHandler queries.GetDeliveryHistoryQueryHandler,
	getAllParcelsHandler queries.GetAllParcelsQueryHandler,
	getStatusLogHandler queries.GetStatusLogQueryHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:       createParcelHandler,
		cancelParcelHandler:       cancelParcelHandler,
		confirmDeliveryHandler:    confirmDeliveryHandler,
		rescheduleHandler:         rescheduleHandler,
		returnParcelHandler:       returnParcelHandler,
		updateStatusHandler:       updateStatusHandler,
		toggleBlockHandler:        toggleBlockHandler,
		getMyParcelsHandler:       getMyParcelsHandler,
		getIncomingParcelsHandler: getIncomingParcelsHandler,
		getDeliveryHistoryHandler: getDeliveryHistoryHandler,
		getAllParcelsHandler:      getAllParcelsHandler,
		getStatusLogHandler:       getStatusLogHandler,
		trackParcelHandler:        trackParcelHandler,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1 behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group("/api/v1", auth)

	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels", s.GetAllParcels)
	api.GET("/parcels/my", s.GetMyParcels)
	api.GET("/parcels/incoming", s.GetIncomingParcels)
	api.GET("/parcels/history", s.GetDeliveryHistory)
	api.GET("/parcels/:parcelId/logs", s.GetStatusLog)
	api.PATCH("/parcels/:parcelId/cancel", s.CancelParcel)
	api.PATCH("/parcels/:parcelId/confirm", s.ConfirmDelivery)
	api.PATCH("/parcels/:parcelId/reschedule", s.RescheduleDelivery)
	api.PATCH("/parcels/:parcelId/return", s.ReturnParcel)
	api.PATCH("/parcels/:parcelId/status", s.UpdateParcelStatus)
	api.PATCH("/parcels/:parcelId/block", s.ToggleParcelBlock)
	api.GET("/track/:trackingId", s.TrackParcel)
}

type createParcelRequest struct {
	ReceiverID    string  `json:"receiverId"`
	ReceiverName  string  `json:"receiverName"`
	ReceiverPhone string  `json:"receiverPhone"`
	Street        string  `json:"street"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	ZipCode       string  `json:"zipCode"`
	Country       string  `json:"country"`
	ParcelType    string  `json:"parcelType"`
	Weight        float64 `json:"weight"`
	Description   string  `json:"description"`
	DeclaredValue float64 `json:"declaredValue"`
	DeliveryFee   float64 `json:"deliveryFee"`
}

type createParcelResponse struct {
	ID         string `json:"id"`
	TrackingID string `json:"trackingId"`
}

// CreateParcel handles POST /api/v1/parcels - registers a delivery request
// from the authenticated sender.
func (s *Server) CreateParcel(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var request createParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	receiverID, err := kernel.UUIDFromString(request.ReceiverID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	address, err := parcel.NewAddress(request.Street, request.City,
		request.State, request.ZipCode, request.Country)
	if err != nil {
		return errorResponse(ctx, err)
	}

	receiverInfo, err := parcel.NewReceiverInfo(request.ReceiverName,
		request.ReceiverPhone, address)
	if err != nil {
		return errorResponse(ctx, err)
	}

	parcelType, err := parcel.TypeFromString(request.ParcelType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	details, err := parcel.NewDetails(parcelType, request.Weight,
		request.Description, request.DeclaredValue)
	if err != nil {
		return errorResponse(ctx, err)
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(parcelID, identity.UserID,
		receiverID, receiverInfo, details, request.DeliveryFee)
	if err != nil {
		return errorResponse(ctx, err)
	}

	trackingID, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createParcelResponse{
		ID:         parcelID.String(),
		TrackingID: trackingID.String(),
	})
}

// CancelParcel handles PATCH /api/v1/parcels/:parcelId/cancel - the sender
// withdraws a parcel that has not entered transit.
func (s *Server) CancelParcel(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelParcelCommand(identity.UserID, parcelID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.cancelParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type confirmDeliveryRequest struct {
	Note string `json:"note"`
}

// ConfirmDelivery handles PATCH /api/v1/parcels/:parcelId/confirm - the
// receiver acknowledges a parcel in transit as delivered.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request confirmDeliveryRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewConfirmDeliveryCommand(identity.UserID, parcelID, request.Note)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type rescheduleDeliveryRequest struct {
	NewDate time.Time `json:"newDate"`
}

// RescheduleDelivery handles PATCH /api/v1/parcels/:parcelId/reschedule -
// the receiver proposes a new delivery date for a parcel in transit.
func (s *Server) RescheduleDelivery(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request rescheduleDeliveryRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRescheduleDeliveryCommand(identity.UserID, parcelID, request.NewDate)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.rescheduleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReturnParcel handles PATCH /api/v1/parcels/:parcelId/return - the receiver
// sends an undelivered parcel in transit back to the sender.
func (s *Server) ReturnParcel(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewReturnParcelCommand(identity.UserID, parcelID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.returnParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type updateParcelStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// UpdateParcelStatus handles PATCH /api/v1/parcels/:parcelId/status - an
// admin moves a parcel to any non-final status.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request updateParcelStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := parcel.StatusFromString(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(identity.UserID, parcelID, target, request.Note)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type toggleParcelBlockResponse struct {
	IsBlocked bool `json:"isBlocked"`
}

// ToggleParcelBlock handles PATCH /api/v1/parcels/:parcelId/block - an admin
// flips the parcel's block flag and gets the resulting state back.
func (s *Server) ToggleParcelBlock(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewToggleParcelBlockCommand(identity.UserID, parcelID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	blocked, err := s.toggleBlockHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toggleParcelBlockResponse{IsBlocked: blocked})
}

// GetMyParcels handles GET /api/v1/parcels/my - all parcels sent by the
// authenticated user.
func (s *Server) GetMyParcels(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetMyParcelsQuery(identity.UserID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	parcels, err := s.getMyParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcels)
}

// GetIncomingParcels handles GET /api/v1/parcels/incoming - open parcels
// addressed to the authenticated user.
func (s *Server) GetIncomingParcels(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetIncomingParcelsQuery(identity.UserID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	parcels, err := s.getIncomingParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcels)
}

// GetDeliveryHistory handles GET /api/v1/parcels/history - parcels delivered
// to the authenticated user.
func (s *Server) GetDeliveryHistory(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetDeliveryHistoryQuery(identity.UserID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	parcels, err := s.getDeliveryHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcels)
}

// GetAllParcels handles GET /api/v1/parcels - the admin listing with search,
// filtering, sorting, pagination and projection taken from query parameters.
func (s *Server) GetAllParcels(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	params := make(map[string]string)
	for key, values := range ctx.QueryParams() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	filter, err := queries.NewListFilter(params)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetAllParcelsQuery(identity.UserID, filter)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.getAllParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStatusLog handles GET /api/v1/parcels/:parcelId/logs - the parcel's
// status history, oldest first.
func (s *Server) GetStatusLog(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetStatusLogQuery(identity.UserID, parcelID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	logs, err := s.getStatusLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, logs)
}

// TrackParcel handles GET /api/v1/track/:trackingId - the public tracking
// view looked up by tracking id.
func (s *Server) TrackParcel(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	trackingID, err := kernel.TrackingIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewTrackParcelQuery(identity.UserID, trackingID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

func unauthenticated(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Authentication required",
	})
}

// errorResponse maps application errors onto HTTP status codes. Rule
// violations on a loaded parcel are 422, duplicate tracking ids are 409 and
// anything unrecognized stays a 500.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrOperationForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrUniquenessViolation):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
