// Package http exposes the donation workflow over a REST API.
// Handlers translate between the wire contracts and application commands;
// all business rules live in the core.
package http

import (
	"fmt"
	"net/http"

	"fooddonation/internal/core/application/usecases/commands"
	"fooddonation/internal/core/application/usecases/queries"
	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDonationHandler         commands.CreateDonationCommandHandler
	submitDonationRequestHandler  commands.SubmitDonationRequestCommandHandler
	approveDonationRequestHandler commands.ApproveDonationRequestCommandHandler
	schedulePickupHandler         commands.SchedulePickupCommandHandler
	sendOtpHandler                commands.SendOtpCommandHandler
	verifyOtpHandler              commands.VerifyOtpCommandHandler
	completeDonationHandler       commands.CompleteDonationCommandHandler
	submitVolunteerRequestHandler commands.SubmitVolunteerRequestCommandHandler
	acceptVolunteerRequestHandler commands.AcceptVolunteerRequestCommandHandler

	// Query handlers
	getOpenDonationsHandler queries.GetOpenDonationsQueryHandler
	getNgoRosterHandler     queries.GetNgoRosterQueryHandler

	proofStorage ports.ProofStorage
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createDonationHandler commands.CreateDonationCommandHandler,
	submitDonationRequestHandler commands.SubmitDonationRequestCommandHandler,
	approveDonationRequestHandler commands.ApproveDonationRequestCommandHandler,
	schedulePickupHandler commands.SchedulePickupCommandHandler,
	sendOtpHandler commands.SendOtpCommandHandler,
	verifyOtpHandler commands.VerifyOtpCommandHandler,
	completeDonationHandler commands.CompleteDonationCommandHandler,
	submitVolunteerRequestHandler commands.SubmitVolunteerRequestCommandHandler,
	acceptVolunteerRequestHandler commands.AcceptVolunteerRequestCommandHandler,
	getOpenDonationsHandler queries.GetOpenDonationsQueryHandler,
	getNgoRosterHandler queries.GetNgoRosterQueryHandler,
	proofStorage ports.ProofStorage,
) *Server {
	return &Server{
		createDonationHandler:         createDonationHandler,
		submitDonationRequestHandler:  submitDonationRequestHandler,
		approveDonationRequestHandler: approveDonationRequestHandler,
		schedulePickupHandler:         schedulePickupHandler,
		sendOtpHandler:                sendOtpHandler,
		verifyOtpHandler:              verifyOtpHandler,
		completeDonationHandler:       completeDonationHandler,
		submitVolunteerRequestHandler: submitVolunteerRequestHandler,
		acceptVolunteerRequestHandler: acceptVolunteerRequestHandler,
		getOpenDonationsHandler:       getOpenDonationsHandler,
		getNgoRosterHandler:           getNgoRosterHandler,
		proofStorage:                  proofStorage,
	}
}

// RegisterRoutes attaches all API routes to the given group.
// The group is expected to carry the Auth middleware.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.POST("/donations", s.CreateDonation)
	g.GET("/donations/open", s.GetOpenDonations)
	g.POST("/donations/:id/requests", s.SubmitDonationRequest)
	g.POST("/requests/:requestId/approve", s.ApproveDonationRequest)
	g.POST("/donations/:id/schedule", s.SchedulePickup)
	g.POST("/donations/:id/otp", s.SendOtp)
	g.POST("/donations/:id/otp/verify", s.VerifyOtp)
	g.POST("/donations/:id/complete", s.CompleteDonation)
	g.POST("/ngos/:id/join", s.SubmitVolunteerRequest)
	g.POST("/join-requests/:requestId/accept", s.AcceptVolunteerRequest)
	g.GET("/ngos/:id/roster", s.GetNgoRoster)
}

// CreateDonation handles POST /api/v1/donations - posts a new donation.
func (s *Server) CreateDonation(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var body NewDonation
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	items := make([]donation.Item, 0, len(body.Items))
	for _, it := range body.Items {
		item, err := donation.NewItem(it.Name, it.Quantity, it.Unit, it.Condition)
		if err != nil {
			return respondError(ctx, err)
		}
		items = append(items, item)
	}

	point, err := kernel.NewGeoPoint(body.PickupLongitude, body.PickupLatitude)
	if err != nil {
		return respondError(ctx, err)
	}

	donationID := kernel.NewUUID()
	cmd, err := commands.NewCreateDonationCommand(
		donationID, actor, body.Title, items, body.PeopleFed, body.PickupAddress, point)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createDonationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: donationID.Bytes()})
}

// GetOpenDonations handles GET /api/v1/donations/open - lists claimable donations.
func (s *Server) GetOpenDonations(ctx echo.Context) error {
	query := queries.NewGetOpenDonationsQuery()

	donations, err := s.getOpenDonationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OpenDonation, len(donations))
	for i, don := range donations {
		response[i] = OpenDonation{
			Id:              don.ID.Bytes(),
			Title:           don.Title,
			PeopleFed:       don.PeopleFed,
			PickupAddress:   don.PickupAddress,
			PickupLongitude: don.PickupPoint.Longitude(),
			PickupLatitude:  don.PickupPoint.Latitude(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitDonationRequest handles POST /api/v1/donations/:id/requests - claims a donation.
func (s *Server) SubmitDonationRequest(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	donationID, err := pathUUID(ctx, "id")
	if err != nil {
		return invalidPathID(ctx)
	}

	var body NewDonationRequest
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewSubmitDonationRequestCommand(requestID, donationID, actor, body.Message)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.submitDonationRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: requestID.Bytes()})
}

// ApproveDonationRequest handles POST /api/v1/requests/:requestId/approve.
func (s *Server) ApproveDonationRequest(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	requestID, err := pathUUID(ctx, "requestId")
	if err != nil {
		return invalidPathID(ctx)
	}

	cmd, err := commands.NewApproveDonationRequestCommand(requestID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.approveDonationRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SchedulePickup handles POST /api/v1/donations/:id/schedule - forms a pickup team.
func (s *Server) SchedulePickup(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	donationID, err := pathUUID(ctx, "id")
	if err != nil {
		return invalidPathID(ctx)
	}

	var body SchedulePickup
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	volunteerIDs := make([]kernel.UUID, 0, len(body.VolunteerIds))
	for _, raw := range body.VolunteerIds {
		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return invalidBody(ctx)
		}
		volunteerIDs = append(volunteerIDs, id)
	}

	leaderID, err := kernel.UUIDFromBytes(body.LeaderId[:])
	if err != nil {
		return invalidBody(ctx)
	}

	pickupSchedule, err := donation.NewSchedule(body.Pickup.At, body.Pickup.Location)
	if err != nil {
		return respondError(ctx, err)
	}

	deliverySchedule, err := donation.NewSchedule(body.Delivery.At, body.Delivery.Location)
	if err != nil {
		return respondError(ctx, err)
	}

	teamID := kernel.NewUUID()
	cmd, err := commands.NewSchedulePickupCommand(
		teamID, donationID, actor, volunteerIDs, leaderID, pickupSchedule, deliverySchedule)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.schedulePickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: teamID.Bytes()})
}

// SendOtp handles POST /api/v1/donations/:id/otp - issues a pickup code.
func (s *Server) SendOtp(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	donationID, err := pathUUID(ctx, "id")
	if err != nil {
		return invalidPathID(ctx)
	}

	cmd, err := commands.NewSendOtpCommand(donationID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.sendOtpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyOtp handles POST /api/v1/donations/:id/otp/verify - confirms pickup.
func (s *Server) VerifyOtp(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	donationID, err := pathUUID(ctx, "id")
	if err != nil {
		return invalidPathID(ctx)
	}

	var body VerifyOtp
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewVerifyOtpCommand(donationID, actor, body.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.verifyOtpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDonation handles POST /api/v1/donations/:id/complete.
// Accepts multipart proof photos, stores them, and completes the donation
// with their URLs.
func (s *Server) CompleteDonation(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	donationID, err := pathUUID(ctx, "id")
	if err != nil {
		return invalidPathID(ctx)
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return invalidBody(ctx)
	}

	files := form.File["proof_images"]
	proofImages := make([]string, 0, len(files))
	for i, fileHeader := range files {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			return invalidBody(ctx)
		}

		name := fmt.Sprintf("%s-%d", donationID.String(), i)
		url, storeErr := s.proofStorage.Store(ctx.Request().Context(), file, name)
		file.Close()
		if storeErr != nil {
			return respondError(ctx, storeErr)
		}

		proofImages = append(proofImages, url)
	}

	cmd, err := commands.NewCompleteDonationCommand(donationID, actor, proofImages)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.completeDonationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitVolunteerRequest handles POST /api/v1/ngos/:id/join.
func (s *Server) SubmitVolunteerRequest(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	ngoID, err := pathUUID(ctx, "id")
	if err != nil {
		return invalidPathID(ctx)
	}

	joinRequestID := kernel.NewUUID()
	cmd, err := commands.NewSubmitVolunteerRequestCommand(joinRequestID, ngoID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.submitVolunteerRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: joinRequestID.Bytes()})
}

// AcceptVolunteerRequest handles POST /api/v1/join-requests/:requestId/accept.
func (s *Server) AcceptVolunteerRequest(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	requestID, err := pathUUID(ctx, "requestId")
	if err != nil {
		return invalidPathID(ctx)
	}

	cmd, err := commands.NewAcceptVolunteerRequestCommand(requestID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.acceptVolunteerRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetNgoRoster handles GET /api/v1/ngos/:id/roster.
func (s *Server) GetNgoRoster(ctx echo.Context) error {
	ngoID, err := pathUUID(ctx, "id")
	if err != nil {
		return invalidPathID(ctx)
	}

	query, err := queries.NewGetNgoRosterQuery(ngoID)
	if err != nil {
		return respondError(ctx, err)
	}

	roster, err := s.getNgoRosterHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]RosterVolunteer, len(roster))
	for i, v := range roster {
		response[i] = RosterVolunteer{
			Id:          v.VolunteerID.Bytes(),
			Name:        v.Name,
			IsAvailable: v.IsAvailable,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func invalidPathID(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid ID in path",
	})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

func unauthenticated(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Authentication required",
	})
}
