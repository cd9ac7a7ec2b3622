// Package http implements the inbound HTTP surface: request decoding,
// invocation of command and query handlers, and the mapping from domain
// errors to status codes.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/agent"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/metrics"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	issueOTPHandler        commands.IssueOTPCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	registerAgentHandler   commands.RegisterAgentCommandHandler

	// Query handlers
	getAgentHistoryHandler   queries.GetAgentHistoryQueryHandler
	authenticateAgentHandler queries.AuthenticateAgentQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	issueOTPHandler commands.IssueOTPCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	registerAgentHandler commands.RegisterAgentCommandHandler,
	getAgentHistoryHandler queries.GetAgentHistoryQueryHandler,
	authenticateAgentHandler queries.AuthenticateAgentQueryHandler,
) *Server {
	return &Server{
		issueOTPHandler:          issueOTPHandler,
		confirmDeliveryHandler:   confirmDeliveryHandler,
		registerAgentHandler:     registerAgentHandler,
		getAgentHistoryHandler:   getAgentHistoryHandler,
		authenticateAgentHandler: authenticateAgentHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	delivery := api.Group("/delivery")
	delivery.POST("/request-otp", s.RequestOTP)
	delivery.POST("/confirm", s.ConfirmDelivery)
	delivery.GET("/history/:agentId", s.GetHistory)

	auth := api.Group("/auth")
	auth.POST("/register", s.RegisterAgent)
	auth.POST("/login", s.Login)
}

// RequestOTP handles POST /api/v1/delivery/request-otp.
// Issues a fresh code for the shipment and sends it to the customer.
func (s *Server) RequestOTP(ctx echo.Context) error {
	var req RequestOTPRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewIssueOTPCommand(req.ShipmentID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Shipment ID is required.")
	}

	result, err := s.issueOTPHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorJSON(ctx, http.StatusNotFound, "Shipment not found.")
		}
		return errorJSON(ctx, http.StatusServiceUnavailable, "Service temporarily unavailable")
	}

	return ctx.JSON(http.StatusOK, RequestOTPResponse{
		Message:   "OTP generated and sent to customer.",
		OTPExpiry: result.ExpiresAt,
	})
}

// ConfirmDelivery handles POST /api/v1/delivery/confirm.
// Verifies the presented code and transitions the shipment to delivered.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	var req ConfirmDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Agent ID must be a valid UUID.")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(req.ShipmentID, req.OTPCode, agentID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Shipment ID, OTP, and Agent ID are required.")
	}

	result, err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.deliveryError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ConfirmDeliveryResponse{
		Message:    "Delivery confirmed successfully.",
		ShipmentID: result.Number,
		Status:     result.Status.String(),
		Timestamp:  result.DeliveredAt,
	})
}

// GetHistory handles GET /api/v1/delivery/history/:agentId.
// Returns the agent's completed deliveries, newest first.
func (s *Server) GetHistory(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("agentId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Agent ID must be a valid UUID.")
	}

	query, err := queries.NewGetAgentHistoryQuery(agentID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Agent ID is required.")
	}

	history, err := s.getAgentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusServiceUnavailable, "Failed to retrieve history")
	}

	response := make([]HistoryEntry, len(history))
	for i, entry := range history {
		response[i] = HistoryEntry{
			ShipmentID:  entry.Number,
			DeliveredAt: entry.DeliveredAt,
			Status:      entry.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterAgent handles POST /api/v1/auth/register.
func (s *Server) RegisterAgent(ctx echo.Context) error {
	var req RegisterAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRegisterAgentCommand(req.Name, req.Email, req.Mobile, req.Password)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Name, Password, and Email OR Mobile are required.")
	}

	result, err := s.registerAgentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorJSON(ctx, http.StatusConflict, "Agent with this Email or Mobile already exists.")
		}
		return errorJSON(ctx, http.StatusServiceUnavailable, "Failed to register agent")
	}

	return ctx.JSON(http.StatusCreated, RegisterAgentResponse{
		Message: "Agent registered successfully.",
		Agent: AgentInfo{
			ID:     result.ID.String(),
			Name:   req.Name,
			Email:  req.Email,
			Mobile: req.Mobile,
		},
	})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	query, err := queries.NewAuthenticateAgentQuery(req.Identifier, req.Password)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Email/Mobile and Password are required.")
	}

	result, err := s.authenticateAgentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, agent.ErrAuthenticationFailed) {
			return errorJSON(ctx, http.StatusUnauthorized, "Invalid credentials.")
		}
		return errorJSON(ctx, http.StatusServiceUnavailable, "Failed to authenticate")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful.",
		Agent: AgentInfo{
			ID:   result.ID.String(),
			Name: result.Name,
		},
	})
}

// deliveryError maps domain errors from the confirmation use case to HTTP
// status codes and records the failure reason. The mapping mirrors the
// verification order the aggregate enforces: missing shipment, conflict,
// bad code, lapsed code.
func (s *Server) deliveryError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		metrics.ConfirmationFailures.WithLabelValues(metrics.ReasonNotFound).Inc()
		return errorJSON(ctx, http.StatusNotFound, "Shipment not found.")
	case errors.Is(err, shipment.ErrAlreadyDelivered):
		metrics.ConfirmationFailures.WithLabelValues(metrics.ReasonAlreadyDelivered).Inc()
		return errorJSON(ctx, http.StatusConflict, "Shipment already delivered.")
	case errors.Is(err, shipment.ErrInvalidCode):
		metrics.ConfirmationFailures.WithLabelValues(metrics.ReasonInvalidCode).Inc()
		return errorJSON(ctx, http.StatusUnauthorized, "Invalid OTP.")
	case errors.Is(err, shipment.ErrCodeExpired):
		metrics.ConfirmationFailures.WithLabelValues(metrics.ReasonCodeExpired).Inc()
		return errorJSON(ctx, http.StatusGone, "OTP Expired.")
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusServiceUnavailable, "Service temporarily unavailable")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
