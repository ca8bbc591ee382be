// Package http exposes the work order intake system over an echo server:
// a password login issuing signed session tokens, the dashboard listing,
// retailer search, the wizard endpoints, and the status-advance callback
// used by the external fulfillment process.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"workorder/internal/core/application/usecases/commands"
	"workorder/internal/core/application/usecases/queries"
	"workorder/internal/core/application/validation"
	"workorder/internal/core/application/wizard"
	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/pkg/errs"
)

// WorkOrderLister answers the dashboard listing query. Satisfied by both the
// SQL-backed and the in-memory query handler.
type WorkOrderLister interface {
	Handle(ctx context.Context, query queries.ListWorkOrdersQuery) ([]queries.ListWorkOrdersQueryResponse, error)
}

// RetailerSearcher answers the retailer registry search.
type RetailerSearcher interface {
	Handle(ctx context.Context, query queries.SearchRetailersQuery) ([]queries.SearchRetailersQueryResponse, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	accessPassword string
	jwtSecret      []byte
	sessionTTL     time.Duration

	sessions *wizard.Manager

	advanceWorkOrderHandler commands.AdvanceWorkOrderCommandHandler
	listWorkOrdersHandler   WorkOrderLister
	searchRetailersHandler  RetailerSearcher
}

// NewServer creates an HTTP server with the required handlers and session
// manager. The access password gates login; the secret signs session tokens.
func NewServer(
	accessPassword string,
	jwtSecret []byte,
	sessionTTL time.Duration,
	sessions *wizard.Manager,
	advanceWorkOrderHandler commands.AdvanceWorkOrderCommandHandler,
	listWorkOrdersHandler WorkOrderLister,
	searchRetailersHandler RetailerSearcher,
) *Server {
	return &Server{
		accessPassword:          accessPassword,
		jwtSecret:               jwtSecret,
		sessionTTL:              sessionTTL,
		sessions:                sessions,
		advanceWorkOrderHandler: advanceWorkOrderHandler,
		listWorkOrdersHandler:   listWorkOrdersHandler,
		searchRetailersHandler:  searchRetailersHandler,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance. Everything under
// /api/v1 except login requires a valid session token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/auth/login", s.Login)

	api := e.Group("/api/v1", authMiddleware(s.jwtSecret))
	api.POST("/auth/logout", s.Logout)

	api.GET("/work-orders", s.GetWorkOrders)
	api.POST("/work-orders/:id/advance", s.AdvanceWorkOrder)
	api.GET("/retailers", s.GetRetailers)

	api.GET("/wizard", s.GetWizard)
	api.POST("/wizard/start", s.StartWizard)
	api.POST("/wizard/details", s.SubmitWizardDetails)
	api.POST("/wizard/products", s.SubmitWizardProducts)
	api.POST("/wizard/cancel", s.CancelWizard)
	api.POST("/wizard/retailers", s.CreateWizardRetailer)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /api/v1/auth/login - exchanges the access password for
// a session token bound to a fresh wizard session.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if !passwordMatches(s.accessPassword, request.Password) {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Invalid access password",
		})
	}

	session := s.sessions.StartSession()
	token, err := issueToken(s.jwtSecret, session, s.sessionTTL)
	if err != nil {
		s.sessions.EndSession(session)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to issue session token",
		})
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

// Logout handles POST /api/v1/auth/logout - ends the wizard session and
// discards any draft it holds.
func (s *Server) Logout(ctx echo.Context) error {
	s.sessions.EndSession(sessionID(ctx))
	return ctx.NoContent(http.StatusNoContent)
}

// GetWorkOrders handles GET /api/v1/work-orders - the dashboard listing,
// newest-first, narrowed by optional status and retailer filters.
func (s *Server) GetWorkOrders(ctx echo.Context) error {
	query, err := queries.NewListWorkOrdersQuery(
		ctx.QueryParam("status"), ctx.QueryParam("retailer"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid filter: " + err.Error(),
		})
	}

	orders, err := s.listWorkOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve work orders",
		})
	}

	response := make([]WorkOrderResponse, len(orders))
	for i, order := range orders {
		response[i] = toWorkOrderResponse(order)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AdvanceWorkOrder handles POST /api/v1/work-orders/:id/advance - the
// callback the fulfillment process uses to move an order one step forward.
func (s *Server) AdvanceWorkOrder(ctx echo.Context) error {
	id, err := kernel.WorkOrderIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid work order id",
		})
	}

	cmd, err := commands.NewAdvanceWorkOrderCommand(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid work order id",
		})
	}

	if handleErr := s.advanceWorkOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Work order not found",
			})
		case errors.Is(handleErr, errs.ErrValueIsInvalid):
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "Work order cannot advance further",
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Failed to advance work order",
			})
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRetailers handles GET /api/v1/retailers - case-insensitive registry
// search for the wizard's retailer picker.
func (s *Server) GetRetailers(ctx echo.Context) error {
	query := queries.NewSearchRetailersQuery(ctx.QueryParam("q"))

	retailers, err := s.searchRetailersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to search retailers",
		})
	}

	response := make([]RetailerResponse, len(retailers))
	for i, entry := range retailers {
		response[i] = RetailerResponse{
			ID:      entry.ID,
			Name:    entry.Name,
			Street:  entry.Street,
			City:    entry.City,
			State:   entry.State,
			ZipCode: entry.ZipCode,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetWizard handles GET /api/v1/wizard - the session's wizard state and
// draft, for form prefill.
func (s *Server) GetWizard(ctx echo.Context) error {
	var response WizardResponse
	err := s.sessions.With(sessionID(ctx), func(w *wizard.Wizard) error {
		response = toWizardResponse(w)
		return nil
	})
	if err != nil {
		return sessionError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// StartWizard handles POST /api/v1/wizard/start - begins a create flow, or
// an edit flow when a work order id is given.
func (s *Server) StartWizard(ctx echo.Context) error {
	var request StartWizardRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var response WizardResponse
	err := s.sessions.With(sessionID(ctx), func(w *wizard.Wizard) error {
		if request.WorkOrderID == "" {
			if err := w.Start(); err != nil {
				return err
			}
			response = toWizardResponse(w)
			return nil
		}

		id, err := kernel.WorkOrderIDFromString(request.WorkOrderID)
		if err != nil {
			return err
		}
		if err := w.StartEdit(ctx.Request().Context(), id); err != nil {
			return err
		}
		response = toWizardResponse(w)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrFlowAlreadyActive):
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "A wizard flow is already active",
			})
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Work order not found",
			})
		case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid work order id",
			})
		default:
			return sessionError(ctx, err)
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitWizardDetails handles POST /api/v1/wizard/details - the first phase
// submit. Field errors come back as 422 with per-field paths.
func (s *Server) SubmitWizardDetails(ctx echo.Context) error {
	var request WizardDetailsRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var (
		response    WizardResponse
		fieldErrors validation.FieldErrors
	)
	err := s.sessions.With(sessionID(ctx), func(w *wizard.Wizard) error {
		var submitErr error
		fieldErrors, submitErr = w.SubmitDetails(request.toInput())
		if submitErr != nil {
			return submitErr
		}
		response = toWizardResponse(w)
		return nil
	})
	if err != nil {
		if errors.Is(err, wizard.ErrNotInDetailsPhase) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "The wizard is not in the details phase",
			})
		}
		return sessionError(ctx, err)
	}
	if len(fieldErrors) > 0 {
		return ctx.JSON(http.StatusUnprocessableEntity, toFieldErrorsResponse(fieldErrors))
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitWizardProducts handles POST /api/v1/wizard/products - the second
// phase submit, which commits the draft. A persistence failure keeps the
// draft server-side so the same submit can be retried.
func (s *Server) SubmitWizardProducts(ctx echo.Context) error {
	var request WizardProductsRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var (
		id          kernel.WorkOrderID
		fieldErrors validation.FieldErrors
	)
	err := s.sessions.With(sessionID(ctx), func(w *wizard.Wizard) error {
		var submitErr error
		id, fieldErrors, submitErr = w.SubmitProducts(ctx.Request().Context(), request.toInput())
		return submitErr
	})
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrNotInProductsPhase):
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "The wizard is not in the products phase",
			})
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "The work order being edited no longer exists",
			})
		case errors.Is(err, wizard.ErrSessionNotFound):
			return sessionError(ctx, err)
		default:
			return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Code:    http.StatusServiceUnavailable,
				Message: "Failed to save the work order; the draft is kept, try again",
			})
		}
	}
	if len(fieldErrors) > 0 {
		return ctx.JSON(http.StatusUnprocessableEntity, toFieldErrorsResponse(fieldErrors))
	}

	return ctx.JSON(http.StatusCreated, WizardCommitResponse{WorkOrderID: id.String()})
}

// CancelWizard handles POST /api/v1/wizard/cancel - discards the draft.
func (s *Server) CancelWizard(ctx echo.Context) error {
	err := s.sessions.With(sessionID(ctx), func(w *wizard.Wizard) error {
		w.Cancel()
		return nil
	})
	if err != nil {
		return sessionError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateWizardRetailer handles POST /api/v1/wizard/retailers - the inline
// retailer creation subflow. The created retailer is auto-selected into the
// draft and its shipping address synthesized.
func (s *Server) CreateWizardRetailer(ctx echo.Context) error {
	var request NewRetailerRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var (
		response    WizardResponse
		fieldErrors validation.FieldErrors
	)
	err := s.sessions.With(sessionID(ctx), func(w *wizard.Wizard) error {
		var createErr error
		_, fieldErrors, createErr = w.CreateRetailer(ctx.Request().Context(), request.toInput())
		if createErr != nil {
			return createErr
		}
		response = toWizardResponse(w)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrNotInDetailsPhase):
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "The wizard is not in the details phase",
			})
		case errors.Is(err, wizard.ErrSessionNotFound):
			return sessionError(ctx, err)
		default:
			return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Code:    http.StatusServiceUnavailable,
				Message: "Failed to register the retailer, try again",
			})
		}
	}
	if len(fieldErrors) > 0 {
		return ctx.JSON(http.StatusUnprocessableEntity, toFieldErrorsResponse(fieldErrors))
	}

	return ctx.JSON(http.StatusCreated, response)
}

func sessionError(ctx echo.Context, err error) error {
	if errors.Is(err, wizard.ErrSessionNotFound) {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Session expired, log in again",
		})
	}
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Internal error",
	})
}
