package handlers

import (
	"errors"
	"net/http"

	"mecanica_oficina/internal/domain/entities"
	"mecanica_oficina/internal/usecase"
	"mecanica_oficina/pkg"
	"mecanica_oficina/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	engineContextKey = "sync_engine"
	roleContextKey   = "role"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// RequireSession resolves the session engine for the request. Until a session
// exists every request is answered with 503 and the available recovery actions.
func RequireSession(session usecase.ISessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		eng, err := session.Engine()
		if err != nil {
			appErr := sessionUnavailableError(session.Status())
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(engineContextKey, eng)
		c.Next()
	}
}

// WithRole tags the request (and its log context) with the role of the route group.
func WithRole(log *logger.Logger, role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(roleContextKey, role)
		c.Request = c.Request.WithContext(log.WithRole(c.Request.Context(), string(role)))
		c.Next()
	}
}

func engineFrom(c *gin.Context) *usecase.SyncEngine {
	v, _ := c.Get(engineContextKey)
	eng, _ := v.(*usecase.SyncEngine)
	return eng
}

func sessionUnavailableError(st usecase.SessionStatus) *pkg.AppError {
	details := map[string]any{
		"state":   string(st.State),
		"actions": st.Actions,
	}
	if st.State == usecase.SessionStateUplinkFailed {
		details["reason"] = st.Reason
		details["error"] = st.Error
		return pkg.NewDomainErrorSimple("UPLINK_FAILED", "Remote store unavailable; retry or continue in simulated mode", http.StatusServiceUnavailable).WithDetails(details)
	}
	return pkg.NewDomainErrorSimple("SESSION_NOT_STARTED", "Session not started", http.StatusServiceUnavailable).WithDetails(details)
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEngineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPartNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("UNKNOWN_STATUS", "Unknown repair order status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("RO_NOT_FOUND", "Repair order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("RO_ALREADY_EXISTS", "Repair order already exists", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrTechnicianBusy):
		return pkg.NewDomainErrorSimple("TECHNICIAN_BUSY", "Technician already has an active repair order", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAssignedTechnician):
		return pkg.NewDomainErrorSimple("NOT_ASSIGNED_TECHNICIAN", "Repair order is not assigned to this technician", http.StatusForbidden)
	case errors.Is(err, usecase.ErrSettlementInProgress):
		return pkg.NewDomainErrorSimple("SETTLEMENT_IN_PROGRESS", "Repair order is being settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotInvoiceable):
		return pkg.NewDomainErrorSimple("RO_NOT_PENDING_INVOICE", "Repair order is not pending invoice", http.StatusConflict)
	case errors.Is(err, usecase.ErrEngineClosed):
		return pkg.NewDomainErrorSimple("SESSION_CLOSED", "Session closed", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
