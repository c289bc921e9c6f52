package handlers

import (
	"errors"
	"net/http"

	response "mecanica_oficina/internal/adapter/http/dto/response"
	"mecanica_oficina/internal/usecase"
	"mecanica_oficina/internal/usecase/interfaces"
	"mecanica_oficina/pkg"
	"mecanica_oficina/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes session bootstrap: status, retry of connected mode and
// the switch to simulated mode after an uplink failure.
type SessionHandler struct {
	session usecase.ISessionManager
	log     *logger.Logger
}

func NewSessionHandler(session usecase.ISessionManager, log *logger.Logger) *SessionHandler {
	return &SessionHandler{session: session, log: log}
}

// GetSession godoc
// @Summary      Session status
// @Description  Mode, bootstrap state, recovery actions and sync health.
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Router       /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSessionStatus(h.session.Status()))
}

// Retry godoc
// @Summary      Retry connected bootstrap
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /session/retry [post]
func (h *SessionHandler) Retry(c *gin.Context) {
	ctx := c.Request.Context()
	h.log.Info(ctx, "[session][handler] retry connected bootstrap")
	if _, err := h.session.Connect(ctx); err != nil {
		h.log.Error(ctx, "[session][handler] retry failed", err)
		writeError(c, mapSessionError(err, h.session.Status()))
		return
	}
	c.JSON(http.StatusOK, response.FromSessionStatus(h.session.Status()))
}

// Simulate godoc
// @Summary      Continue in simulated mode
// @Description  Starts a local-only session. Refused once a connected session exists.
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /session/simulate [post]
func (h *SessionHandler) Simulate(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := h.session.Simulate(); err != nil {
		h.log.Warn(ctx, "[session][handler] simulate refused: "+err.Error())
		writeError(c, mapSessionError(err, h.session.Status()))
		return
	}
	h.log.Warn(ctx, "[session][handler] simulated mode selected")
	c.JSON(http.StatusOK, response.FromSessionStatus(h.session.Status()))
}

func mapSessionError(err error, st usecase.SessionStatus) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionAlreadyStarted):
		return pkg.NewDomainErrorSimple("SESSION_ALREADY_STARTED", "A connected session is already running", http.StatusConflict)
	case errors.Is(err, interfaces.ErrRemoteUnconfigured), errors.Is(err, usecase.ErrRemoteReadFailed),
		st.State == usecase.SessionStateUplinkFailed:
		return sessionUnavailableError(st)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
