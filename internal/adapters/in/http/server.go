// Package http exposes the orchestrator over a small JSON API. Every
// route delegates to the orchestrator and maps its domain errors onto
// HTTP status codes; no business rule lives here.
package http

import (
	"errors"
	"net/http"

	"gigboard/internal/core/application/orchestrator"
	"gigboard/internal/core/domain/model/job"
	"gigboard/internal/core/domain/model/vehicle"
	"gigboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the JSON API over the session orchestrator.
type Server struct {
	orchestrator *orchestrator.Orchestrator
}

// NewServer creates a new HTTP server over the given orchestrator.
func NewServer(o *orchestrator.Orchestrator) *Server {
	return &Server{orchestrator: o}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/jobs", s.GetJobs)
	api.POST("/jobs/refresh", s.RefreshJobs)
	api.POST("/jobs/:id/accept", s.AcceptJob)
	api.POST("/jobs/:id/decline", s.DeclineJob)
	api.POST("/jobs/:id/advance", s.AdvanceJob)

	api.GET("/jobs/focused", s.GetFocusedJob)
	api.PUT("/jobs/focused", s.SetFocusedJob)
	api.DELETE("/jobs/focused", s.ClearFocusedJob)

	api.GET("/ui", s.GetUI)
	api.POST("/voice/transcript", s.PostTranscript)
	api.POST("/voice/toggle", s.ToggleVoice)

	api.GET("/vehicle", s.GetVehicle)
	api.PUT("/vehicle", s.PutVehicle)
}

// GetJobs handles GET /api/v1/jobs - returns the worklist ordered by
// descending score, optionally filtered to one status.
func (s *Server) GetJobs(ctx echo.Context) error {
	rawStatus := ctx.QueryParam("status")
	if rawStatus == "" {
		return ctx.JSON(http.StatusOK, toJobResponses(s.orchestrator.Worklist()))
	}

	status, err := job.ParseStatus(rawStatus)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status filter: " + rawStatus,
		})
	}
	return ctx.JSON(http.StatusOK, toJobResponses(s.orchestrator.WorklistByStatus(status)))
}

// RefreshJobs handles POST /api/v1/jobs/refresh - re-queries every
// provider and returns the merged worklist.
func (s *Server) RefreshJobs(ctx echo.Context) error {
	if err := s.orchestrator.RefreshAll(ctx.Request().Context()); err != nil {
		return errorJSON(ctx, err, "Failed to refresh jobs")
	}
	return ctx.JSON(http.StatusOK, toJobResponses(s.orchestrator.Worklist()))
}

// AcceptJob handles POST /api/v1/jobs/:id/accept.
func (s *Server) AcceptJob(ctx echo.Context) error {
	if err := s.orchestrator.Accept(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errorJSON(ctx, err, "Failed to accept job")
	}
	return jobJSON(ctx, s.orchestrator, ctx.Param("id"))
}

// DeclineJob handles POST /api/v1/jobs/:id/decline.
func (s *Server) DeclineJob(ctx echo.Context) error {
	if err := s.orchestrator.Decline(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errorJSON(ctx, err, "Failed to decline job")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceJob handles POST /api/v1/jobs/:id/advance.
func (s *Server) AdvanceJob(ctx echo.Context) error {
	if err := s.orchestrator.Advance(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errorJSON(ctx, err, "Failed to update job status")
	}
	return jobJSON(ctx, s.orchestrator, ctx.Param("id"))
}

// GetFocusedJob handles GET /api/v1/jobs/focused.
func (s *Server) GetFocusedJob(ctx echo.Context) error {
	focused, ok := s.orchestrator.Focused()
	if !ok {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "No job is focused",
		})
	}
	return ctx.JSON(http.StatusOK, toJobResponse(focused))
}

// SetFocusedJob handles PUT /api/v1/jobs/focused.
func (s *Server) SetFocusedJob(ctx echo.Context) error {
	var request FocusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := s.orchestrator.SetFocused(request.Id); err != nil {
		return errorJSON(ctx, err, "Failed to focus job")
	}
	return jobJSON(ctx, s.orchestrator, request.Id)
}

// ClearFocusedJob handles DELETE /api/v1/jobs/focused.
func (s *Server) ClearFocusedJob(ctx echo.Context) error {
	s.orchestrator.ClearFocused()
	return ctx.NoContent(http.StatusNoContent)
}

// GetUI handles GET /api/v1/ui - returns the presentation snapshot.
func (s *Server) GetUI(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, toUIResponse(s.orchestrator.UI()))
}

// PostTranscript handles POST /api/v1/voice/transcript - feeds one
// speech-recognition result into the voice pipeline.
func (s *Server) PostTranscript(ctx echo.Context) error {
	var request TranscriptRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := s.orchestrator.HandleTranscript(ctx.Request().Context(), request.Text, request.Final); err != nil {
		return errorJSON(ctx, err, "Failed to handle transcript")
	}
	return ctx.JSON(http.StatusOK, toUIResponse(s.orchestrator.UI()))
}

// ToggleVoice handles POST /api/v1/voice/toggle.
func (s *Server) ToggleVoice(ctx echo.Context) error {
	enabled := s.orchestrator.ToggleVoice()
	return ctx.JSON(http.StatusOK, VoiceResponse{Enabled: enabled})
}

// GetVehicle handles GET /api/v1/vehicle.
func (s *Server) GetVehicle(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, toVehicleResponse(s.orchestrator.Vehicle()))
}

// PutVehicle handles PUT /api/v1/vehicle - replaces the telemetry snapshot.
func (s *Server) PutVehicle(ctx echo.Context) error {
	var request VehicleRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	state, err := vehicle.NewState(request.SpeedKph, request.BatteryPct, request.OutsideTempC)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid vehicle state: " + err.Error(),
		})
	}

	if err := s.orchestrator.SetVehicle(state); err != nil {
		return errorJSON(ctx, err, "Failed to update vehicle state")
	}
	return ctx.JSON(http.StatusOK, toVehicleResponse(s.orchestrator.Vehicle()))
}

// jobJSON responds with the orchestrator's current copy of one job.
func jobJSON(ctx echo.Context, o *orchestrator.Orchestrator, jobID string) error {
	j, ok := o.Job(jobID)
	if !ok {
		// The action succeeded and removed the job, e.g. a decline.
		return ctx.NoContent(http.StatusNoContent)
	}
	return ctx.JSON(http.StatusOK, toJobResponse(j))
}

// errorJSON maps a domain error to its HTTP status.
func errorJSON(ctx echo.Context, err error, message string) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrActionNotPermitted):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrJobNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyTaken):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrSourceUnavailable):
		code = http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message + ": " + err.Error(),
	})
}
