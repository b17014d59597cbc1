package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/services"
	"github.com/unistone/campus/internal/middleware"
	"github.com/unistone/campus/internal/pkg/notify"
)

// AttendanceController handles live attendance sessions
type AttendanceController struct {
	attendanceService services.AttendanceService
	hub               *notify.Hub
	logger            zerolog.Logger
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService, hub *notify.Hub, logger zerolog.Logger) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
		hub:               hub,
		logger:            logger,
	}
}

func toSessionResponse(session *models.AttendanceSession) dto.AttendanceSessionResponse {
	return dto.AttendanceSessionResponse{
		ID:           session.ID,
		CourseID:     session.CourseID,
		FacultyID:    session.FacultyID,
		StartedAt:    session.StartedAt,
		PresentCount: len(session.Present),
		Present:      session.Present,
	}
}

// StartSession opens a check-in window
// @Summary Start an attendance session
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StartAttendanceRequest true "Session parameters"
// @Success 201 {object} dto.StructuredResponse{data=dto.AttendanceSessionResponse} "Session"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Faculty only"
// @Router /attendance/sessions [post]
func (c *AttendanceController) StartSession(ctx *gin.Context) {
	var req dto.StartAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	facultyID := ctx.GetString(middleware.ContextUserID)

	session, err := c.attendanceService.StartSession(ctx.Request.Context(), facultyID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(toSessionResponse(session), "Attendance session started"))
}

// CloseSession ends the active session
// @Summary Close the active attendance session
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StructuredResponse{data=dto.AttendanceSessionResponse} "Closed session"
// @Failure 403 {object} dto.ErrorResponse "Not the session owner"
// @Failure 404 {object} dto.ErrorResponse "No active session"
// @Router /attendance/sessions/current [delete]
func (c *AttendanceController) CloseSession(ctx *gin.Context) {
	facultyID := ctx.GetString(middleware.ContextUserID)

	session, err := c.attendanceService.CloseSession(ctx.Request.Context(), facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(toSessionResponse(session), "Attendance session closed"))
}

// CurrentSession returns the active session
// @Summary Get the active attendance session
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StructuredResponse{data=dto.AttendanceSessionResponse} "Session"
// @Failure 404 {object} dto.ErrorResponse "No active session"
// @Router /attendance/sessions/current [get]
func (c *AttendanceController) CurrentSession(ctx *gin.Context) {
	session, err := c.attendanceService.CurrentSession(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(toSessionResponse(session), "Attendance session"))
}

// MarkPresent records a student check-in
// @Summary Mark present
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkPresentRequest true "Session reference"
// @Success 200 {object} dto.StructuredResponse{data=dto.AttendanceSessionResponse} "Updated session"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "No matching active session"
// @Router /attendance/present [post]
func (c *AttendanceController) MarkPresent(ctx *gin.Context) {
	var req dto.MarkPresentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	studentID := ctx.GetString(middleware.ContextUserID)

	session, err := c.attendanceService.MarkPresent(ctx.Request.Context(), req.SessionID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(toSessionResponse(session), "Marked present"))
}

// Watch upgrades to a WebSocket pushing attendance events
// @Summary Watch for attendance events
// @Description Upgrades to a WebSocket. The server pushes session_started, session_closed and student_present events as they happen.
// @Tags attendance
// @Security BearerAuth
// @Success 101 {string} string "Switching protocols"
// @Router /attendance/watch [get]
func (c *AttendanceController) Watch(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)

	if err := notify.ServeWS(c.hub, ctx.Writer, ctx.Request, userID, c.logger); err != nil {
		c.logger.Error().Err(err).Str("userID", userID).Msg("WebSocket upgrade failed")
	}
}
