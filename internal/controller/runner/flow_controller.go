package runner

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/assessflow/config"
	"github.com/lshigami/assessflow/internal/auth"
	"github.com/lshigami/assessflow/internal/dto"
	"github.com/lshigami/assessflow/internal/quiz"
	"github.com/lshigami/assessflow/internal/service"
	"github.com/rs/zerolog/log"
)

type FlowController struct {
	flows        service.FlowService
	authn        *auth.Authenticator
	streamPeriod time.Duration
}

func NewFlowController(flows service.FlowService, authn *auth.Authenticator, cfg *config.Config) *FlowController {
	period := cfg.Flow.TickInterval
	if period <= 0 {
		period = time.Second
	}
	return &FlowController{flows: flows, authn: authn, streamPeriod: period}
}

func (ctrl *FlowController) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1")
	flow := apiV1.Group("/flow", ctrl.authn.Middleware())
	{
		flow.GET("", ctrl.GetFlowHandler)
		flow.DELETE("", ctrl.EndFlowHandler)
		flow.POST("/refresh", ctrl.RefreshHandler)
		flow.POST("/assessments/:assessment_id/open", ctrl.OpenHandler)
		flow.POST("/start", ctrl.StartHandler)
		flow.POST("/cancel", ctrl.CancelHandler)
		flow.PUT("/answer", ctrl.AnswerHandler)
		flow.POST("/next", ctrl.NextHandler)
		flow.POST("/previous", ctrl.PreviousHandler)
		flow.POST("/submit", ctrl.SubmitHandler)
		flow.POST("/breakdown", ctrl.BreakdownHandler)
		flow.POST("/retry", ctrl.RetryHandler)
		flow.POST("/close", ctrl.CloseHandler)
		flow.GET("/timer", ctrl.TimerHandler)
	}
}

func (ctrl *FlowController) flow(c *gin.Context) *quiz.Flow {
	return ctrl.flows.Flow(c.Request.Context(), quiz.Identity{
		StudentID: auth.StudentID(c),
		Token:     auth.Token(c),
	})
}

// respond writes the current view, or maps err onto a status code.
func (ctrl *FlowController) respond(c *gin.Context, f *quiz.Flow, err error) {
	if err == nil {
		c.JSON(http.StatusOK, f.View())
		return
	}
	status := statusFor(err)
	ev := log.Warn()
	if status >= http.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(err).Str("studentID", auth.StudentID(c)).Str("path", c.FullPath()).Int("status", status).Msg("Flow action failed")
	c.JSON(status, dto.ErrorResponse{
		Message: err.Error(),
		Details: []string{"screen: " + string(f.Screen())},
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, quiz.ErrAssessmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, quiz.ErrInvalidOption):
		return http.StatusBadRequest
	case errors.Is(err, quiz.ErrCollaborator):
		return http.StatusBadGateway
	case errors.Is(err, quiz.ErrWrongScreen),
		errors.Is(err, quiz.ErrAssessmentInactive),
		errors.Is(err, quiz.ErrAttemptsExhausted),
		errors.Is(err, quiz.ErrNoQuestions),
		errors.Is(err, quiz.ErrQuestionsLoading),
		errors.Is(err, quiz.ErrNextDisabled),
		errors.Is(err, quiz.ErrPreviousDisabled),
		errors.Is(err, quiz.ErrSubmitDisabled),
		errors.Is(err, quiz.ErrTimeUp),
		errors.Is(err, quiz.ErrSubmissionInFlight),
		errors.Is(err, quiz.ErrFlowTornDown):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetFlowHandler godoc
// @Summary Get the current screen
// @Description Returns the student's flow view. The launcher is loaded on first use.
// @Tags flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} quiz.View
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /flow [get]
func (ctrl *FlowController) GetFlowHandler(c *gin.Context) {
	ctrl.respond(c, ctrl.flow(c), nil)
}

// EndFlowHandler godoc
// @Summary Tear the flow down
// @Description Stops the timer, discards outstanding responses and forgets the flow.
// @Tags flow
// @Security BearerAuth
// @Success 204
// @Router /flow [delete]
func (ctrl *FlowController) EndFlowHandler(c *gin.Context) {
	ctrl.flows.End(auth.StudentID(c))
	c.Status(http.StatusNoContent)
}

// RefreshHandler godoc
// @Summary Reload the launcher
// @Tags flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} quiz.View
// @Failure 409 {object} dto.ErrorResponse "Not on the launcher"
// @Failure 502 {object} dto.ErrorResponse "Gradebook unavailable"
// @Router /flow/refresh [post]
func (ctrl *FlowController) RefreshHandler(c *gin.Context) {
	f := ctrl.flow(c)
	ctrl.respond(c, f, f.Refresh(c.Request.Context()))
}

// OpenHandler godoc
// @Summary Open an assessment's instructions
// @Tags flow
// @Produce json
// @Security BearerAuth
// @Param assessment_id path int true "Assessment ID"
// @Success 200 {object} quiz.View
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Assessment not in the launcher"
// @Failure 409 {object} dto.ErrorResponse "Inactive, exhausted or wrong screen"
// @Router /flow/assessments/{assessment_id}/open [post]
func (ctrl *FlowController) OpenHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("assessment_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid assessment ID format"})
		return
	}
	f := ctrl.flow(c)
	ctrl.respond(c, f, f.Open(uint(id)))
}

// StartHandler godoc
// @Summary Start the timed attempt
// @Description Fetches the questions and starts the countdown.
// @Tags flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} quiz.View
// @Failure 409 {object} dto.ErrorResponse "Not on instructions, or no questions"
// @Failure 502 {object} dto.ErrorResponse "Gradebook unavailable"
// @Router /flow/start [post]
func (ctrl *FlowController) StartHandler(c *gin.Context) {
	f := ctrl.flow(c)
	ctrl.respond(c, f, f.Start(c.Request.Context()))
}

// CancelHandler godoc
// @Summary Back to the launcher from instructions
// @Tags flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} quiz.View
// @Failure 409 {object} dto.ErrorResponse
// @Router /flow/cancel [post]
func (ctrl *FlowController) CancelHandler(c *gin.Context) {
	f := ctrl.flow(c)
	ctrl.respond(c, f, f.Cancel())
}

// AnswerHandler godoc
// @Summary Select an option on the current question
// @Tags flow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answer body dto.AnswerRequest true "Option index"
// @Success 200 {object} quiz.View
// @Failure 400 {object} dto.ErrorResponse "Invalid body or option"
// @Failure 409 {object} dto.ErrorResponse
// @Router /flow/answer [put]
func (ctrl *FlowController) AnswerHandler(c *gin.Context) {
	var req dto.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid answer body", Details: []string{err.Error()}})
		return
	}
	f := ctrl.flow(c)
	ctrl.respond(c, f, f.Select(*req.Option))
}

// NextHandler godoc
// @Summary Go to the next question
// @Tags flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} quiz.View
// @Failure 409 {object} dto.ErrorResponse "Current question unanswered or last"
// @Router /flow/next [post]
func (ctrl *FlowController) NextHandler(c *gin.Context) {
	f := ctrl.flow(c)
	ctrl.respond(c, f, f.Next())
}

// PreviousHandler godoc
// @Summary Go to the previous question
// @Tags flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} quiz.View
// @Failure 409 {object} dto.ErrorResponse "Already on the first question"
// @Router /flow/previous [post]
func (ctrl *FlowController) PreviousHandler(c *gin.Context) {
	f := ctrl.flow(c)
	ctrl.respond(c, f, f.Previous())
}

// SubmitHandler godoc
// @Summary Submit the attempt
// @Description Allowed on the last question once it is answered.
// @Tags flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} quiz.View
// @Failure 409 {object} dto.ErrorResponse "Submit disabled or already in flight"
// @Failure 502 {object} dto.ErrorResponse "Gradebook rejected the attempt"
// @Router /flow/submit [post]
func (ctrl *FlowController) SubmitHandler(c *gin.Context) {
	f := ctrl.flow(c)
	_, err := f.Submit(c.Request.Context())
	ctrl.respond(c, f, err)
}

// BreakdownHandler godoc
// @Summary Toggle the per-question breakdown
// @Tags flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} quiz.View
// @Failure 409 {object} dto.ErrorResponse
// @Router /flow/breakdown [post]
func (ctrl *FlowController) BreakdownHandler(c *gin.Context) {
	f := ctrl.flow(c)
	ctrl.respond(c, f, f.ToggleBreakdown())
}

// RetryHandler godoc
// @Summary Retake from results
// @Tags flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} quiz.View
// @Failure 409 {object} dto.ErrorResponse "No attempts left"
// @Router /flow/retry [post]
func (ctrl *FlowController) RetryHandler(c *gin.Context) {
	f := ctrl.flow(c)
	ctrl.respond(c, f, f.Retry())
}

// CloseHandler godoc
// @Summary Close results and return to the launcher
// @Tags flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} quiz.View
// @Failure 409 {object} dto.ErrorResponse
// @Router /flow/close [post]
func (ctrl *FlowController) CloseHandler(c *gin.Context) {
	f := ctrl.flow(c)
	ctrl.respond(c, f, f.Close())
}

// TimerHandler godoc
// @Summary Stream the countdown
// @Description Server-sent events: "tick" carries the remaining seconds while the quiz is active. A final "screen" event names the screen the flow moved to.
// @Tags flow
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Router /flow/timer [get]
func (ctrl *FlowController) TimerHandler(c *gin.Context) {
	f := ctrl.flow(c)
	ctx := c.Request.Context()
	ticker := time.NewTicker(ctrl.streamPeriod)
	defer ticker.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	for {
		v := f.View()
		if v.Active == nil {
			c.SSEvent("screen", string(v.Screen))
			c.Writer.Flush()
			return
		}
		c.SSEvent("tick", v.Active.RemainingSeconds)
		c.Writer.Flush()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
