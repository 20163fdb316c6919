package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/assessflow/internal/auth"
	"github.com/lshigami/assessflow/internal/dto"
	"github.com/lshigami/assessflow/internal/service"
	"github.com/rs/zerolog/log"
)

type UserAssessmentController struct {
	assessmentService service.AssessmentService
	submissionService service.SubmissionService
}

func NewUserAssessmentController(as service.AssessmentService, ss service.SubmissionService) *UserAssessmentController {
	return &UserAssessmentController{
		assessmentService: as,
		submissionService: ss,
	}
}

func (c *UserAssessmentController) RegisterRoutes(router *gin.Engine, authn *auth.Authenticator) {
	userAPIGroup := router.Group("/api/v1", authn.Middleware())
	{
		userAPIGroup.GET("/assessments", c.ListAssessments)
		userAPIGroup.GET("/assessments/:assessment_id/questions", c.GetQuestions)
		userAPIGroup.GET("/assessments/:assessment_id/attempts", c.GetAttempts)
		userAPIGroup.POST("/attempts", c.SubmitAttempt)
	}
}

// studentFor resolves the student a request may act for. Students only see
// their own records; admins may name anyone.
func studentFor(ctx *gin.Context, requested string) (string, bool) {
	self := auth.StudentID(ctx)
	if requested == "" {
		return self, true
	}
	if requested != self && auth.Role(ctx) != auth.RoleAdmin {
		ctx.JSON(http.StatusForbidden, dto.Fail[any]("cannot act for another student"))
		return "", false
	}
	return requested, true
}

func parseAssessmentID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("assessment_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail[any]("Invalid assessment ID format"))
		return 0, false
	}
	return uint(id), true
}

// ListAssessments godoc
// @Summary (User) List assessments
// @Description Every assessment with the number of attempts the student has taken.
// @Tags User - Assessments
// @Produce json
// @Security BearerAuth
// @Param student_id query string false "Student ID, defaults to the token subject"
// @Success 200 {object} dto.APIResponse[[]dto.AssessmentDTO]
// @Failure 403 {object} dto.APIResponse[any] "Another student's records"
// @Failure 500 {object} dto.APIResponse[any] "Internal server error"
// @Router /assessments [get]
func (c *UserAssessmentController) ListAssessments(ctx *gin.Context) {
	studentID, ok := studentFor(ctx, ctx.Query("student_id"))
	if !ok {
		return
	}
	list, err := c.assessmentService.ListForStudent(ctx.Request.Context(), studentID)
	if err != nil {
		log.Error().Err(err).Str("studentID", studentID).Msg("User ListAssessments: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.Fail[any]("Failed to retrieve assessments"))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(list))
}

// GetQuestions godoc
// @Summary (User) Questions of an assessment
// @Tags User - Assessments
// @Produce json
// @Security BearerAuth
// @Param assessment_id path int true "Assessment ID"
// @Success 200 {object} dto.APIResponse[[]dto.QuestionDTO]
// @Failure 400 {object} dto.APIResponse[any] "Invalid ID format"
// @Failure 404 {object} dto.APIResponse[any] "Assessment not found"
// @Failure 500 {object} dto.APIResponse[any] "Internal server error"
// @Router /assessments/{assessment_id}/questions [get]
func (c *UserAssessmentController) GetQuestions(ctx *gin.Context) {
	id, ok := parseAssessmentID(ctx)
	if !ok {
		return
	}
	questions, err := c.assessmentService.Questions(ctx.Request.Context(), id)
	if errors.Is(err, service.ErrAssessmentNotFound) {
		ctx.JSON(http.StatusNotFound, dto.Fail[any](err.Error()))
		return
	}
	if err != nil {
		log.Error().Err(err).Uint("assessmentID", id).Msg("User GetQuestions: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.Fail[any]("Failed to retrieve questions"))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(questions))
}

// SubmitAttempt godoc
// @Summary (User) Record an attempt
// @Description Stores marks for the student's next attempt and publishes an attempt.recorded event.
// @Tags User - Assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt body dto.SubmitAttemptRequest true "Attempt marks"
// @Success 201 {object} dto.APIResponse[dto.SubmissionDTO]
// @Failure 400 {object} dto.APIResponse[any] "Invalid body or marks above max"
// @Failure 404 {object} dto.APIResponse[any] "Assessment not found"
// @Failure 409 {object} dto.APIResponse[any] "Inactive or no attempts left"
// @Router /attempts [post]
func (c *UserAssessmentController) SubmitAttempt(ctx *gin.Context) {
	var req dto.SubmitAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("User SubmitAttempt: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.Fail[any]("Invalid request body: "+err.Error()))
		return
	}
	if _, ok := studentFor(ctx, req.StudentID); !ok {
		return
	}

	sub, err := c.submissionService.Record(ctx.Request.Context(), req)
	switch {
	case err == nil:
		ctx.JSON(http.StatusCreated, dto.OK(sub))
	case errors.Is(err, service.ErrMarksExceedMax):
		ctx.JSON(http.StatusBadRequest, dto.Fail[any](err.Error()))
	case errors.Is(err, service.ErrAssessmentNotFound):
		ctx.JSON(http.StatusNotFound, dto.Fail[any](err.Error()))
	case errors.Is(err, service.ErrAssessmentInactive), errors.Is(err, service.ErrNoAttemptsLeft):
		ctx.JSON(http.StatusConflict, dto.Fail[any](err.Error()))
	default:
		log.Error().Err(err).Interface("requestPayload", req).Msg("User SubmitAttempt: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.Fail[any]("Failed to record attempt"))
	}
}

// GetAttempts godoc
// @Summary (User) Attempt history
// @Tags User - Assessments
// @Produce json
// @Security BearerAuth
// @Param assessment_id path int true "Assessment ID"
// @Param student_id query string false "Student ID, defaults to the token subject"
// @Success 200 {object} dto.APIResponse[[]dto.SubmissionDTO]
// @Failure 400 {object} dto.APIResponse[any] "Invalid ID format"
// @Failure 403 {object} dto.APIResponse[any] "Another student's records"
// @Router /assessments/{assessment_id}/attempts [get]
func (c *UserAssessmentController) GetAttempts(ctx *gin.Context) {
	id, ok := parseAssessmentID(ctx)
	if !ok {
		return
	}
	studentID, ok := studentFor(ctx, ctx.Query("student_id"))
	if !ok {
		return
	}
	history, err := c.submissionService.History(ctx.Request.Context(), id, studentID)
	if err != nil {
		log.Error().Err(err).Uint("assessmentID", id).Str("studentID", studentID).Msg("User GetAttempts: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.Fail[any]("Failed to retrieve attempts"))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(history))
}
