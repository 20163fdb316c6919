package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/assessflow/internal/auth"
	"github.com/lshigami/assessflow/internal/dto"
	"github.com/lshigami/assessflow/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminAssessmentController struct {
	adminAssessmentService service.AdminAssessmentService
}

func NewAdminAssessmentController(adminAssessmentService service.AdminAssessmentService) *AdminAssessmentController {
	return &AdminAssessmentController{adminAssessmentService: adminAssessmentService}
}

func (c *AdminAssessmentController) RegisterRoutes(router *gin.Engine, authn *auth.Authenticator) {
	adminAPIGroup := router.Group("/api/v1/admin", authn.Middleware(), auth.RequireRole(auth.RoleAdmin))
	{
		adminAPIGroup.POST("/assessments", c.CreateAssessment)
	}
}

// CreateAssessment godoc
// @Summary (Admin) Create an assessment
// @Description Creates an assessment with all of its questions. Total marks are the sum of question marks.
// @Tags Admin - Assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assessment body dto.AssessmentCreateDTO true "Assessment with questions"
// @Success 201 {object} dto.APIResponse[dto.AssessmentDTO] "Assessment created"
// @Failure 400 {object} dto.APIResponse[any] "Invalid input data"
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Failure 500 {object} dto.APIResponse[any] "Internal server error"
// @Router /admin/assessments [post]
func (c *AdminAssessmentController) CreateAssessment(ctx *gin.Context) {
	var req dto.AssessmentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateAssessment: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.Fail[any]("Invalid request body: "+err.Error()))
		return
	}

	created, err := c.adminAssessmentService.CreateAssessment(ctx.Request.Context(), req)
	if errors.Is(err, service.ErrInvalidCorrectOption) {
		ctx.JSON(http.StatusBadRequest, dto.Fail[any](err.Error()))
		return
	}
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Admin CreateAssessment: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.Fail[any]("Failed to create assessment"))
		return
	}
	ctx.JSON(http.StatusCreated, dto.OK(created))
}
