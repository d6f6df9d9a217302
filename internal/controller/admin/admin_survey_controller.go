package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sunbittern/internal/dto"
	"github.com/lshigami/Sunbittern/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminSurveyController struct {
	adminSurveyService service.AdminSurveyService
}

func NewAdminSurveyController(adminSurveyService service.AdminSurveyService) *AdminSurveyController {
	return &AdminSurveyController{adminSurveyService: adminSurveyService}
}

// CreateSurvey godoc
// @Summary (Admin) Author a survey with its questions and choices
// @Description Renders insertion placeholders, derives the slug, and enforces the per-survey question ceiling.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param survey body dto.SurveyCreateDTO true "Survey definition"
// @Success 201 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/surveys [post]
func (c *AdminSurveyController) CreateSurvey(ctx *gin.Context) {
	var req dto.SurveyCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateSurvey: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.adminSurveyService.CreateSurvey(req)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Admin CreateSurvey: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create survey", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GrantAvailability godoc
// @Summary (Admin) Grant a user access to a survey
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param grant body dto.AvailabilityCreateDTO true "Grant"
// @Success 201 {object} dto.AvailabilityDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /admin/availability [post]
func (c *AdminSurveyController) GrantAvailability(ctx *gin.Context) {
	var req dto.AvailabilityCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	grant, err := c.adminSurveyService.GrantAvailability(req)
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Survey not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create grant", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, grant)
}

// ListSurveyResults godoc
// @Summary (Admin) List all results for a survey
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Survey slug"
// @Success 200 {array} dto.ResultSummaryDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/surveys/{slug}/results [get]
func (c *AdminSurveyController) ListSurveyResults(ctx *gin.Context) {
	results, err := c.adminSurveyService.ListSurveyResults(ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Survey not found"})
			return
		}
		log.Error().Err(err).Msg("Admin ListSurveyResults: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load results"})
		return
	}
	ctx.JSON(http.StatusOK, results)
}
