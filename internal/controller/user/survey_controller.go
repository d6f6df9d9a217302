package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sunbittern/internal/dto"
	"github.com/lshigami/Sunbittern/internal/form"
	"github.com/lshigami/Sunbittern/internal/middleware"
	"github.com/lshigami/Sunbittern/internal/service"
	"github.com/rs/zerolog/log"
)

type SurveyController struct {
	surveyService     service.SurveyService
	submissionService service.SubmissionService
	profileService    service.ProfileService
}

func NewSurveyController(
	surveyService service.SurveyService,
	submissionService service.SubmissionService,
	profileService service.ProfileService,
) *SurveyController {
	return &SurveyController{
		surveyService:     surveyService,
		submissionService: submissionService,
		profileService:    profileService,
	}
}

// ListSurveys godoc
// @Summary List surveys for the current user
// @Description Surveys the user may still take, plus summaries of completed attempts.
// @Tags Surveys
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SurveyListDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /surveys [get]
func (c *SurveyController) ListSurveys(ctx *gin.Context) {
	list, err := c.surveyService.ListForUser(middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("ListSurveys: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list surveys"})
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetSurveyForm godoc
// @Summary Open a survey for an attempt
// @Description Builds the survey's input form. The first open starts the clock; repeated opens reuse the same start time.
// @Tags Surveys
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Survey slug"
// @Success 200 {object} dto.SurveyFormDTO
// @Failure 403 {object} dto.ErrorResponse "Survey not available to this user"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 409 {object} dto.ErrorResponse "Survey already completed"
// @Router /surveys/{slug} [get]
func (c *SurveyController) GetSurveyForm(ctx *gin.Context) {
	formDTO, err := c.surveyService.GetSurveyForm(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("slug"))
	if err != nil {
		c.surveyError(ctx, err, "GetSurveyForm")
		return
	}
	ctx.JSON(http.StatusOK, formDTO)
}

// GetTimer godoc
// @Summary Countdown state for an attempt in progress
// @Tags Surveys
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Survey slug"
// @Success 200 {object} dto.TimerDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /surveys/{slug}/timer [get]
func (c *SurveyController) GetTimer(ctx *gin.Context) {
	timerDTO, err := c.surveyService.RemainingSeconds(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("slug"))
	if err != nil {
		c.surveyError(ctx, err, "GetTimer")
		return
	}
	ctx.JSON(http.StatusOK, timerDTO)
}

// SubmitSurvey godoc
// @Summary Submit answers for a survey
// @Description Validates and scores the submission, then stores the result and one answer per question atomically.
// @Tags Surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Survey slug"
// @Param submission body dto.ResultSubmitDTO true "Answers keyed by form field key"
// @Success 201 {object} dto.ResultDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 403 {object} dto.ErrorResponse "Survey not available to this user"
// @Failure 409 {object} dto.ErrorResponse "Survey already completed"
// @Failure 422 {object} dto.ValidationErrorResponse "Answers failed validation"
// @Router /surveys/{slug}/results [post]
func (c *SurveyController) SubmitSurvey(ctx *gin.Context) {
	var req dto.ResultSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.submissionService.Submit(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("slug"), form.RawInput(req.Answers))
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
				Message: "Submission failed validation",
				Fields:  verr.Fields,
			})
			return
		}
		c.surveyError(ctx, err, "SubmitSurvey")
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetResult godoc
// @Summary Get one completed attempt
// @Tags Results
// @Produce json
// @Security BearerAuth
// @Param result_id path int true "Result ID"
// @Success 200 {object} dto.ResultDetailDTO
// @Failure 403 {object} dto.ErrorResponse "Result belongs to another user"
// @Failure 404 {object} dto.ErrorResponse
// @Router /results/{result_id} [get]
func (c *SurveyController) GetResult(ctx *gin.Context) {
	resultID, err := strconv.ParseUint(ctx.Param("result_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid result ID format"})
		return
	}
	result, err := c.submissionService.GetResult(uint(resultID))
	if err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Result not found"})
			return
		}
		log.Error().Err(err).Uint64("resultID", resultID).Msg("GetResult: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load result"})
		return
	}
	if result.UserID != middleware.UserID(ctx) && !ctx.GetBool(middleware.ContextIsStaff) {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Result belongs to another user"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetUserResults godoc
// @Summary List a user's completed attempts
// @Tags Results
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {array} dto.ResultSummaryDTO
// @Failure 403 {object} dto.ErrorResponse
// @Router /users/{user_id}/results [get]
func (c *SurveyController) GetUserResults(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user ID format"})
		return
	}
	if uint(userID) != middleware.UserID(ctx) && !ctx.GetBool(middleware.ContextIsStaff) {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Results belong to another user"})
		return
	}
	results, err := c.submissionService.GetUserResults(uint(userID))
	if err != nil {
		log.Error().Err(err).Uint64("userID", userID).Msg("GetUserResults: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load results"})
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetProfile godoc
// @Summary Get the current user's profile
// @Description Creates an empty profile on first access.
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileDTO
// @Router /profile [get]
func (c *SurveyController) GetProfile(ctx *gin.Context) {
	profile, err := c.profileService.GetOrCreate(middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("GetProfile: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load profile"})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body dto.ProfileUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ProfileDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /profile [put]
func (c *SurveyController) UpdateProfile(ctx *gin.Context) {
	var req dto.ProfileUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	profile, err := c.profileService.Update(middleware.UserID(ctx), req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to update profile", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// surveyError maps the service error taxonomy onto HTTP statuses.
func (c *SurveyController) surveyError(ctx *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, service.ErrSurveyNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Survey not found"})
	case errors.Is(err, service.ErrSurveyUnavailable):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Survey is not available"})
	case errors.Is(err, service.ErrDuplicateSubmission):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Survey has already been completed"})
	default:
		log.Error().Err(err).Str("op", op).Msg("survey controller: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}
