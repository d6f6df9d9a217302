package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Sunbittern/internal/dto"
	"github.com/lshigami/Sunbittern/internal/insertion"
	"github.com/lshigami/Sunbittern/internal/model"
	"github.com/lshigami/Sunbittern/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AdminSurveyService authors surveys and grants. Insertion placeholders are
// rendered once here, at authoring time; stored text is final.
type AdminSurveyService interface {
	CreateSurvey(req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error)
	GrantAvailability(req dto.AvailabilityCreateDTO) (*dto.AvailabilityDTO, error)
	ListSurveyResults(slug string) ([]dto.ResultSummaryDTO, error)
}

type adminSurveyService struct {
	surveyRepo       repository.SurveyRepository
	resultRepo       repository.ResultRepository
	availabilityRepo repository.AvailabilityRepository
}

func NewAdminSurveyService(
	surveyRepo repository.SurveyRepository,
	resultRepo repository.ResultRepository,
	availabilityRepo repository.AvailabilityRepository,
) AdminSurveyService {
	return &adminSurveyService{
		surveyRepo:       surveyRepo,
		resultRepo:       resultRepo,
		availabilityRepo: availabilityRepo,
	}
}

func (s *adminSurveyService) CreateSurvey(req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error) {
	if len(req.Questions) > model.MaxQuestionsPerSurvey {
		return nil, fmt.Errorf("%w: %d questions, maximum is %d",
			ErrTooManyQuestions, len(req.Questions), model.MaxQuestionsPerSurvey)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	survey := model.Survey{
		Name:              req.Name,
		Slug:              model.Slugify(req.Name),
		Insertion:         req.Insertion,
		Description:       insertion.Render(req.Description, req.Insertion),
		PubDate:           time.Now(),
		ExternalSurveyURL: req.ExternalSurveyURL,
		MinutesAllowed:    req.MinutesAllowed,
		IsActive:          isActive,
	}

	for _, qReq := range req.Questions {
		qType := model.QuestionType(qReq.Type)
		if !qType.Valid() {
			return nil, fmt.Errorf("question %q has unknown type %d", qReq.Text, qReq.Type)
		}
		question := model.Question{
			Name:        insertion.Render(qReq.Name, req.Insertion),
			Text:        insertion.Render(qReq.Text, req.Insertion),
			Type:        qType,
			PageNumber:  qReq.PageNumber,
			QuestionSum: qReq.QuestionSum,
		}
		if question.PageNumber == 0 {
			question.PageNumber = 1
		}
		if question.QuestionSum == 0 {
			question.QuestionSum = model.DefaultQuestionSum
		}
		for _, cReq := range qReq.Choices {
			question.Choices = append(question.Choices, model.Choice{
				Value:  insertion.Render(cReq.Value, req.Insertion),
				Weight: cReq.Weight,
			})
		}
		survey.Questions = append(survey.Questions, question)
	}

	if err := s.surveyRepo.Create(&survey); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("a survey with slug %q already exists", survey.Slug)
		}
		log.Error().Err(err).Str("name", req.Name).Msg("CreateSurvey: failed to persist survey")
		return nil, fmt.Errorf("error creating survey: %w", err)
	}
	log.Info().Str("slug", survey.Slug).Int("questions", len(survey.Questions)).Msg("Survey created")

	var resp dto.SurveyResponseDTO
	if err := copier.Copy(&resp, &survey); err != nil {
		log.Error().Err(err).Msg("CreateSurvey: error copying survey to DTO")
		return nil, fmt.Errorf("error preparing survey response: %w", err)
	}
	return &resp, nil
}

func (s *adminSurveyService) GrantAvailability(req dto.AvailabilityCreateDTO) (*dto.AvailabilityDTO, error) {
	survey, err := s.surveyRepo.FindBySlug(req.SurveySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSurveyNotFound
		}
		return nil, fmt.Errorf("error fetching survey %s: %w", req.SurveySlug, err)
	}
	grant := model.Availability{
		UserID:   req.UserID,
		SurveyID: survey.ID,
		URL:      req.URL,
	}
	if err := s.availabilityRepo.Create(&grant); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("user %d already holds a grant for %s", req.UserID, req.SurveySlug)
		}
		return nil, fmt.Errorf("error creating grant: %w", err)
	}
	return &dto.AvailabilityDTO{
		ID:       grant.ID,
		UserID:   grant.UserID,
		SurveyID: grant.SurveyID,
		URL:      grant.URL,
	}, nil
}

func (s *adminSurveyService) ListSurveyResults(slug string) ([]dto.ResultSummaryDTO, error) {
	survey, err := s.surveyRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSurveyNotFound
		}
		return nil, fmt.Errorf("error fetching survey %s: %w", slug, err)
	}
	results, err := s.resultRepo.FindAllBySurvey(survey.ID)
	if err != nil {
		return nil, fmt.Errorf("error fetching results for %s: %w", slug, err)
	}
	summaries := make([]dto.ResultSummaryDTO, 0, len(results))
	for _, r := range results {
		var summary dto.ResultSummaryDTO
		if errCp := copier.Copy(&summary, &r); errCp != nil {
			log.Error().Err(errCp).Uint("resultID", r.ID).Msg("ListSurveyResults: error copying summary")
			continue
		}
		summary.SurveyName = survey.Name
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
