package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Sunbittern/internal/dto"
	"github.com/lshigami/Sunbittern/internal/form"
	"github.com/lshigami/Sunbittern/internal/model"
	"github.com/lshigami/Sunbittern/internal/repository"
	"github.com/lshigami/Sunbittern/internal/session"
	"github.com/lshigami/Sunbittern/internal/timer"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SurveyService serves the user-facing survey lifecycle up to submission:
// listing, opening (which builds the form and starts the clock), and the
// countdown.
type SurveyService interface {
	ListForUser(userID uint) (*dto.SurveyListDTO, error)
	GetSurveyForm(ctx context.Context, userID uint, slug string) (*dto.SurveyFormDTO, error)
	RemainingSeconds(ctx context.Context, userID uint, slug string) (*dto.TimerDTO, error)
}

type surveyService struct {
	surveyRepo       repository.SurveyRepository
	resultRepo       repository.ResultRepository
	availabilityRepo repository.AvailabilityRepository
	sessions         session.Store
}

func NewSurveyService(
	surveyRepo repository.SurveyRepository,
	resultRepo repository.ResultRepository,
	availabilityRepo repository.AvailabilityRepository,
	sessions session.Store,
) SurveyService {
	return &surveyService{
		surveyRepo:       surveyRepo,
		resultRepo:       resultRepo,
		availabilityRepo: availabilityRepo,
		sessions:         sessions,
	}
}

func (s *surveyService) ListForUser(userID uint) (*dto.SurveyListDTO, error) {
	results, err := s.resultRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListForUser: failed to load results")
		return nil, fmt.Errorf("error fetching results: %w", err)
	}
	grants, err := s.availabilityRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListForUser: failed to load grants")
		return nil, fmt.Errorf("error fetching availability: %w", err)
	}

	completedSurveys := make(map[uint]bool, len(results))
	list := &dto.SurveyListDTO{}
	for _, r := range results {
		completedSurveys[r.SurveyID] = true
		var summary dto.ResultSummaryDTO
		if errCp := copier.Copy(&summary, &r); errCp != nil {
			log.Error().Err(errCp).Uint("resultID", r.ID).Msg("ListForUser: error copying result summary")
			continue
		}
		summary.SurveyName = r.Survey.Name
		list.Completed = append(list.Completed, summary)
	}
	for _, g := range grants {
		if completedSurveys[g.SurveyID] || !g.Survey.IsActive {
			continue
		}
		list.Available = append(list.Available, dto.SurveySummaryDTO{
			ID:             g.Survey.ID,
			Name:           g.Survey.Name,
			Slug:           g.Survey.Slug,
			Description:    g.Survey.Description,
			MinutesAllowed: g.Survey.MinutesAllowed,
			PubDate:        g.Survey.PubDate,
		})
	}
	return list, nil
}

// GetSurveyForm opens a survey for an attempt: it verifies availability,
// rejects already-completed surveys before any form construction, records
// started_on on first open, and builds the field specification. The form is
// built per request; specs are never cached across surveys.
func (s *surveyService) GetSurveyForm(ctx context.Context, userID uint, slug string) (*dto.SurveyFormDTO, error) {
	survey, grant, err := s.openSurvey(userID, slug)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startedOn, err := s.sessions.StartedOn(ctx, userID, slug, now)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Str("slug", slug).Msg("GetSurveyForm: session store failure")
		return nil, fmt.Errorf("error recording attempt start: %w", err)
	}

	spec, err := form.Build(survey)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("GetSurveyForm: form build failed")
		return nil, err
	}

	return &dto.SurveyFormDTO{
		ID:               survey.ID,
		Name:             survey.Name,
		Slug:             survey.Slug,
		Description:      survey.Description,
		MinutesAllowed:   survey.MinutesAllowed,
		ExternalURL:      externalURL(survey, grant),
		StartedOn:        startedOn,
		RemainingSeconds: timer.RemainingSeconds(startedOn, now, survey.MinutesAllowed),
		Fields:           spec.Fields,
	}, nil
}

func (s *surveyService) RemainingSeconds(ctx context.Context, userID uint, slug string) (*dto.TimerDTO, error) {
	survey, _, err := s.openSurvey(userID, slug)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	startedOn, err := s.sessions.StartedOn(ctx, userID, slug, now)
	if err != nil {
		return nil, fmt.Errorf("error reading attempt start: %w", err)
	}
	return &dto.TimerDTO{
		Slug:             slug,
		RemainingSeconds: timer.RemainingSeconds(startedOn, now, survey.MinutesAllowed),
	}, nil
}

// openSurvey loads a survey and enforces the preconditions shared by form
// rendering and submission: survey exists, is active, the user holds a
// grant, and no result exists yet.
func (s *surveyService) openSurvey(userID uint, slug string) (*model.Survey, *model.Availability, error) {
	survey, err := s.surveyRepo.FindBySlugWithQuestions(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSurveyNotFound
		}
		return nil, nil, fmt.Errorf("error fetching survey %s: %w", slug, err)
	}
	grant, err := checkAvailable(s.availabilityRepo, survey, userID)
	if err != nil {
		return nil, nil, err
	}
	exists, err := s.resultRepo.ExistsForSurveyAndUser(survey.ID, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("error checking existing result: %w", err)
	}
	if exists {
		return nil, nil, ErrDuplicateSubmission
	}
	return survey, grant, nil
}

// checkAvailable enforces the availability gate: inactive surveys and
// missing grants are both unavailable, indistinguishably to the caller.
func checkAvailable(repo repository.AvailabilityRepository, survey *model.Survey, userID uint) (*model.Availability, error) {
	if !survey.IsActive {
		return nil, ErrSurveyUnavailable
	}
	grant, err := repo.FindForSurveyAndUser(survey.ID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSurveyUnavailable
		}
		return nil, fmt.Errorf("error checking availability: %w", err)
	}
	return grant, nil
}

// externalURL picks the URL surfaced with External-type questions: the
// per-user grant URL when it is absolute, else the survey-level one.
func externalURL(survey *model.Survey, grant *model.Availability) string {
	if grant != nil && (strings.HasPrefix(grant.URL, "http://") || strings.HasPrefix(grant.URL, "https://")) {
		return grant.URL
	}
	return survey.ExternalURL()
}
