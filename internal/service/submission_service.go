package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
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

// SubmissionService validates, scores, and persists survey submissions, and
// serves completed results back.
type SubmissionService interface {
	Submit(ctx context.Context, userID uint, slug string, input form.RawInput) (*dto.ResultDetailDTO, error)
	GetResult(resultID uint) (*dto.ResultDetailDTO, error)
	GetUserResults(userID uint) ([]dto.ResultSummaryDTO, error)
}

type submissionService struct {
	surveyRepo       repository.SurveyRepository
	resultRepo       repository.ResultRepository
	availabilityRepo repository.AvailabilityRepository
	sessions         session.Store
	db               *gorm.DB // transaction scope for result + answers
}

func NewSubmissionService(
	surveyRepo repository.SurveyRepository,
	resultRepo repository.ResultRepository,
	availabilityRepo repository.AvailabilityRepository,
	sessions session.Store,
	db *gorm.DB,
) SubmissionService {
	return &submissionService{
		surveyRepo:       surveyRepo,
		resultRepo:       resultRepo,
		availabilityRepo: availabilityRepo,
		sessions:         sessions,
		db:               db,
	}
}

// Submit runs the full submission pipeline: precondition checks, per-type
// validation, scoring, elapsed-time computation, and atomic persistence of
// the Result plus one Answer per question. The duplicate pre-check here is
// the fast path only; the unique index decides races between concurrent
// submissions, and the loser surfaces as ErrDuplicateSubmission.
func (s *submissionService) Submit(ctx context.Context, userID uint, slug string, input form.RawInput) (*dto.ResultDetailDTO, error) {
	survey, err := s.surveyRepo.FindBySlugWithQuestions(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSurveyNotFound
		}
		return nil, fmt.Errorf("error fetching survey %s: %w", slug, err)
	}
	if len(survey.Questions) == 0 {
		return nil, fmt.Errorf("survey %s has no questions, submission is not possible", slug)
	}
	if _, err := checkAvailable(s.availabilityRepo, survey, userID); err != nil {
		return nil, err
	}
	exists, err := s.resultRepo.ExistsForSurveyAndUser(survey.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing result: %w", err)
	}
	if exists {
		return nil, ErrDuplicateSubmission
	}

	// Validation failures stop here; nothing below runs for a bad submission.
	cleaned, err := form.Validate(survey, input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startedOn, err := s.sessions.StartedOn(ctx, userID, slug, now)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Str("slug", slug).Msg("Submit: session store failure")
		return nil, fmt.Errorf("error reading attempt start: %w", err)
	}

	result := model.Result{
		UserID:        userID,
		SurveyID:      survey.ID,
		StartedOn:     startedOn,
		CompletedOn:   now,
		ExcessSeconds: timer.ExcessSeconds(startedOn, now, survey.MinutesAllowed),
		Score:         formatScore(form.Score(survey, cleaned)),
	}

	// One transaction: the result row and all answer rows commit together
	// or not at all.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&result).Error; err != nil {
			return err
		}
		answers := buildAnswers(survey, result.ID, cleaned)
		if err := tx.Create(&answers).Error; err != nil {
			return err
		}
		result.Answers = answers
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against another tab; no partial rows remain.
			log.Warn().Uint("userID", userID).Str("slug", slug).Msg("Submit: concurrent duplicate submission rejected")
			return nil, ErrDuplicateSubmission
		}
		log.Error().Err(err).Uint("userID", userID).Str("slug", slug).Msg("Submit: transaction failed")
		return nil, fmt.Errorf("error persisting result: %w", err)
	}

	if err := s.sessions.Clear(ctx, userID, slug); err != nil {
		log.Warn().Err(err).Uint("userID", userID).Str("slug", slug).Msg("Submit: failed to clear attempt session")
	}

	return resultDetail(&result, survey), nil
}

func (s *submissionService) GetResult(resultID uint) (*dto.ResultDetailDTO, error) {
	result, err := s.resultRepo.FindByIDWithAnswers(resultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("error fetching result %d: %w", resultID, err)
	}
	var resp dto.ResultDetailDTO
	if err := copier.Copy(&resp, result); err != nil {
		log.Error().Err(err).Uint("resultID", resultID).Msg("GetResult: error copying result to DTO")
		return nil, fmt.Errorf("error preparing result response: %w", err)
	}
	resp.SurveyName = result.Survey.Name
	resp.Answers = make([]dto.AnswerDTO, len(result.Answers))
	for i, a := range result.Answers {
		resp.Answers[i] = dto.AnswerDTO{
			ID:         a.ID,
			QuestionID: a.QuestionID,
			Question:   a.Question.Text,
			Value:      a.Value,
		}
	}
	return &resp, nil
}

func (s *submissionService) GetUserResults(userID uint) ([]dto.ResultSummaryDTO, error) {
	results, err := s.resultRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching results for user %d: %w", userID, err)
	}
	summaries := make([]dto.ResultSummaryDTO, 0, len(results))
	for _, r := range results {
		var summary dto.ResultSummaryDTO
		if errCp := copier.Copy(&summary, &r); errCp != nil {
			log.Error().Err(errCp).Uint("resultID", r.ID).Msg("GetUserResults: error copying result summary")
			continue
		}
		summary.SurveyName = r.Survey.Name
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// buildAnswers materializes one answer per question in question order,
// substituting the no-response sentinel for blanks. Ids come from the
// deterministic block derivation, so the slice inserts as one bulk
// statement without touching the sequence.
func buildAnswers(survey *model.Survey, resultID uint, cleaned form.CleanedAnswers) []model.Answer {
	answers := make([]model.Answer, len(survey.Questions))
	for i := range survey.Questions {
		q := &survey.Questions[i]
		value := cleaned[q.ID].Value
		if value == "" {
			value = model.NoResponse
		}
		answers[i] = model.Answer{
			ID:         model.AnswerID(resultID, i),
			ResultID:   resultID,
			QuestionID: q.ID,
			Value:      value,
		}
	}
	return answers
}

// formatScore stores the numeric score as text, as the result schema
// expects, without trailing zeros.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

func resultDetail(result *model.Result, survey *model.Survey) *dto.ResultDetailDTO {
	questions := make(map[uint]string, len(survey.Questions))
	for i := range survey.Questions {
		questions[survey.Questions[i].ID] = survey.Questions[i].Text
	}
	resp := &dto.ResultDetailDTO{
		ID:            result.ID,
		SurveyID:      survey.ID,
		SurveyName:    survey.Name,
		UserID:        result.UserID,
		StartedOn:     result.StartedOn,
		CompletedOn:   result.CompletedOn,
		ExcessSeconds: result.ExcessSeconds,
		Score:         result.Score,
		Answers:       make([]dto.AnswerDTO, len(result.Answers)),
	}
	for i, a := range result.Answers {
		resp.Answers[i] = dto.AnswerDTO{
			ID:         a.ID,
			QuestionID: a.QuestionID,
			Question:   questions[a.QuestionID],
			Value:      a.Value,
		}
	}
	return resp
}
