package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lshigami/Sunbittern/internal/dto"
	"github.com/lshigami/Sunbittern/internal/form"
	"github.com/lshigami/Sunbittern/internal/model"
	"github.com/lshigami/Sunbittern/internal/repository"
	"gorm.io/gorm"
)

func newAdminService(db *gorm.DB) AdminSurveyService {
	return NewAdminSurveyService(
		repository.NewSurveyRepository(db),
		repository.NewResultRepository(db),
		repository.NewAvailabilityRepository(db),
	)
}

func TestCreateSurveyRendersInsertion(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)

	created, err := svc.CreateSurvey(dto.SurveyCreateDTO{
		Name:        "Employee Wellness 2026",
		Insertion:   "Acme",
		Description: "How %s treats its people.",
		Questions: []dto.QuestionCreateDTO{
			{
				Text: "Would you recommend %s as an employer?",
				Type: int(model.TrueFalse),
				Choices: []dto.ChoiceCreateDTO{
					{Value: "Yes, %s is great", Weight: 1},
					{Value: "No", Weight: 0},
				},
			},
			{Text: "Why?", Type: int(model.Text)},
		},
	})
	if err != nil {
		t.Fatalf("CreateSurvey: %v", err)
	}

	if created.Slug != "employee-wellness-2026" {
		t.Errorf("slug = %q, want derived from the name", created.Slug)
	}
	if created.Description != "How Acme treats its people." {
		t.Errorf("description = %q, placeholder not rendered", created.Description)
	}
	if got := created.Questions[0].Text; got != "Would you recommend Acme as an employer?" {
		t.Errorf("question text = %q, placeholder not rendered", got)
	}
	if got := created.Questions[0].Choices[0].Value; got != "Yes, Acme is great" {
		t.Errorf("choice value = %q, placeholder not rendered", got)
	}
	if !created.IsActive {
		t.Error("survey not active by default")
	}

	// Authoring defaults.
	if created.Questions[1].PageNumber != 1 {
		t.Errorf("page number = %d, want default 1", created.Questions[1].PageNumber)
	}
	if created.Questions[1].QuestionSum != model.DefaultQuestionSum {
		t.Errorf("question sum = %d, want default %d", created.Questions[1].QuestionSum, model.DefaultQuestionSum)
	}
}

func TestCreateSurveyQuestionCeiling(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)

	questions := make([]dto.QuestionCreateDTO, model.MaxQuestionsPerSurvey+1)
	for i := range questions {
		questions[i] = dto.QuestionCreateDTO{Text: fmt.Sprintf("Question %d", i), Type: int(model.Text)}
	}
	_, err := svc.CreateSurvey(dto.SurveyCreateDTO{Name: "Too long", Questions: questions})
	if !errors.Is(err, ErrTooManyQuestions) {
		t.Fatalf("err = %v, want ErrTooManyQuestions", err)
	}
}

func TestCreateSurveyRejectsUnknownType(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)

	_, err := svc.CreateSurvey(dto.SurveyCreateDTO{
		Name:      "Broken",
		Questions: []dto.QuestionCreateDTO{{Text: "?", Type: 9}},
	})
	if err == nil {
		t.Fatal("question type outside the closed set accepted")
	}
}

func TestCreateSurveyDuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)

	req := dto.SurveyCreateDTO{
		Name:      "Same Name",
		Questions: []dto.QuestionCreateDTO{{Text: "?", Type: int(model.Text)}},
	}
	if _, err := svc.CreateSurvey(req); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.CreateSurvey(req)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("second create err = %v, want duplicate slug rejection", err)
	}
}

func TestGrantAvailability(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)

	survey := seedSurvey(t, db, "grantable", 0)

	created, err := svc.GrantAvailability(dto.AvailabilityCreateDTO{
		UserID:     7,
		SurveySlug: "grantable",
		URL:        "https://example.com/personal",
	})
	if err != nil {
		t.Fatalf("GrantAvailability: %v", err)
	}
	if created.SurveyID != survey.ID || created.UserID != 7 {
		t.Errorf("grant = %+v, want (user 7, survey %d)", created, survey.ID)
	}

	if _, err := svc.GrantAvailability(dto.AvailabilityCreateDTO{UserID: 7, SurveySlug: "grantable"}); err == nil {
		t.Error("second grant for the same pair accepted")
	}
	if _, err := svc.GrantAvailability(dto.AvailabilityCreateDTO{UserID: 7, SurveySlug: "missing"}); !errors.Is(err, ErrSurveyNotFound) {
		t.Errorf("unknown slug err = %v, want ErrSurveyNotFound", err)
	}
}

func TestListSurveyResults(t *testing.T) {
	db := newTestDB(t)
	sessions := newFakeSessions()
	svc := newAdminService(db)
	submitter := newSubmissionService(db, sessions)

	survey := seedSurvey(t, db, "reported", 0)
	other := seedSurvey(t, db, "unrelated", 0)
	for _, userID := range []uint{7, 8} {
		grant(t, db, userID, survey.ID, "")
		if _, err := submitter.Submit(context.Background(), userID, "reported", form.RawInput{}); err != nil {
			t.Fatalf("submit as %d: %v", userID, err)
		}
	}
	grant(t, db, 9, other.ID, "")
	if _, err := submitter.Submit(context.Background(), 9, "unrelated", form.RawInput{}); err != nil {
		t.Fatal(err)
	}

	summaries, err := svc.ListSurveyResults("reported")
	if err != nil {
		t.Fatalf("ListSurveyResults: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d results, want the survey's 2", len(summaries))
	}
	for _, s := range summaries {
		if s.SurveyName != survey.Name {
			t.Errorf("summary names survey %q, want %q", s.SurveyName, survey.Name)
		}
	}

	if _, err := svc.ListSurveyResults("missing"); !errors.Is(err, ErrSurveyNotFound) {
		t.Errorf("unknown slug err = %v, want ErrSurveyNotFound", err)
	}
}
