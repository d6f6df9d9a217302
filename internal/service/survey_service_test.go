package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lshigami/Sunbittern/internal/form"
	"github.com/lshigami/Sunbittern/internal/model"
	"github.com/lshigami/Sunbittern/internal/repository"
	"gorm.io/gorm"
)

func newSurveyService(db *gorm.DB, sessions *fakeSessions) SurveyService {
	return NewSurveyService(
		repository.NewSurveyRepository(db),
		repository.NewResultRepository(db),
		repository.NewAvailabilityRepository(db),
		sessions,
	)
}

func TestGetSurveyFormBuildsFields(t *testing.T) {
	db := newTestDB(t)
	sessions := newFakeSessions()
	svc := newSurveyService(db, sessions)

	survey := seedSurvey(t, db, "open-me", 0)
	grant(t, db, 7, survey.ID, "")

	dto, err := svc.GetSurveyForm(context.Background(), 7, "open-me")
	if err != nil {
		t.Fatalf("GetSurveyForm: %v", err)
	}
	// Two single-field questions plus one disposition field per choice.
	if len(dto.Fields) != 4 {
		t.Fatalf("got %d fields, want 4", len(dto.Fields))
	}
	if dto.Fields[0].Kind != form.KindRadio || len(dto.Fields[0].Options) != 3 {
		t.Errorf("first field = (%q, %d options), want radio with 3", dto.Fields[0].Kind, len(dto.Fields[0].Options))
	}
	if dto.StartedOn.IsZero() {
		t.Error("started_on not recorded on first open")
	}
}

func TestGetSurveyFormKeepsStartedOn(t *testing.T) {
	db := newTestDB(t)
	sessions := newFakeSessions()
	svc := newSurveyService(db, sessions)

	survey := seedSurvey(t, db, "reopened", 10)
	grant(t, db, 7, survey.ID, "")

	first, err := svc.GetSurveyForm(context.Background(), 7, "reopened")
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := svc.GetSurveyForm(context.Background(), 7, "reopened")
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	if !second.StartedOn.Equal(first.StartedOn) {
		t.Fatalf("reopening moved started_on from %v to %v", first.StartedOn, second.StartedOn)
	}
}

func TestGetSurveyFormPreconditions(t *testing.T) {
	db := newTestDB(t)
	svc := newSurveyService(db, newFakeSessions())

	survey := seedSurvey(t, db, "guarded", 0)

	if _, err := svc.GetSurveyForm(context.Background(), 7, "missing"); !errors.Is(err, ErrSurveyNotFound) {
		t.Errorf("unknown slug err = %v, want ErrSurveyNotFound", err)
	}
	if _, err := svc.GetSurveyForm(context.Background(), 7, "guarded"); !errors.Is(err, ErrSurveyUnavailable) {
		t.Errorf("ungranted err = %v, want ErrSurveyUnavailable", err)
	}

	grant(t, db, 7, survey.ID, "")
	now := time.Now()
	result := model.Result{UserID: 7, SurveyID: survey.ID, StartedOn: now, CompletedOn: now}
	if err := db.Create(&result).Error; err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetSurveyForm(context.Background(), 7, "guarded"); !errors.Is(err, ErrDuplicateSubmission) {
		t.Errorf("completed err = %v, want ErrDuplicateSubmission", err)
	}
}

func TestGetSurveyFormExternalURL(t *testing.T) {
	db := newTestDB(t)
	svc := newSurveyService(db, newFakeSessions())

	survey := &model.Survey{
		Name:              "External instrument",
		Slug:              "external",
		PubDate:           time.Now(),
		ExternalSurveyURL: "https://example.com/default",
		IsActive:          true,
		Questions:         []model.Question{{Text: "Marker", Type: model.External}},
	}
	if err := db.Create(survey).Error; err != nil {
		t.Fatal(err)
	}

	// An absolute grant URL overrides the survey-level one; a relative grant
	// URL does not.
	grant(t, db, 7, survey.ID, "https://example.com/personal?token=abc")
	grant(t, db, 8, survey.ID, "not-a-url")

	dto, err := svc.GetSurveyForm(context.Background(), 7, "external")
	if err != nil {
		t.Fatal(err)
	}
	if dto.ExternalURL != "https://example.com/personal?token=abc" {
		t.Errorf("external url = %q, want the grant URL", dto.ExternalURL)
	}

	dto, err = svc.GetSurveyForm(context.Background(), 8, "external")
	if err != nil {
		t.Fatal(err)
	}
	if dto.ExternalURL != "https://example.com/default" {
		t.Errorf("external url = %q, want the survey-level URL", dto.ExternalURL)
	}
}

func TestRemainingSeconds(t *testing.T) {
	db := newTestDB(t)
	sessions := newFakeSessions()
	svc := newSurveyService(db, sessions)

	survey := seedSurvey(t, db, "countdown", 10)
	grant(t, db, 7, survey.ID, "")

	sessions.set(7, "countdown", time.Now().Add(-100*time.Second-500*time.Millisecond))
	dto, err := svc.RemainingSeconds(context.Background(), 7, "countdown")
	if err != nil {
		t.Fatalf("RemainingSeconds: %v", err)
	}
	if dto.RemainingSeconds != 500 {
		t.Fatalf("remaining = %d, want 500", dto.RemainingSeconds)
	}
}

func TestListForUser(t *testing.T) {
	db := newTestDB(t)
	sessions := newFakeSessions()
	svc := newSurveyService(db, sessions)

	open := seedSurvey(t, db, "still-open", 0)
	done := seedSurvey(t, db, "finished", 0)
	inactive := seedSurvey(t, db, "switched-off", 0)
	if err := db.Model(&model.Survey{}).Where("id = ?", inactive.ID).Update("is_active", false).Error; err != nil {
		t.Fatal(err)
	}
	seedSurvey(t, db, "ungranted", 0)

	grant(t, db, 7, open.ID, "")
	grant(t, db, 7, done.ID, "")
	grant(t, db, 7, inactive.ID, "")

	submitter := newSubmissionService(db, sessions)
	if _, err := submitter.Submit(context.Background(), 7, "finished", form.RawInput{}); err != nil {
		t.Fatalf("complete survey: %v", err)
	}

	list, err := svc.ListForUser(7)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(list.Available) != 1 || list.Available[0].Slug != "still-open" {
		t.Fatalf("available = %+v, want only still-open", list.Available)
	}
	if len(list.Completed) != 1 || list.Completed[0].SurveyName != done.Name {
		t.Fatalf("completed = %+v, want only %s", list.Completed, done.Name)
	}
}
