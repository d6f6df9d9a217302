package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lshigami/Sunbittern/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a named in-memory database private to one test. The name
// keeps parallel tests from sharing state; cache=shared keeps the database
// alive across the pooled connections gorm opens.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	err = db.AutoMigrate(
		&model.Survey{},
		&model.Question{},
		&model.Choice{},
		&model.Result{},
		&model.Answer{},
		&model.Availability{},
		&model.UserProfile{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// fakeSessions is an in-memory session.Store with presettable start times.
type fakeSessions struct {
	started map[string]time.Time
	cleared int
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{started: make(map[string]time.Time)}
}

func sessionKey(userID uint, slug string) string {
	return fmt.Sprintf("%d:%s", userID, slug)
}

func (f *fakeSessions) StartedOn(_ context.Context, userID uint, slug string, now time.Time) (time.Time, error) {
	k := sessionKey(userID, slug)
	if at, ok := f.started[k]; ok {
		return at, nil
	}
	f.started[k] = now
	return now, nil
}

func (f *fakeSessions) Clear(_ context.Context, userID uint, slug string) error {
	delete(f.started, sessionKey(userID, slug))
	f.cleared++
	return nil
}

func (f *fakeSessions) set(userID uint, slug string, at time.Time) {
	f.started[sessionKey(userID, slug)] = at
}

// seedSurvey persists a survey with one weighted multiple-choice question,
// one free-text question, and one disposition question, in that order.
func seedSurvey(t *testing.T, db *gorm.DB, slug string, minutesAllowed float64) *model.Survey {
	t.Helper()
	survey := &model.Survey{
		Name:           "Seeded " + slug,
		Slug:           slug,
		Description:    "seeded survey",
		PubDate:        time.Now(),
		MinutesAllowed: minutesAllowed,
		IsActive:       true,
		Questions: []model.Question{
			{
				Text:        "How satisfied are you?",
				Type:        model.MultipleChoice,
				PageNumber:  1,
				QuestionSum: model.DefaultQuestionSum,
				Choices: []model.Choice{
					{Value: "Not at all", Weight: 1},
					{Value: "Somewhat", Weight: 3},
					{Value: "Very", Weight: 5},
				},
			},
			{
				Text:        "Anything to add?",
				Type:        model.Text,
				PageNumber:  1,
				QuestionSum: model.DefaultQuestionSum,
			},
			{
				Text:        "Distribute 100 points.",
				Type:        model.Disposition,
				PageNumber:  2,
				QuestionSum: model.DefaultQuestionSum,
				Choices: []model.Choice{
					{Value: "Optimism"},
					{Value: "Realism"},
				},
			},
		},
	}
	if err := db.Create(survey).Error; err != nil {
		t.Fatalf("seed survey: %v", err)
	}
	return survey
}

func grant(t *testing.T, db *gorm.DB, userID uint, surveyID uint, url string) {
	t.Helper()
	g := &model.Availability{UserID: userID, SurveyID: surveyID, URL: url}
	if err := db.Create(g).Error; err != nil {
		t.Fatalf("seed grant: %v", err)
	}
}
