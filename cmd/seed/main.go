// Seeds the sample surveys: a timed case-study survey of free-text
// questions and the PDS self-report survey of multiple-choice questions.
package main

import (
	"github.com/lshigami/Sunbittern/config"
	"github.com/lshigami/Sunbittern/database"
	"github.com/lshigami/Sunbittern/internal/dto"
	"github.com/lshigami/Sunbittern/internal/logger"
	"github.com/lshigami/Sunbittern/internal/repository"
	"github.com/lshigami/Sunbittern/internal/service"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	surveyRepo := repository.NewSurveyRepository(db)
	resultRepo := repository.NewResultRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	admin := service.NewAdminSurveyService(surveyRepo, resultRepo, availabilityRepo)

	for _, req := range []dto.SurveyCreateDTO{caseStudy(), pdsSurvey()} {
		created, err := admin.CreateSurvey(req)
		if err != nil {
			log.Error().Err(err).Str("name", req.Name).Msg("Failed to create survey")
			continue
		}
		log.Info().Str("slug", created.Slug).Int("questions", len(created.Questions)).Msg("Survey seeded")
	}
}

func caseStudy() dto.SurveyCreateDTO {
	textQuestion := func(text string) dto.QuestionCreateDTO {
		return dto.QuestionCreateDTO{Text: text, Type: 3}
	}
	return dto.SurveyCreateDTO{
		Name:           "Case Analysis",
		Description:    "Respond to the following questions using information gathered from the case study.",
		MinutesAllowed: 45,
		Questions: []dto.QuestionCreateDTO{
			textQuestion("What is the problem?"),
			textQuestion("What is the best solution?"),
			textQuestion("Defend your answer to #2 with facts and data from the case."),
		},
	}
}

func pdsSurvey() dto.SurveyCreateDTO {
	scale := []dto.ChoiceCreateDTO{
		{Value: "1 (Not True)", Weight: 1},
		{Value: "2", Weight: 2},
		{Value: "3 (Somewhat True)", Weight: 3},
		{Value: "4", Weight: 4},
		{Value: "5 (Very True)", Weight: 5},
	}
	statements := []string{
		"My first impressions of people usually turn out to be right",
		"It would be hard for me to break any of my bad habits",
		"I don't care to know what other people really think of me",
		"I have not always been honest with myself",
		"I always know why I like things",
		"When my emotions are aroused, it biases my thinking",
		"Once I've made up my mind, other people cannot change my opinion",
		"I am not a safe driver when I exceed the speed limit",
	}
	questions := make([]dto.QuestionCreateDTO, len(statements))
	for i, s := range statements {
		questions[i] = dto.QuestionCreateDTO{Text: s, Type: 2, Choices: scale}
	}
	return dto.SurveyCreateDTO{
		Name: "PDS Survey",
		Description: "This measure assesses the way you make decisions in a variety of different contexts. Please " +
			"answer each statement by selecting the choice that best describes you. The answers range from " +
			"1 (Not True) to 5 (Very True).",
		Questions: questions,
	}
}
