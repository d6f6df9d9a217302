package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Sunbittern/config"
	"github.com/lshigami/Sunbittern/internal/dto"
	"github.com/lshigami/Sunbittern/internal/repository"
	"github.com/rs/zerolog/log"
)

// ProfileService manages the assessment profile attached to each external
// user id. Profiles appear on first access; the maximum field length is a
// configuration value, applied here rather than patched into the schema.
type ProfileService interface {
	GetOrCreate(userID uint) (*dto.ProfileDTO, error)
	Update(userID uint, req dto.ProfileUpdateDTO) (*dto.ProfileDTO, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	maxFieldLen int
}

func NewProfileService(profileRepo repository.ProfileRepository, cfg *config.Config) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		maxFieldLen: cfg.Identity.MaxFieldLength,
	}
}

func (s *profileService) GetOrCreate(userID uint) (*dto.ProfileDTO, error) {
	profile, err := s.profileRepo.GetOrCreate(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetOrCreate: profile lookup failed")
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	var resp dto.ProfileDTO
	if err := copier.Copy(&resp, profile); err != nil {
		return nil, fmt.Errorf("error preparing profile response: %w", err)
	}
	return &resp, nil
}

func (s *profileService) Update(userID uint, req dto.ProfileUpdateDTO) (*dto.ProfileDTO, error) {
	profile, err := s.profileRepo.GetOrCreate(userID)
	if err != nil {
		return nil, fmt.Errorf("error loading profile: %w", err)
	}

	fields := []struct {
		name  string
		value *string
		dest  *string
	}{
		{"gender", req.Gender, &profile.Gender},
		{"phone_number", req.PhoneNumber, &profile.PhoneNumber},
		{"job_title", req.JobTitle, &profile.JobTitle},
		{"job_department", req.JobDepartment, &profile.JobDepartment},
		{"job_location", req.JobLocation, &profile.JobLocation},
		{"company", req.Company, &profile.Company},
		{"assessment_protocol", req.AssessmentProtocol, &profile.AssessmentProtocol},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		v := *f.value
		if f.name == "phone_number" {
			v = digitsOnly(v)
		}
		if len(v) > s.maxFieldLen {
			return nil, fmt.Errorf("%s exceeds the maximum length of %d characters", f.name, s.maxFieldLen)
		}
		*f.dest = v
	}

	if err := s.profileRepo.Update(profile); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Update: failed to save profile")
		return nil, fmt.Errorf("error saving profile: %w", err)
	}
	var resp dto.ProfileDTO
	if err := copier.Copy(&resp, profile); err != nil {
		return nil, fmt.Errorf("error preparing profile response: %w", err)
	}
	return &resp, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
