package service

import (
	"strings"
	"testing"

	"github.com/lshigami/Sunbittern/config"
	"github.com/lshigami/Sunbittern/internal/dto"
	"github.com/lshigami/Sunbittern/internal/repository"
	"gorm.io/gorm"
)

func newProfileService(db *gorm.DB, maxFieldLen int) ProfileService {
	cfg := &config.Config{}
	cfg.Identity.MaxFieldLength = maxFieldLen
	return NewProfileService(repository.NewProfileRepository(db), cfg)
}

func strptr(s string) *string { return &s }

func TestGetOrCreateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db, 200)

	first, err := svc.GetOrCreate(7)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if first.ProfileToken == "" {
		t.Fatal("new profile missing its token")
	}

	second, err := svc.GetOrCreate(7)
	if err != nil {
		t.Fatalf("repeated GetOrCreate: %v", err)
	}
	if second.ID != first.ID || second.ProfileToken != first.ProfileToken {
		t.Fatalf("repeated access created a second profile: %+v vs %+v", first, second)
	}

	other, err := svc.GetOrCreate(8)
	if err != nil {
		t.Fatal(err)
	}
	if other.ProfileToken == first.ProfileToken {
		t.Fatal("two users share a profile token")
	}
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db, 200)

	updated, err := svc.Update(7, dto.ProfileUpdateDTO{
		PhoneNumber: strptr("+1 (555) 867-5309"),
		JobTitle:    strptr("Field Researcher"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.PhoneNumber != "15558675309" {
		t.Errorf("phone = %q, want digits only", updated.PhoneNumber)
	}
	if updated.JobTitle != "Field Researcher" {
		t.Errorf("job title = %q", updated.JobTitle)
	}

	// Untouched fields survive a partial update.
	updated, err = svc.Update(7, dto.ProfileUpdateDTO{Company: strptr("Acme")})
	if err != nil {
		t.Fatalf("partial update: %v", err)
	}
	if updated.JobTitle != "Field Researcher" || updated.Company != "Acme" {
		t.Errorf("partial update lost fields: %+v", updated)
	}
}

func TestUpdateProfileFieldLength(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db, 10)

	if _, err := svc.Update(7, dto.ProfileUpdateDTO{Company: strptr(strings.Repeat("x", 11))}); err == nil {
		t.Fatal("over-length field accepted")
	}
	if _, err := svc.Update(7, dto.ProfileUpdateDTO{Company: strptr(strings.Repeat("x", 10))}); err != nil {
		t.Fatalf("field at the limit rejected: %v", err)
	}

	// The digit filter runs before the length check.
	if _, err := svc.Update(7, dto.ProfileUpdateDTO{PhoneNumber: strptr("+1 (555) 867-53")}); err != nil {
		t.Fatalf("formatted phone within the digit limit rejected: %v", err)
	}
}
