// Package seeds loads development fixtures: one user per role plus a sample
// project with an open ticket. Rows are keyed on their unique columns, so
// re-running the seeder is harmless.
package seeds

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nexorbs/nexportal/internal/domain/sequence"
	"github.com/nexorbs/nexportal/internal/infrastructure/persistence/models"
)

// SeedPassword is the plaintext password every seeded account uses.
const SeedPassword = "nexportal-dev"

// SeedPortalData inserts the development fixture set. Intended for local
// databases only; the seed command refuses to run in release mode.
func SeedPortalData(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	passwordHash := string(hash)

	now := time.Now()
	company := "Acme Retail SL"
	phone := "+34 600 111 222"

	users := []models.UserModel{
		{
			ID:           "a1b2c3d4e5f60001",
			AccountCode:  "admin-a1b2c3d4",
			DisplayName:  "Portal Admin",
			Email:        "admin@nexportal.local",
			PasswordHash: passwordHash,
			Role:         "admin",
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "a1b2c3d4e5f60002",
			AccountCode:  "user-b2c3d4e5",
			DisplayName:  "Laura Cliente",
			Email:        "laura@acme-retail.local",
			PasswordHash: passwordHash,
			Role:         "client",
			IsActive:     true,
			CompanyName:  &company,
			Phone:        &phone,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "a1b2c3d4e5f60003",
			AccountCode:  "dev-c3d4e5f6",
			DisplayName:  "Dev Martínez",
			Email:        "dev@nexportal.local",
			PasswordHash: passwordHash,
			Role:         "developer",
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	for _, u := range users {
		if err := db.FirstOrCreate(&u, models.UserModel{Email: u.Email}).Error; err != nil {
			return err
		}
	}

	year := now.Year()
	description := "Company site rebuild with online catalogue."

	project := models.ProjectModel{
		ID:          "a1b2c3d4e5f60010",
		Code:        sequence.FormatProjectCode("WEB", year, 1),
		ClientID:    "a1b2c3d4e5f60002",
		Name:        "Acme Retail Website",
		Description: &description,
		Type:        "Desarrollo Web",
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.FirstOrCreate(&project, models.ProjectModel{Code: project.Code}).Error; err != nil {
		return err
	}

	ticketDescription := "Checkout button does nothing on the product page."
	ticket := models.TicketModel{
		ID:          "a1b2c3d4e5f60020",
		Number:      sequence.FormatTicketNumber(year, 1),
		ProjectID:   project.ID,
		ClientID:    project.ClientID,
		Title:       "Checkout button unresponsive",
		Description: &ticketDescription,
		Priority:    "high",
		Status:      "open",
		Category:    "bug",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.FirstOrCreate(&ticket, models.TicketModel{Number: ticket.Number}).Error; err != nil {
		return err
	}

	// Advance the counters past the seeded codes so the next allocation
	// does not collide.
	counters := []models.SequenceCounterModel{
		{Type: sequence.TypeProject, Year: year, Counter: 1},
		{Type: sequence.TypeTicket, Year: year, Counter: 1},
	}
	for _, c := range counters {
		if err := db.FirstOrCreate(&c, models.SequenceCounterModel{Type: c.Type, Year: c.Year}).Error; err != nil {
			return err
		}
	}

	return nil
}
