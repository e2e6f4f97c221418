package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/config"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Activity{},
		&models.MonthlyGoal{},
		&models.GrossCommissionGoal{},
		&models.WeeklyActivityEntry{},
		&models.CommissionTransaction{},
		&models.AuditRecord{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// defaultActivities is the fixed catalog agents track against. Seeded
// once; admins can extend it through the API afterwards.
var defaultActivities = []models.Activity{
	{Name: "Tele-canvassing", Category: "Cold Calling"},
	{Name: "Door Knocks", Category: "Cold Calling"},
	{Name: "360 Activity Drops", Category: "Cold Calling"},

	{Name: "Neighbourhood Drops", Category: "Branding"},
	{Name: "Promotional Items Distributed", Category: "Branding"},
	{Name: "Robot Blitz", Category: "Branding"},
	{Name: "Community Events", Category: "Branding"},
	{Name: "Rally Participation", Category: "Branding"},
	{Name: "Social Media Postings", Category: "Branding"},

	{Name: "Contacts Loaded", Category: "CRM"},
	{Name: "Ongoing Touchpoints", Category: "CRM"},

	{Name: "Valuations", Category: "Sales & Rental"},
	{Name: "Sole Mandates", Category: "Sales & Rental"},
	{Name: "Other Mandates", Category: "Sales & Rental"},
	{Name: "Show House", Category: "Sales & Rental"},
	{Name: "Buyers Loaded", Category: "Sales & Rental"},
	{Name: "Referral Sent", Category: "Sales & Rental"},
	{Name: "Referral Received", Category: "Sales & Rental"},
	{Name: "Viewings", Category: "Sales & Rental"},
	{Name: "OTP / Lease Applications", Category: "Sales & Rental"},
	{Name: "Agreement of Sale & Lease Agreement", Category: "Sales & Rental"},
	{Name: "AOS Submitted to Bond Originator", Category: "Sales & Rental"},
	{Name: "Training Session", Category: "Sales & Rental"},
}

// Seed inserts the default activity catalog and the bootstrap admin
// account. Safe to run on every startup.
func Seed(db *gorm.DB, cfg config.BootstrapConfig) error {
	for _, a := range defaultActivities {
		activity := a
		activity.IsActive = true
		err := db.Where("name = ?", activity.Name).FirstOrCreate(&activity).Error
		if err != nil {
			return fmt.Errorf("seed activity %q: %w", activity.Name, err)
		}
	}

	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	var existing models.User
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check bootstrap admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	admin := models.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		FullName:     cfg.AdminFullName,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create bootstrap admin: %w", err)
	}
	log.Printf("bootstrap admin account created: %s", admin.Username)
	return nil
}
