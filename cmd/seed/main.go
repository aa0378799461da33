package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"feedback-hub-backend/internal/auth"
	"feedback-hub-backend/internal/config"
	"feedback-hub-backend/internal/database"
	"feedback-hub-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML seed files
type OrganizationData struct {
	Name   string `yaml:"name"`
	Domain string `yaml:"domain"`
}

type UserData struct {
	Email            string `yaml:"email"`
	Name             string `yaml:"name"`
	Password         string `yaml:"password"`
	Role             string `yaml:"role"`
	OrganizationName string `yaml:"organization_name"`
	ManagerEmail     string `yaml:"manager_email,omitempty"`
	IsActive         *bool  `yaml:"is_active,omitempty"`
}

type FeedbackData struct {
	OrganizationName string   `yaml:"organization_name"`
	EmployeeEmail    string   `yaml:"employee_email"`
	ManagerEmail     string   `yaml:"manager_email"`
	Strengths        string   `yaml:"strengths"`
	Improvements     string   `yaml:"improvements"`
	Sentiment        string   `yaml:"sentiment"`
	Tags             []string `yaml:"tags,omitempty"`
	Acknowledged     bool     `yaml:"acknowledged,omitempty"`
}

type SeedFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
	Users         []UserData         `yaml:"users"`
	Feedback      []FeedbackData     `yaml:"feedback"`
}

func main() {
	log.Println("🚀 Loading demo data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Demo data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during seeding
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	seed, err := loadSeedFiles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load seed files: %w", err)
	}

	// Create organizations first
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range seed.Organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return err
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("Organizations: %d created, %d existing", orgCreated, len(seed.Organizations)-orgCreated)

	// Create users; managers must appear before their reports in the seed files
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range seed.Users {
		user, created, err := createUser(db, userData, orgMap, userMap)
		if err != nil {
			return err
		}
		userMap[userKey(userData.OrganizationName, userData.Email)] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d existing", userCreated, len(seed.Users)-userCreated)

	// Create feedback
	feedbackCreated := 0
	for _, feedbackData := range seed.Feedback {
		created, err := createFeedback(db, feedbackData, orgMap, userMap)
		if err != nil {
			return err
		}
		if created {
			feedbackCreated++
		}
	}
	log.Printf("Feedback: %d created, %d existing", feedbackCreated, len(seed.Feedback)-feedbackCreated)

	return nil
}

func loadSeedFiles(dataDir string) (*SeedFile, error) {
	var merged SeedFile

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") {
			var file SeedFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			merged.Organizations = append(merged.Organizations, file.Organizations...)
			merged.Users = append(merged.Users, file.Users...)
			merged.Feedback = append(merged.Feedback, file.Feedback...)
		}
		return nil
	})

	return &merged, err
}

func userKey(orgName, email string) string {
	return orgName + "/" + email
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	var org models.Organization
	if err := db.Where("name = ?", orgData.Name).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			org = models.Organization{
				Name:     orgData.Name,
				Domain:   orgData.Domain,
				IsActive: true,
			}

			if err := db.Create(&org).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil
		}
		return nil, false, fmt.Errorf("failed to query organization: %w", err)
	}

	return &org, false, nil
}

func createUser(db *gorm.DB, userData UserData, orgMap map[string]*models.Organization, userMap map[string]*models.User) (*models.User, bool, error) {
	org := orgMap[userData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for user %s", userData.OrganizationName, userData.Email)
	}

	role := models.Role(userData.Role)
	if !role.Valid() {
		return nil, false, fmt.Errorf("invalid role %q for user %s", userData.Role, userData.Email)
	}

	var user models.User
	if err := db.Where("email = ? AND organization_id = ?", userData.Email, org.ID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := auth.HashPassword(userData.Password)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password for %s: %w", userData.Email, err)
			}

			user = models.User{
				Email:          userData.Email,
				Name:           userData.Name,
				PasswordHash:   hash,
				Role:           role,
				OrganizationID: org.ID,
				IsActive:       true,
			}
			if userData.IsActive != nil {
				user.IsActive = *userData.IsActive
			}
			if userData.ManagerEmail != "" {
				manager := userMap[userKey(userData.OrganizationName, userData.ManagerEmail)]
				if manager == nil {
					return nil, false, fmt.Errorf("manager %s not found for user %s", userData.ManagerEmail, userData.Email)
				}
				user.ManagerID = &manager.ID
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil
		}
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, false, nil
}

func createFeedback(db *gorm.DB, feedbackData FeedbackData, orgMap map[string]*models.Organization, userMap map[string]*models.User) (bool, error) {
	org := orgMap[feedbackData.OrganizationName]
	if org == nil {
		return false, fmt.Errorf("organization %s not found for feedback", feedbackData.OrganizationName)
	}

	employee := userMap[userKey(feedbackData.OrganizationName, feedbackData.EmployeeEmail)]
	manager := userMap[userKey(feedbackData.OrganizationName, feedbackData.ManagerEmail)]
	if employee == nil || manager == nil {
		return false, fmt.Errorf("employee %s or manager %s not found for feedback", feedbackData.EmployeeEmail, feedbackData.ManagerEmail)
	}

	sentiment := models.Sentiment(feedbackData.Sentiment)
	if !sentiment.Valid() {
		return false, fmt.Errorf("invalid sentiment %q for feedback to %s", feedbackData.Sentiment, feedbackData.EmployeeEmail)
	}

	// Feedback has no natural key, so match on the pair plus strengths text
	var existing models.Feedback
	err := db.Where("employee_id = ? AND manager_id = ? AND strengths = ?", employee.ID, manager.ID, feedbackData.Strengths).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query feedback: %w", err)
	}

	feedback := models.Feedback{
		EmployeeID:     employee.ID,
		ManagerID:      manager.ID,
		OrganizationID: org.ID,
		Strengths:      feedbackData.Strengths,
		Improvements:   feedbackData.Improvements,
		Sentiment:      sentiment,
		Tags:           feedbackData.Tags,
		Acknowledged:   feedbackData.Acknowledged,
	}

	if err := db.Create(&feedback).Error; err != nil {
		return false, fmt.Errorf("failed to create feedback: %w", err)
	}
	return true, nil
}
