package main

import (
	"docuflow-backend/internal/config"
	"docuflow-backend/internal/database"
	"docuflow-backend/internal/database/models"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name        string                 `yaml:"name"`
	DisplayName string                 `yaml:"display_name"`
	Domain      string                 `yaml:"domain"`
	Description string                 `yaml:"description"`
	Settings    map[string]interface{} `yaml:"settings,omitempty"`
}

type EmployeeData struct {
	OrganizationName string   `yaml:"organization_name"`
	FullName         string   `yaml:"full_name"`
	FirstName        string   `yaml:"first_name"`
	LastName         string   `yaml:"last_name"`
	Email            string   `yaml:"email"`
	Department       string   `yaml:"department,omitempty"`
	Role             string   `yaml:"role"`
	Skills           []string `yaml:"skills,omitempty"`
	PhoneNumber      string   `yaml:"phone_number,omitempty"`
	IsActive         bool     `yaml:"is_active"`
}

type StorageConfigData struct {
	OrganizationName string `yaml:"organization_name"`
	Name             string `yaml:"name"`
	Provider         string `yaml:"provider"`
	RootPath         string `yaml:"root_path,omitempty"`
	IsDefault        bool   `yaml:"is_default"`
}

type RoutingRuleData struct {
	OrganizationName string   `yaml:"organization_name"`
	StorageName      string   `yaml:"storage_name"`
	Name             string   `yaml:"name"`
	Description      string   `yaml:"description,omitempty"`
	Priority         int      `yaml:"priority"`
	IsActive         bool     `yaml:"is_active"`
	SenderPattern    string   `yaml:"sender_pattern,omitempty"`
	SubjectPattern   string   `yaml:"subject_pattern,omitempty"`
	FileTypes        []string `yaml:"file_types,omitempty"`
	FolderTemplate   string   `yaml:"folder_template"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type StorageConfigsFile struct {
	StorageConfigs []StorageConfigData `yaml:"storage_configs"`
}

type RoutingRulesFile struct {
	RoutingRules []RoutingRuleData `yaml:"routing_rules"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

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

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var orgFile OrganizationsFile
	if err := readYAMLFile(filepath.Join(dataDir, "organizations.yaml"), &orgFile); err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	var empFile EmployeesFile
	if err := readYAMLFile(filepath.Join(dataDir, "employees.yaml"), &empFile); err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	var scFile StorageConfigsFile
	if err := readYAMLFile(filepath.Join(dataDir, "storage_configs.yaml"), &scFile); err != nil {
		return fmt.Errorf("failed to load storage configs: %w", err)
	}

	var ruleFile RoutingRulesFile
	if err := readYAMLFile(filepath.Join(dataDir, "routing_rules.yaml"), &ruleFile); err != nil {
		return fmt.Errorf("failed to load routing rules: %w", err)
	}

	// Create organizations first
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range orgFile.Organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(orgFile.Organizations))

	// Create employees
	empCreated := 0
	for _, empData := range empFile.Employees {
		_, created, err := createEmployee(db, empData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create employee %s: %w", empData.Email, err)
		}
		if created {
			empCreated++
		}
	}
	log.Printf("📋 Employees: %d created, %d total", empCreated, len(empFile.Employees))

	// Create storage configs
	scMap := make(map[string]*models.StorageConfig)
	scCreated := 0
	for _, scData := range scFile.StorageConfigs {
		sc, created, err := createStorageConfig(db, scData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create storage config %s: %w", scData.Name, err)
		}
		scMap[scData.OrganizationName+"/"+scData.Name] = sc
		if created {
			scCreated++
		}
	}
	log.Printf("📋 Storage configs: %d created, %d total", scCreated, len(scFile.StorageConfigs))

	// Create routing rules (need their storage destination to exist)
	ruleCreated := 0
	for _, ruleData := range ruleFile.RoutingRules {
		_, created, err := createRoutingRule(db, ruleData, orgMap, scMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create routing rule %s: %v", ruleData.Name, err)
			continue // Continue with other rules
		}
		if created {
			ruleCreated++
		}
	}
	log.Printf("📋 Routing rules: %d created, %d total", ruleCreated, len(ruleFile.RoutingRules))

	return nil
}

func readYAMLFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing seed file means nothing to load for that entity
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, out)
}

func createOrganization(db *gorm.DB, data OrganizationData) (*models.Organization, bool, error) {
	var existing models.Organization
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	var settings json.RawMessage
	if len(data.Settings) > 0 {
		settings, err = json.Marshal(data.Settings)
		if err != nil {
			return nil, false, fmt.Errorf("invalid settings: %w", err)
		}
	}

	org := models.Organization{
		Name:        data.Name,
		DisplayName: data.DisplayName,
		Domain:      strings.ToLower(data.Domain),
		Description: data.Description,
		Settings:    settings,
	}
	if err := db.Create(&org).Error; err != nil {
		return nil, false, err
	}
	return &org, true, nil
}

func createEmployee(db *gorm.DB, data EmployeeData, orgMap map[string]*models.Organization) (*models.Employee, bool, error) {
	org, exists := orgMap[data.OrganizationName]
	if !exists {
		return nil, false, fmt.Errorf("unknown organization: %s", data.OrganizationName)
	}

	email := strings.ToLower(data.Email)

	var existing models.Employee
	err := db.Where("organization_id = ? AND email = ?", org.ID, email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	var skills json.RawMessage
	if len(data.Skills) > 0 {
		skills, _ = json.Marshal(data.Skills)
	}

	role := models.EmployeeRole(data.Role)
	if !models.ValidEmployeeRole(role) {
		role = models.EmployeeRoleEmployee
	}

	employee := models.Employee{
		OrganizationID: org.ID,
		FullName:       data.FullName,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Email:          email,
		Department:     data.Department,
		Role:           role,
		Skills:         skills,
		PhoneNumber:    data.PhoneNumber,
		IsActive:       data.IsActive,
		Source:         models.EmployeeSourceManual,
	}
	if err := db.Create(&employee).Error; err != nil {
		return nil, false, err
	}
	return &employee, true, nil
}

func createStorageConfig(db *gorm.DB, data StorageConfigData, orgMap map[string]*models.Organization) (*models.StorageConfig, bool, error) {
	org, exists := orgMap[data.OrganizationName]
	if !exists {
		return nil, false, fmt.Errorf("unknown organization: %s", data.OrganizationName)
	}

	provider := models.StorageProvider(data.Provider)
	if !models.ValidStorageProvider(provider) {
		return nil, false, fmt.Errorf("unknown provider: %s", data.Provider)
	}

	var existing models.StorageConfig
	err := db.Where("organization_id = ? AND name = ?", org.ID, data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	sc := models.StorageConfig{
		OrganizationID: org.ID,
		Name:           data.Name,
		Provider:       provider,
		RootPath:       data.RootPath,
		IsDefault:      data.IsDefault,
		Status:         models.StorageStatusDisconnected,
	}
	if err := db.Create(&sc).Error; err != nil {
		return nil, false, err
	}
	return &sc, true, nil
}

func createRoutingRule(db *gorm.DB, data RoutingRuleData, orgMap map[string]*models.Organization, scMap map[string]*models.StorageConfig) (*models.RoutingRule, bool, error) {
	org, exists := orgMap[data.OrganizationName]
	if !exists {
		return nil, false, fmt.Errorf("unknown organization: %s", data.OrganizationName)
	}

	sc, exists := scMap[data.OrganizationName+"/"+data.StorageName]
	if !exists {
		return nil, false, fmt.Errorf("unknown storage config: %s", data.StorageName)
	}

	var existing models.RoutingRule
	err := db.Where("organization_id = ? AND name = ?", org.ID, data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	var fileTypes json.RawMessage
	if len(data.FileTypes) > 0 {
		fileTypes, _ = json.Marshal(data.FileTypes)
	}

	rule := models.RoutingRule{
		OrganizationID:  org.ID,
		Name:            data.Name,
		Description:     data.Description,
		Priority:        data.Priority,
		IsActive:        data.IsActive,
		SenderPattern:   data.SenderPattern,
		SubjectPattern:  data.SubjectPattern,
		FileTypes:       fileTypes,
		StorageConfigID: sc.ID,
		FolderTemplate:  data.FolderTemplate,
	}
	if err := db.Create(&rule).Error; err != nil {
		return nil, false, err
	}
	return &rule, true, nil
}
