package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"control-room-backend/internal/auth"
	"control-room-backend/internal/config"
	"control-room-backend/internal/database"
	"control-room-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type PositionData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type EmployeeData struct {
	FullName       string `yaml:"full_name"`
	BadgeID        string `yaml:"badge_id"`
	EmploymentType string `yaml:"employment_type"`
	BasePosition   string `yaml:"base_position,omitempty"`
}

type GroupData struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"` // employee badge IDs
}

type UserData struct {
	Username string `yaml:"username"`
	FullName string `yaml:"full_name"`
	BadgeID  string `yaml:"badge_id"`
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
}

type EquipmentData struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

type TankData struct {
	Name           string  `yaml:"name"`
	ResourceType   string  `yaml:"resource_type"`
	CapacityLiters float64 `yaml:"capacity_liters"`
}

type TaskData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

type ParameterData struct {
	Name        string `yaml:"name"`
	Unit        string `yaml:"unit"`
	Description string `yaml:"description"`
}

// File structures
type PersonnelFile struct {
	Positions []PositionData `yaml:"positions"`
	Employees []EmployeeData `yaml:"employees"`
	Groups    []GroupData    `yaml:"groups"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type CatalogFile struct {
	Equipment  []EquipmentData `yaml:"equipment"`
	Tanks      []TankData      `yaml:"tanks"`
	Tasks      []TaskData      `yaml:"scheduled_tasks"`
	Parameters []ParameterData `yaml:"operational_parameters"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	if err := loadDataFromYAMLFiles(db, hasher, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
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

func loadDataFromYAMLFiles(db *gorm.DB, hasher *auth.PasswordHasher, dataDir string) error {
	var personnel PersonnelFile
	var users UsersFile
	var catalog CatalogFile

	if err := decodeFiles(dataDir, "personnel", func(data []byte) error {
		var file PersonnelFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		personnel.Positions = append(personnel.Positions, file.Positions...)
		personnel.Employees = append(personnel.Employees, file.Employees...)
		personnel.Groups = append(personnel.Groups, file.Groups...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load personnel: %w", err)
	}

	if err := decodeFiles(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		users.Users = append(users.Users, file.Users...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	if err := decodeFiles(dataDir, "catalog", func(data []byte) error {
		var file CatalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		catalog.Equipment = append(catalog.Equipment, file.Equipment...)
		catalog.Tanks = append(catalog.Tanks, file.Tanks...)
		catalog.Tasks = append(catalog.Tasks, file.Tasks...)
		catalog.Parameters = append(catalog.Parameters, file.Parameters...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		positionMap := make(map[string]uuid.UUID)
		created := 0
		for _, data := range personnel.Positions {
			position := models.Position{Name: data.Name, Description: data.Description}
			ok, err := firstOrCreate(tx, &position, "name = ?", data.Name)
			if err != nil {
				return fmt.Errorf("failed to create position %s: %w", data.Name, err)
			}
			positionMap[data.Name] = position.ID
			created += ok
		}
		log.Printf("Positions: %d created, %d total", created, len(personnel.Positions))

		employeeMap := make(map[string]uuid.UUID)
		created = 0
		for _, data := range personnel.Employees {
			employee := models.Employee{
				FullName:       data.FullName,
				BadgeID:        data.BadgeID,
				EmploymentType: models.EmploymentType(data.EmploymentType),
			}
			if employee.EmploymentType == "" {
				employee.EmploymentType = models.EmploymentTypePermanent
			}
			if data.BasePosition != "" {
				positionID, found := positionMap[data.BasePosition]
				if !found {
					return fmt.Errorf("employee %s references unknown position %s", data.BadgeID, data.BasePosition)
				}
				employee.BasePositionID = &positionID
			}
			ok, err := firstOrCreate(tx, &employee, "badge_id = ?", data.BadgeID)
			if err != nil {
				return fmt.Errorf("failed to create employee %s: %w", data.BadgeID, err)
			}
			employeeMap[data.BadgeID] = employee.ID
			created += ok
		}
		log.Printf("Employees: %d created, %d total", created, len(personnel.Employees))

		created = 0
		for _, data := range personnel.Groups {
			group := models.ShiftGroup{Name: data.Name}
			ok, err := firstOrCreate(tx, &group, "name = ?", data.Name)
			if err != nil {
				return fmt.Errorf("failed to create group %s: %w", data.Name, err)
			}
			created += ok
			for _, badge := range data.Members {
				employeeID, found := employeeMap[badge]
				if !found {
					return fmt.Errorf("group %s references unknown employee %s", data.Name, badge)
				}
				membership := models.GroupMembership{GroupID: group.ID, EmployeeID: employeeID}
				if err := tx.Omit("Group", "Employee").
					Where("group_id = ? AND employee_id = ?", group.ID, employeeID).
					FirstOrCreate(&membership).Error; err != nil {
					return fmt.Errorf("failed to add %s to group %s: %w", badge, data.Name, err)
				}
			}
		}
		log.Printf("Groups: %d created, %d total", created, len(personnel.Groups))

		created = 0
		for _, data := range users.Users {
			hash, err := hasher.Hash(data.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password of %s: %w", data.Username, err)
			}
			user := models.User{
				Username:     data.Username,
				FullName:     data.FullName,
				BadgeID:      data.BadgeID,
				Role:         models.UserRole(data.Role),
				PasswordHash: hash,
			}
			ok, err := firstOrCreate(tx, &user, "username = ?", data.Username)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", data.Username, err)
			}
			created += ok
		}
		log.Printf("Users: %d created, %d total", created, len(users.Users))

		created = 0
		for _, data := range catalog.Equipment {
			equipment := models.Equipment{Name: data.Name, Location: data.Location, Status: models.EquipmentStatusAvailable}
			ok, err := firstOrCreate(tx, &equipment, "name = ?", data.Name)
			if err != nil {
				return fmt.Errorf("failed to create equipment %s: %w", data.Name, err)
			}
			created += ok
		}
		log.Printf("Equipment: %d created, %d total", created, len(catalog.Equipment))

		created = 0
		for _, data := range catalog.Tanks {
			tank := models.Tank{
				Name:           data.Name,
				ResourceType:   models.ResourceType(data.ResourceType),
				CapacityLiters: data.CapacityLiters,
			}
			ok, err := firstOrCreate(tx, &tank, "name = ?", data.Name)
			if err != nil {
				return fmt.Errorf("failed to create tank %s: %w", data.Name, err)
			}
			created += ok
		}
		log.Printf("Tanks: %d created, %d total", created, len(catalog.Tanks))

		created = 0
		for _, data := range catalog.Tasks {
			task := models.ScheduledTask{
				Name:        data.Name,
				Description: data.Description,
				Category:    models.TaskCategory(data.Category),
				IsActive:    true,
			}
			ok, err := firstOrCreate(tx, &task, "name = ?", data.Name)
			if err != nil {
				return fmt.Errorf("failed to create scheduled task %s: %w", data.Name, err)
			}
			created += ok
		}
		log.Printf("Scheduled tasks: %d created, %d total", created, len(catalog.Tasks))

		created = 0
		for _, data := range catalog.Parameters {
			parameter := models.OperationalParameter{
				Name:        data.Name,
				Unit:        data.Unit,
				Description: data.Description,
				IsActive:    true,
			}
			ok, err := firstOrCreate(tx, &parameter, "name = ?", data.Name)
			if err != nil {
				return fmt.Errorf("failed to create parameter %s: %w", data.Name, err)
			}
			created += ok
		}
		log.Printf("Operational parameters: %d created, %d total", created, len(catalog.Parameters))

		return nil
	})
}

// decodeFiles calls decode with the contents of every YAML file under dataDir whose path contains kind
func decodeFiles(dataDir, kind string, decode func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := decode(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

// firstOrCreate loads the row matching query into model, creating it from model when missing.
// It returns 1 when a row was created so callers can count.
func firstOrCreate(tx *gorm.DB, model interface{}, query string, args ...interface{}) (int, error) {
	err := tx.Where(query, args...).First(model).Error
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to query: %w", err)
	}
	if err := tx.Create(model).Error; err != nil {
		return 0, err
	}
	return 1, nil
}
