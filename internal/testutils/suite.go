package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"control-room-backend/internal/config"
	"control-room-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "control"
	pgPassword = "control-test"
	pgDatabase = "control_room_test"
)

// truncationOrder lists every table, children before parents
var truncationOrder = []string{
	"operational_readings",
	"tank_readings",
	"generation_ramps",
	"novelty_logs",
	"task_logs",
	"event_logs",
	"equipment_status_logs",
	"shift_attendance",
	"shifts",
	"group_memberships",
	"shift_groups",
	"maintenance_tickets",
	"licenses",
	"operational_parameters",
	"scheduled_tasks",
	"tanks",
	"equipment",
	"employees",
	"positions",
	"users",
}

// postgresContainer is the one container shared by every suite of a test binary
type postgresContainer struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	config   *config.Config
}

var (
	sharedOnce    sync.Once
	sharedInitErr error
	shared        *postgresContainer
)

// BaseTestSuite hands a migrated database and a test config to integration suites
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { shared, sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: shared.db, Config: shared.config}
}

// CleanupSharedContainer closes the pool and purges the container. TestMain calls it once.
func CleanupSharedContainer() {
	if shared == nil {
		return
	}
	if sqlDB, err := shared.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Printf("Purging Postgres container %s", shared.resource.Container.Name)
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.Printf("WARN: could not purge container: %v", err)
	}
	shared = nil
}

// RunWithTestSuite runs testFunc against a clean database
func RunWithTestSuite(t *testing.T, testFunc func(*BaseTestSuite)) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()
	testFunc(s)
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only empties the tables; the container outlives the suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every control room table with triggers disabled
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	migrator := s.DB.Migrator()
	s.DB.Exec(`SET session_replication_role = replica`)
	defer s.DB.Exec(`SET session_replication_role = DEFAULT`)
	for _, table := range truncationOrder {
		if migrator.HasTable(table) {
			s.DB.Exec(fmt.Sprintf(`TRUNCATE TABLE %q RESTART IDENTITY CASCADE`, table))
		}
	}
}

func startPostgres() (*postgresContainer, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start postgres: %w", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	var db *gorm.DB
	err = pool.Retry(func() error {
		if err := ping(dsn); err != nil {
			return err
		}
		// Initialize also migrates the schema
		gdb, err := database.Initialize(dsn, nil)
		if err != nil {
			return err
		}
		db = gdb
		return nil
	})
	if err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("could not connect to docker database: %w", err)
	}

	log.Printf("Shared Postgres ready, tables: %v", publicTables(db))
	return &postgresContainer{
		pool:     pool,
		resource: resource,
		db:       db,
		config:   testConfig(dsn),
	}, nil
}

// ping opens a plain database/sql connection so Retry can poll readiness cheaply
func ping(dsn string) error {
	std, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer std.Close()
	return std.Ping()
}

// testConfig keeps bcrypt cheap and uses the default three-shift calendar
func testConfig(dsn string) *config.Config {
	return &config.Config{
		DatabaseURL:       dsn,
		Port:              "8080",
		LogLevel:          "debug",
		Environment:       "test",
		JWTSecret:         "test-secret",
		TokenTTLMinutes:   30,
		BcryptCost:        4,
		ShiftsPerDay:      3,
		ShiftDayStartHour: 7,
		ShiftTimezone:     "UTC",
	}
}

func publicTables(db *gorm.DB) []string {
	var names []string
	db.Raw(`SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename`).Scan(&names)
	return names
}
