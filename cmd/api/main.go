package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/mdsai/analytics-api/infrastructure/database/postgres"
	"github.com/mdsai/analytics-api/infrastructure/dataset"
	"github.com/mdsai/analytics-api/infrastructure/repository"
	"github.com/mdsai/analytics-api/internal/api"
	"github.com/mdsai/analytics-api/internal/config"
	"github.com/mdsai/analytics-api/internal/domain"
	"github.com/mdsai/analytics-api/internal/scheduler"
	"github.com/mdsai/analytics-api/internal/usecases/assisting"
	"github.com/mdsai/analytics-api/internal/usecases/authenticating"
	"github.com/mdsai/analytics-api/internal/usecases/practice"
	"github.com/mdsai/analytics-api/internal/usecases/reporting"
	"github.com/mdsai/analytics-api/pkg/middleware"
	"github.com/mdsai/analytics-api/pkg/utils"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		userRepo     repository.UserRepository
		locationRepo repository.LocationRepository
		snapshotRepo repository.SnapshotRepository
	)

	if cfg.Database.Configured() {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		userRepo = repository.NewUserRepository(pgConn)
		locationRepo = repository.NewLocationRepository(pgConn)
		snapshotRepo = repository.NewSnapshotRepository(pgConn)
	} else {
		logrus.Info("DATABASE_URL not set, serving from in-memory demo stores")

		users, err := demoUsers(cfg)
		if err != nil {
			logrus.WithError(err).Fatal("error seeding demo users")
		}

		userRepo = repository.NewMemoryUserRepository(users...)
		locationRepo = repository.NewMemoryLocationRepository(dataset.Locations())
		snapshotRepo = repository.NewMemorySnapshotRepository()
	}

	authenticator := authenticating.NewService(userRepo, cfg)

	// Reporting with the snapshot store as a cache for overview reads.
	reportingService := reporting.NewService(cfg, locationRepo)
	snapshotReportingService := reportingService.(*reporting.Service).WithSnapshots(snapshotRepo)

	assistantService := assisting.NewService(snapshotReportingService)
	practiceService := practice.NewService(locationRepo)

	snapshotSyncService := scheduler.NewSnapshotSyncService(
		locationRepo,
		snapshotRepo,
		snapshotReportingService,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting metric snapshot sync scheduler")
	} else {
		logrus.Info("metric snapshot sync scheduler started")
	}

	server, err := api.New(
		cfg,
		snapshotReportingService,
		assistantService,
		practiceService,
		authenticator,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// demoUsers builds the seed accounts for the in-memory store. Passwords are
// hashed at startup so no hash material lives in the source tree.
func demoUsers(cfg *config.Config) ([]*domain.User, error) {
	seeds := []struct {
		username string
		password string
		name     string
		lastname string
		email    string
		roleID   int
	}{
		{cfg.Demo.AdminUsername, cfg.Demo.AdminPassword, "Dana", "Whitfield", "dana.whitfield@mdsfamilymed.example", middleware.RoleAdmin},
		{cfg.Demo.ManagerUsername, cfg.Demo.ManagerPassword, "Luis", "Herrera", "luis.herrera@mdsfamilymed.example", middleware.RoleManager},
		{cfg.Demo.ViewerUsername, cfg.Demo.ViewerPassword, "Tessa", "Nguyen", "tessa.nguyen@mdsfamilymed.example", middleware.RoleViewer},
	}

	users := make([]*domain.User, 0, len(seeds))
	now := time.Now().UTC()

	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}

		users = append(users, &domain.User{
			ID:           id,
			Username:     seed.username,
			Name:         seed.name,
			Lastname:     seed.lastname,
			Email:        seed.email,
			PasswordHash: string(hash),
			Active:       true,
			RoleID:       seed.roleID,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	return users, nil
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
