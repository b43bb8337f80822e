package container

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-record/config"
	"github.com/oksasatya/go-ddd-user-record/internal/application"
	"github.com/oksasatya/go-ddd-user-record/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-record/internal/infrastructure/memory"
)

// app-level container to share constructed components across packages

var (
	cfg      *config.Config
	logger   *logrus.Logger
	userRepo repository.UserRepository
	userSvc  *application.Service
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetUserRepository(r repository.UserRepository) { userRepo = r }

// GetUserRepository falls back to a process-local store when none was set.
func GetUserRepository() repository.UserRepository {
	if userRepo == nil {
		userRepo = memory.NewUserRepository()
	}
	return userRepo
}

// GetUserService lazily wires the service from the other singletons.
func GetUserService() *application.Service {
	if userSvc != nil {
		return userSvc
	}
	maxBatch := 0
	if cfg != nil {
		maxBatch = cfg.MaxEnrolBatch
	}
	userSvc = application.NewService(GetUserRepository(), logger, maxBatch)
	return userSvc
}

// Reset clears every singleton.
func Reset() {
	cfg, logger, userRepo, userSvc = nil, nil, nil, nil
}
