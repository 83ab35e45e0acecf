package service

import (
	"github.com/praneeth827/prajju-new-one/internal/config"
	"github.com/praneeth827/prajju-new-one/internal/logger"
	"github.com/praneeth827/prajju-new-one/internal/store"
)

type Services struct {
	AuthService    AuthService
	StudentService StudentService
	ReportService  ReportService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		StudentService: NewStudentService(storages.StudentRepository, logger),
		ReportService:  NewReportService(storages.UserRepository, storages.StudentRepository, logger),
	}
}
