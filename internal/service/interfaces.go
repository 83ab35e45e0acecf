package service

import (
	"context"

	"github.com/praneeth827/prajju-new-one/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	InvalidateToken(ctx context.Context, token models.Token)
}

type StudentService interface {
	UpsertDetails(ctx context.Context, userID int64, req models.StudentDetailsRequest) (models.StudentDetails, error)
	GetDetails(ctx context.Context, userID int64) (models.StudentDetails, error)
}

type ReportService interface {
	BuildReport(ctx context.Context, userID int64) (models.Report, error)
}
