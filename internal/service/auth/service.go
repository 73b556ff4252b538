package auth

import (
	"context"
	"errors"

	"github.com/lotus-wellness/payroll-backend-go/internal/domain/auth"
	"github.com/lotus-wellness/payroll-backend-go/internal/domain/employee"
	"github.com/lotus-wellness/payroll-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login verifies the employee's credentials and issues an access token.
// A missing employee and a wrong password both map to
// ErrInvalidCredentials so the response does not leak which usernames
// exist.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	emp, err := s.employeeRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Username)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		EmployeeID:  emp.ID,
		FirstName:   emp.FirstName,
		LastName:    emp.LastName,
	}, nil
}
