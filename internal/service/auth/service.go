package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/kintai-app/timeclock-backend-go/internal/domain/auth"
	"github.com/kintai-app/timeclock-backend-go/internal/domain/employee"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/jwt"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/session"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	adminRepo    auth.AdminRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
	sessions     session.Store
}

func NewAuthService(
	adminRepo auth.AdminRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	sessions session.Store,
) auth.AuthService {
	return &AuthServiceImpl{
		adminRepo:    adminRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		sessions:     sessions,
	}
}

// AdminLogin implements auth.AuthService.
func (s *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (auth.AdminLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AdminLoginResponse{}, err
	}

	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Same error for unknown username and wrong password.
			return auth.AdminLoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AdminLoginResponse{}, fmt.Errorf("failed to get admin account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AdminLoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAdminToken(admin.ID, admin.Username, admin.Name)
	if err != nil {
		return auth.AdminLoginResponse{}, fmt.Errorf("failed to generate admin token: %w", err)
	}

	resp := auth.AdminLoginResponse{Token: token, ExpiresAt: expiresAt}
	resp.Admin.ID = admin.ID
	resp.Admin.Username = admin.Username
	resp.Admin.Name = admin.Name
	return resp, nil
}

// EmployeeLogin implements auth.AuthService.
func (s *AuthServiceImpl) EmployeeLogin(ctx context.Context, req auth.EmployeeLoginRequest, ipAddress string) (auth.EmployeeLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.EmployeeLoginResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.EmployeeLoginResponse{}, employee.ErrEmployeeNotFound
		}
		return auth.EmployeeLoginResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	token, err := s.sessions.Create(emp.EmployeeID, ipAddress)
	if err != nil {
		return auth.EmployeeLoginResponse{}, fmt.Errorf("failed to open session: %w", err)
	}

	return auth.EmployeeLoginResponse{
		Token:      token,
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
	}, nil
}

// EmployeeLogout implements auth.AuthService. Logging out an already expired
// or unknown token is not an error.
func (s *AuthServiceImpl) EmployeeLogout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrSessionNotFound
	}
	s.sessions.Remove(token)
	return nil
}
