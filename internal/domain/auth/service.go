package auth

import (
	"context"
)

// AuthService defines login flows for administrators (JWT) and employees
// (server-side session tokens).
type AuthService interface {
	// AdminLogin checks credentials and issues an admin JWT
	AdminLogin(ctx context.Context, req AdminLoginRequest) (AdminLoginResponse, error)

	// EmployeeLogin verifies the employee exists and opens a session bound to
	// the caller's IP address
	EmployeeLogin(ctx context.Context, req EmployeeLoginRequest, ipAddress string) (EmployeeLoginResponse, error)

	// EmployeeLogout closes the session for the given token
	EmployeeLogout(ctx context.Context, token string) error
}
