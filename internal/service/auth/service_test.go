package auth

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kintai-app/timeclock-backend-go/internal/domain/auth"
	"github.com/kintai-app/timeclock-backend-go/internal/domain/employee"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/jwt"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/session"
)

type fakeAdminRepo struct {
	admins map[string]auth.Admin
}

func (f *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (auth.Admin, error) {
	admin, ok := f.admins[username]
	if !ok {
		return auth.Admin{}, pgx.ErrNoRows
	}
	return admin, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.EmployeeID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	emp, ok := f.employees[employeeID]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetSchedule(ctx context.Context, employeeID string) (employee.Schedule, error) {
	emp, ok := f.employees[employeeID]
	if !ok {
		return employee.Schedule{}, pgx.ErrNoRows
	}
	return employee.Schedule{StartTime: emp.WorkStartTime, EndTime: emp.WorkEndTime}, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func newTestAuthService(t *testing.T) (auth.AuthService, session.Store) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	adminRepo := &fakeAdminRepo{admins: map[string]auth.Admin{
		"admin": {ID: "admin-1", Username: "admin", PasswordHash: string(hash), Name: "Administrator"},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": {ID: "emp-1", EmployeeID: "EMP001", Name: "Tanaka Hanako"},
	}}
	sessions := session.NewMemoryStore(session.Config{})
	jwtService := jwt.NewJWTService("test-secret", "8h")

	return NewAuthService(adminRepo, employeeRepo, jwtService, sessions), sessions
}

func TestAdminLogin_Success(t *testing.T) {
	t.Parallel()
	svc, _ := newTestAuthService(t)

	resp, err := svc.AdminLogin(context.Background(), auth.AdminLoginRequest{
		Username: "admin",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, "admin-1", resp.Admin.ID)
	assert.Equal(t, "Administrator", resp.Admin.Name)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	svc, _ := newTestAuthService(t)

	_, err := svc.AdminLogin(context.Background(), auth.AdminLoginRequest{
		Username: "admin",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAdminLogin_UnknownUsername(t *testing.T) {
	t.Parallel()
	svc, _ := newTestAuthService(t)

	_, err := svc.AdminLogin(context.Background(), auth.AdminLoginRequest{
		Username: "nobody",
		Password: "correct-horse",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestEmployeeLogin_OpensSession(t *testing.T) {
	t.Parallel()
	svc, sessions := newTestAuthService(t)

	resp, err := svc.EmployeeLogin(context.Background(), auth.EmployeeLoginRequest{EmployeeID: "EMP001"}, "10.0.0.5")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Tanaka Hanako", resp.Name)

	sess, ok := sessions.Validate(resp.Token, "10.0.0.5")
	require.True(t, ok)
	assert.Equal(t, "EMP001", sess.EmployeeID)
}

func TestEmployeeLogin_UnknownEmployee(t *testing.T) {
	t.Parallel()
	svc, _ := newTestAuthService(t)

	_, err := svc.EmployeeLogin(context.Background(), auth.EmployeeLoginRequest{EmployeeID: "GHOST"}, "10.0.0.5")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeLogout(t *testing.T) {
	t.Parallel()
	svc, sessions := newTestAuthService(t)
	ctx := context.Background()

	resp, err := svc.EmployeeLogin(ctx, auth.EmployeeLoginRequest{EmployeeID: "EMP001"}, "10.0.0.5")
	require.NoError(t, err)

	require.NoError(t, svc.EmployeeLogout(ctx, resp.Token))

	_, ok := sessions.Validate(resp.Token, "10.0.0.5")
	assert.False(t, ok)

	// Repeated logout of the same token is harmless.
	assert.NoError(t, svc.EmployeeLogout(ctx, resp.Token))
}
