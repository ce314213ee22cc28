package employee

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kintai-app/timeclock-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	nextID    int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.nextID++
	emp.ID = fmt.Sprintf("id-%d", f.nextID)
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
	out := make([]employee.Employee, 0, len(f.employees))
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	for code, existing := range f.employees {
		if existing.ID == emp.ID {
			delete(f.employees, code)
			f.employees[emp.EmployeeID] = emp
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	for code, emp := range f.employees {
		if emp.ID == id {
			delete(f.employees, code)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func TestCreateEmployee_AppliesDefaultSchedule(t *testing.T) {
	t.Parallel()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		EmployeeID: "EMP001",
		Name:       "Tanaka Hanako",
	})

	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.WorkStartTime)
	assert.Equal(t, "17:00", resp.WorkEndTime)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateEmployee_KeepsExplicitSchedule(t *testing.T) {
	t.Parallel()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		EmployeeID:    "EMP001",
		Name:          "Tanaka Hanako",
		WorkStartTime: "10:00",
		WorkEndTime:   "18:30",
	})

	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.WorkStartTime)
	assert.Equal(t, "18:30", resp.WorkEndTime)
}

func TestCreateEmployee_DuplicateCode(t *testing.T) {
	t.Parallel()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{EmployeeID: "EMP001", Name: "A"})
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{EmployeeID: "EMP001", Name: "B"})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestUpdateEmployee_CodeCollision(t *testing.T) {
	t.Parallel()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	first, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{EmployeeID: "EMP001", Name: "A"})
	require.NoError(t, err)
	_, err = svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{EmployeeID: "EMP002", Name: "B"})
	require.NoError(t, err)

	_, err = svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:            first.ID,
		EmployeeID:    "EMP002",
		Name:          "A",
		WorkStartTime: "09:00",
		WorkEndTime:   "17:00",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)

	// Keeping its own code is not a collision.
	updated, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:            first.ID,
		EmployeeID:    "EMP001",
		Name:          "A Renamed",
		WorkStartTime: "08:00",
		WorkEndTime:   "16:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "A Renamed", updated.Name)
	assert.Equal(t, "08:00", updated.WorkStartTime)
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	t.Parallel()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	err := svc.DeleteEmployee(context.Background(), "missing-id")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListEmployees(t *testing.T) {
	t.Parallel()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	for _, code := range []string{"EMP002", "EMP001"} {
		_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{EmployeeID: code, Name: code})
		require.NoError(t, err)
	}

	emps, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, emps, 2)
	assert.Equal(t, "EMP001", emps[0].EmployeeID)
	assert.Equal(t, "EMP002", emps[1].EmployeeID)
}
