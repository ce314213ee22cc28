package postgresql

import (
	"context"
	"fmt"

	"github.com/kintai-app/timeclock-backend-go/internal/domain/employee"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (employee_id, name, department, work_start_time, work_end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, name, department, work_start_time, work_end_time, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeID, newEmployee.Name, newEmployee.Department,
		newEmployee.WorkStartTime, newEmployee.WorkEndTime,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Name, &created.Department,
		&created.WorkStartTime, &created.WorkEndTime, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, name, department, work_start_time, work_end_time, created_at, updated_at
		FROM employees
		WHERE employee_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&emp.ID, &emp.EmployeeID, &emp.Name, &emp.Department,
		&emp.WorkStartTime, &emp.WorkEndTime, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetSchedule implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetSchedule(ctx context.Context, employeeID string) (employee.Schedule, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT work_start_time, work_end_time
		FROM employees
		WHERE employee_id = $1
	`

	var sched employee.Schedule
	err := q.QueryRow(ctx, query, employeeID).Scan(&sched.StartTime, &sched.EndTime)
	if err != nil {
		return employee.Schedule{}, err
	}

	return sched, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, name, department, work_start_time, work_end_time, created_at, updated_at
		FROM employees
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.EmployeeID, &emp.Name, &emp.Department,
			&emp.WorkStartTime, &emp.WorkEndTime, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET employee_id = $1, name = $2, department = $3,
			work_start_time = $4, work_end_time = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		emp.EmployeeID, emp.Name, emp.Department,
		emp.WorkStartTime, emp.WorkEndTime, emp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
