package employees

import (
	"fmt"

	"github.com/ShalinTimalsina/AssetTracker-Test/internal/repository"
	custom_error "github.com/ShalinTimalsina/AssetTracker-Test/pkg/errors"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

const emailUniqueConstraint = "employees_email_key"

var employeeColumns = []interface{}{"id", "full_name", "email", "position", "created_at"}

type EmployeeRepository interface {
	PersistEmployee(req models.EmployeeRequest) (*models.Employee, error)
	GetEmployee(id int) (*models.Employee, error)
	GetEmployees() ([]models.Employee, error)
	UpdateEmployee(id int, req models.UpdateEmployeeRequest) (*models.Employee, error)
}

type employeeRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) EmployeeRepository {
	return &employeeRepositoryImpl{repository: r}
}

func (r *employeeRepositoryImpl) PersistEmployee(req models.EmployeeRequest) (*models.Employee, error) {
	query := r.repository.GoquDBWrapper.Insert("employees").
		Rows(goqu.Record{
			"full_name": req.FullName,
			"email":     req.Email,
			"position":  req.Position,
		}).
		Returning(employeeColumns...)

	var employee models.Employee
	if _, err := query.Executor().ScanStruct(&employee); err != nil {
		if custom_error.IsUniqueViolation(err, emailUniqueConstraint) {
			return nil, custom_error.WrapDBError("Employee email already registered", "23505")
		}
		return nil, fmt.Errorf("failed to insert employee: %w", err)
	}

	return &employee, nil
}

func (r *employeeRepositoryImpl) GetEmployee(id int) (*models.Employee, error) {
	var employee models.Employee
	query := r.repository.GoquDBWrapper.
		Select(employeeColumns...).
		From("employees").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&employee)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	if !found {
		return nil, custom_error.ErrNotFound
	}

	return &employee, nil
}

func (r *employeeRepositoryImpl) GetEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	query := r.repository.GoquDBWrapper.
		Select(employeeColumns...).
		From("employees").
		Order(goqu.C("full_name").Asc())

	if err := query.Executor().ScanStructs(&employees); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return employees, nil
}

func (r *employeeRepositoryImpl) UpdateEmployee(id int, req models.UpdateEmployeeRequest) (*models.Employee, error) {
	record := goqu.Record{}
	if req.FullName != nil {
		record["full_name"] = *req.FullName
	}
	if req.Position != nil {
		record["position"] = *req.Position
	}
	if len(record) == 0 {
		return r.GetEmployee(id)
	}

	query := r.repository.GoquDBWrapper.Update("employees").
		Set(record).
		Where(goqu.Ex{"id": id}).
		Returning(employeeColumns...)

	var employee models.Employee
	found, err := query.Executor().ScanStruct(&employee)
	if err != nil {
		return nil, fmt.Errorf("failed to update employee %d: %w", id, err)
	}
	if !found {
		return nil, custom_error.ErrNotFound
	}

	return &employee, nil
}
