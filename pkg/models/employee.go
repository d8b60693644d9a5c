package models

import "time"

type Employee struct {
	ID        int       `json:"id" db:"id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Position  *string   `json:"position,omitempty" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type EmployeeRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Position *string `json:"position"`
}

type UpdateEmployeeRequest struct {
	FullName *string `json:"full_name"`
	Position *string `json:"position"`
}

func (e *Employee) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   e.ID,
		ResourceType: "employee",
	}
}
