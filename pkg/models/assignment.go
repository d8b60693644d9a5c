package models

import "time"

type Assignment struct {
	ID         int        `json:"id" db:"id"`
	AssetID    int        `json:"asset_id" db:"asset_id"`
	EmployeeID int        `json:"employee_id" db:"employee_id"`
	AssignedAt time.Time  `json:"assigned_at" db:"assigned_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty" db:"returned_at"`
}

type AssignmentRequest struct {
	AssetID    int `json:"asset_id" binding:"required"`
	EmployeeID int `json:"employee_id" binding:"required"`
}

// AssignmentDetails carries an assignment together with the asset and
// employee it references, for list views.
type AssignmentDetails struct {
	Assignment
	Asset    Asset    `json:"asset"`
	Employee Employee `json:"employee"`
}

type FlatAssignmentRecord struct {
	ID               int        `db:"assignment_id"`
	AssetID          int        `db:"asset_id"`
	AssetName        string     `db:"asset_name"`
	AssetType        string     `db:"asset_type"`
	AssetSerial      string     `db:"asset_serial"`
	EmployeeID       int        `db:"employee_id"`
	EmployeeFullName string     `db:"employee_full_name"`
	EmployeeEmail    string     `db:"employee_email"`
	AssignedAt       time.Time  `db:"assigned_at"`
	ReturnedAt       *time.Time `db:"returned_at"`
}

func (fa *FlatAssignmentRecord) TransformToDetails() AssignmentDetails {
	return AssignmentDetails{
		Assignment: Assignment{
			ID:         fa.ID,
			AssetID:    fa.AssetID,
			EmployeeID: fa.EmployeeID,
			AssignedAt: fa.AssignedAt,
			ReturnedAt: fa.ReturnedAt,
		},
		Asset: Asset{
			ID:     fa.AssetID,
			Name:   fa.AssetName,
			Type:   fa.AssetType,
			Serial: fa.AssetSerial,
		},
		Employee: Employee{
			ID:       fa.EmployeeID,
			FullName: fa.EmployeeFullName,
			Email:    fa.EmployeeEmail,
		},
	}
}

func (a *Assignment) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   a.ID,
		ResourceType: "assignment",
	}
}
