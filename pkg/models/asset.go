package models

import "time"

type Asset struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Type      string    `json:"type" db:"type"`
	Serial    string    `json:"serial" db:"serial"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type AssetRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}

type UpdateAssetRequest struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

func (a *Asset) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   a.ID,
		ResourceType: "asset",
	}
}
