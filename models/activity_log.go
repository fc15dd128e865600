package models

import "time"

// Activity status values
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Resource types touched by admin actions
const (
	ResourceTypeProduct = "product"
	ResourceTypeSession = "session"
)

// Action names
const (
	ActionCreateProduct      = "created_product"
	ActionUpdateProduct      = "updated_product"
	ActionDeleteProduct      = "deleted_product"
	ActionUploadProductImage = "uploaded_product_image"
	ActionAdminLogin         = "admin_login"
	ActionAdminLogout        = "admin_logout"
)

// ActivityLog is one admin action kept in the in-memory activity feed.
type ActivityLog struct {
	ID           string         `json:"id"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id,omitempty"`
	ResourceName string         `json:"resource_name,omitempty"`
	Changes      map[string]any `json:"changes,omitempty"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	IPAddress    string         `json:"ip_address,omitempty"`
	UserAgent    string         `json:"user_agent,omitempty"`
	DeviceType   string         `json:"device_type,omitempty"`
	Browser      string         `json:"browser,omitempty"`
	OS           string         `json:"os,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
