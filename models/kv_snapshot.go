package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVSnapshot is one persisted collection snapshot (SQL-backed key-value store).
type KVSnapshot struct {
	Key       string         `json:"key" gorm:"primaryKey;size:191"`
	Value     datatypes.JSON `json:"value" gorm:"not null"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name
func (KVSnapshot) TableName() string {
	return "kv_snapshots"
}
