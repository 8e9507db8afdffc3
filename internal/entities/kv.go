package entities

import "time"

// KeyValue is one entry of the durable string-keyed store.
type KeyValue struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KeyValue) TableName() string {
	return "kv_entries"
}
