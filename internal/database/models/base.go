package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// BaseModel provides common fields for all models with bigint primary keys.
// IDs are assigned by the database; they are the identifiers the frontend
// passes back in selections, so they stay plain integers rather than UUIDs.
type BaseModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Int64List is an ordered list of bigint ids stored as a jsonb column.
// Order is preserved exactly as written; for landing pages it dictates
// on-page slot placement (first id = first slot).
type Int64List []int64

// Value implements driver.Valuer for jsonb storage
func (l Int64List) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for jsonb storage
func (l *Int64List) Scan(value interface{}) error {
	if value == nil {
		*l = Int64List{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for Int64List", value)
	}
	return json.Unmarshal(data, l)
}

// GormDataType tells GORM which column type to create
func (Int64List) GormDataType() string {
	return "jsonb"
}
