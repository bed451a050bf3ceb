package models

import (
	"encoding/json"
	"time"
)

// FinanceHistoryEntry is one recycle-bin record: a full snapshot of a finance
// row taken immediately before it was deleted from its source table. RowData
// must be sufficient to reconstruct the original row on insert (same column
// shape); snapshots taken before a schema change may fail to restore.
type FinanceHistoryEntry struct {
	ID        string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	TableName string          `json:"table_name" gorm:"not null;index;type:varchar(50)" validate:"required"`
	RowID     string          `json:"row_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	RowData   json.RawMessage `json:"row_data" gorm:"not null;type:jsonb"`
	Action    HistoryAction   `json:"action" gorm:"not null;type:varchar(20)"`
	CreatedBy string          `json:"created_by" gorm:"not null;type:uuid"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime"`
}
