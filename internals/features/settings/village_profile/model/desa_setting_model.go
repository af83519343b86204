// file: internals/features/settings/village_profile/model/desa_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// --- MODEL desa_settings -----------------------------------------------------
// Payload disimpan sebagai JSONB tervalidasi saat tulis (bukan blob bebas yang
// diparse defensif tiap baca).
type DesaSettingModel struct {
	// PK
	DesaSettingID uuid.UUID `json:"desa_setting_id" gorm:"column:desa_setting_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Kunci setting (mis. village_address)
	DesaSettingKey string `json:"desa_setting_key" gorm:"column:desa_setting_key;type:varchar(60);not null;uniqueIndex:uq_desa_setting_key"`

	// Payload JSON tervalidasi
	DesaSettingValue datatypes.JSON `json:"desa_setting_value" gorm:"column:desa_setting_value;type:jsonb;not null"`

	// Timestamps
	DesaSettingCreatedAt time.Time `json:"desa_setting_created_at" gorm:"column:desa_setting_created_at;type:timestamptz;not null;autoCreateTime"`
	DesaSettingUpdatedAt time.Time `json:"desa_setting_updated_at" gorm:"column:desa_setting_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (DesaSettingModel) TableName() string { return "desa_settings" }
