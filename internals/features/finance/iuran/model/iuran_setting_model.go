// file: internals/features/finance/iuran/model/iuran_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enum jenis iuran tahunan.
type IuranType string

const (
	IuranTypeDanaMandiri IuranType = "dana_mandiri"
	IuranTypeIkata       IuranType = "ikata"
)

func ValidIuranType(t IuranType) bool {
	return t == IuranTypeDanaMandiri || t == IuranTypeIkata
}

/*
   Satu nominal iuran per (jenis, tahun). Mengubah nominal berlaku
   retroaktif untuk umat yang belum lunas tahun itu (rebuild tunggakan_cache).
*/
type IuranSettingModel struct {
	IuranSettingID uuid.UUID `json:"iuran_setting_id" gorm:"column:iuran_setting_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	IuranSettingType IuranType `json:"iuran_setting_type" gorm:"column:iuran_setting_type;type:varchar(20);not null;uniqueIndex:uq_iuran_setting_type_year"`
	IuranSettingYear int       `json:"iuran_setting_year" gorm:"column:iuran_setting_year;type:smallint;not null;uniqueIndex:uq_iuran_setting_type_year"`

	// Nominal iuran setahun penuh (IDR)
	IuranSettingAmountIDR int64 `json:"iuran_setting_amount_idr" gorm:"column:iuran_setting_amount_idr;type:bigint;not null;check:iuran_setting_amount_idr > 0"`

	IuranSettingCreatedAt time.Time `json:"iuran_setting_created_at" gorm:"column:iuran_setting_created_at;type:timestamptz;not null;default:now()"`
	IuranSettingUpdatedAt time.Time `json:"iuran_setting_updated_at" gorm:"column:iuran_setting_updated_at;type:timestamptz;not null;default:now()"`
}

func (IuranSettingModel) TableName() string { return "iuran_settings" }

func (s *IuranSettingModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	s.IuranSettingCreatedAt = now
	s.IuranSettingUpdatedAt = now
	return nil
}

func (s *IuranSettingModel) BeforeUpdate(tx *gorm.DB) error {
	s.IuranSettingUpdatedAt = time.Now().UTC()
	return nil
}
