package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de material aceitos.
const (
	MaterialTypeDocument = "document"
	MaterialTypeVideo    = "video"
	MaterialTypeLink     = "link"
	MaterialTypeOther    = "other"
)

// MaterialModel representa um material de apoio (tabela materials).
// Independente do quiz; gerenciado por administradores.
type MaterialModel struct {
	MaterialID           uuid.UUID `gorm:"column:material_id;type:uuid;default:gen_random_uuid();primaryKey" json:"material_id"`
	MaterialTitle        string    `gorm:"column:material_title;size:255;not null" json:"material_title"`
	MaterialDescription  string    `gorm:"column:material_description;type:text" json:"material_description"`
	MaterialFileURL      string    `gorm:"column:material_file_url;size:500;not null" json:"material_file_url"`
	MaterialThumbnailURL *string   `gorm:"column:material_thumbnail_url;size:500" json:"material_thumbnail_url,omitempty"`
	MaterialCategory     string    `gorm:"column:material_category;size:100;not null;index" json:"material_category"`
	MaterialType         string    `gorm:"column:material_type;type:varchar(20);not null" json:"material_type"`
	MaterialPlanLevel    string    `gorm:"column:material_plan_level;type:varchar(20);not null;default:'basic'" json:"material_plan_level"`
	MaterialAccessCount  int64     `gorm:"column:material_access_count;not null;default:0" json:"material_access_count"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MaterialModel) TableName() string {
	return "materials"
}
