package model

import (
	"time"

	"github.com/google/uuid"
)

// ModuleModel representa um módulo do diagnóstico (tabela quiz_modules).
type ModuleModel struct {
	ModuleID          uuid.UUID `gorm:"column:module_id;type:uuid;default:gen_random_uuid();primaryKey" json:"module_id"`
	ModuleTitle       string    `gorm:"column:module_title;size:255;not null" json:"module_title"`
	ModuleDescription string    `gorm:"column:module_description;type:text" json:"module_description"`
	ModuleOrderNumber int       `gorm:"column:module_order_number;not null;uniqueIndex" json:"module_order_number"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ModuleModel) TableName() string {
	return "quiz_modules"
}
