package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel guarda o hash do refresh token emitido (rotação no refresh).
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"size:128;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
