package model

import (
	"time"
)

// TokenBlacklistModel guarda access tokens revogados no logout.
type TokenBlacklistModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"type:text;not null;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
