package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserProfile mirrors one external auth identity. The id is supplied by the
// auth provider, not generated here.
type UserProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Name      string    `gorm:"column:name" json:"name"`
	AvatarURL string    `gorm:"column:avatar_url" json:"avatar_url"`

	TotalExperiments   int     `gorm:"not null;default:0;column:total_experiments" json:"total_experiments"`
	TotalArchitectures int     `gorm:"not null;default:0;column:total_architectures" json:"total_architectures"`
	BestAccuracy       float64 `gorm:"not null;default:0;column:best_accuracy" json:"best_accuracy"`

	Preferences datatypes.JSON `gorm:"column:preferences" json:"preferences"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserProfile) TableName() string { return "user_profile" }
