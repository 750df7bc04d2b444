package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the auth account. Students get a StudentProfile row linked
// by UserID; staff and management accounts have no profile.
type UserModel struct {
	ID       uuid.UUID `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserName string    `json:"user_name" gorm:"column:user_name;type:varchar(50);not null"`
	Email    string    `json:"email" gorm:"column:email;type:varchar(120);not null;uniqueIndex"`
	Password string    `json:"password,omitempty" gorm:"column:password;type:varchar(250);not null"`
	GoogleID *string   `json:"google_id,omitempty" gorm:"column:google_id;type:varchar(64);uniqueIndex"`

	Role     string `json:"role" gorm:"column:role;type:varchar(20);not null;default:'student'"`
	IsActive bool   `json:"is_active" gorm:"column:is_active;not null;default:true"`

	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"column:deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }
