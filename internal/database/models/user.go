package models

// User represents a portal account. Accounts are provisioned by the external
// auth system; this core reads them for invite resolution, role broadcasts
// and ownership checks.
type User struct {
	BaseModel
	Username  string     `json:"username" gorm:"uniqueIndex;not null;size:50" validate:"required,min=3,max=50"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FullName  string     `json:"full_name" gorm:"not null;size:150" validate:"required,max=150"`
	Role      UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'student'" validate:"required"`
	Status    UserStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'" validate:"required"`
	AvatarURL string     `json:"avatar_url" gorm:"size:500"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsActive reports whether the account may act in the portal
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
