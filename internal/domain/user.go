package domain

import "time"

type Role string

const (
	RoleOwner  Role = "owner"
	RoleTenant Role = "tenant"
)

// ParseRole rejects anything outside the two known roles.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleOwner, RoleTenant:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID             string    `json:"id" bson:"_id"`
	Name           string    `json:"name" bson:"name"`
	Email          string    `json:"email" bson:"email"`
	PasswordHash   string    `json:"-" bson:"password_hash"`
	Role           Role      `json:"role" bson:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id" bson:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Role           string
	TelegramChatID *int64
}
