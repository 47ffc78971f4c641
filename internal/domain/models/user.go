package models

import (
	"time"

	"github.com/DerrickJaguar/rent/utils"
)

// UserRole 用户角色
type UserRole string

const (
	UserRoleLandlord  UserRole = "landlord"
	UserRoleManager   UserRole = "manager"
	UserRoleAssistant UserRole = "assistant"
)

// User is the single console account. There is no multi-tenancy of accounts;
// exactly one record lives under the user collection key.
type User struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Role  UserRole `json:"role"`
	// 哈希值随用户记录一起持久化；接口层从不原样返回 User。
	PasswordHash string    `json:"passwordHash,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SetPassword 对明文密码进行哈希后保存
func (u *User) SetPassword(plain string) error {
	hash, err := utils.HashPassword(plain)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword 校验明文密码
func (u *User) CheckPassword(plain string) bool {
	return utils.CheckPasswordHash(plain, u.PasswordHash)
}
