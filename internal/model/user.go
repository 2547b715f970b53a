package model

// Role 访问级别枚举
type Role string

const (
	RoleAdmin  Role = "admin"  // 全量可见 + 报表
	RoleWorker Role = "worker" // 只能给自己打卡
)

// ValidRole 校验角色取值
func ValidRole(r string) bool {
	return r == string(RoleAdmin) || r == string(RoleWorker)
}

// User 员工模型
// 正常流程里不做物理删除，停用走 Active 标记
type User struct {
	BaseModel
	PublicID     int64  `gorm:"uniqueIndex;not null" json:"public_id"`
	Username     string `gorm:"uniqueIndex;type:varchar(64);not null" json:"username"`
	PasswordHash string `gorm:"type:varchar(128);not null" json:"-"` // bcrypt，不对外暴露
	FullName     string `gorm:"type:varchar(100);not null;default:''" json:"full_name"`
	Position     string `gorm:"type:varchar(100);not null;default:''" json:"position"`
	Role         Role   `gorm:"type:varchar(10);not null;default:'worker';index:idx_users_role" json:"role"`
	Active       bool   `gorm:"not null;default:true" json:"active"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
