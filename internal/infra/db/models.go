package db

type UserModel struct {
	ID         int64  `gorm:"primaryKey"`
	Name       string `gorm:"uniqueIndex;not null"`
	Password   string `gorm:"not null"`
	Email      string
	TelegramID string
	Roles      []RoleModel `gorm:"many2many:user_roles"`
}

func (UserModel) TableName() string { return "users" }

type RoleModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (RoleModel) TableName() string { return "roles" }
