package user

type User struct {
	ID             uint   `gorm:"primaryKey;index:ix_users_id" json:"id"`
	Email          string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Name           string `gorm:"column:name;not null" json:"name"`
	HashedPassword string `gorm:"column:hashed_password;not null" json:"-"`
}

func (User) TableName() string { return "users" }
