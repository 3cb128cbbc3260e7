package domain

// User is the identity record authors, commenters and likers point at.
// The blog only reads it, apart from profile edits.
type User struct {
	BaseModel
	Name   string  `gorm:"type:varchar(255);not null" json:"name"`
	Email  string  `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email"`
	Avatar *string `gorm:"type:text" json:"avatar"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
