package domain

// Category is a selectable post category (tech, lifestyle, ...)
type Category struct {
	BaseModel
	Value           string `gorm:"type:varchar(50);not null;uniqueIndex:uq_categories_value" json:"value"`
	Label           string `gorm:"type:varchar(100);not null" json:"label"`
	Color           string `gorm:"type:varchar(100);not null" json:"color"`
	Description     string `gorm:"type:text" json:"description"`
	DisplayOrder    int    `gorm:"type:int;not null;default:0;index:idx_categories_display_order" json:"displayOrder"`
	IsSystemDefault bool   `gorm:"not null;default:false" json:"isSystemDefault"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
