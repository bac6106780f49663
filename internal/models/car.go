package models

// Car is the vehicle reference table: system-native naming (Brand/Model/Modif)
// alongside the insurer-side naming (SkBrand/SkModel). Populated by the bulk
// XLSX import, read-only everywhere else.
type Car struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Brand   string `gorm:"column:brand;type:text" json:"brand"`
	Model   string `gorm:"column:model;type:text" json:"model"`
	Modif   string `gorm:"column:modif;type:text" json:"modif"`
	SkBrand string `gorm:"column:sk_brand;type:text" json:"sk_brand"`
	SkModel string `gorm:"column:sk_model;type:text" json:"sk_model"`
	Type    string `gorm:"column:type;type:varchar(5)" json:"type"`
}

func (Car) TableName() string {
	return "cars"
}
