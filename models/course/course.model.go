package course

import "gorm.io/gorm"

// Course represents a purchasable learning course
type Course struct {
	gorm.Model
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Author      string  `json:"author"`
	Price       float64 `json:"price" gorm:"default:0"`
	ImagePath   string  `json:"image_path"`
	IsPublished bool    `json:"is_published" gorm:"default:true"`
	IsDeleted   bool    `gorm:"default:false"`
}
