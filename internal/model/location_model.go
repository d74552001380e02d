package model

type LocationModel struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(100);not null" json:"name"`
	Latitude    float64 `gorm:"not null" json:"latitude"`
	Longitude   float64 `gorm:"not null" json:"longitude"`
	Description string  `gorm:"type:text" json:"description"`
}

func (LocationModel) TableName() string {
	return "locations"
}
