package database

import (
	"fmt"

	"festmap/internal/model"

	"gorm.io/gorm"
)

// campusLocations is the fixed set of festival spots on the campus map.
var campusLocations = []model.LocationModel{
	{Name: "Main Gate", Latitude: 35.6581, Longitude: 139.5414, Description: "Main entrance"},
	{Name: "Student Cafeteria", Latitude: 35.6585, Longitude: 139.5420, Description: "Food and rest area"},
	{Name: "Library Plaza", Latitude: 35.6590, Longitude: 139.5425, Description: "Quiet study area"},
	{Name: "Gymnasium", Latitude: 35.6575, Longitude: 139.5430, Description: "Sports event venue"},
	{Name: "Research Building A", Latitude: 35.6595, Longitude: 139.5415, Description: "Research demos and exhibits"},
	{Name: "Central Plaza", Latitude: 35.6588, Longitude: 139.5422, Description: "Main stage and event venue"},
	{Name: "Campus Store", Latitude: 35.6583, Longitude: 139.5418, Description: "Souvenirs and goods"},
	{Name: "Parking Area", Latitude: 35.6578, Longitude: 139.5412, Description: "Visitor parking"},
}

// SeedLocations inserts the campus reference locations when the table is
// empty. Locations are read-mostly data the rest of the schema points at, so
// this runs at startup rather than in cmd/seed.
func SeedLocations(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.LocationModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count locations: %w", err)
	}

	if count > 0 {
		return nil
	}

	for i := range campusLocations {
		loc := campusLocations[i]
		if err := db.Create(&loc).Error; err != nil {
			return fmt.Errorf("failed to seed location %q: %w", loc.Name, err)
		}
	}

	return nil
}
