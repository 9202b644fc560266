package model

// State represents a US state
type State struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`

	// Relationships
	Cities []City `gorm:"foreignKey:StateID;constraint:OnDelete:CASCADE" json:"cities,omitempty"`
}

// City represents a city; each city belongs to exactly one state
type City struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null;index" json:"name"`
	StateID uint   `gorm:"not null;index" json:"state_id"`

	// Relationships
	State        State         `gorm:"foreignKey:StateID" json:"state,omitempty"`
	Institutions []Institution `gorm:"foreignKey:CityID" json:"-"`
}
