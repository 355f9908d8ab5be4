package models

type Camper struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	Name    string   `gorm:"size:255;not null" json:"name"`
	Age     int      `gorm:"not null" json:"age"`
	Signups []Signup `gorm:"foreignKey:CamperID;constraint:OnDelete:CASCADE" json:"signups,omitempty"`
}

// Validate checks the camper's field invariants. It never mutates the camper.
func (c *Camper) Validate() error {
	if len(c.Name) < 1 {
		return &ValidationError{Field: "name", Message: "camper should have a name"}
	}
	if c.Age < 8 || c.Age > 18 {
		return &ValidationError{Field: "age", Message: "camper's age must be between 8 and 18"}
	}
	return nil
}
