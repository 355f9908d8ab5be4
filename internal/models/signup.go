package models

// Signup joins a camper to an activity at a given hour of the day.
type Signup struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Time       int       `gorm:"not null" json:"time"`
	CamperID   uint      `gorm:"not null;index" json:"camper_id"`
	ActivityID uint      `gorm:"not null;index" json:"activity_id"`
	Camper     *Camper   `gorm:"foreignKey:CamperID" json:"-"`
	Activity   *Activity `gorm:"foreignKey:ActivityID" json:"-"`
}

func (s *Signup) Validate() error {
	if s.Time < 0 || s.Time > 23 {
		return &ValidationError{Field: "time", Message: "time can only be between 0 and 23"}
	}
	return nil
}
