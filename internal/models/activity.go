package models

type Activity struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Name       string   `gorm:"size:255" json:"name"`
	Difficulty int      `json:"difficulty"`
	Signups    []Signup `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE" json:"signups,omitempty"`
}
