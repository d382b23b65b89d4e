package models

import "strings"

// Auto is a client's vehicle. Brand and model are optional free-text fields.
type Auto struct {
	ID          uint    `gorm:"column:id_auto;primaryKey" json:"id_auto"`
	ClientID    uint    `gorm:"column:id_client;not null;index" json:"id_client"`
	VIN         string  `gorm:"column:vin;size:17;not null" json:"vin"`
	PlateNumber string  `gorm:"size:20;not null" json:"plate_number"`
	Brand       *string `gorm:"size:100" json:"brand"`
	Model       *string `gorm:"size:100" json:"model"`
}

func (Auto) TableName() string { return "t_auto" }

// Title joins brand and model, skipping whichever is empty.
func (a Auto) Title() string {
	parts := make([]string, 0, 2)
	if a.Brand != nil && strings.TrimSpace(*a.Brand) != "" {
		parts = append(parts, strings.TrimSpace(*a.Brand))
	}
	if a.Model != nil && strings.TrimSpace(*a.Model) != "" {
		parts = append(parts, strings.TrimSpace(*a.Model))
	}
	return strings.Join(parts, " ")
}
