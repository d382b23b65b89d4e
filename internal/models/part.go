package models

// Part is a material line item consumed by a work. Unit is optional and
// defaults to "шт." at display time.
type Part struct {
	ID          uint    `gorm:"column:id_part;primaryKey" json:"id_part"`
	WorkID      uint    `gorm:"column:id_work;not null;index" json:"id_work"`
	Description string  `gorm:"size:200" json:"description"`
	Unit        *string `gorm:"column:part_unit;size:20" json:"part_unit"`
	Count       float64 `gorm:"column:part_count;not null" json:"part_count"`
	Cost        float64 `gorm:"column:part_cost;not null" json:"part_cost"`
	Discount    float64 `gorm:"not null;default:0" json:"discount"`
}

func (Part) TableName() string { return "t_part" }

// LineTotal is cost × count × (1 − discount).
func (p Part) LineTotal() float64 {
	return p.Cost * p.Count * (1 - p.Discount)
}
