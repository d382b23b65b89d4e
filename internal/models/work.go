package models

// Work is a billable labor line item on an account. Discount is a
// fraction in [0,1), not a percentage.
type Work struct {
	ID          uint    `gorm:"column:id_work;primaryKey" json:"id_work"`
	AccountID   uint    `gorm:"column:id_account;not null;index" json:"id_account"`
	MasterID    *uint   `gorm:"column:id_master;index" json:"id_master"`
	Description string  `gorm:"size:200" json:"description"`
	Cost        float64 `gorm:"column:work_cost;not null" json:"work_cost"`
	Hours       float64 `gorm:"column:work_hours;not null" json:"work_hours"`
	Discount    float64 `gorm:"not null;default:0" json:"discount"`
	Date        string  `gorm:"size:10;not null" json:"date"`
}

func (Work) TableName() string { return "t_work" }

// LineTotal is cost × hours × (1 − discount).
func (w Work) LineTotal() float64 {
	return w.Cost * w.Hours * (1 - w.Discount)
}
