package models

// Account is one work order (invoice) for one vehicle visit.
// Date is kept as the ISO yyyy-mm-dd string the UI submits; it is parsed
// only for display formatting.
type Account struct {
	ID          uint    `gorm:"column:id_account;primaryKey" json:"id_account"`
	AutoID      uint    `gorm:"column:id_auto;not null;index" json:"id_auto"`
	Date        string  `gorm:"size:10;not null" json:"date"`
	LegalNumber string  `gorm:"size:200;not null" json:"legal_number"`
	Info        *string `gorm:"size:500" json:"info"`
}

func (Account) TableName() string { return "t_account" }
