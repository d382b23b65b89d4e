package models

// CompanyID is the fixed primary key of the single company record.
// The shop owns exactly one t_companyessentials row.
const CompanyID = 1

// Company holds the shop's own legal details printed on documents.
type Company struct {
	ID        uint   `gorm:"column:id_companydetails;primaryKey" json:"id_companydetails"`
	LegalName string `gorm:"column:legal_name;size:200" json:"legal_name"`
	ShortName string `gorm:"column:short_name;size:200" json:"short_name"`
	Address   string `gorm:"size:200" json:"address"`
	INN       string `gorm:"column:inn;size:12" json:"inn"`
	KPP       string `gorm:"column:kpp;size:9" json:"kpp"`
	Phone     string `gorm:"size:50" json:"phone"`
	FoundedAt string `gorm:"column:founded_at;size:10" json:"founded_at"`
}

func (Company) TableName() string { return "t_companyessentials" }
