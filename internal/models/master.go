package models

// Master is a mechanic that can be assigned to work items.
type Master struct {
	ID   uint   `gorm:"column:id_master;primaryKey" json:"id_master"`
	Name string `gorm:"size:200;not null" json:"name"`
}

func (Master) TableName() string { return "t_master" }
