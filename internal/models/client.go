package models

// Client is a customer of the shop. Autos reference their owner client;
// accounts reach the client through the auto.
type Client struct {
	ID      uint    `gorm:"column:id_client;primaryKey" json:"id_client"`
	Name    string  `gorm:"size:200;not null;index" json:"name"`
	Phone   string  `gorm:"size:50;not null" json:"phone"`
	Address *string `gorm:"size:200" json:"address"`
	Info    *string `gorm:"size:500" json:"info"`
}

func (Client) TableName() string { return "t_client" }
