package models

// Location doğum/ölüm yeri gibi referans verisi olan bir konum kaydıdır.
type Location struct {
	BaseModel
	Name    string `gorm:"type:varchar(200);not null;index" json:"name"`
	City    string `gorm:"type:varchar(100)" json:"city,omitempty"`
	Country string `gorm:"type:varchar(100);not null" json:"country"`
}

// Cemetery bir mezarlığı temsil eder; opsiyonel olarak bir konuma bağlanır.
type Cemetery struct {
	BaseModel
	Name       string    `gorm:"type:varchar(200);not null" json:"name"`
	LocationID *uint     `gorm:"index" json:"locationId,omitempty"`
	Location   *Location `gorm:"foreignKey:LocationID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"location,omitempty"`
}
