package models

// Unit represents one installed AC unit. A unit is created once, lives in
// exactly one room, and references exactly one catalog variant; its history
// is carried by Maintenance records, never by the unit row itself.
type Unit struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	DetailModelID uint   `gorm:"column:id_detail_model;not null;index" json:"id_detail_model"`
	RuanganID     uint   `gorm:"column:id_ruangan;not null;index" json:"id_ruangan"`
	Nama          string `gorm:"size:255" json:"nama"`
	NomorSeri     string `gorm:"column:nomor_seri;size:255;not null" json:"nomor_seri"`

	DetailModel *ModelVariant `gorm:"foreignKey:DetailModelID" json:"detail_model,omitempty"`
	Ruangan     *Room         `gorm:"foreignKey:RuanganID" json:"ruangan,omitempty"`
}

// TableName specifies the table name for Unit model
func (Unit) TableName() string {
	return "unit"
}
