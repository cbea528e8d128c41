package models

import "time"

// Project represents a maintenance contract (proyek) for one customer site.
type Project struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nama      string    `gorm:"size:255;not null" json:"nama"`
	Pelanggan string    `gorm:"size:255;not null" json:"pelanggan"`
	Tanggal   time.Time `gorm:"type:date;not null" json:"tanggal"`
	Lokasi    string    `gorm:"size:255;not null" json:"lokasi"`

	Gedung []Building `gorm:"foreignKey:ProyekID" json:"gedung,omitempty"`
}

// TableName specifies the table name for Project model
func (Project) TableName() string {
	return "proyek"
}

// Building represents a building (gedung) inside a project.
type Building struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ProyekID uint   `gorm:"column:id_proyek;not null;index" json:"id_proyek"`
	Nama     string `gorm:"size:255;not null" json:"nama"`

	Proyek  *Project `gorm:"foreignKey:ProyekID" json:"proyek,omitempty"`
	Ruangan []Room   `gorm:"foreignKey:GedungID" json:"ruangan,omitempty"`
}

// TableName specifies the table name for Building model
func (Building) TableName() string {
	return "gedung"
}

// Room represents a room (ruangan) on a building floor.
type Room struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	GedungID uint   `gorm:"column:id_gedung;not null;index" json:"id_gedung"`
	Nama     string `gorm:"size:255;not null" json:"nama"`
	Lantai   string `gorm:"size:50" json:"lantai"`

	Gedung *Building `gorm:"foreignKey:GedungID" json:"gedung,omitempty"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "ruangan"
}
