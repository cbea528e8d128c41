package models

import "time"

// Maintenance is the header row of one maintenance visit. It owns the
// inspection results, cleaning results and photos written in the same
// transaction; the header is immutable once created.
type Maintenance struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UnitID          uint      `gorm:"column:id_unit;not null;index" json:"id_unit"`
	Tanggal         time.Time `gorm:"type:date;not null" json:"tanggal"`
	NamaPemeriksaan string    `gorm:"column:nama_pemeriksaan;size:255" json:"nama_pemeriksaan"`
	// At most one pallet photo matching Kategori; stored filename only.
	PaletIndoor  string   `gorm:"column:palet_indoor;size:255" json:"palet_indoor,omitempty"`
	PaletOutdoor string   `gorm:"column:palet_outdoor;size:255" json:"palet_outdoor,omitempty"`
	Kategori     Category `gorm:"type:enum('indoor','outdoor');not null" json:"kategori"`

	Unit             *Unit              `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	HasilPemeriksaan []InspectionResult `gorm:"foreignKey:MaintenanceID" json:"hasil_pemeriksaan,omitempty"`
	HasilPembersihan []CleaningResult   `gorm:"foreignKey:MaintenanceID" json:"hasil_pembersihan,omitempty"`
	Foto             []Photo            `gorm:"foreignKey:MaintenanceID" json:"foto,omitempty"`
}

// TableName specifies the table name for Maintenance model
func (Maintenance) TableName() string {
	return "maintenance"
}

// InspectionResult is one measured inspection variable of a visit
// (hasil pemeriksaan).
type InspectionResult struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	MaintenanceID uint   `gorm:"column:id_maintenance;not null;index" json:"id_maintenance"`
	VariableID    uint   `gorm:"column:id_variable_pemeriksaan;not null" json:"id_variable_pemeriksaan"`
	Nilai         string `gorm:"size:255;not null" json:"nilai"`

	VariablePemeriksaan *InspectionVariable `gorm:"foreignKey:VariableID" json:"variable_pemeriksaan,omitempty"`
}

// TableName specifies the table name for InspectionResult model
func (InspectionResult) TableName() string {
	return "hasil_pemeriksaan"
}

// CleaningResult is one cleaning measurement with its before/after values
// (hasil pembersihan).
type CleaningResult struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	MaintenanceID uint    `gorm:"column:id_maintenance;not null;index" json:"id_maintenance"`
	VariableID    uint    `gorm:"column:id_variable_pembersihan;not null" json:"id_variable_pembersihan"`
	Sebelum       float64 `gorm:"type:decimal(10,2)" json:"sebelum"`
	Sesudah       float64 `gorm:"type:decimal(10,2)" json:"sesudah"`

	VariablePembersihan *CleaningVariable `gorm:"foreignKey:VariableID" json:"variable_pembersihan,omitempty"`
}

// TableName specifies the table name for CleaningResult model
func (CleaningResult) TableName() string {
	return "hasil_pembersihan"
}

// Photo is one stored documentation photo of a visit. Foto carries the
// generated filename under the upload directory, Nama the display name the
// field operator supplied.
type Photo struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	MaintenanceID uint        `gorm:"column:id_maintenance;not null;index" json:"id_maintenance"`
	Nama          string      `gorm:"size:255;not null" json:"nama"`
	Foto          string      `gorm:"size:255;not null" json:"foto"`
	Status        PhotoStatus `gorm:"type:enum('sebelum','sesudah');not null" json:"status"`
}

// TableName specifies the table name for Photo model
func (Photo) TableName() string {
	return "foto"
}
