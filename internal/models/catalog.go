package models

// The AC catalog is a three-level hierarchy: Brand -> Model -> ModelVariant.
// Variants are the leaves a Unit references; the variant carries the
// indoor/outdoor category used by maintenance validation and reporting.

// Brand represents an AC manufacturer (merek).
type Brand struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nama string `gorm:"size:255;not null" json:"nama"`

	JenisModel []Model `gorm:"foreignKey:MerekID" json:"jenis_model,omitempty"`
}

// TableName specifies the table name for Brand model
func (Brand) TableName() string {
	return "merek"
}

// Model represents a product line (jenis model) under a brand.
type Model struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	MerekID   uint   `gorm:"column:id_merek;not null;index" json:"id_merek"`
	NamaModel string `gorm:"column:nama_model;size:255;not null" json:"nama_model"`
	Kapasitas string `gorm:"size:255" json:"kapasitas"`

	Merek       *Brand         `gorm:"foreignKey:MerekID" json:"merek,omitempty"`
	DetailModel []ModelVariant `gorm:"foreignKey:ModelID" json:"detail_model,omitempty"`
}

// TableName specifies the table name for Model model
func (Model) TableName() string {
	return "jenis_model"
}

// ModelVariant represents a concrete variant (detail model) of a model,
// typed indoor or outdoor.
type ModelVariant struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	ModelID   uint     `gorm:"column:id_model;not null;index" json:"id_model"`
	NamaModel string   `gorm:"column:nama_model;size:255;not null" json:"nama_model"`
	Kategori  Category `gorm:"type:enum('indoor','outdoor');not null" json:"kategori"`

	JenisModel *Model `gorm:"foreignKey:ModelID" json:"jenis_model,omitempty"`
}

// TableName specifies the table name for ModelVariant model
func (ModelVariant) TableName() string {
	return "detail_model"
}

// InspectionVariable is a catalog entry naming one measurable inspection
// point (variable pemeriksaan), e.g. "Kondisi Filter".
type InspectionVariable struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	NamaVariable string   `gorm:"column:nama_variable;size:255;not null" json:"nama_variable"`
	Jenis        Category `gorm:"type:enum('indoor','outdoor')" json:"jenis"`
}

// TableName specifies the table name for InspectionVariable model
func (InspectionVariable) TableName() string {
	return "variable_pemeriksaan"
}

// CleaningVariable is a catalog entry naming one cleaning measurement
// (variable pembersihan) recorded before and after the work.
type CleaningVariable struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	NamaVariable string   `gorm:"column:nama_variable;size:255;not null" json:"nama_variable"`
	Jenis        Category `gorm:"type:enum('indoor','outdoor')" json:"jenis"`
}

// TableName specifies the table name for CleaningVariable model
func (CleaningVariable) TableName() string {
	return "variable_pembersihan"
}
