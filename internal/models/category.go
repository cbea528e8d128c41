package models

// Category classifies a unit variant or a maintenance visit as an indoor
// or outdoor job. It is a closed enumeration; never compare against raw
// strings outside this package's constants.
type Category string

const (
	CategoryIndoor  Category = "indoor"
	CategoryOutdoor Category = "outdoor"
)

// Valid reports whether c is one of the two known categories.
func (c Category) Valid() bool {
	return c == CategoryIndoor || c == CategoryOutdoor
}

// PhotoStatus tags a documentation photo as taken before or after the work.
type PhotoStatus string

const (
	PhotoSebelum PhotoStatus = "sebelum"
	PhotoSesudah PhotoStatus = "sesudah"
)

// Valid reports whether s is a known photo status.
func (s PhotoStatus) Valid() bool {
	return s == PhotoSebelum || s == PhotoSesudah
}
