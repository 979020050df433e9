package models

// Region is a named deployment locale (e.g. "us-east"). Game servers may
// only reference region names present in this table.
type Region struct {
	ID   int32  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;unique;not null" json:"name"`
}
