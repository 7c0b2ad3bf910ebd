package planet

type Planet struct {
	Id          int    `gorm:"primaryKey;autoIncrement" json:"-"`
	PlanetId    string `gorm:"uniqueIndex;type:uuid;not null" json:"id"` // public/business ID (UUID)
	Name        string `gorm:"uniqueIndex;not null" json:"name"`         // unique, case-sensitive
	Climate     string `gorm:"not null" json:"climate"`
	Terrain     string `gorm:"not null" json:"terrain"`
	Appearences int    `gorm:"not null" json:"appearences"` // number of film appearances
}
