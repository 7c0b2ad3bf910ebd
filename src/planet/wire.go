package planet

import (
	"gorm.io/gorm"
)

func Build(db *gorm.DB, lookup AppearanceLookup) *Handler {
	repo := NewRepository(db)
	service := NewService(repo, lookup)
	return NewHandler(service)
}
