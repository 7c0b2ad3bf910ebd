package planet

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(planet *Planet) error
	Find(query ListQuery) ([]Planet, error)
	FindByName(name string) ([]Planet, error)
	GetById(id string) (*Planet, error)
	DeleteById(id string) (*Planet, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(planet *Planet) error {
	if err := r.db.Create(planet).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}
		return err
	}
	return nil
}

func (r *gormRepository) Find(query ListQuery) ([]Planet, error) {
	planets := []Planet{}
	err := r.db.
		Order(query.Sort + " ASC").
		Offset(query.Offset()).
		Limit(query.PerPage).
		Find(&planets).Error
	return planets, err
}

func (r *gormRepository) FindByName(name string) ([]Planet, error) {
	planets := []Planet{}
	// sqlite LIKE is case-insensitive, giving the partial, case-blind match
	err := r.db.Where("name LIKE ?", "%"+name+"%").Find(&planets).Error
	return planets, err
}

func (r *gormRepository) GetById(id string) (*Planet, error) {
	var planet Planet
	err := r.db.Where("planet_id = ?", id).First(&planet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &planet, nil
}

func (r *gormRepository) DeleteById(id string) (*Planet, error) {
	planet, err := r.GetById(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(planet).Error; err != nil {
		return nil, err
	}
	return planet, nil
}
