package repository

import (
	"fmt"

	"gorm.io/gorm"
)

type Region struct {
	Id   int    `gorm:"primaryKey"`
	Name string `gorm:"not null;uniqueIndex"`
}

// Institutions are shared across tournaments, an adjudicator from one
// tournament may conflict with an institution whose teams compete in another.
type Institution struct {
	Id       int     `gorm:"primaryKey"`
	Name     string  `gorm:"not null"`
	Code     string  `gorm:"not null"`
	RegionId *int    `gorm:"null"`
	Region   *Region `gorm:"foreignKey:RegionId"`
}

type InstitutionRepository struct {
	DB *gorm.DB
}

func NewInstitutionRepository(db *gorm.DB) *InstitutionRepository {
	return &InstitutionRepository{DB: db}
}

func (r *InstitutionRepository) GetAllInstitutions() ([]*Institution, error) {
	var institutions []*Institution
	result := r.DB.Preload("Region").Order("name").Find(&institutions)
	if result.Error != nil {
		return nil, result.Error
	}
	return institutions, nil
}

func (r *InstitutionRepository) GetAllRegions() ([]*Region, error) {
	var regions []*Region
	result := r.DB.Order("id").Find(&regions)
	if result.Error != nil {
		return nil, result.Error
	}
	return regions, nil
}

func (r *InstitutionRepository) Save(institution *Institution) (*Institution, error) {
	result := r.DB.Save(institution)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save institution: %v", result.Error)
	}
	return institution, nil
}

func (r *InstitutionRepository) CreateInstitutions(institutions []*Institution) error {
	if len(institutions) == 0 {
		return nil
	}
	return r.DB.CreateInBatches(institutions, 500).Error
}

func (r *InstitutionRepository) GetOrCreateRegion(name string) (*Region, error) {
	var region Region
	result := r.DB.Where("name = ?", name).First(&region)
	if result.Error == nil {
		return &region, nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return nil, result.Error
	}
	region = Region{Name: name}
	if err := r.DB.Create(&region).Error; err != nil {
		return nil, fmt.Errorf("failed to create region %s: %v", name, err)
	}
	return &region, nil
}
