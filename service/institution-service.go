package service

import (
	"debatab/repository"

	"gorm.io/gorm"
)

type InstitutionService struct {
	institutionRepository *repository.InstitutionRepository
}

func NewInstitutionService(db *gorm.DB) *InstitutionService {
	return &InstitutionService{
		institutionRepository: repository.NewInstitutionRepository(db),
	}
}

func (e *InstitutionService) GetAllInstitutions() ([]*repository.Institution, error) {
	return e.institutionRepository.GetAllInstitutions()
}

func (e *InstitutionService) GetAllRegions() ([]*repository.Region, error) {
	return e.institutionRepository.GetAllRegions()
}

// CreateInstitution saves one institution, resolving the region by name when
// one is given.
func (e *InstitutionService) CreateInstitution(name string, code string, regionName string) (*repository.Institution, error) {
	institution := &repository.Institution{Name: name, Code: code}
	if regionName != "" {
		region, err := e.institutionRepository.GetOrCreateRegion(regionName)
		if err != nil {
			return nil, err
		}
		institution.RegionId = &region.Id
		institution.Region = region
	}
	return e.institutionRepository.Save(institution)
}
