package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Farms         *FarmRepository
	SoilRecords   *SoilRecordRepository
	AnimalRecords *AnimalHealthRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Farms:         NewFarmRepository(database),
		SoilRecords:   NewSoilRecordRepository(database),
		AnimalRecords: NewAnimalHealthRepository(database),
	}
}
