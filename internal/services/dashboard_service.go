package services

import (
	"fmt"

	"github.com/terraincognita07/mlimi/internal/models"
)

const DashboardRecentLimit = 3

type DashboardFarmReader interface {
	ListByUser(userID uint) ([]models.Farm, error)
}

type DashboardSoilReader interface {
	RecentByFarms(farmIDs []uint, limit int) ([]models.SoilRecord, error)
}

type DashboardAnimalReader interface {
	RecentByFarms(farmIDs []uint, limit int) ([]models.AnimalHealthRecord, error)
}

type DashboardSoilEntry struct {
	Record   models.SoilRecord
	FarmName string
}

type DashboardAnimalEntry struct {
	Record   models.AnimalHealthRecord
	FarmName string
}

type Dashboard struct {
	Farms         []models.Farm
	RecentSoil    []DashboardSoilEntry
	RecentAnimals []DashboardAnimalEntry
	TotalHectares float64
}

func EmptyDashboard() Dashboard {
	return Dashboard{
		Farms:         []models.Farm{},
		RecentSoil:    []DashboardSoilEntry{},
		RecentAnimals: []DashboardAnimalEntry{},
	}
}

type DashboardService struct {
	farms   DashboardFarmReader
	soil    DashboardSoilReader
	animals DashboardAnimalReader
}

func NewDashboardService(farms DashboardFarmReader, soil DashboardSoilReader, animals DashboardAnimalReader) *DashboardService {
	return &DashboardService{farms: farms, soil: soil, animals: animals}
}

// Load collects the user's farms and the newest soil and animal-health
// observations across them. On any read failure it returns an empty
// dashboard together with the error so the page can still render.
func (service *DashboardService) Load(userID uint) (Dashboard, error) {
	farms, err := service.farms.ListByUser(userID)
	if err != nil {
		return EmptyDashboard(), fmt.Errorf("load farms: %w", err)
	}

	dashboard := EmptyDashboard()
	if len(farms) == 0 {
		return dashboard, nil
	}
	dashboard.Farms = farms

	farmIDs := make([]uint, 0, len(farms))
	farmNames := make(map[uint]string, len(farms))
	for _, farm := range farms {
		farmIDs = append(farmIDs, farm.ID)
		farmNames[farm.ID] = farm.FarmName
		dashboard.TotalHectares += farm.FarmSize
	}

	soilRecords, err := service.soil.RecentByFarms(farmIDs, DashboardRecentLimit)
	if err != nil {
		return EmptyDashboard(), fmt.Errorf("load recent soil records: %w", err)
	}
	animalRecords, err := service.animals.RecentByFarms(farmIDs, DashboardRecentLimit)
	if err != nil {
		return EmptyDashboard(), fmt.Errorf("load recent animal health records: %w", err)
	}

	for _, record := range soilRecords {
		dashboard.RecentSoil = append(dashboard.RecentSoil, DashboardSoilEntry{Record: record, FarmName: farmNames[record.FarmID]})
	}
	for _, record := range animalRecords {
		dashboard.RecentAnimals = append(dashboard.RecentAnimals, DashboardAnimalEntry{Record: record, FarmName: farmNames[record.FarmID]})
	}
	return dashboard, nil
}
