package services

import (
	"sort"
	"sync"

	"github.com/terraincognita07/mlimi/internal/db"
	"github.com/terraincognita07/mlimi/internal/models"
	"gorm.io/gorm"
)

type stubUserStore struct {
	mu        sync.Mutex
	users     []models.User
	createErr error
}

func (stub *stubUserStore) ExistsByPhone(phone string) (bool, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	for _, user := range stub.users {
		if user.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubUserStore) ExistsByUsername(username string) (bool, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	for _, user := range stub.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubUserStore) FindByPhone(phone string) (models.User, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	for _, user := range stub.users {
		if user.Phone == phone {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *stubUserStore) FindByID(userID uint) (models.User, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	for _, user := range stub.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *stubUserStore) Create(user *models.User) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	if stub.createErr != nil {
		return stub.createErr
	}
	for _, existing := range stub.users {
		if existing.Phone == user.Phone || existing.Username == user.Username {
			return db.ErrDuplicateKey
		}
	}
	user.ID = uint(len(stub.users) + 1)
	stub.users = append(stub.users, *user)
	return nil
}

func (stub *stubUserStore) UpdateProfile(userID uint, fullName string, location string, language string) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	for index := range stub.users {
		if stub.users[index].ID == userID {
			stub.users[index].FullName = fullName
			stub.users[index].Location = location
			stub.users[index].Language = language
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type stubFarmStore struct {
	farms   []models.Farm
	listErr error
}

func (stub *stubFarmStore) Create(farm *models.Farm) error {
	farm.ID = uint(len(stub.farms) + 1)
	stub.farms = append(stub.farms, *farm)
	return nil
}

func (stub *stubFarmStore) ListByUser(userID uint) ([]models.Farm, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.Farm, 0)
	for _, farm := range stub.farms {
		if farm.UserID == userID {
			result = append(result, farm)
		}
	}
	return result, nil
}

func (stub *stubFarmStore) FindOwned(userID uint, farmID uint) (models.Farm, error) {
	for _, farm := range stub.farms {
		if farm.ID == farmID && farm.UserID == userID {
			return farm, nil
		}
	}
	return models.Farm{}, gorm.ErrRecordNotFound
}

type stubSoilStore struct {
	records     []models.SoilRecord
	createErr   error
	recentErr   error
	recentCalls int
}

func (stub *stubSoilStore) Create(record *models.SoilRecord) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	record.ID = uint(len(stub.records) + 1)
	stub.records = append(stub.records, *record)
	return nil
}

func (stub *stubSoilStore) ListByFarm(userID uint, farmID uint) ([]models.SoilRecord, error) {
	result := make([]models.SoilRecord, 0)
	for _, record := range stub.records {
		if record.UserID == userID && record.FarmID == farmID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (stub *stubSoilStore) ListByUser(userID uint) ([]models.SoilRecord, error) {
	result := make([]models.SoilRecord, 0)
	for _, record := range stub.records {
		if record.UserID == userID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (stub *stubSoilStore) RecentByFarms(farmIDs []uint, limit int) ([]models.SoilRecord, error) {
	stub.recentCalls++
	if stub.recentErr != nil {
		return nil, stub.recentErr
	}
	wanted := make(map[uint]struct{}, len(farmIDs))
	for _, id := range farmIDs {
		wanted[id] = struct{}{}
	}
	result := make([]models.SoilRecord, 0)
	for _, record := range stub.records {
		if _, ok := wanted[record.FarmID]; ok {
			result = append(result, record)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TestDate.After(result[j].TestDate)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

type stubAnimalStore struct {
	records     []models.AnimalHealthRecord
	createErr   error
	recentCalls int
}

func (stub *stubAnimalStore) Create(record *models.AnimalHealthRecord) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	record.ID = uint(len(stub.records) + 1)
	stub.records = append(stub.records, *record)
	return nil
}

func (stub *stubAnimalStore) ListByFarm(userID uint, farmID uint) ([]models.AnimalHealthRecord, error) {
	result := make([]models.AnimalHealthRecord, 0)
	for _, record := range stub.records {
		if record.UserID == userID && record.FarmID == farmID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (stub *stubAnimalStore) ListByUser(userID uint) ([]models.AnimalHealthRecord, error) {
	result := make([]models.AnimalHealthRecord, 0)
	for _, record := range stub.records {
		if record.UserID == userID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (stub *stubAnimalStore) RecentByFarms(farmIDs []uint, limit int) ([]models.AnimalHealthRecord, error) {
	stub.recentCalls++
	wanted := make(map[uint]struct{}, len(farmIDs))
	for _, id := range farmIDs {
		wanted[id] = struct{}{}
	}
	result := make([]models.AnimalHealthRecord, 0)
	for _, record := range stub.records {
		if _, ok := wanted[record.FarmID]; ok {
			result = append(result, record)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TreatmentDate.After(result[j].TreatmentDate)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
