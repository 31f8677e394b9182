package services

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/terraincognita07/mlimi/internal/models"
)

const (
	exportDateLayout = "2006-01-02"

	ExportSheetFarms   = "Farms"
	ExportSheetSoil    = "Soil"
	ExportSheetAnimals = "Animal health"
)

var (
	ExportFarmHeaders   = []string{"Farm", "Size (ha)", "Type", "Soil type", "Coordinates", "Main crops", "Livestock", "Created"}
	ExportSoilHeaders   = []string{"Farm", "Test date", "pH", "Nitrogen", "Phosphorus", "Potassium", "Organic matter (%)", "Recommendations", "Notes"}
	ExportAnimalHeaders = []string{"Farm", "Animal", "Symptoms", "Diagnosis", "Treatment", "Treatment date", "Status", "Notes"}
)

type ExportFarmReader interface {
	ListByUser(userID uint) ([]models.Farm, error)
}

type ExportSoilReader interface {
	ListByUser(userID uint) ([]models.SoilRecord, error)
}

type ExportAnimalReader interface {
	ListByUser(userID uint) ([]models.AnimalHealthRecord, error)
}

type ExportService struct {
	farms    ExportFarmReader
	soil     ExportSoilReader
	animals  ExportAnimalReader
	location *time.Location
}

func NewExportService(farms ExportFarmReader, soil ExportSoilReader, animals ExportAnimalReader, location *time.Location) *ExportService {
	if location == nil {
		location = time.UTC
	}
	return &ExportService{farms: farms, soil: soil, animals: animals, location: location}
}

// WriteWorkbook writes every farm and record owned by userID as an XLSX
// workbook to w.
func (service *ExportService) WriteWorkbook(userID uint, w io.Writer) error {
	farms, err := service.farms.ListByUser(userID)
	if err != nil {
		return fmt.Errorf("load farms: %w", err)
	}
	soilRecords, err := service.soil.ListByUser(userID)
	if err != nil {
		return fmt.Errorf("load soil records: %w", err)
	}
	animalRecords, err := service.animals.ListByUser(userID)
	if err != nil {
		return fmt.Errorf("load animal health records: %w", err)
	}

	farmNames := make(map[uint]string, len(farms))
	for _, farm := range farms {
		farmNames[farm.ID] = farm.FarmName
	}

	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", ExportSheetFarms); err != nil {
		return err
	}
	if _, err := file.NewSheet(ExportSheetSoil); err != nil {
		return err
	}
	if _, err := file.NewSheet(ExportSheetAnimals); err != nil {
		return err
	}

	farmRows := make([][]any, 0, len(farms))
	for _, farm := range farms {
		farmRows = append(farmRows, []any{
			farm.FarmName,
			farm.FarmSize,
			farm.FarmType,
			farm.SoilType,
			farm.LocationCoords,
			farm.MainCrops,
			farm.LivestockTypes,
			service.formatDate(farm.CreatedAt),
		})
	}
	if err := writeSheet(file, ExportSheetFarms, ExportFarmHeaders, farmRows); err != nil {
		return err
	}

	soilRows := make([][]any, 0, len(soilRecords))
	for _, record := range soilRecords {
		soilRows = append(soilRows, []any{
			farmNames[record.FarmID],
			service.formatDate(record.TestDate),
			measurementCell(record.PHLevel),
			measurementCell(record.Nitrogen),
			measurementCell(record.Phosphorus),
			measurementCell(record.Potassium),
			measurementCell(record.OrganicMatter),
			record.Recommendations,
			record.Notes,
		})
	}
	if err := writeSheet(file, ExportSheetSoil, ExportSoilHeaders, soilRows); err != nil {
		return err
	}

	animalRows := make([][]any, 0, len(animalRecords))
	for _, record := range animalRecords {
		animalRows = append(animalRows, []any{
			farmNames[record.FarmID],
			record.AnimalType,
			record.Symptoms,
			record.DiseaseDiagnosed,
			record.TreatmentApplied,
			service.formatDate(record.TreatmentDate),
			record.RecoveryStatus,
			record.Notes,
		})
	}
	if err := writeSheet(file, ExportSheetAnimals, ExportAnimalHeaders, animalRows); err != nil {
		return err
	}

	file.SetActiveSheet(0)
	return file.Write(w)
}

func (service *ExportService) formatDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.In(service.location).Format(exportDateLayout)
}

func writeSheet(file *excelize.File, sheet string, headers []string, rows [][]any) error {
	headerRow := make([]any, len(headers))
	for index, header := range headers {
		headerRow[index] = header
	}
	if err := file.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	for index := range rows {
		cell, err := excelize.CoordinatesToCellName(1, index+2)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(sheet, cell, &rows[index]); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, index+1, err)
		}
	}
	return nil
}

func measurementCell(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
