package api

var pageTemplates = []string{
	"index",
	"register",
	"login",
	"profile",
	"dashboard",
	"farm_create",
	"farm_detail",
	"soil_record_new",
	"animal_record_new",
	"soil",
	"animals",
	"animal_category",
	"not_found",
}

// animalCategories lists the livestock guides served under /animals/:category.
var animalCategories = []string{"cattle", "goats", "sheep", "pigs", "poultry"}

func isAnimalCategory(category string) bool {
	for _, candidate := range animalCategories {
		if candidate == category {
			return true
		}
	}
	return false
}
