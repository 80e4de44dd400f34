package models

// Transaction categories available to every user
const (
	CategoryFood          = "Food"
	CategoryTravel        = "Travel"
	CategoryRent          = "Rent"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryHealthcare    = "Healthcare"
	CategoryEducation     = "Education"
	CategoryUtilities     = "Utilities"
	CategoryOther         = "Other"
)

// AllCategories returns all valid category constants in display order
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryTravel,
		CategoryRent,
		CategoryShopping,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryEducation,
		CategoryUtilities,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}
