package enums

const (
	// meal slots
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"

	// fasting session states
	FastingActive    = "ACTIVE"
	FastingCompleted = "COMPLETED"

	// feed post visibility
	VisibilityPublic  = "public"
	VisibilityFriends = "friends"
	VisibilityPrivate = "private"

	// friendship states
	FriendAccepted = "accepted"
	FriendPending  = "pending"

	// catalog sources
	SourceManual  = "manual"
	SourceScraper = "openfoodfacts"
	SourceBasket  = "basket"

	// queue names
	QueueFoodScrape = "food-scrape"

	// error codes carried by structs.ErrorModel
	CodeValidation   = "VALIDATION"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeUnconfigured = "UNCONFIGURED"
	CodeInternal     = "INTERNAL"
)

// MealTypes lists the accepted meal slots in display order.
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

func IsMealType(t string) bool {
	for _, m := range MealTypes {
		if m == t {
			return true
		}
	}
	return false
}
