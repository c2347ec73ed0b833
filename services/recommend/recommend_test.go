package recommend

import (
	"testing"
	"time"

	"fittrack-go-server/database"
	"fittrack-go-server/enums"
	"fittrack-go-server/models"
	"fittrack-go-server/structs"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	db.LogMode(false)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestCalcBMR(t *testing.T) {
	birthday := time.Now().AddDate(-30, -6, 0)

	male := &models.User{Gender: "male", WeightKg: 70, HeightCm: 175, Birthday: &birthday}
	// 10*70 + 6.25*175 - 5*30 + 5 = 1648.75 -> 1649
	assert.Equal(t, 1649, CalcBMR(male))

	female := &models.User{Gender: "female", WeightKg: 70, HeightCm: 175, Birthday: &birthday}
	// same minus 166 = 1482.75 -> 1483
	assert.Equal(t, 1483, CalcBMR(female))

	// missing birthday falls back to age 30
	noBirthday := &models.User{Gender: "male", WeightKg: 70, HeightCm: 175}
	assert.Equal(t, 1649, CalcBMR(noBirthday))

	// empty profile never goes negative
	assert.Equal(t, 0, CalcBMR(&models.User{Gender: "female"}))
}

func TestCalcTDEE(t *testing.T) {
	birthday := time.Now().AddDate(-30, -6, 0)
	user := &models.User{Gender: "male", WeightKg: 70, HeightCm: 175, Birthday: &birthday}

	user.ActivityLevel = "moderate"
	// 1649 * 1.55 = 2555.95 -> 2556
	assert.Equal(t, 2556, CalcTDEE(user))

	// unknown level falls back to sedentary
	user.ActivityLevel = "extreme"
	assert.Equal(t, CalcTDEE(&models.User{Gender: "male", WeightKg: 70, HeightCm: 175, Birthday: &birthday, ActivityLevel: "sedentary"}), CalcTDEE(user))
}

func TestRecommendUnconfigured(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := &RecommendService{DB: db}

	// the missing key wins over the missing mealType: it is a deploy problem,
	// not a caller problem
	_, err := svc.Recommend(1, structs.RecommendParam{})
	require.Error(t, err)
	assert.Equal(t, enums.CodeUnconfigured, structs.AsErrorModel(err).Code)
}

func TestRecommendValidation(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := &RecommendService{DB: db, APIKey: "test-key"}

	_, err := svc.Recommend(1, structs.RecommendParam{})
	assert.Equal(t, enums.CodeValidation, structs.AsErrorModel(err).Code)

	_, err = svc.Recommend(1, structs.RecommendParam{MealType: "lunch"})
	assert.Equal(t, enums.CodeNotFound, structs.AsErrorModel(err).Code)
}

func TestBuildPrompt(t *testing.T) {
	p := structs.RecommendParam{MealType: "dinner", CalorieLimit: 600, Preferences: "vegetarian"}
	prompt := buildPrompt(p, 1649, 2556)
	assert.Contains(t, prompt, "dinner")
	assert.Contains(t, prompt, "BMR 1649")
	assert.Contains(t, prompt, "TDEE 2556")
	assert.Contains(t, prompt, "under 600 kcal")
	assert.Contains(t, prompt, "vegetarian")
	assert.Contains(t, prompt, "JSON array")

	bare := buildPrompt(structs.RecommendParam{MealType: "lunch"}, 1500, 2000)
	assert.NotContains(t, bare, "Keep each meal under")
}

func TestParseSuggestions(t *testing.T) {
	raw := `[{"name":"Grilled Salmon","description":"with greens","calories":520,"carbs":12,"protein":42,"fat":30}]`

	suggestions, err := ParseSuggestions(raw)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Grilled Salmon", suggestions[0].Name)
	assert.Equal(t, 520, suggestions[0].Calories)

	// markdown fences tolerated
	suggestions, err = ParseSuggestions("```json\n" + raw + "\n```")
	require.NoError(t, err)
	assert.Len(t, suggestions, 1)

	_, err = ParseSuggestions("[]")
	require.Error(t, err)

	_, err = ParseSuggestions("I cannot help with that")
	require.Error(t, err)
}
