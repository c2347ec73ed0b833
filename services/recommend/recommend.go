package recommend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fittrack-go-server/models"
	"fittrack-go-server/services"
	"fittrack-go-server/structs"
	"fittrack-go-server/utils"

	"github.com/jinzhu/gorm"
)

// RecommendService generates meal suggestions through an LLM provider. The
// provider is an explicit injected capability: a missing API key yields an
// UNCONFIGURED failure, which is not the same thing as the provider erroring.
type RecommendService struct {
	DB      *gorm.DB
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

func NewRecommendService(db *gorm.DB) *RecommendService {
	cfg := utils.EnvConfig.AI
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RecommendService{
		DB:      db,
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: timeout,
	}
}

var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// CalcBMR is Mifflin-St Jeor from the stored profile.
func CalcBMR(user *models.User) int {
	age := 30
	if user.Birthday != nil {
		age = int(time.Since(*user.Birthday).Hours() / 24 / 365.25)
	}
	bmr := 10*user.WeightKg + 6.25*user.HeightCm - 5*float64(age)
	if user.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	if bmr < 0 {
		bmr = 0
	}
	return services.Round(bmr)
}

func CalcTDEE(user *models.User) int {
	factor, ok := activityFactors[user.ActivityLevel]
	if !ok {
		factor = activityFactors["sedentary"]
	}
	return services.Round(float64(CalcBMR(user)) * factor)
}

func (s *RecommendService) Recommend(userID uint, p structs.RecommendParam) (*structs.RecommendResult, error) {
	if s.APIKey == "" {
		return nil, structs.NewUnconfiguredError("meal recommendations are not configured")
	}
	if p.MealType == "" {
		return nil, structs.NewValidationError("mealType is required")
	}

	var user models.User
	if err := s.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewNotFoundError("user %d not found", userID)
		}
		return nil, structs.NewInternalError(err)
	}

	bmr := CalcBMR(&user)
	tdee := CalcTDEE(&user)
	prompt := buildPrompt(p, bmr, tdee)

	suggestions, err := s.generate(prompt)
	if err != nil {
		return nil, structs.NewInternalError(err)
	}

	return &structs.RecommendResult{BMR: bmr, TDEE: tdee, Suggestions: suggestions}, nil
}

func buildPrompt(p structs.RecommendParam, bmr, tdee int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest 3 %s ideas for a person with BMR %d kcal and TDEE %d kcal.", p.MealType, bmr, tdee)
	if p.CalorieLimit > 0 {
		fmt.Fprintf(&b, " Keep each meal under %d kcal.", p.CalorieLimit)
	}
	if p.Preferences != "" {
		fmt.Fprintf(&b, " Dietary preferences: %s.", p.Preferences)
	}
	b.WriteString(` Answer with a JSON array only, each element like {"name":"","description":"","calories":0,"carbs":0,"protein":0,"fat":0}.`)
	return b.String()
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (s *RecommendService) generate(prompt string) ([]structs.MealSuggestion, error) {
	base := strings.TrimRight(s.BaseURL, "/")
	if base == "" {
		base = "https://generativelanguage.googleapis.com"
	}
	model := s.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", base, model, s.APIKey)

	body := generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}}
	raw, err := services.HttpRequestWithTimeout(http.MethodPost, url, nil, body, s.Timeout)
	if err != nil {
		return nil, fmt.Errorf("recommendation provider request failed: %s", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode recommendation response: %s", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("recommendation provider returned no candidates")
	}

	return ParseSuggestions(parsed.Candidates[0].Content.Parts[0].Text)
}

// ParseSuggestions decodes the model's JSON answer, tolerating markdown
// fences around it.
func ParseSuggestions(text string) ([]structs.MealSuggestion, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var suggestions []structs.MealSuggestion
	if err := json.Unmarshal([]byte(cleaned), &suggestions); err != nil {
		return nil, fmt.Errorf("decode meal suggestions: %s", err)
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("recommendation provider returned no meals")
	}
	return suggestions, nil
}
