package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fittrack-go-server/enums"
	"fittrack-go-server/models"
	"fittrack-go-server/utils"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

// blockedKeywords drop products that have no place in a health-tracking
// catalog; categoryKeywords map a matching product onto one of our catalog
// categories.
var blockedKeywords = []string{
	"alcohol", "beer", "wine", "vodka", "whisky", "liqueur",
	"energy drink", "cigarette", "tobacco", "supplement",
}

var categoryKeywords = []struct {
	name     string
	keywords []string
}{
	{"fruits", []string{"fruit", "apple", "banana", "berry", "orange"}},
	{"vegetables", []string{"vegetable", "salad", "tomato", "carrot", "spinach"}},
	{"protein", []string{"meat", "chicken", "beef", "fish", "egg", "tofu"}},
	{"dairy", []string{"milk", "cheese", "yogurt", "yoghurt"}},
	{"grains", []string{"bread", "rice", "pasta", "cereal", "oat"}},
	{"snacks", []string{"snack", "bar", "biscuit", "cracker"}},
	{"beverages", []string{"juice", "tea", "coffee", "water", "smoothie"}},
}

// Client talks to the external nutrition source. Calls are bounded by the
// configured timeout; failures are the caller's problem to swallow or surface.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

func NewClientFromEnv() *Client {
	cfg := utils.EnvConfig.Scraper
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &Client{
		BaseURL:    cfg.BaseURL,
		UserAgent:  cfg.UserAgent,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type offProduct struct {
	ProductName string                 `json:"product_name"`
	Brands      string                 `json:"brands"`
	Categories  string                 `json:"categories"`
	ImageURL    string                 `json:"image_url"`
	URL         string                 `json:"url"`
	Nutriments  map[string]interface{} `json:"nutriments"`
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

// Fetch searches the external source and returns catalog rows for the
// products that pass the health filter. Nutrition is normalized per 100 g so
// the native serving size is always 100.
func (c *Client) Fetch(ctx context.Context, query string, limit int) ([]models.FoodItem, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	if limit <= 0 {
		limit = 20
	}

	u := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		base,
		url.QueryEscape(strings.TrimSpace(query)),
		limit,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create food source request: %s", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute food source request: %s", err)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read food source response: %s", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("food source request failed with status %d", resp.StatusCode)
	}

	var parsed offSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode food source response: %s", err)
	}

	items := make([]models.FoodItem, 0, len(parsed.Products))
	for _, product := range parsed.Products {
		name := strings.TrimSpace(product.ProductName)
		if name == "" {
			continue
		}
		if !Allowed(name, product.Categories) {
			continue
		}
		items = append(items, models.FoodItem{
			Name:        name,
			Source:      enums.SourceScraper,
			SourceURL:   product.URL,
			Description: strings.TrimSpace(product.Brands),
			ImageURL:    product.ImageURL,
			Calories:    int(nutrientValue(product.Nutriments, "energy-kcal")),
			Carbs:       nutrientValue(product.Nutriments, "carbohydrates"),
			Protein:     nutrientValue(product.Nutriments, "proteins"),
			Fat:         nutrientValue(product.Nutriments, "fat"),
			ServingSize: 100,
			ServingUnit: "g",
			Category:    Categorize(name, product.Categories),
		})
	}
	return items, nil
}

// Allowed applies the keyword exclusion list against name and category text.
func Allowed(name, categories string) bool {
	haystack := strings.ToLower(name + " " + categories)
	for _, kw := range blockedKeywords {
		if strings.Contains(haystack, kw) {
			return false
		}
	}
	return true
}

// Categorize maps the product onto a catalog category via the inclusion
// keyword lists; unmatched products land in "other".
func Categorize(name, categories string) string {
	haystack := strings.ToLower(name + " " + categories)
	for _, category := range categoryKeywords {
		for _, kw := range category.keywords {
			if strings.Contains(haystack, kw) {
				return category.name
			}
		}
	}
	return "other"
}

func nutrientValue(nutriments map[string]interface{}, key string) float64 {
	for _, candidate := range []string{key + "_100g", key + "_serving", key} {
		if raw, ok := nutriments[candidate]; ok {
			switch v := raw.(type) {
			case float64:
				return v
			case string:
				var f float64
				if _, err := fmt.Sscanf(v, "%f", &f); err == nil {
					return f
				}
			}
		}
	}
	return 0
}
