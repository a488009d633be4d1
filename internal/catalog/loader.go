package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// amount decodes a nutrient amount given either as a number or as a
// numeric string, both of which appear in exported food data.
type amount float64

func (a *amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return a.parse(s)
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*a = amount(f)
	return nil
}

func (a *amount) UnmarshalYAML(node *yaml.Node) error {
	return a.parse(node.Value)
}

func (a *amount) parse(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*a = amount(f)
	return nil
}

// exportFile is the food-info export format: one food per file with
// abbreviated nutrient keys.
type exportFile struct {
	Data *struct {
		FoodInfo *struct {
			Name      string             `json:"name"`
			Nutrition map[string]*amount `json:"nutrition"`
		} `json:"food_info"`
	} `json:"data"`
}

// exportKeys maps export abbreviations to nutrients. "total_tfa" carries
// dietary fiber in the export despite its name.
var exportKeys = map[string]domain.Nutrient{
	"e":         domain.Calories,
	"cal":       domain.Carbohydrates,
	"sug":       domain.Sugars,
	"pro":       domain.Protein,
	"fat":       domain.Fat,
	"total_sfa": domain.SaturatedFat,
	"chol":      domain.Cholesterol,
	"na":        domain.Sodium,
	"total_tfa": domain.Fiber,
}

const servingSizeKey = "g"

// yamlFile is the native catalog format: a list of foods keyed by full
// nutrient names.
type yamlFile struct {
	Foods []struct {
		Name        string            `yaml:"name"`
		ServingSize *amount           `yaml:"serving_size"`
		Nutrients   map[string]amount `yaml:"nutrients"`
	} `yaml:"foods"`
}

// LoadDir reads every .json, .yaml and .yml file in dir. Files that fail
// to parse or validate are logged and skipped. Foods are returned sorted by
// name; a later duplicate replaces an earlier one.
func LoadDir(dir string, logger *zap.Logger) ([]domain.FoodCandidate, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	byKey := make(map[string]domain.FoodCandidate)
	loaded, failed := 0, 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())

		var foods []domain.FoodCandidate
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json":
			var food domain.FoodCandidate
			food, err = LoadExportFile(path)
			foods = []domain.FoodCandidate{food}
		case ".yaml", ".yml":
			foods, err = LoadYAMLFile(path)
		default:
			continue
		}
		if err != nil {
			failed++
			logger.Warn("skipping catalog file", zap.String("path", path), zap.Error(err))
			continue
		}

		for _, f := range foods {
			byKey[domain.FoodKey(f.Name)] = f
		}
		loaded += len(foods)
	}

	out := make([]domain.FoodCandidate, 0, len(byKey))
	for _, f := range byKey {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		return domain.FoodKey(out[i].Name) < domain.FoodKey(out[j].Name)
	})

	logger.Info("catalog loaded",
		zap.String("dir", dir),
		zap.Int("foods", loaded),
		zap.Int("failed_files", failed),
	)
	return out, nil
}

// LoadExportFile parses one food in the export format. The food is named
// after the file when the export carries no name.
func LoadExportFile(path string) (domain.FoodCandidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.FoodCandidate{}, err
	}

	var f exportFile
	if err := json.Unmarshal(data, &f); err != nil {
		return domain.FoodCandidate{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if f.Data == nil || f.Data.FoodInfo == nil {
		return domain.FoodCandidate{}, fmt.Errorf("%w: missing data.food_info", domain.ErrInvalidInput)
	}
	if f.Data.FoodInfo.Nutrition == nil {
		return domain.FoodCandidate{}, fmt.Errorf("%w: missing nutrition", domain.ErrInvalidInput)
	}

	raw := f.Data.FoodInfo.Nutrition
	var v domain.NutrientVector
	var missing []string
	for key, n := range exportKeys {
		a, ok := raw[key]
		if !ok || a == nil {
			missing = append(missing, key)
			continue
		}
		v.Set(n, float64(*a))
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return domain.FoodCandidate{}, fmt.Errorf("%w: missing nutrient fields %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	if err := v.Validate(); err != nil {
		return domain.FoodCandidate{}, err
	}

	name := strings.TrimSpace(f.Data.FoodInfo.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	size := domain.DefaultServingSize
	if g, ok := raw[servingSizeKey]; ok && g != nil && float64(*g) > 0 && !math.IsInf(float64(*g), 0) {
		size = float64(*g)
	}

	return domain.FoodCandidate{Name: name, Nutrients: v, ServingSize: size}, nil
}

// LoadYAMLFile parses a list of foods in the native format. Nutrient keys
// are validated strictly.
func LoadYAMLFile(path string) ([]domain.FoodCandidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	out := make([]domain.FoodCandidate, 0, len(f.Foods))
	for i, food := range f.Foods {
		name := strings.TrimSpace(food.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: food %d has no name", domain.ErrInvalidInput, i)
		}

		raw := make(map[string]float64, len(food.Nutrients))
		for k, a := range food.Nutrients {
			raw[k] = float64(a)
		}
		v, err := domain.ParseNutrientMap(raw)
		if err != nil {
			return nil, fmt.Errorf("food %q: %w", name, err)
		}

		size := domain.DefaultServingSize
		if food.ServingSize != nil && *food.ServingSize > 0 {
			size = float64(*food.ServingSize)
		}
		out = append(out, domain.FoodCandidate{Name: name, Nutrients: v, ServingSize: size})
	}
	return out, nil
}
