// Package criteria models the configurable scoring rules a resume is
// evaluated against and loads them from their JSON resource.
package criteria

import (
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Category identifies which evaluation heuristic a criterion uses. The set
// is closed; the evaluator scores unknown categories 0.0 so criteria files
// stay forward compatible.
type Category string

// Known criterion categories.
const (
	CategorySection       Category = "Section"
	CategoryBulletQuality Category = "Bullet Quality"
	CategoryKeywords      Category = "Keywords"
	CategoryFormatting    Category = "Formatting"
	CategoryReadability   Category = "Readability"
	CategoryATSFriendly   Category = "ATS Friendly"
)

// Known reports whether the category is one the evaluator can score.
func (c Category) Known() (known bool) {
	switch c {
	case CategorySection, CategoryBulletQuality, CategoryKeywords,
		CategoryFormatting, CategoryReadability, CategoryATSFriendly:
		known = true
	}
	return known
}

// Criterion is one configured, weighted scoring rule.
type Criterion struct {
	Category Category `json:"Category"`
	Type     string   `json:"Type"`
	Pattern  string   `json:"Keyword/Pattern"`
	Weight   float64  `json:"Weight"`
	Notes    string   `json:"Notes"`
}

// Load reads the ordered criteria list from a JSON file. Individual
// malformed records (missing pattern, non-positive weight) are skipped
// rather than failing the load; a missing or unparseable file is an error
// the caller is expected to degrade on, not propagate.
func Load(path string) (criterionList []Criterion, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read criteria file: %s", path)
		return criterionList, err
	}

	if !gjson.ValidBytes(data) {
		err = errors.Errorf("criteria file is not valid JSON: %s", path)
		return criterionList, err
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		err = errors.Errorf("criteria file must contain a JSON array: %s", path)
		return criterionList, err
	}

	for _, record := range parsed.Array() {
		criterion := Criterion{
			Category: Category(record.Get("Category").String()),
			Type:     record.Get("Type").String(),
			Pattern:  record.Get("Keyword/Pattern").String(),
			Weight:   record.Get("Weight").Float(),
			Notes:    record.Get("Notes").String(),
		}

		if criterion.Pattern == "" || criterion.Weight <= 0 {
			continue
		}

		criterionList = append(criterionList, criterion)
	}

	return criterionList, err
}
