package rating

import (
	"regexp"
	"strings"
)

// Evaluator scores one quality dimension of a product snapshot. It
// returns a sub-score in [0,100] and zero or more human-readable
// improvement suggestions.
type Evaluator interface {
	Name() CriterionName
	Evaluate(s *Snapshot) (float64, []string)
}

// EvaluatorFor returns the evaluator for a criterion name. The second
// return value is false for names outside the closed criterion set.
func EvaluatorFor(name CriterionName) (Evaluator, bool) {
	switch name {
	case CriterionBasicInfo:
		return BasicInfoEvaluator{}, true
	case CriterionDescription:
		return DescriptionEvaluator{}, true
	case CriterionImages:
		return ImagesEvaluator{}, true
	case CriterionSEO:
		return SEOEvaluator{}, true
	case CriterionAttributes:
		return AttributesEvaluator{}, true
	case CriterionCategories:
		return CategoriesEvaluator{}, true
	default:
		return nil, false
	}
}

var markupTag = regexp.MustCompile(`<[^>]*>`)

// stripMarkup removes markup tags, leaving the visible text
func stripMarkup(s string) string {
	return markupTag.ReplaceAllString(s, "")
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// BasicInfoEvaluator starts at 100 and subtracts a fixed penalty for
// each missing essential field.
type BasicInfoEvaluator struct{}

// Name returns the criterion name
func (BasicInfoEvaluator) Name() CriterionName { return CriterionBasicInfo }

// Evaluate scores the essential product fields. An explicit zero stock
// quantity counts as set; only a nil quantity is penalized.
func (BasicInfoEvaluator) Evaluate(s *Snapshot) (float64, []string) {
	score := 100.0
	var suggestions []string

	if s.Name == "" {
		score -= 30
		suggestions = append(suggestions, "Product name is missing")
	}
	if s.SKU == "" {
		score -= 20
		suggestions = append(suggestions, "SKU is missing")
	}
	if s.RegularPrice.IsZero() {
		score -= 20
		suggestions = append(suggestions, "Regular price is missing")
	}
	if s.StockQuantity == nil {
		score -= 10
		suggestions = append(suggestions, "Stock quantity is not set")
	}
	if s.Weight.IsZero() && s.Type != "digital" {
		score -= 10
		suggestions = append(suggestions, "Product weight is missing")
	}

	return clamp(score), suggestions
}

// DescriptionEvaluator awards points additively for description length,
// markup, list items, and a short description.
type DescriptionEvaluator struct{}

// Name returns the criterion name
func (DescriptionEvaluator) Name() CriterionName { return CriterionDescription }

// Evaluate scores the descriptions. Length thresholds are strict:
// a stripped length of exactly 500 lands in the >300 tier.
func (DescriptionEvaluator) Evaluate(s *Snapshot) (float64, []string) {
	score := 0.0
	var suggestions []string

	if s.Description != "" {
		descLength := len(stripMarkup(s.Description))

		switch {
		case descLength > 500:
			score += 60
		case descLength > 300:
			score += 40
			suggestions = append(suggestions, "Description could be more detailed (recommended: 500+ characters)")
		case descLength > 100:
			score += 20
			suggestions = append(suggestions, "Description is too short (recommended: 500+ characters)")
		default:
			suggestions = append(suggestions, "Description is too short (recommended: 500+ characters)")
		}

		if strings.Contains(s.Description, "<") {
			score += 20
		} else {
			suggestions = append(suggestions, "Description lacks formatting (use bullet points, headings, etc.)")
		}

		if strings.Contains(s.Description, "<li>") {
			score += 20
		} else {
			suggestions = append(suggestions, "Add bullet points to highlight key features")
		}
	} else {
		suggestions = append(suggestions, "Product description is missing")
	}

	if s.ShortDescription == "" {
		suggestions = append(suggestions, "Short description is missing")
	} else if len(stripMarkup(s.ShortDescription)) > 50 {
		score += 20
	} else {
		suggestions = append(suggestions, "Short description is too brief (recommended: 50+ characters)")
	}

	return clamp(score), suggestions
}

// ImagesEvaluator awards up to 50 points for image count and up to 50
// for alt text coverage. The maximum attainable is 100 by construction,
// so no clamp is applied.
type ImagesEvaluator struct{}

// Name returns the criterion name
func (ImagesEvaluator) Name() CriterionName { return CriterionImages }

// Evaluate scores the product gallery
func (ImagesEvaluator) Evaluate(s *Snapshot) (float64, []string) {
	score := 0.0
	var suggestions []string

	switch {
	case s.ImageCount >= 5:
		score += 50
	case s.ImageCount >= 3:
		score += 30
		suggestions = append(suggestions, "Add more product images (recommended: 5+)")
	case s.ImageCount >= 1:
		score += 15
		suggestions = append(suggestions, "Add more product images (recommended: 5+)")
	default:
		suggestions = append(suggestions, "Product has no images")
	}

	if s.ImageCount > 0 {
		coverage := float64(s.ImagesWithAlt) / float64(s.ImageCount) * 100

		switch {
		case coverage >= 90:
			score += 50
		case coverage >= 50:
			score += 25
			suggestions = append(suggestions, "Add alt text to all product images")
		default:
			suggestions = append(suggestions, "Most images are missing alt text")
		}
	}

	return score, suggestions
}

// SEOEvaluator scores meta title, meta description, and focus keyword
// placement.
type SEOEvaluator struct{}

// Name returns the criterion name
func (SEOEvaluator) Name() CriterionName { return CriterionSEO }

// Evaluate scores the SEO record
func (SEOEvaluator) Evaluate(s *Snapshot) (float64, []string) {
	score := 0.0
	var suggestions []string

	if s.MetaTitle != "" {
		titleLength := len(s.MetaTitle)
		if titleLength >= 40 && titleLength <= 70 {
			score += 25
		} else {
			score += 10
			suggestions = append(suggestions, "Meta title length should be between 40-70 characters")
		}
	} else {
		suggestions = append(suggestions, "Meta title is missing")
	}

	if s.MetaDescription != "" {
		descLength := len(s.MetaDescription)
		if descLength >= 120 && descLength <= 160 {
			score += 25
		} else {
			score += 10
			suggestions = append(suggestions, "Meta description length should be between 120-160 characters")
		}
	} else {
		suggestions = append(suggestions, "Meta description is missing")
	}

	if s.FocusKeyword != "" {
		score += 25

		keyword := strings.ToLower(s.FocusKeyword)
		inTitle := strings.Contains(strings.ToLower(s.MetaTitle), keyword)
		inDesc := strings.Contains(strings.ToLower(s.MetaDescription), keyword)

		switch {
		case inTitle && inDesc:
			score += 25
		case inTitle || inDesc:
			score += 15
			suggestions = append(suggestions, "Include focus keyword in both meta title and description")
		default:
			suggestions = append(suggestions, "Include focus keyword in meta title and description")
		}
	} else {
		suggestions = append(suggestions, "Focus keyword is missing")
	}

	return clamp(score), suggestions
}

// AttributesEvaluator scores the number of attribute values assigned to
// the product.
type AttributesEvaluator struct{}

// Name returns the criterion name
func (AttributesEvaluator) Name() CriterionName { return CriterionAttributes }

// Evaluate scores the attribute assignments
func (AttributesEvaluator) Evaluate(s *Snapshot) (float64, []string) {
	switch {
	case s.AttributeCount >= 5:
		return 100, nil
	case s.AttributeCount >= 3:
		return 70, []string{"Add more product attributes (recommended: 5+)"}
	case s.AttributeCount >= 1:
		return 40, []string{"Add more product attributes (recommended: 5+)"}
	default:
		return 0, []string{"No product attributes defined"}
	}
}

// CategoriesEvaluator scores category membership: all or nothing.
type CategoriesEvaluator struct{}

// Name returns the criterion name
func (CategoriesEvaluator) Name() CriterionName { return CriterionCategories }

// Evaluate scores the category assignments
func (CategoriesEvaluator) Evaluate(s *Snapshot) (float64, []string) {
	if s.CategoryCount > 0 {
		return 100, nil
	}
	return 0, []string{"Product is not assigned to any category"}
}
