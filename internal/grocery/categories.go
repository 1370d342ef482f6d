// Package grocery aggregates meal-plan ingredients into a categorized
// shopping list. All functions are pure: inputs in, list out, no storage
// access.
package grocery

import "strings"

// CategoryOther is the fallback bucket for unmatched ingredients
const CategoryOther = "Other"

type categoryRule struct {
	name     string
	keywords []string
}

// categoryRules is a fixed, ordered classifier. Rules are tested top to
// bottom and the first keyword match wins, so an ingredient matching two
// categories always resolves to the earlier one ("pepper" lands in Produce,
// never Spices). The ordering is part of the contract.
var categoryRules = []categoryRule{
	{"Produce", []string{"lettuce", "tomato", "onion", "carrot", "pepper", "spinach", "broccoli", "kale", "apple", "banana"}},
	{"Dairy", []string{"milk", "cheese", "butter", "cream", "yogurt"}},
	{"Protein", []string{"chicken", "beef", "pork", "fish", "salmon", "turkey", "eggs"}},
	{"Grains", []string{"rice", "pasta", "bread", "flour", "quinoa", "oats"}},
	{"Spices", []string{"salt", "pepper", "garlic", "oregano", "basil", "thyme"}},
	{"Condiments", []string{"oil", "vinegar", "soy sauce", "ketchup", "mustard"}},
}

// Categorize buckets an ingredient name for shopping-list organization.
// Matching is case-insensitive substring membership.
func Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.name
			}
		}
	}
	return CategoryOther
}
