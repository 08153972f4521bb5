// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package content turns a free-text prompt into a content category and the
// templated suggestions, platforms and hashtags for that category.
// Everything here is pure and deterministic.
package content

import (
	"strings"

	"github.com/MKhiriev/viral-craft/models"
)

type categoryKeywords struct {
	category models.ContentCategory
	keywords []string
}

// classification rules in priority order; first match wins.
var classification = []categoryKeywords{
	{models.CategoryDance, []string{"dance", "dancing", "choreography", "moves"}},
	{models.CategoryFood, []string{"food", "cooking", "recipe", "eating", "taste"}},
	{models.CategoryTutorial, []string{"tutorial", "how to", "learn", "teach", "guide"}},
	{models.CategoryPet, []string{"pet", "dog", "cat", "animal"}},
	{models.CategoryReaction, []string{"reaction", "react", "respond", "review"}},
	{models.CategoryBeauty, []string{"makeup", "beauty", "skincare", "outfit"}},
	{models.CategoryLifestyle, []string{"room", "home", "decor", "organize"}},
	{models.CategoryComedy, []string{"funny", "comedy", "joke", "humor"}},
}

// Classify maps prompt to a content category by case-insensitive keyword
// containment. It returns [models.CategoryGeneral] when nothing matches.
func Classify(prompt string) models.ContentCategory {
	lower := strings.ToLower(prompt)

	for _, rule := range classification {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}

	return models.CategoryGeneral
}
