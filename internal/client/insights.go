package client

import "strings"

// CategoryStyle picks the icon, accent color and display label for an
// insight category.
type CategoryStyle struct {
	Icon  string
	Color string
	Label string
}

type categoryRule struct {
	terms []string
	style CategoryStyle
}

// Rules are checked in order; the first substring hit wins.
var categoryRules = []categoryRule{
	{
		terms: []string{"knowledge gap", "gap"},
		style: CategoryStyle{Icon: "bulb", Color: "#faad14", Label: "Knowledge Gap"},
	},
	{
		terms: []string{"topic weakness", "weakness", "vulnerable"},
		style: CategoryStyle{Icon: "warning", Color: "#ff4d4f", Label: "Topic Weakness"},
	},
	{
		terms: []string{"confidence", "skip", "hesitation"},
		style: CategoryStyle{Icon: "question-circle", Color: "#ff7a45", Label: "Confidence Issue"},
	},
	{
		terms: []string{"confusion", "pitfall", "mistake"},
		style: CategoryStyle{Icon: "exclamation-circle", Color: "#f5222d", Label: "Conceptual Confusion"},
	},
	{
		terms: []string{"strong", "excellent", "good"},
		style: CategoryStyle{Icon: "thunderbolt", Color: "#52c41a", Label: "Strong Performance"},
	},
}

// StyleFor matches a category case-insensitively against the rule table.
// Unmatched categories keep their own text as the label with the generic
// info style.
func StyleFor(category string) CategoryStyle {
	lower := strings.ToLower(category)
	for _, rule := range categoryRules {
		for _, term := range rule.terms {
			if strings.Contains(lower, term) {
				return rule.style
			}
		}
	}
	return CategoryStyle{Icon: "info-circle", Color: "#1DA1F2", Label: category}
}
