package valueobjects

import "fmt"

type Category string

const (
	CategoryBug            Category = "bug"
	CategoryFeatureRequest Category = "feature_request"
	CategorySupport        Category = "support"
	CategoryConsultation   Category = "consultation"
	CategoryBilling        Category = "billing"
	CategoryTechnicalIssue Category = "technical_issue"
	CategoryChangeRequest  Category = "change_request"
)

var validCategories = map[Category]bool{
	CategoryBug:            true,
	CategoryFeatureRequest: true,
	CategorySupport:        true,
	CategoryConsultation:   true,
	CategoryBilling:        true,
	CategoryTechnicalIssue: true,
	CategoryChangeRequest:  true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
