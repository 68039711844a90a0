package models

import "fmt"

// CategoryType restricts a category to one side of the cash flow.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// Subcategory is a labeled subdivision of a category. Subcategories are owned
// by their category and do not outlive it.
type Subcategory struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Category is a labeled grouping for income or expense transactions.
// Transactions reference categories by id, so renaming a category is a pure
// metadata edit and never touches the transaction collection.
type Category struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Type          CategoryType  `json:"type" yaml:"type"`
	Color         string        `json:"color,omitempty" yaml:"color,omitempty"`
	Icon          string        `json:"icon,omitempty" yaml:"icon,omitempty"`
	Subcategories []Subcategory `json:"subcategories,omitempty" yaml:"subcategories,omitempty"`
}

// Validate checks the shape of the category and its subcategories.
func (c *Category) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("category requires a name")
	}
	if c.Type != CategoryIncome && c.Type != CategoryExpense {
		return fmt.Errorf("unknown category type: %s", c.Type)
	}
	for i := range c.Subcategories {
		if c.Subcategories[i].Name == "" {
			return fmt.Errorf("subcategory %d of %s requires a name", i, c.Name)
		}
	}
	return nil
}

// Subcategory returns the subcategory with the given id, if present.
func (c *Category) Subcategory(id string) (Subcategory, bool) {
	for _, sub := range c.Subcategories {
		if sub.ID == id {
			return sub, true
		}
	}
	return Subcategory{}, false
}
