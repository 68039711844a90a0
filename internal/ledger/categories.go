package ledger

import (
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

// AddCategory validates and appends a new category. Ids are generated for the
// category and for any subcategory that arrives without one.
func (s *Store) AddCategory(category models.Category) (models.Category, error) {
	category.ID = newID()
	for i := range category.Subcategories {
		if category.Subcategories[i].ID == "" {
			category.Subcategories[i].ID = newID()
		}
	}
	if err := category.Validate(); err != nil {
		return models.Category{}, &ValidationError{Op: "add category", Err: err}
	}

	s.state.Categories = append(s.state.Categories, category)
	s.commit()
	return category, nil
}

// UpdateCategory replaces the stored category with the same id. Because
// transactions reference categories by id, a rename is a pure metadata edit.
// Subcategories removed by the update are gone for good; transactions that
// referenced them simply read as uncategorized at the subcategory level.
func (s *Store) UpdateCategory(category models.Category) error {
	for i := range category.Subcategories {
		if category.Subcategories[i].ID == "" {
			category.Subcategories[i].ID = newID()
		}
	}
	if err := category.Validate(); err != nil {
		return &ValidationError{Op: "update category", Err: err}
	}
	existing := s.state.Category(category.ID)
	if existing == nil {
		return &NotFoundError{Entity: "category", ID: category.ID}
	}
	*existing = category
	s.commit()
	return nil
}

// DeleteCategory removes a category and, with it, all of its subcategories.
// Transactions keep their category id and read as uncategorized afterwards;
// balances are unaffected, so no reversal is involved.
func (s *Store) DeleteCategory(id string) error {
	found := -1
	for i := range s.state.Categories {
		if s.state.Categories[i].ID == id {
			found = i
			break
		}
	}
	if found < 0 {
		return &NotFoundError{Entity: "category", ID: id}
	}
	s.state.Categories = append(s.state.Categories[:found], s.state.Categories[found+1:]...)
	s.commit()
	return nil
}
