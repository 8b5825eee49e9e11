package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductBeforeSave_NormalizesCategory(t *testing.T) {
	p := &Product{Name: "Goat Cheese", Price: 5, Category: " Dairy "}
	require.NoError(t, p.BeforeSave(nil))
	assert.Equal(t, "dairy", p.Category)
}

func TestProductBeforeSave_RejectsUnknownCategories(t *testing.T) {
	for _, category := range []string{"fungi", "FUNGI", "meat", "fruits"} {
		p := &Product{Name: "Thing", Price: 1, Category: category}
		err := p.BeforeSave(nil)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, category)
		assert.True(t, hasFieldError(verr, "category"), category)
	}
}

func TestProductBeforeSave_AcceptsEveryCategoryInAnyCase(t *testing.T) {
	for _, category := range []string{"fruit", "VEGETABLE", "Dairy", ""} {
		p := &Product{Name: "Thing", Price: 1, Category: category}
		assert.NoError(t, p.BeforeSave(nil), category)
	}
}

func TestProductBeforeSave_Price(t *testing.T) {
	free := &Product{Name: "Zucchini", Price: 0, Category: "vegetable"}
	assert.NoError(t, free.BeforeSave(nil))

	negative := &Product{Name: "Zucchini", Price: -0.01, Category: "vegetable"}
	err := negative.BeforeSave(nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, hasFieldError(verr, "price"))
	assert.Equal(t, 400, verr.StatusCode())
}

func TestProductBeforeSave_NameRequired(t *testing.T) {
	p := &Product{Name: "   ", Price: 1}
	err := p.BeforeSave(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Product validation failed")
	assert.Contains(t, err.Error(), "Path `name` is required.")
}

func TestValidationError_MessageFormat(t *testing.T) {
	p := &Product{Name: "Shiitake", Price: 3, Category: "fungi"}
	err := p.BeforeSave(nil)
	assert.EqualError(t, err, "Product validation failed: category: `fungi` is not a valid enum value for path `category`.")
}

func TestFarmBeforeSave(t *testing.T) {
	ok := &Farm{Name: "Full Belly Farm", City: "Guinda", Email: "hello@fullbelly.example"}
	assert.NoError(t, ok.BeforeSave(nil))

	noName := &Farm{City: "Guinda"}
	var verr *ValidationError
	require.ErrorAs(t, noName.BeforeSave(nil), &verr)
	assert.True(t, hasFieldError(verr, "name"))

	badEmail := &Farm{Name: "Full Belly Farm", Email: "not-an-email"}
	require.ErrorAs(t, badEmail.BeforeSave(nil), &verr)
	assert.True(t, hasFieldError(verr, "email"))
}

func TestModelBeforeCreate_AssignsSortableIDs(t *testing.T) {
	a := &Model{}
	b := &Model{}
	require.NoError(t, a.BeforeCreate(nil))
	require.NoError(t, b.BeforeCreate(nil))

	assert.True(t, ValidID(a.ID))
	assert.True(t, ValidID(b.ID))
	assert.Less(t, a.ID, b.ID)

	kept := &Model{ID: a.ID}
	require.NoError(t, kept.BeforeCreate(nil))
	assert.Equal(t, a.ID, kept.ID)
}

func TestValidID(t *testing.T) {
	assert.False(t, ValidID(""))
	assert.False(t, ValidID("123"))
	assert.False(t, ValidID("not-a-valid-identifier-xxxx"))
	assert.True(t, ValidID(NewID()))
}

func hasFieldError(verr *ValidationError, field string) bool {
	for _, f := range verr.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
