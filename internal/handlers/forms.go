package handlers

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/farmstand/internal/apperror"
	"github.com/h4ks-com/farmstand/internal/models"
	"github.com/h4ks-com/farmstand/internal/services"
)

type FarmForm struct {
	Name  string `form:"name"`
	City  string `form:"city"`
	Email string `form:"email"`
}

// ProductForm mirrors the product forms. Price stays a string so that an
// empty or malformed value is reported like any other validation failure.
type ProductForm struct {
	Name     string `form:"name"`
	Price    string `form:"price"`
	Category string `form:"category"`
	FarmID   string `form:"farm"`
}

func bindFarmForm(c *gin.Context) (services.FarmInput, error) {
	var form FarmForm
	if err := c.ShouldBind(&form); err != nil {
		return services.FarmInput{}, apperror.BadRequest(err)
	}
	return services.FarmInput{Name: form.Name, City: form.City, Email: form.Email}, nil
}

func bindProductForm(c *gin.Context) (services.ProductInput, error) {
	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		return services.ProductInput{}, apperror.BadRequest(err)
	}

	price, err := parsePrice(form.Price)
	if err != nil {
		return services.ProductInput{}, err
	}

	return services.ProductInput{
		Name:     form.Name,
		Price:    price,
		Category: form.Category,
		FarmID:   form.FarmID,
	}, nil
}

// bindProductUpdate reads only the fields present in the form body so that an
// update leaves omitted fields untouched.
func bindProductUpdate(c *gin.Context) (services.ProductUpdate, error) {
	var update services.ProductUpdate

	if name, ok := c.GetPostForm("name"); ok {
		update.Name = &name
	}
	if raw, ok := c.GetPostForm("price"); ok {
		price, err := parsePrice(raw)
		if err != nil {
			return services.ProductUpdate{}, err
		}
		update.Price = &price
	}
	if category, ok := c.GetPostForm("category"); ok {
		update.Category = &category
	}

	return update, nil
}

func parsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &models.ValidationError{
			Model:  "Product",
			Fields: []models.FieldError{{Field: "price", Message: "Path `price` is required."}},
		}
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, &models.ValidationError{
			Model:  "Product",
			Fields: []models.FieldError{{Field: "price", Message: "Cast to Number failed for value \"" + raw + "\" at path `price`."}},
		}
	}
	return price, nil
}
