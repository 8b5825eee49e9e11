package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/farmstand/internal/models"
	"github.com/h4ks-com/farmstand/internal/services"
)

const allCategoriesLabel = "All"

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) ListProducts(c *gin.Context) error {
	category := c.Query("category")

	products, err := h.productService.ListProducts(c.Request.Context(), category)
	if err != nil {
		return err
	}

	label := category
	if label == "" {
		label = allCategoriesLabel
	}

	return render(c, "products/index.html", gin.H{
		"Title":      label + " Products",
		"Products":   products,
		"Category":   label,
		"Categories": models.Categories,
	})
}

func (h *ProductHandler) NewProduct(c *gin.Context) error {
	return render(c, "products/new.html", gin.H{
		"Title":      "New Product",
		"Categories": models.FormCategories,
		"Current":    "",
	})
}

// CreateProduct accepts the whole form, including an optional farm id, and
// redirects to the new product.
func (h *ProductHandler) CreateProduct(c *gin.Context) error {
	input, err := bindProductForm(c)
	if err != nil {
		return err
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		return err
	}

	if err := addFlash(c, "Successfully made a new product!"); err != nil {
		return err
	}
	return redirect(c, "/products/"+product.ID)
}

func (h *ProductHandler) ShowProduct(c *gin.Context) error {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return render(c, "products/show.html", gin.H{
		"Title":   product.Name,
		"Product": product,
	})
}

func (h *ProductHandler) EditProduct(c *gin.Context) error {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return render(c, "products/edit.html", gin.H{
		"Title":      "Edit " + product.Name,
		"Product":    product,
		"Categories": models.FormCategories,
		"Current":    product.Category,
	})
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) error {
	input, err := bindProductUpdate(c)
	if err != nil {
		return err
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	if err := addFlash(c, "Successfully updated product!"); err != nil {
		return err
	}
	return redirect(c, "/products/"+product.ID)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) error {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		return err
	}

	if err := addFlash(c, "Product deleted."); err != nil {
		return err
	}
	return redirect(c, "/products")
}
