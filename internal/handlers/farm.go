package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/farmstand/internal/models"
	"github.com/h4ks-com/farmstand/internal/services"
)

type FarmHandler struct {
	farmService *services.FarmService
}

func NewFarmHandler(farmService *services.FarmService) *FarmHandler {
	return &FarmHandler{farmService: farmService}
}

func (h *FarmHandler) ListFarms(c *gin.Context) error {
	farms, err := h.farmService.ListFarms(c.Request.Context())
	if err != nil {
		return err
	}

	return render(c, "farms/index.html", gin.H{
		"Title": "All Farms",
		"Farms": farms,
	})
}

func (h *FarmHandler) NewFarm(c *gin.Context) error {
	return render(c, "farms/new.html", gin.H{
		"Title": "New Farm",
	})
}

func (h *FarmHandler) CreateFarm(c *gin.Context) error {
	input, err := bindFarmForm(c)
	if err != nil {
		return err
	}

	if _, err := h.farmService.CreateFarm(c.Request.Context(), input); err != nil {
		return err
	}

	if err := addFlash(c, "Successfully made a new farm!"); err != nil {
		return err
	}
	return redirect(c, "/farms")
}

func (h *FarmHandler) ShowFarm(c *gin.Context) error {
	farm, err := h.farmService.GetFarm(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return render(c, "farms/show.html", gin.H{
		"Title": farm.Name,
		"Farm":  farm,
	})
}

func (h *FarmHandler) DeleteFarm(c *gin.Context) error {
	if err := h.farmService.DeleteFarm(c.Request.Context(), c.Param("id")); err != nil {
		return err
	}

	if err := addFlash(c, "Farm deleted."); err != nil {
		return err
	}
	return redirect(c, "/farms")
}

func (h *FarmHandler) NewFarmProduct(c *gin.Context) error {
	farm, err := h.farmService.GetFarmSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return render(c, "products/new.html", gin.H{
		"Title":      "New Product",
		"Farm":       farm,
		"Categories": models.FormCategories,
		"Current":    "",
	})
}

// CreateFarmProduct reads only name, price and category from the form; the
// owning farm always comes from the path.
func (h *FarmHandler) CreateFarmProduct(c *gin.Context) error {
	input, err := bindProductForm(c)
	if err != nil {
		return err
	}
	input.FarmID = ""

	farmID := c.Param("id")
	if _, err := h.farmService.AddProduct(c.Request.Context(), farmID, input); err != nil {
		return err
	}

	if err := addFlash(c, "Successfully added a new product!"); err != nil {
		return err
	}
	return redirect(c, "/farms/"+farmID)
}
