package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-api/database"
	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/utils"
)

const (
	errMenuMissingFields = "Missing required fields: name, price, and category are required"
	errMenuPrice         = "Price must be a positive number"
)

type MenuController struct {
	Store database.MenuStore
}

func NewMenuController(store database.MenuStore) *MenuController {
	return &MenuController{Store: store}
}

type createMenuRequest struct {
	Name        string           `json:"name" form:"name" binding:"required"`
	Description *string          `json:"description" form:"description"`
	Price       *decimal.Decimal `json:"price" form:"price" binding:"required"`
	Category    string           `json:"category" form:"category" binding:"required"`
	ImageURL    *string          `json:"image_url" form:"image_url"`
	IsAvailable *bool            `json:"is_available" form:"is_available"`
}

// validate runs after binding has confirmed that every required field is set.
func (r *createMenuRequest) validate() *ValidationError {
	if !r.Price.IsPositive() {
		return invalidField(errMenuPrice, "price")
	}
	return nil
}

func (r *createMenuRequest) toModel() *models.MenuItem {
	item := &models.MenuItem{
		Name:        r.Name,
		Description: nilIfEmpty(r.Description),
		Price:       *r.Price,
		Category:    r.Category,
		ImageURL:    nilIfEmpty(r.ImageURL),
		IsAvailable: true,
	}
	if r.IsAvailable != nil {
		item.IsAvailable = *r.IsAvailable
	}
	return item
}

// GetAllMenus lists menu items ordered by category, then name.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	items, err := mc.Store.List(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.Errorf("Error fetching menu items: %s", database.Describe(err))
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch menu items", err)
		return
	}
	utils.RespondList(c, len(items), items)
}

// GetMenuByID
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	item, err := mc.Store.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, "Menu item not found", nil)
		return
	}
	if err != nil {
		utils.ErrorLogger.Errorf("Error fetching menu item %s: %s", c.Param("id"), database.Describe(err))
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch menu item", err)
		return
	}
	utils.RespondData(c, http.StatusOK, item)
}

// CreateMenu
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var req createMenuRequest
	if err := c.ShouldBind(&req); err != nil {
		if verr := fromBindError(err, &req, errMenuMissingFields); verr != nil {
			respondValidation(c, verr)
			return
		}
		utils.RespondError(c, http.StatusBadRequest, errInvalidBody, err)
		return
	}
	if verr := req.validate(); verr != nil {
		respondValidation(c, verr)
		return
	}

	item, err := mc.Store.Create(c.Request.Context(), req.toModel())
	if err != nil {
		utils.ErrorLogger.Errorf("Error creating menu item: %s", database.Describe(err))
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create menu item", err)
		return
	}

	utils.InfoLogger.Printf("Menu item created (ID=%d) in category %s", item.ID, item.Category)
	utils.RespondCreated(c, "Menu item created successfully", item)
}
