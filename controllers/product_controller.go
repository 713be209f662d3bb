package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-storefront/repositories"
)

type ProductController struct {
	repo *repositories.MemoryRepository
}

func NewProductController(repo *repositories.MemoryRepository) *ProductController {
	return &ProductController{repo: repo}
}

func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.repo.Products())
}

func (ctrl *ProductController) GetAllEvents(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.repo.Events())
}

func (ctrl *ProductController) GetUpcomingEvents(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.repo.UpcomingEvents())
}
