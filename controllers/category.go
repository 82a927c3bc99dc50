package controllers

import (
	"net/http"

	"research-archive-api/config"
	"research-archive-api/models"

	"github.com/gin-gonic/gin"
)

// GetCategories returns the research category catalog used by submissions.
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Where("delete_at IS NULL").
		Order("category_name ASC").
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
		"total":      len(categories),
	})
}
