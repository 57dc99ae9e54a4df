package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
)

// Colleges returns the Tamil Nadu college list the form suggests from,
// optionally narrowed by a case-insensitive substring.
// @Summary College name suggestions
// @Tags Form
// @Produce json
// @Param q query string false "Substring to narrow the list"
// @Success 200 {object} map[string][]string
// @Router /colleges [get]
func (pc *PortalController) Colleges(c *gin.Context) {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if q == "" {
		c.JSON(http.StatusOK, gin.H{"colleges": model.TamilNaduColleges})
		return
	}

	matches := []string{}
	for _, name := range model.TamilNaduColleges {
		if strings.Contains(strings.ToLower(name), q) {
			matches = append(matches, name)
		}
	}
	c.JSON(http.StatusOK, gin.H{"colleges": matches})
}

// FormOptions returns the fixed option lists the form renders.
// @Summary Form option lists
// @Tags Form
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /options [get]
func (pc *PortalController) FormOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"courses":        model.CourseOptions,
		"categories":     model.CategoryOptions,
		"iom_options":    model.IOMOptions,
		"training_types": []string{model.TrainingInternship, model.TrainingProject},
		"statuses":       []string{model.StatusPending, model.StatusApproved, model.StatusRejected},
	})
}
