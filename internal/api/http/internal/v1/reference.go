package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initReferenceRoutes(api *gin.RouterGroup) {
	api.GET("/roles/", h.getRoles)
	api.GET("/professions/", h.getProfessions)
}

// @Summary Get Roles
// @Tags References
// @Description Get all roles accepted at registration
// @ModuleID getRoles
// @Produce  json
// @Success 200 {object} []domain.Role
// @Failure 500 {object} ErrorStruct
// @Router /roles/ [get]
func (h *Handler) getRoles(c *gin.Context) {
	roles, err := h.services.References.GetRoles(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// @Summary Get Professions
// @Tags References
// @Description Get all professions accepted at registration
// @ModuleID getProfessions
// @Produce  json
// @Success 200 {object} []domain.Profession
// @Failure 500 {object} ErrorStruct
// @Router /professions/ [get]
func (h *Handler) getProfessions(c *gin.Context) {
	professions, err := h.services.References.GetProfessions(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, professions)
}
