package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/NEMOzzzzzzzzzz/sms/internal/error/response"
	"github.com/NEMOzzzzzzzzzz/sms/models"
	"github.com/NEMOzzzzzzzzzz/sms/services/container"
)

// ResidentController handles resident requests.
type ResidentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewResidentController creates a new resident controller.
func NewResidentController(ctx *gin.Context, container *container.ServiceContainer) *ResidentController {
	return &ResidentController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetResidents lists all residents.
// @Summary      List residents
// @Produce      json
// @Success      200  {array}  models.Resident
// @Router       /residents [get]
func (c *ResidentController) GetResidents() {
	residents, err := c.Container.GetResidentService().ListResidents(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.OK(c.Ctx, residents)
}

// CreateResident creates a resident from the request draft.
// @Summary      Create resident
// @Accept       json
// @Produce      json
// @Param        resident body models.ResidentDraft true "resident draft"
// @Success      201  {object}  models.Resident
// @Failure      400  {object}  map[string]string
// @Router       /residents [post]
func (c *ResidentController) CreateResident() {
	var draft models.ResidentDraft
	if err := c.Ctx.ShouldBindJSON(&draft); err != nil {
		response.BindError(c.Ctx, err)
		return
	}
	resident, err := c.Container.GetResidentService().CreateResident(c.Ctx.Request.Context(), &draft)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, resident)
}

// UpdateResident merges the request draft into the resident named by :id.
// @Summary      Update resident
// @Accept       json
// @Produce      json
// @Param        id path int true "resident id"
// @Success      200  {object}  models.Resident
// @Failure      404  {object}  map[string]string
// @Router       /residents/{id} [put]
func (c *ResidentController) UpdateResident() {
	id, err := pathID(c.Ctx)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	var draft models.ResidentDraft
	if err := c.Ctx.ShouldBindJSON(&draft); err != nil {
		response.BindError(c.Ctx, err)
		return
	}
	resident, err := c.Container.GetResidentService().UpdateResident(c.Ctx.Request.Context(), id, &draft)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.OK(c.Ctx, resident)
}

// DeleteResident removes the resident named by :id.
// @Summary      Delete resident
// @Produce      json
// @Param        id path int true "resident id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /residents/{id} [delete]
func (c *ResidentController) DeleteResident() {
	id, err := pathID(c.Ctx)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if err := c.Container.GetResidentService().DeleteResident(c.Ctx.Request.Context(), id); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Deleted(c.Ctx, "Resident")
}

// HandleResidentFunc returns a gin handler dispatching to the named
// resident controller method.
func HandleResidentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewResidentController(ctx, container)

		switch method {
		case "getResidents":
			controller.GetResidents()
		case "createResident":
			controller.CreateResident()
		case "updateResident":
			controller.UpdateResident()
		case "deleteResident":
			controller.DeleteResident()
		default:
			unknownMethod(ctx, method)
		}
	}
}
