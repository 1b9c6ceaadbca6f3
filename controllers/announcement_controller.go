package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/NEMOzzzzzzzzzz/sms/internal/error/response"
	"github.com/NEMOzzzzzzzzzz/sms/models"
	"github.com/NEMOzzzzzzzzzz/sms/services/container"
)

// AnnouncementController handles announcement requests.
type AnnouncementController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAnnouncementController creates a new announcement controller.
func NewAnnouncementController(ctx *gin.Context, container *container.ServiceContainer) *AnnouncementController {
	return &AnnouncementController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetAnnouncements lists all announcements.
// @Summary      List announcements
// @Produce      json
// @Success      200  {array}  models.Announcement
// @Router       /announcements [get]
func (c *AnnouncementController) GetAnnouncements() {
	announcements, err := c.Container.GetAnnouncementService().ListAnnouncements(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.OK(c.Ctx, announcements)
}

// CreateAnnouncement creates an announcement from the request draft.
// @Summary      Create announcement
// @Accept       json
// @Produce      json
// @Param        announcement body models.AnnouncementDraft true "announcement draft"
// @Success      201  {object}  models.Announcement
// @Failure      400  {object}  map[string]string
// @Router       /announcements [post]
func (c *AnnouncementController) CreateAnnouncement() {
	var draft models.AnnouncementDraft
	if err := c.Ctx.ShouldBindJSON(&draft); err != nil {
		response.BindError(c.Ctx, err)
		return
	}
	announcement, err := c.Container.GetAnnouncementService().CreateAnnouncement(c.Ctx.Request.Context(), &draft)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, announcement)
}

// UpdateAnnouncement merges the request draft into the announcement named
// by :id.
// @Summary      Update announcement
// @Accept       json
// @Produce      json
// @Param        id path int true "announcement id"
// @Success      200  {object}  models.Announcement
// @Failure      404  {object}  map[string]string
// @Router       /announcements/{id} [put]
func (c *AnnouncementController) UpdateAnnouncement() {
	id, err := pathID(c.Ctx)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	var draft models.AnnouncementDraft
	if err := c.Ctx.ShouldBindJSON(&draft); err != nil {
		response.BindError(c.Ctx, err)
		return
	}
	announcement, err := c.Container.GetAnnouncementService().UpdateAnnouncement(c.Ctx.Request.Context(), id, &draft)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.OK(c.Ctx, announcement)
}

// DeleteAnnouncement removes the announcement named by :id.
// @Summary      Delete announcement
// @Produce      json
// @Param        id path int true "announcement id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /announcements/{id} [delete]
func (c *AnnouncementController) DeleteAnnouncement() {
	id, err := pathID(c.Ctx)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if err := c.Container.GetAnnouncementService().DeleteAnnouncement(c.Ctx.Request.Context(), id); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Deleted(c.Ctx, "Announcement")
}

// HandleAnnouncementFunc returns a gin handler dispatching to the named
// announcement controller method.
func HandleAnnouncementFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAnnouncementController(ctx, container)

		switch method {
		case "getAnnouncements":
			controller.GetAnnouncements()
		case "createAnnouncement":
			controller.CreateAnnouncement()
		case "updateAnnouncement":
			controller.UpdateAnnouncement()
		case "deleteAnnouncement":
			controller.DeleteAnnouncement()
		default:
			unknownMethod(ctx, method)
		}
	}
}
