package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/NEMOzzzzzzzzzz/sms/internal/error/response"
	"github.com/NEMOzzzzzzzzzz/sms/models"
	"github.com/NEMOzzzzzzzzzz/sms/services/container"
)

// PaymentController handles payment requests.
type PaymentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPaymentController creates a new payment controller.
func NewPaymentController(ctx *gin.Context, container *container.ServiceContainer) *PaymentController {
	return &PaymentController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetPayments lists all payments.
// @Summary      List payments
// @Produce      json
// @Success      200  {array}  models.Payment
// @Router       /payments [get]
func (c *PaymentController) GetPayments() {
	payments, err := c.Container.GetPaymentService().ListPayments(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.OK(c.Ctx, payments)
}

// CreatePayment creates a payment from the request draft.
// @Summary      Create payment
// @Accept       json
// @Produce      json
// @Param        payment body models.PaymentDraft true "payment draft"
// @Success      201  {object}  models.Payment
// @Failure      400  {object}  map[string]string
// @Router       /payments [post]
func (c *PaymentController) CreatePayment() {
	var draft models.PaymentDraft
	if err := c.Ctx.ShouldBindJSON(&draft); err != nil {
		response.BindError(c.Ctx, err)
		return
	}
	payment, err := c.Container.GetPaymentService().CreatePayment(c.Ctx.Request.Context(), &draft)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, payment)
}

// UpdatePayment merges the request draft into the payment named by :id.
// Status flips (pending/paid/overdue) arrive here as partial drafts.
// @Summary      Update payment
// @Accept       json
// @Produce      json
// @Param        id path int true "payment id"
// @Success      200  {object}  models.Payment
// @Failure      404  {object}  map[string]string
// @Router       /payments/{id} [put]
func (c *PaymentController) UpdatePayment() {
	id, err := pathID(c.Ctx)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	var draft models.PaymentDraft
	if err := c.Ctx.ShouldBindJSON(&draft); err != nil {
		response.BindError(c.Ctx, err)
		return
	}
	payment, err := c.Container.GetPaymentService().UpdatePayment(c.Ctx.Request.Context(), id, &draft)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.OK(c.Ctx, payment)
}

// DeletePayment removes the payment named by :id.
// @Summary      Delete payment
// @Produce      json
// @Param        id path int true "payment id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /payments/{id} [delete]
func (c *PaymentController) DeletePayment() {
	id, err := pathID(c.Ctx)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if err := c.Container.GetPaymentService().DeletePayment(c.Ctx.Request.Context(), id); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Deleted(c.Ctx, "Payment")
}

// HandlePaymentFunc returns a gin handler dispatching to the named payment
// controller method.
func HandlePaymentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPaymentController(ctx, container)

		switch method {
		case "getPayments":
			controller.GetPayments()
		case "createPayment":
			controller.CreatePayment()
		case "updatePayment":
			controller.UpdatePayment()
		case "deletePayment":
			controller.DeletePayment()
		default:
			unknownMethod(ctx, method)
		}
	}
}
