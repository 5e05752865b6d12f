package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cash-trader-be/internal/constant"
	"cash-trader-be/internal/dto"
	"cash-trader-be/internal/pkg/serverutils"
	"cash-trader-be/internal/service"
)

type IRegisterController interface {
	RegisterRoutes(r fiber.Router)
}

// registerController exposes the console input surface. Every route is an
// input event against one station's register and answers with the fresh
// console state.
type registerController struct {
	service      service.IRegisterService
	printService service.IPrintService
}

func NewRegisterController(svc service.IRegisterService, printSvc service.IPrintService) IRegisterController {
	return &registerController{service: svc, printService: printSvc}
}

// station identifies the calling terminal. Displays and input adapters
// send it on every request.
func station(ctx *fiber.Ctx) string {
	if s := ctx.Get(constant.StationHeader); s != "" {
		return s
	}
	if s := ctx.Query("station"); s != "" {
		return s
	}
	return constant.DefaultStation
}

func (c *registerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/register", serverutils.JwtMiddleware)

	h.Get("/state", c.State)

	h.Post("/search/input", c.SearchInput)
	h.Post("/search/cursor", c.SearchMoveCursor)
	h.Post("/search/submit", c.SearchSubmit)

	h.Post("/suggest/cursor", c.SuggestMoveCursor)
	h.Post("/suggest/select", c.SelectSuggestion)
	h.Post("/suggest/submit", c.SuggestSubmit)
	h.Post("/suggest/activate", c.ActivateSuggestion)

	h.Post("/pane/focus", c.FocusPane)
	h.Post("/pane/clear", c.ClearPane)
	h.Post("/customer", c.SetCustomerName)

	h.Post("/edit/begin", c.BeginEdit)
	h.Post("/edit/commit", c.CommitEdit)
	h.Post("/edit/cancel", c.CancelEdit)
	h.Post("/line/remove", c.RemoveLine)

	h.Post("/print", c.Print)
	h.Get("/receipts", c.ListReceipts)
	h.Get("/receipts/:id", c.GetReceipt)
}

func (c *registerController) State(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("State", c.service.State(station(ctx))))
}

func (c *registerController) SearchInput(ctx *fiber.Ctx) error {
	var req dto.SearchInputRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("State", c.service.SearchInput(station(ctx), &req)))
}

func (c *registerController) SearchMoveCursor(ctx *fiber.Ctx) error {
	var req dto.SearchCursorRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("State", c.service.SearchMoveCursor(station(ctx), &req)))
}

func (c *registerController) SearchSubmit(ctx *fiber.Ctx) error {
	var req dto.SearchSubmitRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.SearchSubmit(station(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("State", res))
}

func (c *registerController) SuggestMoveCursor(ctx *fiber.Ctx) error {
	var req dto.CursorMoveRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("State", c.service.SuggestMoveCursor(station(ctx), &req)))
}

func (c *registerController) SelectSuggestion(ctx *fiber.Ctx) error {
	var req dto.SelectSuggestionRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("State", c.service.SelectSuggestion(station(ctx), &req)))
}

func (c *registerController) SuggestSubmit(ctx *fiber.Ctx) error {
	res, err := c.service.SuggestSubmit(station(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("State", res))
}

func (c *registerController) ActivateSuggestion(ctx *fiber.Ctx) error {
	var req dto.SelectSuggestionRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.ActivateSuggestion(station(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("State", res))
}

func (c *registerController) FocusPane(ctx *fiber.Ctx) error {
	var req dto.FocusPaneRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("State", c.service.FocusPane(station(ctx), &req)))
}

func (c *registerController) ClearPane(ctx *fiber.Ctx) error {
	var req dto.ClearPaneRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("State", c.service.ClearPane(station(ctx), &req)))
}

func (c *registerController) SetCustomerName(ctx *fiber.Ctx) error {
	var req dto.CustomerNameRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("State", c.service.SetCustomerName(station(ctx), &req)))
}

func (c *registerController) BeginEdit(ctx *fiber.Ctx) error {
	var req dto.BeginEditRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.BeginEdit(station(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("State", res))
}

func (c *registerController) CommitEdit(ctx *fiber.Ctx) error {
	var req dto.CommitEditRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CommitEdit(station(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("State", res))
}

func (c *registerController) CancelEdit(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("State", c.service.CancelEdit(station(ctx))))
}

func (c *registerController) RemoveLine(ctx *fiber.Ctx) error {
	var req dto.RemoveLineRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("State", c.service.RemoveLine(station(ctx), &req)))
}

func (c *registerController) Print(ctx *fiber.Ctx) error {
	var req dto.PrintRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Print(ctx.Context(), station(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Receipt queued", res))
}

func (c *registerController) ListReceipts(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))

	res, err := c.printService.ListReceipts(ctx.Context(), ctx.Query("station"), limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Receipts", res))
}

func (c *registerController) GetReceipt(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid receipt id")
	}

	res, err := c.printService.GetReceipt(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "receipt not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Receipt", res))
}
