package game

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/fernandollisboa/boardcamp/model"
	gs "github.com/fernandollisboa/boardcamp/service/game"
)

type Controller struct {
	Svc gs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /games?name=prefix
func (h *Controller) List(c echo.Context) error {
	out, err := h.Svc.List(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		h.Log.Error("game list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// POST /games
func (h *Controller) Create(c echo.Context) error {
	var req CreateGameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.Create(c.Request().Context(), model.Game{
		Name:        req.Name,
		Image:       req.Image,
		StockTotal:  req.StockTotal,
		CategoryID:  req.CategoryID,
		PricePerDay: req.PricePerDay,
	})
	if err != nil {
		switch {
		case errors.Is(err, gs.ErrDuplicate):
			return c.JSON(http.StatusConflict, echo.Map{"message": "game already exists"})
		case errors.Is(err, gs.ErrCategoryMissing):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "category not found"})
		default:
			h.Log.Error("game create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, out)
}
