package rental

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	rs "github.com/fernandollisboa/boardcamp/service/rental"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /rentals?customerId=&gameId=
func (h *Controller) List(c echo.Context) error {
	customerID, ok := queryID(c, "customerId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid customerId"})
	}
	gameID, ok := queryID(c, "gameId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid gameId"})
	}

	out, err := h.Svc.List(c.Request().Context(), customerID, gameID)
	if err != nil {
		h.Log.Error("rental list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// POST /rentals
func (h *Controller) Open(c echo.Context) error {
	var req OpenRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.Open(c.Request().Context(), req.CustomerID, req.GameID, req.DaysRented)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrInvalidReference:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "customer or game not found"})
		case rs.ErrOutOfStock:
			return c.JSON(http.StatusConflict, echo.Map{"message": "game out of stock"})
		default:
			h.Log.Error("rental open", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, out)
}

// POST /rentals/:id/return
func (h *Controller) Return(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	out, err := h.Svc.Close(c.Request().Context(), id)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		case rs.ErrAlreadyClosed:
			return c.JSON(http.StatusConflict, echo.Map{"message": "rental already returned"})
		default:
			h.Log.Error("rental return", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}

// DELETE /rentals/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		case rs.ErrAlreadyClosed:
			return c.JSON(http.StatusConflict, echo.Map{"message": "rental already returned"})
		default:
			h.Log.Error("rental delete", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.NoContent(http.StatusOK)
}

// queryID parses an optional positive-integer query parameter; 0 means the
// parameter was absent.
func queryID(c echo.Context, name string) (int64, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
