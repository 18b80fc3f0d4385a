package customer

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/fernandollisboa/boardcamp/model"
	cs "github.com/fernandollisboa/boardcamp/service/customer"
	"github.com/fernandollisboa/boardcamp/util/date"
)

type Controller struct {
	Svc cs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /customers?cpf=prefix
func (h *Controller) List(c echo.Context) error {
	out, err := h.Svc.List(c.Request().Context(), c.QueryParam("cpf"))
	if err != nil {
		h.Log.Error("customer list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// GET /customers/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	out, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, cs.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		}
		h.Log.Error("customer detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// POST /customers
func (h *Controller) Create(c echo.Context) error {
	req, ok := h.bind(c)
	if !ok {
		return nil
	}

	out, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, cs.ErrDuplicateCPF) {
			return c.JSON(http.StatusConflict, echo.Map{"message": "cpf already registered"})
		}
		h.Log.Error("customer create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, out)
}

// PUT /customers/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	req, ok := h.bind(c)
	if !ok {
		return nil
	}
	req.ID = id

	out, err := h.Svc.Update(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, cs.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		case errors.Is(err, cs.ErrDuplicateCPF):
			return c.JSON(http.StatusConflict, echo.Map{"message": "cpf already registered"})
		default:
			h.Log.Error("customer update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}

// bind decodes and validates the request body. When it returns false the
// error response has already been written.
func (h *Controller) bind(c echo.Context) (model.Customer, bool) {
	var req CustomerReq
	if err := c.Bind(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
		return model.Customer{}, false
	}
	if err := h.V.Struct(req); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
		return model.Customer{}, false
	}

	birthday, err := date.Parse(req.Birthday)
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid birthday"})
		return model.Customer{}, false
	}

	return model.Customer{
		Name:     req.Name,
		Phone:    req.Phone,
		CPF:      req.CPF,
		Birthday: birthday,
	}, true
}
