package echoServer

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/fernandollisboa/boardcamp/app/echoServer/controller/category"
	"github.com/fernandollisboa/boardcamp/app/echoServer/controller/customer"
	"github.com/fernandollisboa/boardcamp/app/echoServer/controller/game"
	"github.com/fernandollisboa/boardcamp/app/echoServer/controller/rental"
)

type C struct {
	Category *category.Controller
	Game     *game.Controller
	Customer *customer.Controller
	Rental   *rental.Controller

	// Redis may be nil; listing routes then skip the cache.
	Redis    *redis.Client
	CacheTTL time.Duration
}

func Register(e *echo.Echo, c C) {
	cached := Cache(c.Redis, c.CacheTTL)

	e.GET("/categories", c.Category.List, cached)
	e.POST("/categories", c.Category.Create)

	e.GET("/games", c.Game.List, cached)
	e.POST("/games", c.Game.Create)

	e.GET("/customers", c.Customer.List)
	e.GET("/customers/:id", c.Customer.Detail)
	e.POST("/customers", c.Customer.Create)
	e.PUT("/customers/:id", c.Customer.Update)

	e.GET("/rentals", c.Rental.List)
	e.POST("/rentals", c.Rental.Open)
	e.POST("/rentals/:id/return", c.Rental.Return)
	e.DELETE("/rentals/:id", c.Rental.Delete)
}
