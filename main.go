package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/fernandollisboa/boardcamp/app/echoServer"
	categoryctrl "github.com/fernandollisboa/boardcamp/app/echoServer/controller/category"
	customerctrl "github.com/fernandollisboa/boardcamp/app/echoServer/controller/customer"
	gamectrl "github.com/fernandollisboa/boardcamp/app/echoServer/controller/game"
	rentalctrl "github.com/fernandollisboa/boardcamp/app/echoServer/controller/rental"
	"github.com/fernandollisboa/boardcamp/app/echoServer/validation"
	"github.com/fernandollisboa/boardcamp/config"
	categoryrepo "github.com/fernandollisboa/boardcamp/repository/category"
	customerrepo "github.com/fernandollisboa/boardcamp/repository/customer"
	gamerepo "github.com/fernandollisboa/boardcamp/repository/game"
	rentalrepo "github.com/fernandollisboa/boardcamp/repository/rental"
	categorysvc "github.com/fernandollisboa/boardcamp/service/category"
	customersvc "github.com/fernandollisboa/boardcamp/service/customer"
	gamesvc "github.com/fernandollisboa/boardcamp/service/game"
	rentalsvc "github.com/fernandollisboa/boardcamp/service/rental"
	"github.com/fernandollisboa/boardcamp/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB: *pgxpool.Pool
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// optional response cache
	rdb := config.NewRedisClient(cfg)

	// repos
	catr := categoryrepo.New(db)
	gr := gamerepo.New(db)
	cr := customerrepo.New(db)
	rr := rentalrepo.New(db)

	// services
	cats := categorysvc.New(catr)
	gs := gamesvc.New(gr)
	cs := customersvc.New(cr)
	rs := rentalsvc.New(db, rr)

	// controllers
	v := validator.New()
	categoryC := &categoryctrl.Controller{Svc: cats, V: v, Log: log}
	gameC := &gamectrl.Controller{Svc: gs, V: v, Log: log}
	customerC := &customerctrl.Controller{Svc: cs, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	echoServer.Register(e, echoServer.C{
		Category: categoryC,
		Game:     gameC,
		Customer: customerC,
		Rental:   rentalC,

		Redis:    rdb,
		CacheTTL: cfg.CacheTTL,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
