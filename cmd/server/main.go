package main

import (
	"database/sql"
	"log"
	"net/http"

	"toolorder-be/internal/api"
	"toolorder-be/internal/cart"
	"toolorder-be/internal/catalog"
	"toolorder-be/internal/category"
	"toolorder-be/internal/config"
	"toolorder-be/internal/db"
	"toolorder-be/internal/invoice"
	"toolorder-be/internal/logger"
	"toolorder-be/internal/notice"
	"toolorder-be/internal/order"
	"toolorder-be/internal/user"
)

var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	handler := newServer(database)

	log.Printf("🚀 Server running at http://localhost:%s/", cfg.AppPort)
	return startServerFunc(":"+cfg.AppPort, handler)
}

// newServer wires repositories, services and handlers over one DB handle.
func newServer(database *sql.DB) http.Handler {
	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	sessionStore := cart.NewStore(database)
	cartSvc := cart.NewService(sessionStore, catalogRepo)

	orderStore := order.NewStore(database)
	orderSvc := order.NewService(orderStore, catalogRepo)

	noticeRepo := notice.NewRepository(database)
	noticeSvc := notice.NewService(noticeRepo)

	a := &api.API{
		Users:      userSvc,
		Catalog:    catalogSvc,
		Categories: categorySvc,
		Carts:      cartSvc,
		Sessions:   sessionStore,
		Orders:     orderSvc,
		Notices:    noticeSvc,
		Invoices:   invoice.NewHandler(orderStore),
	}
	return a.Handler()
}
