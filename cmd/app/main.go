package main

import (
	"database/sql"
	"fmt"
	nethttp "net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"verduleria/cmd"
	"verduleria/internal/adapters/in/http"
	"verduleria/internal/adapters/out/postgres/customerrepo"
	"verduleria/internal/adapters/out/postgres/noterepo"
	"verduleria/internal/adapters/out/postgres/orderrepo"
	"verduleria/internal/adapters/out/postgres/productrepo"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// mustConnectDB opens the database through lib/pq so driver errors carry
// postgres error codes, then hands the connection to gorm.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&noterepo.DeliveryNoteDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := http.NewServer(http.ServerParams{
		SaveCustomerHandler:    app.CreateSaveCustomerCommandHandler(),
		DeleteCustomerHandler:  app.CreateDeleteCustomerCommandHandler(),
		SaveProductHandler:     app.CreateSaveProductCommandHandler(),
		DeleteProductHandler:   app.CreateDeleteProductCommandHandler(),
		SaveOrderHandler:       app.CreateSaveOrderCommandHandler(),
		ChangeStatusHandler:    app.CreateChangeOrderStatusCommandHandler(),
		DeleteOrderHandler:     app.CreateDeleteOrderCommandHandler(),
		GenerateNoteHandler:    app.CreateGenerateDeliveryNoteCommandHandler(),
		ConfirmDeliveryHandler: app.CreateConfirmDeliveryCommandHandler(),
		DeleteNoteHandler:      app.CreateDeleteDeliveryNoteCommandHandler(),

		GetCustomersHandler:    app.CreateGetCustomersQueryHandler(),
		GetCustomerByIDHandler: app.CreateGetCustomerByIDQueryHandler(),
		GetProductsHandler:     app.CreateGetProductsQueryHandler(),
		GetProductByIDHandler:  app.CreateGetProductByIDQueryHandler(),
		GetOrdersHandler:       app.CreateGetOrdersQueryHandler(),
		GetOrderByIDHandler:    app.CreateGetOrderByIDQueryHandler(),
		GetNotesHandler:        app.CreateGetDeliveryNotesQueryHandler(),
		GetNoteByIDHandler:     app.CreateGetDeliveryNoteByIDQueryHandler(),
		GetNoteByOrderHandler:  app.CreateGetDeliveryNoteByOrderQueryHandler(),
	})

	e := echo.New()
	e.Use(middleware.Logger(), middleware.Recover())
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
