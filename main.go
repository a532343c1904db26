package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"hotel-manager/config"
	"hotel-manager/controllers"
	"hotel-manager/menu"
	"hotel-manager/middleware"
	"hotel-manager/services"
	"hotel-manager/storage"
)

func newLogger(logFile string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		log.Printf("warning: cannot create log directory: %v", err)
		return logger
	}
	logger.SetOutput(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})
	return logger
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}
	cfg := config.Load()
	logger := newLogger(cfg.LogFile)

	store, err := storage.Open(cfg.DataDir, logger)
	if err != nil {
		log.Fatalf("❌ Could not open the data store: %v", err)
	}
	if err := config.SeedData(store, cfg, logger); err != nil {
		log.Fatalf("❌ Seeding starter data failed: %v", err)
	}
	log.Println("✅ Data store ready.")

	authorizer, err := middleware.NewAuthorizer(cfg.CasbinModelPath, cfg.CasbinPolicyPath, logger)
	if err != nil {
		log.Fatalf("❌ Could not load access policy: %v", err)
	}
	audit := middleware.NewAudit(logger)

	roomService := services.NewRoomService(store, logger)
	customerService := services.NewCustomerService(store, logger)
	reservationService := services.NewReservationService(store, logger)
	employeeService := services.NewEmployeeService(store, logger,
		cfg.EmailDomain, config.DefaultPassword, cfg.BcryptCost)
	billingService := services.NewBillingService(store, logger, cfg.TaxRate)
	reportService := services.NewReportService(store, logger)

	reader := bufio.NewReader(os.Stdin)
	mainMenu := menu.New(reader, authorizer, menu.Controllers{
		Rooms:        controllers.NewRoomController(reader, roomService, audit),
		Customers:    controllers.NewCustomerController(reader, customerService, audit),
		Reservations: controllers.NewReservationController(reader, reservationService, roomService, audit),
		Employees:    controllers.NewEmployeeController(reader, employeeService, audit),
		Billing:      controllers.NewBillingController(reader, billingService, config.PaymentMethods, audit),
		Reports:      controllers.NewReportController(reader, reportService),
		Settings: controllers.NewSettingsController(reader, employeeService, store, audit,
			filepath.Join(cfg.DataDir, "backups")),
	})

	fmt.Printf("\n%s\n%s | %s\n\n", config.HotelName, config.HotelAddress, config.HotelPhone)

	auth := controllers.NewAuthController(reader, employeeService, config.MaxLoginAttempts)
	for {
		session, ok := auth.Login()
		if !ok {
			break
		}
		mainMenu.Run(session)
		fmt.Println("Logged out.")
		if !promptAnotherLogin(reader) {
			break
		}
	}

	if err := store.SaveAll(); err != nil {
		log.Fatalf("❌ Final save failed: %v", err)
	}
	log.Println("✅ All data saved. Goodbye.")
}

func promptAnotherLogin(reader *bufio.Reader) bool {
	fmt.Print("Log in as another employee? (y/n): ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return line == "y\n" || line == "Y\n" || line == "yes\n"
}
