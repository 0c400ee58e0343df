//go:build integration
// +build integration

package integration

import (
	"log"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/heliomart/solarstore-go/config"
	"github.com/heliomart/solarstore-go/db"
	"github.com/heliomart/solarstore-go/internal/testutils"
	"github.com/heliomart/solarstore-go/middleware"
	"github.com/heliomart/solarstore-go/models"
	"github.com/heliomart/solarstore-go/routes"
)

// TestContext holds all test dependencies
type TestContext struct {
	Router     *gin.Engine
	PanelID    uint
	InverterID uint
	BatteryID  uint
	LowStockID uint
	cleanupDB  func()
}

var testCtx *TestContext

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	if err := setupTestEnvironment(); err != nil {
		log.Fatalf("Failed to setup test environment: %v", err)
	}

	code := m.Run()

	if testCtx.cleanupDB != nil {
		testCtx.cleanupDB()
	}
	os.Exit(code)
}

func setupTestEnvironment() error {
	_ = os.Setenv("JWT_SECRET", "test-secret-key-for-integration-testing")
	_ = os.Setenv("ISSUER", "solarstore-test")
	_ = os.Setenv("SERVER_PORT", "8081")

	config.LoadConfig()
	middleware.Init()

	gormDB, cleanup := testutils.SetupPostgresForIntegration()
	db.InitWithGormDB(gormDB)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(router)

	testCtx = &TestContext{
		Router:    router,
		cleanupDB: cleanup,
	}

	return seedCatalog()
}

func seedCatalog() error {
	products := []*models.Product{
		{Name: "Mono Panel 450W", Category: string(models.CategoryPanels), Brand: "JA Solar", UnitPrice: 55000, SalePrice: 50000, Stock: 50, Active: true},
		{Name: "Hybrid Inverter 5kW", Category: string(models.CategoryInverters), Brand: "Growatt", UnitPrice: 250000, SalePrice: 225000, Stock: 10, Active: true},
		{Name: "LiFePO4 Battery 5kWh", Category: string(models.CategoryBatteries), Brand: "Pylontech", UnitPrice: 400000, SalePrice: 380000, Stock: 6, Active: true},
		{Name: "MPPT Controller 60A", Category: string(models.CategoryControllers), Brand: "Victron", UnitPrice: 90000, SalePrice: 85000, Stock: 1, Active: true},
	}
	for _, p := range products {
		if err := db.DB.Create(p).Error; err != nil {
			return err
		}
	}
	testCtx.PanelID = products[0].PID
	testCtx.InverterID = products[1].PID
	testCtx.BatteryID = products[2].PID
	testCtx.LowStockID = products[3].PID
	return nil
}
