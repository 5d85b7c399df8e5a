package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/teleworkapp/telework-backend-go/internal/config"
	appHTTP "github.com/teleworkapp/telework-backend-go/internal/handler/http"
	"github.com/teleworkapp/telework-backend-go/internal/pkg/database"
	"github.com/teleworkapp/telework-backend-go/internal/repository/postgresql"
	holidayService "github.com/teleworkapp/telework-backend-go/internal/service/holiday"
	statsService "github.com/teleworkapp/telework-backend-go/internal/service/stats"
	workDayService "github.com/teleworkapp/telework-backend-go/internal/service/workday"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		fmt.Println("Error ensuring database schema:", err)
		return
	}

	holidayRepo := postgresql.NewHolidayRepository(db)
	workDayRepo := postgresql.NewWorkDayRepository(db)

	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	workDaySvc := workDayService.NewWorkDayService(db, workDayRepo, holidaySvc)
	statsSvc := statsService.NewStatsService(workDayRepo, holidaySvc)

	workDayHandler := appHTTP.NewWorkDayHandler(workDaySvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	statsHandler := appHTTP.NewStatsHandler(statsSvc)

	router := appHTTP.NewRouter(
		workDayHandler,
		holidayHandler,
		statsHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
