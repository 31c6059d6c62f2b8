package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/smilepoint-dental/clinic-backend-go/internal/config"
	attendanceDomain "github.com/smilepoint-dental/clinic-backend-go/internal/domain/attendance"
	commissionDomain "github.com/smilepoint-dental/clinic-backend-go/internal/domain/commission"
	appHTTP "github.com/smilepoint-dental/clinic-backend-go/internal/handler/http"
	"github.com/smilepoint-dental/clinic-backend-go/internal/pkg/database"
	"github.com/smilepoint-dental/clinic-backend-go/internal/repository/memory"
	"github.com/smilepoint-dental/clinic-backend-go/internal/repository/postgresql"
	attendanceService "github.com/smilepoint-dental/clinic-backend-go/internal/service/attendance"
	commissionService "github.com/smilepoint-dental/clinic-backend-go/internal/service/commission"
	payrollService "github.com/smilepoint-dental/clinic-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var attendanceRepo attendanceDomain.Repository
	var commissionRepo commissionDomain.Repository
	switch cfg.Store.Driver {
	case "memory":
		attendanceRepo = memory.NewAttendanceStore()
		commissionRepo = memory.NewCommissionStore()
	case "postgres":
		db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		attendanceRepo = postgresql.NewAttendanceRepository(db)
		commissionRepo = postgresql.NewCommissionRepository(db)
	default:
		log.Fatal("Unsupported store driver: ", cfg.Store.Driver)
	}

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	commissionSvc := commissionService.NewCommissionService(commissionRepo)
	payrollSvc := payrollService.NewPayrollService(attendanceRepo, commissionRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	commissionHandler := appHTTP.NewCommissionHandler(commissionSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.FrontendURL,
		attendanceHandler,
		commissionHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
