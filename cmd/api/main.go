package main

import (
	"fmt"
	"net/http"

	"github.com/choongman-erp/erp-backend-go/internal/config"
	"github.com/choongman-erp/erp-backend-go/internal/domain/payroll"
	appHTTP "github.com/choongman-erp/erp-backend-go/internal/handler/http"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/database"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/jwt"
	"github.com/choongman-erp/erp-backend-go/internal/repository/postgresql"
	attendanceService "github.com/choongman-erp/erp-backend-go/internal/service/attendance"
	"github.com/choongman-erp/erp-backend-go/internal/service/master"
	payrollService "github.com/choongman-erp/erp-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	storeRepo := postgresql.NewStoreRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	eventRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		eventRepo,
		shiftRepo,
		storeRepo,
	)
	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollRepo,
		employeeRepo,
		eventRepo,
		shiftRepo,
		holidayRepo,
		payroll.DefaultPolicy(),
	)
	masterSvc := master.NewMasterService(storeRepo, shiftRepo, holidayRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		payrollHandler,
		masterHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
