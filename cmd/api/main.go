package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	appHTTP "github.com/pontolabs/ponto-backend-go/internal/handler/http"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/cron"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/email"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/whatsapp"
	"github.com/pontolabs/ponto-backend-go/internal/repository/postgresql"
	accountantService "github.com/pontolabs/ponto-backend-go/internal/service/accountant"
	authService "github.com/pontolabs/ponto-backend-go/internal/service/auth"
	clientService "github.com/pontolabs/ponto-backend-go/internal/service/client"
	departmentService "github.com/pontolabs/ponto-backend-go/internal/service/department"
	employeeService "github.com/pontolabs/ponto-backend-go/internal/service/employee"
	reportService "github.com/pontolabs/ponto-backend-go/internal/service/report"
	timerecordService "github.com/pontolabs/ponto-backend-go/internal/service/timerecord"

	"github.com/pontolabs/ponto-backend-go/internal/export"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.Database)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	accountantRepo := postgresql.NewAccountantRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	accountRepo := postgresql.NewAccountRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	whatsappService := whatsapp.NewService(cfg.WhatsApp)

	authSvc := authService.NewAuthService(accountRepo, jwtService)
	accountantSvc := accountantService.NewAccountantService(accountantRepo, emailService, cfg.App.FrontendURL)
	clientSvc := clientService.NewClientService(clientRepo, emailService, cfg.App.FrontendURL)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, clientRepo, emailService, whatsappService, cfg.App.FrontendURL)
	punchSvc := timerecordService.NewPunchService(punchRepo, employeeRepo, clientRepo)
	reportSvc := reportService.NewReportService(punchRepo, employeeRepo, cfg.Work.StandardDailyHours, cfg.Work.Workdays, map[string]reportService.Renderer{
		"pdf":  export.NewPDFGenerator(),
		"xlsx": export.NewExcelGenerator(),
		"csv":  export.NewCSVGenerator(),
	})

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(clientRepo, employeeRepo, punchRepo, emailService, cfg.Work.Workdays)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		TimeRecord: appHTTP.NewTimeRecordHandler(punchSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Client:     appHTTP.NewClientHandler(clientSvc),
		Accountant: appHTTP.NewAccountantHandler(accountantSvc),
		Department: appHTTP.NewDepartmentHandler(departmentSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
