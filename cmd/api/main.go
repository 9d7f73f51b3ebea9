package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/teampulse/teampulse-backend-go/internal/config"
	"github.com/teampulse/teampulse-backend-go/internal/fixtures"
	appHTTP "github.com/teampulse/teampulse-backend-go/internal/handler/http"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/database"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/jwt"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/storage"
	"github.com/teampulse/teampulse-backend-go/internal/repository/postgresql"
	accountService "github.com/teampulse/teampulse-backend-go/internal/service/account"
	analyticsService "github.com/teampulse/teampulse-backend-go/internal/service/analytics"
	authService "github.com/teampulse/teampulse-backend-go/internal/service/auth"
	employeeService "github.com/teampulse/teampulse-backend-go/internal/service/employee"
	"github.com/teampulse/teampulse-backend-go/internal/service/file"
	submissionService "github.com/teampulse/teampulse-backend-go/internal/service/submission"
	taskService "github.com/teampulse/teampulse-backend-go/internal/service/task"
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

	if err := postgresql.RunMigrations(context.Background(), db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage, fileStorage)
	authSvc := authService.NewAuthService(userRepo, JWTService, cfg)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, userRepo)
	taskSvc := taskService.NewTaskService(taskRepo, employeeRepo)
	submissionSvc := submissionService.NewSubmissionService(taskRepo, employeeRepo, fileService, cfg)
	analyticsSvc := analyticsService.NewAnalyticsService(analyticsRepo)
	accountSvc := accountService.NewAccountService(userRepo, employeeRepo, fileService)

	if err := fixtures.SeedProtectedAdmins(context.Background(), cfg, authSvc); err != nil {
		log.Fatal("Failed to seed protected admins:", err)
	}

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Admin:      appHTTP.NewAdminHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Submission: appHTTP.NewSubmissionHandler(submissionSvc),
		Analytics:  appHTTP.NewAnalyticsHandler(analyticsSvc),
		Account:    appHTTP.NewAccountHandler(accountSvc),
		Upload:     appHTTP.NewUploadHandler(fileService),
	}

	router := appHTTP.NewRouter(cfg, JWTService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
