package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/worktrack-hq/worktrack-backend-go/internal/config"
	appHTTP "github.com/worktrack-hq/worktrack-backend-go/internal/handler/http"
	"github.com/worktrack-hq/worktrack-backend-go/internal/pkg/clock"
	"github.com/worktrack-hq/worktrack-backend-go/internal/pkg/cron"
	"github.com/worktrack-hq/worktrack-backend-go/internal/pkg/database"
	"github.com/worktrack-hq/worktrack-backend-go/internal/pkg/jwt"
	"github.com/worktrack-hq/worktrack-backend-go/internal/pkg/oauth"
	"github.com/worktrack-hq/worktrack-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worktrack-hq/worktrack-backend-go/internal/service/attendance"
	authService "github.com/worktrack-hq/worktrack-backend-go/internal/service/auth"
	taskService "github.com/worktrack-hq/worktrack-backend-go/internal/service/task"
	userService "github.com/worktrack-hq/worktrack-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	clk := clock.System{}
	authSvc := authService.NewAuthService(db, userRepo, JWTService, refreshTokenRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, clk)
	taskSvc := taskService.NewTaskService(db, taskRepo, clk)
	userSvc := userService.NewUserService(userRepo)

	authJobs := cron.NewAuthJobs(refreshTokenRepo)
	scheduler := cron.NewScheduler()
	scheduler.AddJob("refresh-token-purge", 24*time.Hour, authJobs.PurgeExpiredRefreshTokens)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		taskHandler,
		userHandler,
		appHTTP.RouterOptions{
			Env:               cfg.App.Env,
			FrontendURL:       cfg.App.FrontendURL,
			EnableGoogleOAuth: cfg.OAuth2Google.ClientID != "",
		},
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
