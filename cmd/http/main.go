package main

import (
	"bhzdravlje-service/internal/app/config"
	"bhzdravlje-service/internal/app/delivery/http/controllers"
	"bhzdravlje-service/internal/app/delivery/http/middlewares"
	"bhzdravlje-service/internal/app/delivery/http/routers"
	"bhzdravlje-service/internal/app/drivers/database"
	"bhzdravlje-service/internal/app/drivers/logger"
	"bhzdravlje-service/internal/app/drivers/messaging"
	"bhzdravlje-service/internal/app/drivers/storage"
	"bhzdravlje-service/internal/app/services/backend/apiclient"
	"bhzdravlje-service/internal/app/services/backend/resources"
	"bhzdravlje-service/internal/app/services/core/blog"
	"bhzdravlje-service/internal/app/services/core/calculators"
	"bhzdravlje-service/internal/app/services/core/cities"
	"bhzdravlje-service/internal/app/services/core/directory"
	"bhzdravlje-service/internal/app/services/core/doctors"
	"bhzdravlje-service/internal/app/services/core/facilities"
	"bhzdravlje-service/internal/app/services/core/questions"
	"bhzdravlje-service/internal/app/services/core/registrations"
	"bhzdravlje-service/internal/app/services/core/sitemap"
	"bhzdravlje-service/internal/app/services/core/specialties"
	"bhzdravlje-service/internal/app/services/shared/jwtmanager"
	"bhzdravlje-service/internal/app/services/shared/locker"
	"bhzdravlje-service/internal/app/services/shared/mailer"
	"bhzdravlje-service/internal/app/services/shared/redis"
	minioStorage "bhzdravlje-service/internal/app/services/shared/storage"
	"bhzdravlje-service/internal/pkg/retry"
	"bhzdravlje-service/internal/pkg/seo"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewLogrusLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		AccessLogger:   accessLogger,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Scheduler:      gocron.NewScheduler(time.UTC),
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownTimeout := time.Duration(internalConfig.App.ShutdownTimeoutInSeconds) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)

	// Backend
	retryConfig := retry.DefaultConfig()
	if cfg.Backend.RetryMaxAttempts > 0 {
		retryConfig.MaxAttempts = cfg.Backend.RetryMaxAttempts
	}
	if cfg.Backend.RetryInitialDelayInMilliseconds > 0 {
		retryConfig.InitialDelay = time.Duration(cfg.Backend.RetryInitialDelayInMilliseconds) * time.Millisecond
	}
	backendClient := apiclient.NewClient(apiclient.Config{
		BaseURL:           cfg.Backend.BaseURL,
		APIKey:            cfg.Backend.APIKey,
		Timeout:           time.Duration(cfg.Backend.TimeoutInSeconds) * time.Second,
		RequestsPerSecond: cfg.Backend.RequestsPerSecond,
		Burst:             cfg.Backend.Burst,
		Retry:             retryConfig,
	}, log)

	doctorBackend := resources.NewDoctorBackend(backendClient, log)
	clinicBackend := resources.NewClinicBackend(backendClient, log)
	laboratoryBackend := resources.NewLaboratoryBackend(backendClient, log)
	spaBackend := resources.NewSpaBackend(backendClient, log)
	careHomeBackend := resources.NewCareHomeBackend(backendClient, log)
	blogBackend := resources.NewBlogBackend(backendClient, log)
	questionBackend := resources.NewQuestionBackend(backendClient, log)
	cityBackend := resources.NewCityBackend(backendClient, log)
	specialtyBackend := resources.NewSpecialtyBackend(backendClient, log)
	registrationBackend := resources.NewRegistrationBackend(backendClient, log)

	// Shared services
	cache := directory.Cache{
		Repo:         redisRepository,
		Log:          log,
		ReferenceTTL: time.Duration(cfg.Cache.ReferenceTTLInMinutes) * time.Minute,
		ListingTTL:   time.Duration(cfg.Cache.ListingTTLInSeconds) * time.Second,
		ProfileTTL:   time.Duration(cfg.Cache.ProfileTTLInSeconds) * time.Second,
	}
	seoBuilder := seo.NewBuilder(cfg.App.SiteBaseURL, cfg.App.DefaultOGImage)

	storageService := minioStorage.NewMinioStorage(bootstrap.Minio, cfg.Minio.BucketName, cfg.Minio.PublicBaseURL, log)
	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, cfg.RabbitMQ.NotificationQueue, log)
	if err != nil {
		return err
	}
	stepTokenManager, err := jwtmanager.NewStepTokenManager(cfg, log)
	if err != nil {
		return err
	}

	// Usecases
	doctorUsecase := doctors.NewDoctorUsecase(doctorBackend, cache, seoBuilder, log)
	clinicUsecase := facilities.NewFacilityUsecase(facilities.ClinicKind(), clinicBackend, cache, seoBuilder, log)
	laboratoryUsecase := facilities.NewFacilityUsecase(facilities.LaboratoryKind(), laboratoryBackend, cache, seoBuilder, log)
	spaUsecase := facilities.NewFacilityUsecase(facilities.SpaKind(), spaBackend, cache, seoBuilder, log)
	careHomeUsecase := facilities.NewFacilityUsecase(facilities.CareHomeKind(), careHomeBackend, cache, seoBuilder, log)
	blogUsecase := blog.NewBlogUsecase(blogBackend, cache, seoBuilder, log)
	questionUsecase := questions.NewQuestionUsecase(questionBackend, mailerService, cache, seoBuilder, log)
	cityUsecase := cities.NewCityUsecase(cityBackend, doctorBackend, clinicBackend, laboratoryBackend, spaBackend, careHomeBackend, cache, seoBuilder, log)
	specialtyUsecase := specialties.NewSpecialtyUsecase(specialtyBackend, cache, log)
	registrationUsecase := registrations.NewRegistrationUsecase(registrationBackend, storageService, mailerService, stepTokenManager, log)
	calculatorUsecase := calculators.NewCalculatorUsecase(log)
	sitemapUsecase := sitemap.NewSitemapUsecase(sitemap.Sources{
		Doctors:      doctorBackend,
		Clinics:      clinicBackend,
		Laboratories: laboratoryBackend,
		Spas:         spaBackend,
		CareHomes:    careHomeBackend,
		BlogPosts:    blogBackend,
		Questions:    questionBackend,
		Cities:       cityBackend,
	}, redisRepository, lockerService, seoBuilder.AbsoluteURL, cfg.Sitemap.MaxPagesPerType, log)

	// Scheduler
	err = sitemap.Schedule(bootstrap.Scheduler, sitemapUsecase, cfg.Sitemap.CronInterval, log)
	if err != nil {
		return err
	}
	bootstrap.Scheduler.StartAsync()

	// Controllers
	timeout := controllers.RequestTimeout(cfg.App.RequestTimeoutInSeconds)
	handlers := routers.Controllers{
		Doctor:       controllers.NewDirectoryController(log, doctorUsecase, timeout),
		Clinic:       controllers.NewDirectoryController(log, clinicUsecase, timeout),
		Laboratory:   controllers.NewDirectoryController(log, laboratoryUsecase, timeout),
		Spa:          controllers.NewDirectoryController(log, spaUsecase, timeout),
		CareHome:     controllers.NewDirectoryController(log, careHomeUsecase, timeout),
		Blog:         controllers.NewDirectoryController(log, blogUsecase, timeout),
		Question:     controllers.NewQuestionController(log, questionUsecase, timeout),
		City:         controllers.NewCityController(log, cityUsecase, timeout),
		Specialty:    controllers.NewSpecialtyController(log, specialtyUsecase, timeout),
		Registration: controllers.NewRegistrationController(log, registrationUsecase, timeout),
		Calculator:   controllers.NewCalculatorController(log, calculatorUsecase),
		Sitemap:      controllers.NewSitemapController(log, sitemapUsecase),
		Health: controllers.NewHealthController(log, cfg.App.Version, map[string]controllers.Pinger{
			"redis":   redisRepository,
			"backend": backendClient,
			"minio":   storageService,
		}),
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, bootstrap.AccessLogger, cfg)

	routers.SetupRoutes(bootstrap.Router, cfg, middlewares, handlers)
	return nil
}
