// Command sitemap regenerates sitemap.xml once, outside the scheduled job,
// and optionally writes the stored document to a file.
package main

import (
	"bhzdravlje-service/internal/app/config"
	"bhzdravlje-service/internal/app/drivers/database"
	"bhzdravlje-service/internal/app/drivers/logger"
	"bhzdravlje-service/internal/app/services/backend/apiclient"
	"bhzdravlje-service/internal/app/services/backend/resources"
	"bhzdravlje-service/internal/app/services/core/sitemap"
	"bhzdravlje-service/internal/app/services/shared/locker"
	"bhzdravlje-service/internal/app/services/shared/redis"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/retry"
	"bhzdravlje-service/internal/pkg/seo"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	output := flag.String("o", "", "write the generated sitemap to this file")
	showVersion := flag.Bool("version", false, "print the build version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Version: %s\nTag: %s\n", Version, Tag)
		return
	}

	driverConfig := config.NewDriverConfig()
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	redisClient := database.NewRedisClient(driverConfig)
	defer redisClient.Close()

	redisRepository := redis.NewRedisRepository(redisClient)
	backendClient := apiclient.NewClient(apiclient.Config{
		BaseURL:           internalConfig.Backend.BaseURL,
		APIKey:            internalConfig.Backend.APIKey,
		Timeout:           time.Duration(internalConfig.Backend.TimeoutInSeconds) * time.Second,
		RequestsPerSecond: internalConfig.Backend.RequestsPerSecond,
		Burst:             internalConfig.Backend.Burst,
		Retry:             retry.DefaultConfig(),
	}, zapLogger)
	seoBuilder := seo.NewBuilder(internalConfig.App.SiteBaseURL, internalConfig.App.DefaultOGImage)

	usecase := sitemap.NewSitemapUsecase(sitemap.Sources{
		Doctors:      resources.NewDoctorBackend(backendClient, zapLogger),
		Clinics:      resources.NewClinicBackend(backendClient, zapLogger),
		Laboratories: resources.NewLaboratoryBackend(backendClient, zapLogger),
		Spas:         resources.NewSpaBackend(backendClient, zapLogger),
		CareHomes:    resources.NewCareHomeBackend(backendClient, zapLogger),
		BlogPosts:    resources.NewBlogBackend(backendClient, zapLogger),
		Questions:    resources.NewQuestionBackend(backendClient, zapLogger),
		Cities:       resources.NewCityBackend(backendClient, zapLogger),
	}, redisRepository, locker.NewLockService(redisRepository, zapLogger), seoBuilder.AbsoluteURL, internalConfig.Sitemap.MaxPagesPerType, zapLogger)

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if err := usecase.Generate(ctx); err != nil {
		zapLogger.Fatal("sitemap generation failed", zap.Error(err))
	}

	if *output == "" {
		return
	}
	document, err := usecase.GetSitemap(ctx)
	if err != nil {
		zapLogger.Fatal("sitemap not available", zap.Error(err))
	}
	if err := os.WriteFile(*output, document, 0o644); err != nil {
		zapLogger.Fatal("failed to write sitemap", zap.String("path", *output), zap.Error(err))
	}
	zapLogger.Info("sitemap written", zap.String("path", *output), zap.Int("bytes", len(document)))
}
