package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"lumera/internal/adapter/api"
	"lumera/internal/adapter/api/handler"
	apimiddleware "lumera/internal/adapter/api/middleware"
	"lumera/internal/adapter/api/router"
	"lumera/internal/adapter/repository"
	"lumera/internal/domain/service"
	"lumera/internal/infrastructure/firebase"
	"lumera/internal/infrastructure/mail"
	"lumera/internal/infrastructure/storage"
	"lumera/internal/usecase"
	"lumera/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account JSON from the environment wins; a file path is the
	// local-development fallback.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	var mailer service.Mailer
	if cfg.SendGridAPIKey != "" {
		mailer = mail.NewSendGridClient(cfg.SendGridAPIKey, cfg.MailFrom)
	} else {
		log.Printf("SENDGRID_API_KEY not set, order confirmation emails disabled")
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	cartRepo := repository.NewFirestoreCartRepository(firestoreClient)
	couponRepo := repository.NewFirestoreCouponRepository(firestoreClient)
	dealRepo := repository.NewFirestoreDealRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)

	productUseCase := usecase.NewProductUseCase(productRepo, reviewRepo, userRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, mailer)
	couponUseCase := usecase.NewCouponUseCase(couponRepo)
	dealUseCase := usecase.NewDealUseCase(dealRepo, storageClient)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, productRepo)
	uploadUseCase := usecase.NewUploadUseCase(storageClient)

	handler.Setup(productUseCase, cartUseCase, orderUseCase, couponUseCase, dealUseCase, reviewUseCase, uploadUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.AllowedOrigin},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE},
	}))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebase.NewAuthClient(authClient))
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
