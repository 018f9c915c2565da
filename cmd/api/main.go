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

	"jalsetu/internal/adapter/api"
	"jalsetu/internal/adapter/api/handler"
	apimiddleware "jalsetu/internal/adapter/api/middleware"
	"jalsetu/internal/adapter/api/router"
	"jalsetu/internal/adapter/repository"
	"jalsetu/internal/infrastructure/notify"
	"jalsetu/internal/infrastructure/storage"
	"jalsetu/internal/usecase"
	"jalsetu/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
		serviceAccountPath = ""
	} else if serviceAccountPath != "" {
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

	storageClient, err := storage.NewCloudStorageClient(
		ctx,
		cfg.StorageBucket,
		cfg.FirebaseProject,
		serviceAccountPath,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	actorRepo := repository.NewFirestoreActorRepository(firestoreClient)
	complaintRepo := repository.NewFirestoreComplaintRepository(firestoreClient)
	resolutionRepo := repository.NewFirestoreResolutionRepository(firestoreClient)
	workRepo := repository.NewFirestoreAssignedWorkRepository(firestoreClient)
	inventoryRepo := repository.NewFirestoreInventoryRepository(firestoreClient)
	requestRepo := repository.NewFirestoreInventoryRequestRepository(firestoreClient)
	transactionRepo := repository.NewFirestoreTransactionRepository(firestoreClient)
	uow := repository.NewFirestoreUnitOfWork(firestoreClient)

	hub := notify.NewHub()
	hub.Start(ctx)

	hierarchyUseCase := usecase.NewHierarchyUseCase(actorRepo)
	complaintUseCase := usecase.NewComplaintUseCase(complaintRepo, workRepo, hierarchyUseCase, uow, hub)
	resolutionUseCase := usecase.NewResolutionUseCase(uow, hierarchyUseCase, resolutionRepo, hub)
	inventoryUseCase := usecase.NewInventoryUseCase(inventoryRepo, requestRepo, hierarchyUseCase, uow)
	billingUseCase := usecase.NewBillingUseCase(transactionRepo, hierarchyUseCase, uow)

	handler.Setup(hierarchyUseCase, complaintUseCase, resolutionUseCase, inventoryUseCase, billingUseCase)
	handler.SetupPhotoHandler(storageClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	actorMiddleware := apimiddleware.NewActorMiddleware(hierarchyUseCase)

	notificationHandler := handler.NewNotificationHandler(hub, authMiddleware)

	router.Setup(e, authMiddleware, actorMiddleware)
	router.SetupNotificationRouter(e, notificationHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
