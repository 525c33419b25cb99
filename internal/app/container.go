package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/wedmarket/wedding-vendor-backend/internal/api"
	"github.com/wedmarket/wedding-vendor-backend/internal/auth"
	"github.com/wedmarket/wedding-vendor-backend/internal/availability"
	"github.com/wedmarket/wedding-vendor-backend/internal/booking"
	"github.com/wedmarket/wedding-vendor-backend/internal/document"
	"github.com/wedmarket/wedding-vendor-backend/internal/jobs"
	"github.com/wedmarket/wedding-vendor-backend/internal/listing"
	"github.com/wedmarket/wedding-vendor-backend/internal/notification"
	"github.com/wedmarket/wedding-vendor-backend/internal/offday"
	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/storage"
	"github.com/wedmarket/wedding-vendor-backend/internal/user"
	"github.com/wedmarket/wedding-vendor-backend/internal/vendors"
	"github.com/wedmarket/wedding-vendor-backend/internal/verification"
)

// Config holds the dependencies and settings required to start the
// application.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	DBPool      *pgxpool.Pool
	RedisClient *redis.Client

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	StoragePath          string
	DefaultTimezone      string
	DefaultCapacity      int
	AvailabilityDebounce time.Duration
	VerificationCodeTTL  time.Duration
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router    *gin.Engine
	Scheduler *jobs.Scheduler

	// CalendarLoader is the session-level calendar API for embedding
	// clients (gateways, bots): debounced month loads with stale-response
	// discard. The plain HTTP surface serves stateless requests and does
	// not go through it.
	CalendarLoader *availability.Loader
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init storage failed: %w", err)
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Vendor module
	vendorRepo := vendors.NewPgxRepository(cfg.DBPool)
	vendorService := vendors.NewService(vendorRepo, cfg.DefaultTimezone, cfg.DefaultCapacity)

	// Listing module
	listingRepo := listing.NewPgxRepository(cfg.DBPool)
	listingService := listing.NewService(listingRepo, vendorService)

	// Availability module
	availabilityData := availability.NewPgxDataAccess(cfg.DBPool)
	availabilityService := availability.NewService(availabilityData)

	// Notification module
	notificationRepo := notification.NewPgxRepository(cfg.DBPool)
	notificationService := notification.NewService(notificationRepo)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, vendorService, listingService, availabilityService, notificationService)

	// Off-day module
	offdayRepo := offday.NewPgxRepository(cfg.DBPool)
	offdayService := offday.NewService(offdayRepo)

	// Verification module
	codeStore := verification.NewRedisStore(cfg.RedisClient)
	verificationService := verification.NewService(codeStore, userService, verification.LogSender{}, cfg.VerificationCodeTTL)

	// Document module
	documentRepo := document.NewPgxRepository(cfg.DBPool)
	documentService := document.NewService(documentRepo, store)

	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		UserService:         userService,
		VendorService:       vendorService,
		ListingService:      listingService,
		BookingService:      bookingService,
		OffDayService:       offdayService,
		AvailabilityService: availabilityService,
		VerificationService: verificationService,
		DocumentService:     documentService,
		NotificationService: notificationService,
		JWTManager:          jwtManager,
	})

	return &Container{
		Router:         router,
		Scheduler:      jobs.NewScheduler(bookingService),
		CalendarLoader: availability.NewLoader(availabilityService, cfg.AvailabilityDebounce),
	}, nil
}
