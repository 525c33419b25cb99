package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wedmarket/wedding-vendor-backend/internal/auth"
	"github.com/wedmarket/wedding-vendor-backend/internal/availability"
	availabilityHttp "github.com/wedmarket/wedding-vendor-backend/internal/availability/http"
	"github.com/wedmarket/wedding-vendor-backend/internal/booking"
	bookingHttp "github.com/wedmarket/wedding-vendor-backend/internal/booking/http"
	"github.com/wedmarket/wedding-vendor-backend/internal/document"
	documentHttp "github.com/wedmarket/wedding-vendor-backend/internal/document/http"
	"github.com/wedmarket/wedding-vendor-backend/internal/listing"
	listingHttp "github.com/wedmarket/wedding-vendor-backend/internal/listing/http"
	"github.com/wedmarket/wedding-vendor-backend/internal/notification"
	notificationHttp "github.com/wedmarket/wedding-vendor-backend/internal/notification/http"
	"github.com/wedmarket/wedding-vendor-backend/internal/offday"
	offdayHttp "github.com/wedmarket/wedding-vendor-backend/internal/offday/http"
	"github.com/wedmarket/wedding-vendor-backend/internal/user"
	userHttp "github.com/wedmarket/wedding-vendor-backend/internal/user/http"
	"github.com/wedmarket/wedding-vendor-backend/internal/vendors"
	vendorHttp "github.com/wedmarket/wedding-vendor-backend/internal/vendors/http"
	"github.com/wedmarket/wedding-vendor-backend/internal/verification"
	verificationHttp "github.com/wedmarket/wedding-vendor-backend/internal/verification/http"
)

// Config bundles every service the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService         user.Service
	VendorService       vendors.Service
	ListingService      listing.Service
	BookingService      booking.Service
	OffDayService       offday.Service
	AvailabilityService *availability.Service
	VerificationService verification.Service
	DocumentService     document.Service
	NotificationService notification.Service

	JWTManager *auth.JWTManager
}

// NewRouter assembles the Gin engine: global middleware, CORS and every
// module's routes under /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:8081"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.ExposeHeaders = []string{"X-Degraded"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	vendorHandler := vendorHttp.NewHandler(cfg.VendorService)
	listingHandler := listingHttp.NewHandler(cfg.ListingService, cfg.VendorService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.VendorService)
	offdayHandler := offdayHttp.NewHandler(cfg.OffDayService, cfg.VendorService)
	availabilityHandler := availabilityHttp.NewHandler(cfg.AvailabilityService, cfg.VendorService)
	verificationHandler := verificationHttp.NewHandler(cfg.VerificationService)
	documentHandler := documentHttp.NewHandler(cfg.DocumentService, cfg.VendorService)
	notificationHandler := notificationHttp.NewHandler(cfg.NotificationService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		vendorHttp.RegisterRoutes(v1, vendorHandler, authMiddleware)
		listingHttp.RegisterRoutes(v1, listingHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		offdayHttp.RegisterRoutes(v1, offdayHandler, authMiddleware)
		availabilityHttp.RegisterRoutes(v1, availabilityHandler)
		verificationHttp.RegisterRoutes(v1, verificationHandler, authMiddleware)
		documentHttp.RegisterRoutes(v1, documentHandler, authMiddleware)
		notificationHttp.RegisterRoutes(v1, notificationHandler, authMiddleware)
	}

	return r
}
