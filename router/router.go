package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-api/controllers"
	"github.com/yeremiapane/restaurant-api/database"
	"github.com/yeremiapane/restaurant-api/middlewares"
	"github.com/yeremiapane/restaurant-api/utils"
	"gorm.io/gorm"
)

// Options carries the engine settings that come from configuration.
type Options struct {
	AllowedOrigins []string
	StartedAt      time.Time
}

// SetupRouter wires the gorm-backed stores into the HTTP routes.
func SetupRouter(db *gorm.DB, opts Options) *gin.Engine {
	return NewEngine(database.NewMenuStore(db), database.NewReservationStore(db), opts)
}

func NewEngine(menus database.MenuStore, reservations database.ReservationStore, opts Options) *gin.Engine {
	if opts.StartedAt.IsZero() {
		opts.StartedAt = time.Now()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	r := gin.New()
	// A trailing slash gets the 404 envelope instead of a redirect.
	r.RedirectTrailingSlash = false

	// The logger wraps recovery so panicking requests are logged with their 500.
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.Recovery())
	r.Use(middlewares.CORSMiddlewares(opts.AllowedOrigins))
	r.Use(middlewares.SecurityHeaders())

	systemCtrl := controllers.NewSystemController(opts.StartedAt)
	menuCtrl := controllers.NewMenuController(menus)
	reservationCtrl := controllers.NewReservationController(reservations)

	r.GET("/health", systemCtrl.Health)
	r.GET("/", systemCtrl.Index)

	api := r.Group("/api")
	{
		api.GET("/menu", menuCtrl.GetAllMenus)
		api.GET("/menu/:id", menuCtrl.GetMenuByID)
		api.POST("/menu", menuCtrl.CreateMenu)

		api.GET("/reservations", reservationCtrl.GetAllReservations)
		api.POST("/reservations", reservationCtrl.CreateReservation)
	}

	r.NoRoute(utils.RespondNotRouted)

	return r
}
