package routes

import (
	"net/http"
	"time"

	"medhub/config"
	"medhub/handlers"
	"medhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, login, password reset and logout.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		patients := api.Group("/patients")
		patients.POST("/signup", hb.PatientSignup)
		patients.POST("/login", hb.PatientLogin)
		patients.POST("/forgot-password", hb.PatientForgotPassword)

		doctors := api.Group("/doctors")
		doctors.POST("/signup", hb.DoctorSignup)
		doctors.POST("/login", hb.DoctorLogin)
		doctors.POST("/forgot-password", hb.DoctorForgotPassword)

		api.DELETE("/logout", hb.Logout)
	}
}

// RegisterPatientRoutes registers the patient-facing endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
		api.GET("/me", hb.GetPatientProfile)
		api.PUT("/me", hb.UpdatePatientProfile)
		api.GET("/me/appointments", hb.ListPatientAppointments)
		api.GET("/me/prescriptions", hb.ListPatientPrescriptions)
	}

	// Doctor discovery and booking are patient-side views of doctor data.
	browse := r.Group("/api/doctors")
	{
		browse.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
		browse.GET("", hb.ListDoctors)
		browse.GET("/:id", hb.GetDoctorByID)
		browse.GET("/:id/availability", hb.GetDoctorAvailability)
		browse.GET("/:id/booked-slots", hb.GetBookedSlots)
	}

	appointments := r.Group("/api/appointments")
	{
		appointments.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
		appointments.POST("", hb.BookAppointment)
	}
}

// RegisterDoctorRoutes registers the doctor-facing endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors/me")
	{
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		api.GET("", hb.GetDoctorProfile)
		api.PUT("", hb.UpdateDoctorProfile)
		api.PUT("/availability", hb.SetAvailability)
		api.GET("/availability", hb.GetOwnAvailability)
		api.GET("/appointments", hb.ListDoctorAppointments)
		api.GET("/colleagues", hb.ListDoctors)
	}

	referrals := r.Group("/api/referrals")
	{
		referrals.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		referrals.POST("", hb.ReferAppointment)
	}

	prescriptions := r.Group("/api/prescriptions")
	{
		prescriptions.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		prescriptions.POST("", hb.CreatePrescription)
		prescriptions.PUT("/:id", hb.UpdatePrescription)
		prescriptions.DELETE("", hb.DeletePrescriptions)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MedHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	RegisterAuthRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterHealthRoute(r)
}
