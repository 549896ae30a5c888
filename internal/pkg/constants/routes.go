package constants

// Static route constants
const (
	PublicRoute    = "/"
	LoginRoute     = "/login"
	SignupRoute    = "/signup"
	DashboardRoute = "/dashboard"
	ProfileRoute   = "/profile"
)
