package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Query parameter carrying the user-service session token.
	QuerySessionToken = "session_token"

	// Context keys
	ContextKeyUser      = "auth_user"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableFarms              = "farms"
	TableFarmStates         = "farm_states"
	TablePlots              = "plots"
	TablePlotStates         = "plot_states"
	TableUserRoleFarm       = "user_role_farm"
	TableUserRoleFarmStates = "user_role_farm_states"
	TableAreaUnits          = "area_units"
	TableCoffeeVarieties    = "coffee_varieties"

	ErrMsgInternalServerError = "Error interno del servidor"
	ErrMsgSessionExpired      = "Token de sesión expirado"
	ErrMsgRateLimited         = "Demasiadas solicitudes, intenta de nuevo más tarde"
)
