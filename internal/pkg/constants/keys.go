package constants

// viper configuration keys
const (
	ViperServerAddr     = "server.addr"
	ViperDatabaseDSN    = "database.dsn"
	ViperUploadsDir     = "uploads.dir"
	ViperUploadsMaxSize = "uploads.max_size"
	ViperAuthSecret     = "auth.secret"
	ViperLoggerLevel    = "logger.level"
)

// CookieKeyAuthToken is set by the external auth flow and checked by the
// registration middleware.
const CookieKeyAuthToken = "auth_token"

const CtxKeyUserID = "user_id"
