package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Clock"
	AppID             = "com.github.tartampluch.go-clock"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	IconFile          = "Icon.png"
	EnvPrefix         = "GOCLOCK_"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// FilePermShared represents -rw-r--r--, used for exported snapshots.
	FilePermShared fs.FileMode = 0644

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagSnapshot     = "snapshot"
	FlagSize         = "size"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescSnapshot = "Render the current time to the given PNG file and exit"
	FlagDescSize     = "Edge length in pixels of the -snapshot image"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Dial Geometry
// -----------------------------------------------------------------------------

const (
	// FaceSize is the edge of the square face in geometry units.
	// The hands and ticks are laid out around (FaceSize/2, FaceSize/2).
	FaceSize = 600

	HourPeriod   = 12
	MinutePeriod = 60
	SecondPeriod = 60

	HourHandLength   = 100
	MinuteHandLength = 190
	SecondHandLength = 215
	HubRadius        = 7

	TickCount       = 12
	TickInnerRadius = 240
	TickOuterRadius = 270
	TickHalfWidth   = 0.02 // hours

	MinuteStyleTapered = "tapered"
	MinuteStyleLine    = "line"

	// IconSize is the edge of the generated application icon.
	IconSize = 128
)

// -----------------------------------------------------------------------------
// Scheduling
// -----------------------------------------------------------------------------

const (
	DefaultTickInterval = 10 * time.Millisecond
	MinTickMillis       = 10
	MaxTickMillis       = 1000

	// SnapshotInterval throttles PNG encoding for the snapshot server.
	SnapshotInterval = 1 * time.Second

	// TrayInterval throttles the tray clock label.
	TrayInterval = 1 * time.Second

	TrayTimeFormat = "15:04:05"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	SettingsWindowWidth = 420
	ClockWindowSize     = 600

	// Preference Keys
	PrefLanguage      = "language"
	PrefTickMillis    = "tick_interval_ms"
	PrefMinuteStyle   = "minute_style"
	PrefShowSeconds   = "show_seconds"
	PrefServerEnabled = "server_enabled"
	PrefServerPort    = "server_port"
	PrefLastRun       = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinClock        = "win_clock_title"
	TKeyWinSettings     = "win_settings_title"
	TKeyMenuShowClock   = "menu_show_clock"
	TKeyMenuSettings    = "menu_settings"
	TKeyTrayStatus      = "tray_status" // Requires Time
	TKeyLblGeneral      = "lbl_general"
	TKeyLblLanguage     = "lbl_language"
	TKeyHelpLanguage    = "help_language"
	TKeyLblTick         = "lbl_tick_interval"
	TKeyHelpTick        = "help_tick_interval"
	TKeyLblMillis       = "lbl_ms_suffix"
	TKeyLblDisplay      = "lbl_display"
	TKeyLblMinuteStyle  = "lbl_minute_style"
	TKeyStyleTapered    = "style_tapered"
	TKeyStyleLine       = "style_line"
	TKeyLblShowSeconds  = "lbl_show_seconds"
	TKeyLblSnapshot     = "lbl_snapshot"
	TKeyLblEnableServer = "lbl_enable_server"
	TKeyLblPort         = "lbl_server_port"
	TKeyHelpPort        = "help_port"
	TKeyBtnSave         = "btn_save"
	TKeyBtnCancel       = "btn_cancel"
	TKeyLblFooter       = "lbl_footer"

	// Validation Errors (UI)
	TKeyErrPortReq   = "err_port_required"
	TKeyErrPortNum   = "err_port_number"
	TKeyErrPortRange = "err_port_range"
	TKeyErrTickRange = "err_tick_range"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultPort          = "18081"
	DefaultLanguage      = "en"
	DefaultServerEnabled = false
	DefaultShowSeconds   = true
	DefaultSnapshotSize  = FaceSize

	// Limits
	MinPort = 1
	MaxPort = 65535
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "1"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	RouteSnapshot      = "/clock.png"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeImagePNG        = "image/png"
	MimeNoSniff         = "nosniff"
	CacheControlNoCache = "no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidPeriod    = "invalid dial period: must be greater than zero"
	ErrRenderFrame      = "failed to render clock frame"
	ErrPNGEncode        = "failed to encode PNG frame"
	ErrSnapshotWrite    = "failed to write snapshot file"
	ErrConfigLoad       = "failed to load environment configuration"
	ErrConfigInvalid    = "invalid configuration"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrPortNumber       = "server port must be a number"
	ErrPortRange        = "server port must be between 1 and 65535"
	ErrTickRange        = "tick interval must be between 10 and 1000 ms"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrTrayNotSupported = "system tray not supported on this platform/driver"
	ErrIconRender       = "failed to render application icon"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Clock initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackTrayLabel = "Go Clock"
	TitleStartupError = "Startup Error"

	MsgPortBusy        = "Port %s is busy or unavailable."
	MsgSchedulerStart  = "Redraw scheduler started"
	MsgSchedulerStop   = "Scheduler stopping due to context cancellation"
	MsgUpdateTick      = "Updating tick interval"
	MsgFrameRendered   = "Frame rendered"
	MsgFrameSkipped    = "Skipping frame after render error"
	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Context cancelled, shutting down UI"
	MsgAppStarting     = "Starting application"
	MsgServerListen    = "HTTP server listening"
	MsgServerStop      = "Shutting down HTTP server..."
	MsgServerDisabled  = "Snapshot server disabled"
	MsgSnapshotUpdated = "Snapshot updated"
	MsgSnapshotWritten = "Snapshot written"
	MsgConfigLoaded    = "Configuration loaded"
	MsgPrefsChanged    = "Preferences changed, reloading layout"
	MsgSettingsSaved   = "Saving preferences"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyAddr      = "addr"
	LogKeyInterval  = "interval"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyDial      = "dial"
	LogKeyHours     = "hours"
	LogKeyMinutes   = "minutes"
	LogKeySeconds   = "seconds"
	LogKeyShapes    = "shapes"
	LogKeyStyle     = "minute_style"
	LogKeyEnabled   = "enabled"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "date"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI        = "ui"
	CompUISet     = "ui_settings"
	CompEngine    = "engine"
	CompScheduler = "scheduler"
	CompServer    = "server"
	CompConfig    = "config"
	CompMain      = "main"
	CompI18n      = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
