package version

// Filled at build time via -ldflags where a release pipeline exists.
var (
	AppName        = "infobot"
	AppDescription = "Guild information and utility bot"
	BuildDate      = ""
	GoVersion      = ""
)
