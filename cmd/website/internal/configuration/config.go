package configuration

import "github.com/adampresley/configinator"

type Config struct {
	BackendTimeoutSeconds int    `flag:"backendtimeout" env:"BACKEND_TIMEOUT_SECONDS" default:"15" description:"Seconds to wait for the backend API before giving up"`
	BackendURL            string `flag:"backendurl" env:"BACKEND_URL" default:"http://localhost:8000" description:"Base URL of the KinetsuList backend API"`
	CookieMaxAgeDays      int    `flag:"cookiemaxage" env:"COOKIE_MAX_AGE_DAYS" default:"365" description:"Days a visitor cookie stays valid. Saved lists are tied to it"`
	CookieSecret          string `flag:"cookiesecret" env:"COOKIE_SECRET" default:"password" description:"Secret for encoding cookies"`
	DSN                   string `flag:"dsn" env:"DSN" default:"file:./data/kinetsulist.db" description:"Data source name"`
	Host                  string `flag:"host" env:"HOST" default:"localhost:8080" description:"The address and port to bind the HTTP server to"`
	LogLevel              string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxFetchWorkers       int    `flag:"mfw" env:"MAX_FETCH_WORKERS" default:"4" description:"Maximum number of concurrent backend requests when prerendering rows"`
	PrerenderRows         bool   `flag:"prerender" env:"PRERENDER_ROWS" default:"false" description:"Load gallery rows on the server before sending the browse page"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}
