package cfg

// Mode selects what the run produces. Exactly one mode is active; it is
// chosen once while loading the configuration.
type Mode string

const (
	ModeRender     Mode = "render"
	ModeCount      Mode = "count"
	ModeListValues Mode = "list-values"
	ModeServe      Mode = "serve"
)

type Cfg struct {
	// Pipeline configuration
	Source        string
	Specs         string
	Mode          Mode
	Output        string
	ListAttribute string
	FromFeed      bool

	// Server configuration
	Port     string
	DBPath   string
	CacheTTL int

	// Application metadata
	UserAgent string
	Timeout   int
	Debug     bool
	Version   string
}
