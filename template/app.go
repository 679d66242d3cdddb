package template

// AppConfig is the part of an application's configuration that template
// generation reads. It is never modified by the Generator.
type AppConfig struct {
	// Template is the template location. Empty means the platform default.
	Template string

	// TemplateBranch overrides the checkout reference. Empty means the
	// reference derived from the tool version.
	TemplateBranch string

	AppName     string
	FormalName  string
	Bundle      string
	Version     string
	Description string
	Sources     []string
	URL         string
	Author      string
	AuthorEmail string
	Requires    []string
	Icon        string
	Splash      string
	Supported   bool

	// DocumentTypes maps a document type name to its description.
	DocumentTypes map[string]map[string]any
}

// Target names the platform and output format to generate for.
type Target struct {
	Platform     string
	OutputFormat string

	// OutputDir is where the rendered project is written. It is created
	// if missing.
	OutputDir string
}

// Identifier returns "<platform>-<output format>", e.g. "tester-dummy".
func (t Target) Identifier() string {
	return t.Platform + "-" + t.OutputFormat
}

// Result describes what Generate resolved. It is filled in even when
// Generate fails so the caller can persist the template location.
type Result struct {
	// Template is the location that was used.
	Template string

	// TemplatePopulated is true when the app had no template and Template
	// is the platform default.
	TemplatePopulated bool

	// Checkout is the reference of the last render attempt.
	Checkout string

	// Attempts counts render attempts, 1 or 2.
	Attempts int
}
