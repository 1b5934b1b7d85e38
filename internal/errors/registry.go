package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://vango.dev/docs/animate/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Validation Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryValidation,
		Message:  "Invalid animation",
		Detail:   "The value is not one of the animations known to the client library.",
		DocURL:   docBase + "E001",
	},
	"E002": {
		Category: CategoryValidation,
		Message:  "Invalid placement",
		Detail:   "Anchor placements combine top, center or bottom of the element with top, center or bottom of the window, e.g. \"top-bottom\".",
		DocURL:   docBase + "E002",
	},
	"E003": {
		Category: CategoryValidation,
		Message:  "Invalid easing",
		Detail:   "The value is not one of the easing functions known to the client library.",
		DocURL:   docBase + "E003",
	},
	"E004": {
		Category: CategoryValidation,
		Message:  "Invalid option value",
		Detail:   "Numeric options take integers and flags take booleans.",
		DocURL:   docBase + "E004",
	},

	// ============================================
	// Config Errors (E120-E145)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The animate.json file could not be read or parsed.",
		DocURL:   docBase + "E120",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range or has the wrong format.",
		DocURL:   docBase + "E122",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Project file not found",
		Detail:   "No animate.json was found.",
		DocURL:   docBase + "E141",
	},
	"E145": {
		Category: CategoryConfig,
		Message:  "Unknown project template",
		Detail:   "animate init only knows the templates listed by 'animate init --help'.",
		DocURL:   docBase + "E145",
	},

	// ============================================
	// Settings Errors (E130-E139)
	// ============================================

	"E130": {
		Category: CategorySettings,
		Message:  "Settings source unavailable",
		Detail:   "The global animation settings could not be fetched from their source.",
		DocURL:   docBase + "E130",
	},
	"E131": {
		Category: CategorySettings,
		Message:  "Invalid settings document",
		Detail:   "The global animation settings must be a JSON object keyed by setting name.",
		DocURL:   docBase + "E131",
	},

	// ============================================
	// Render Errors (E150-E159)
	// ============================================

	"E150": {
		Category: CategoryRender,
		Message:  "Render failed",
		Detail:   "The render tree could not be written as HTML.",
		DocURL:   docBase + "E150",
	},
	"E151": {
		Category: CategoryRender,
		Message:  "Invalid selector",
		Detail:   "The CSS selector used to pick elements could not be parsed.",
		DocURL:   docBase + "E151",
	},

	// ============================================
	// CLI Errors (E160-E169)
	// ============================================

	"E160": {
		Category: CategoryCLI,
		Message:  "Invalid flag value",
		Detail:   "A command line flag could not be interpreted.",
		DocURL:   docBase + "E160",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
