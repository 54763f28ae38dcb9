package schema

// Custom string types for type safety.
type (
	// IndicatorKey represents keys used in the business-likelihood indicators.
	IndicatorKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// AccountType represents the kind of account that owns repositories.
	AccountType string

	// TrendWindow represents a coarse time-range selector for trending queries.
	TrendWindow string
)

// Indicator keys used in repository analysis.
const (
	IndicatorLicense      IndicatorKey = "has_license"
	IndicatorDescription  IndicatorKey = "has_description"
	IndicatorWebsite      IndicatorKey = "has_website"
	IndicatorHighStars    IndicatorKey = "high_stars"
	IndicatorActive       IndicatorKey = "active_maintenance"
	IndicatorTopics       IndicatorKey = "has_topics"
	IndicatorContributors IndicatorKey = "has_contributors"
)

// AllIndicatorKeys returns all indicator keys in display order.
var AllIndicatorKeys = []IndicatorKey{
	IndicatorLicense,
	IndicatorDescription,
	IndicatorWebsite,
	IndicatorHighStars,
	IndicatorActive,
	IndicatorTopics,
	IndicatorContributors,
}

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All account types supported.
const (
	OrganizationAccount AccountType = "organization"
	UserAccount         AccountType = "user"
	UnknownAccount      AccountType = "unknown"
)

// All trend windows supported.
const (
	DailyWindow   TrendWindow = "daily"
	WeeklyWindow  TrendWindow = "weekly" // default
	MonthlyWindow TrendWindow = "monthly"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// TrendWindowDays maps each trend window to its lookback in days.
var TrendWindowDays = map[TrendWindow]int{
	DailyWindow:   1,
	WeeklyWindow:  7,
	MonthlyWindow: 30,
}

// BusinessKeywords is the fixed vocabulary of commercial-indicator terms
// matched against README text. Matching is case-insensitive substring
// containment and each keyword counts at most once.
var BusinessKeywords = []string{
	"saas",
	"company",
	"enterprise",
	"platform",
	"startup",
	"business",
	"pricing",
	"customers",
	"commercial",
	"b2b",
	"official",
	"solutions",
}

// ReadmeCandidates is the ordered list of filenames tried when retrieving a
// repository README. The first entry is the primary name; the rest are
// fallbacks tried in order until one is found.
var ReadmeCandidates = []string{
	"README.md",
	"readme.md",
	"README.rst",
	"README.txt",
	"README",
	"Readme.md",
}
