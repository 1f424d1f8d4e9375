package codes

// Severity ranks how urgently a recorded fault needs operator attention.
// It drives the console log level and whether external alerting fires.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Valid reports whether s is one of the four defined levels.
func (s Severity) Valid() bool {
	_, ok := severityRank[s]
	return ok
}

// AtLeast reports whether s is as severe as min. Unknown levels compare
// as less severe than everything.
func (s Severity) AtLeast(min Severity) bool {
	return severityRank[s] >= severityRank[min]
}

// Kind describes one canonical fault classification shared across services.
// Status and Severity are defaults; constructors may refine Severity from
// the underlying cause but never the code itself.
type Kind struct {
	Code     string
	Status   int
	Severity Severity
	Message  string
}

var (
	// Validation indicates rejected caller input.
	Validation = Kind{Code: "VALIDATION_ERROR", Status: 400, Severity: SeverityLow, Message: "validation failed"}
	// Authentication indicates missing or invalid credentials.
	Authentication = Kind{Code: "AUTHENTICATION_ERROR", Status: 401, Severity: SeverityMedium, Message: "authentication failed"}
	// Authorization indicates the caller lacks capability.
	Authorization = Kind{Code: "AUTHORIZATION_ERROR", Status: 403, Severity: SeverityMedium, Message: "permission denied"}
	// NotFound indicates the requested resource does not exist.
	NotFound = Kind{Code: "NOT_FOUND", Status: 404, Severity: SeverityLow, Message: "resource not found"}
	// Conflict indicates a resource state conflict.
	Conflict = Kind{Code: "CONFLICT", Status: 409, Severity: SeverityLow, Message: "resource conflict"}
	// RateLimit indicates the caller exceeded its request budget.
	RateLimit = Kind{Code: "RATE_LIMIT_EXCEEDED", Status: 429, Severity: SeverityLow, Message: "too many requests"}
	// Internal indicates an unclassified server-side failure.
	Internal = Kind{Code: "INTERNAL_SERVER_ERROR", Status: 500, Severity: SeverityMedium, Message: "internal server error"}
	// Database indicates a database operation failed.
	Database = Kind{Code: "DATABASE_ERROR", Status: 500, Severity: SeverityMedium, Message: "database operation failed"}
	// FileSystem indicates a file system operation failed.
	FileSystem = Kind{Code: "FILE_SYSTEM_ERROR", Status: 500, Severity: SeverityMedium, Message: "file system operation failed"}
	// Network indicates an upstream network operation failed.
	Network = Kind{Code: "NETWORK_ERROR", Status: 502, Severity: SeverityMedium, Message: "network operation failed"}
	// Timeout indicates a collaborator signalled a timeout.
	Timeout = Kind{Code: "TIMEOUT_ERROR", Status: 504, Severity: SeverityMedium, Message: "operation timed out"}
	// Unavailable indicates a dependency is temporarily unavailable.
	Unavailable = Kind{Code: "SERVICE_UNAVAILABLE", Status: 503, Severity: SeverityHigh, Message: "service unavailable"}
)

// Unknown is the fallback applied when a fault reaches the log pipeline
// without a classification. It is not part of the Registry.
var Unknown = Kind{Code: "UNKNOWN_ERROR", Status: 500, Severity: SeverityMedium, Message: "unknown error"}

// Registry exposes the static taxonomy for validation or docs.
var Registry = []Kind{
	Validation,
	Authentication,
	Authorization,
	NotFound,
	Conflict,
	RateLimit,
	Internal,
	Database,
	FileSystem,
	Network,
	Timeout,
	Unavailable,
}

// ValidStatus reports whether s is a usable protocol status.
func ValidStatus(s int) bool {
	return s >= 100 && s <= 599
}
