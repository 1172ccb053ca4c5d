package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultConfigFile is the optional TOML file looked up in the project path
	DefaultConfigFile = "qat.toml"
	// DefaultEnvFile is the dotenv file loaded from the project path
	DefaultEnvFile = ".env"

	// DefaultCoverageJSON is the coverage-final.json written by the coverage tool
	DefaultCoverageJSON = "contracts/coverage/coverage-final.json"
	// DefaultCoverageMarkdown is the generated coverage report
	DefaultCoverageMarkdown = "coverage_report.md"
	// DefaultCoverageHTML is the detailed HTML report the Markdown points to
	DefaultCoverageHTML = "contracts/coverage/index.html"

	// DefaultTestPlanMarkdown is the manual test plan to scrape
	DefaultTestPlanMarkdown = "frontend-manual-test-plan.md"
	// DefaultTestPlanCSV is the extracted test case table
	DefaultTestPlanCSV = "frontend-manual-test-plan.csv"

	// DefaultSummaryFile is the machine-readable coverage summary
	DefaultSummaryFile = "coverage-summary.json"
	// DefaultSummaryDir is the directory the summary is stored in
	DefaultSummaryDir = "storage"

	// DefaultFrontendDir receives the frontend test artifacts
	DefaultFrontendDir = "front_end_testing"
	// DefaultBackendDir receives the backend test artifacts
	DefaultBackendDir = "backend_testing"
)

// Environment variables read after the dotenv file is loaded
const (
	EnvConfigFile = "QAT_CONFIG"
	EnvLogLevel   = "QAT_LOG_LEVEL"
)
