package domain

// DefaultScript is the runner script looked up in the working directory.
const DefaultScript = "make.py"

// Settings holds the resolved launcher configuration.
type Settings struct {
	// Script is the file name of the runner script in the project directory.
	Script string
	// CacheFile is the absolute path of the environment cache.
	CacheFile string
	// LogLevel is one of debug, info, warn or error.
	LogLevel string
	// Tools is the ordered discovery chain. The last tool is the terminal fallback.
	Tools []ProbeTool
}
