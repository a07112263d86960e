package config

// Configfile represents the structure of the optional config.yaml file.
type Configfile struct {
	Script    string    `yaml:"script"`
	CacheFile string    `yaml:"cache_file"`
	LogLevel  string    `yaml:"log_level"`
	Tools     []ToolDTO `yaml:"tools"`
}

// ToolDTO represents one discovery tool of the fallback chain.
type ToolDTO struct {
	Name  string   `yaml:"name"`
	Cmd   []string `yaml:"cmd"`
	Parse string   `yaml:"parse"`
	Hint  string   `yaml:"hint"`
	Empty string   `yaml:"empty"`
}
