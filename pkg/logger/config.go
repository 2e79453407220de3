package logger

// Config 日志配置
type Config struct {
	Level       string `yaml:"level"`       // debug / info / warn / error
	Format      string `yaml:"format"`      // console 或 json
	Development bool   `yaml:"development"` // 开发模式：彩色级别、调用栈更详细
}

// DefaultConfig 返回默认配置（info 级别，控制台输出）
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "console",
		Development: false,
	}
}

// VerboseConfig 返回详细日志配置（对应命令行 --verbose）
func VerboseConfig() Config {
	return Config{
		Level:       "debug",
		Format:      "console",
		Development: true,
	}
}
