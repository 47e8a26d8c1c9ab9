// Package config 提供应用配置管理。
//
// 渲染工具只有少量选项，默认值在 DefaultConfig() 中集中定义，
// 由 CLI flags 逐项覆盖。
package config

// Config 应用配置。
type Config struct {
	Render RenderConfig `json:"render" desc:"渲染配置"`
}

// RenderConfig 渲染命令配置。
type RenderConfig struct {
	Values string `json:"values" desc:"取值文件路径 (YAML/JSON)"`
	Output string `json:"output" desc:"输出文件路径, 为空则输出到 stdout"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Values: "",
			Output: "",
		},
	}
}
