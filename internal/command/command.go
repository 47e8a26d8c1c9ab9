// Package command 提供命令行功能的公共部分。
package command

import "github.com/lwmacct/260826-go-pkg-placeholder/internal/config"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
