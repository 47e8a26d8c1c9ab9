// Package render 提供模板渲染命令。
package render

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260826-go-pkg-placeholder/internal/command"
)

// Command 渲染命令
var Command = &cli.Command{
	Name:      "render",
	Usage:     "渲染 {name} 占位符模板",
	ArgsUsage: "[template]",
	Action:    action,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "values",
			Aliases: []string{"f"},
			Value:   command.Defaults.Render.Values,
			Usage:   "取值文件路径 (YAML/JSON)",
		},
		&cli.StringSliceFlag{
			Name:    "set",
			Aliases: []string{"s"},
			Usage:   "追加取值 key=value, 可重复, 覆盖取值文件",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   command.Defaults.Render.Output,
			Usage:   "输出文件路径, 为空则输出到 stdout",
		},
	},
}
