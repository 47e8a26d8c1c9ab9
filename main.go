package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260826-go-pkg-placeholder/internal/command/render"
)

const appVersion = "0.1.0"

func main() {
	app := &cli.Command{
		Name:    "placeholder",
		Usage:   "占位符模板渲染工具",
		Version: appVersion,
		Commands: []*cli.Command{
			render.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
