package main

import (
	"context"
	"log/slog"
	"os"

	app "github.com/lwmacct/260826-go-pkg-placeholder/internal/command/render"
)

func main() {
	if err := app.Command.Run(context.Background(), os.Args); err != nil {
		slog.Error("应用程序运行失败", "error", err)
		os.Exit(1)
	}
}
