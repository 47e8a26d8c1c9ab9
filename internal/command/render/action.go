package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260826-go-pkg-placeholder/pkg/placeholder"
	"github.com/lwmacct/260826-go-pkg-placeholder/pkg/valuemap"
)

func action(ctx context.Context, cmd *cli.Command) error {
	template, err := readTemplate(cmd.Args().First())
	if err != nil {
		return err
	}

	// 取值来源：取值文件 → --set 覆盖
	values := map[string]string{}
	if path := cmd.String("values"); path != "" {
		fileValues, err := valuemap.FromFile(path)
		if err != nil {
			return fmt.Errorf("load values: %w", err)
		}
		valuemap.Merge(values, fileValues)
		slog.Debug("Loaded values from file", "path", path, "count", len(fileValues))
	}
	if pairs := cmd.StringSlice("set"); len(pairs) > 0 {
		setValues, err := valuemap.FromPairs(pairs)
		if err != nil {
			return fmt.Errorf("parse --set: %w", err)
		}
		valuemap.Merge(values, setValues)
	}

	output, err := placeholder.Render(template, values)
	if err != nil {
		// 缺少取值时不写任何输出
		var missing *placeholder.MissingKeyError
		if errors.As(err, &missing) {
			slog.Error("模板渲染失败", "missing", missing.Name)
		}

		return fmt.Errorf("render template: %w", err)
	}

	return writeOutput(cmd.String("output"), output)
}

// readTemplate 读取模板文本，path 为空或 "-" 时从 stdin 读取。
func readTemplate(path string) (string, error) {
	if path == "" || path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read template from stdin: %w", err)
		}

		return string(content), nil
	}

	content, err := os.ReadFile(path) //nolint:gosec // path is from trusted CLI args
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", path, err)
	}

	return string(content), nil
}

func writeOutput(path, output string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, output)

		return err
	}

	if err := os.WriteFile(path, []byte(output), 0o644); err != nil { //nolint:gosec // rendered output is not sensitive
		return fmt.Errorf("write output %s: %w", path, err)
	}
	slog.Info("渲染完成", "output", path)

	return nil
}
