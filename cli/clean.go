package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/xyz-company/xyzsite"
)

var CleanCommand = &cli.Command{
	Name:      "clean",
	Usage:     "Delete the static export (default: outputDir in config)",
	ArgsUsage: "[route (optional)]",
	Flags:     []cli.Flag{configFlag()},
	Action: func(c *cli.Context) error {
		config, err := xyzsite.ResolveConfig(xyzsite.RuntimeConfig{ConfigPath: c.String("config")})
		if err != nil {
			return err
		}
		target := config.OutputDir

		if c.Args().Len() > 0 {
			route := strings.Trim(c.Args().Get(0), "/")
			if strings.Contains(route, "..") {
				return fmt.Errorf("invalid route: %s", route)
			}
			target = filepath.Join(config.OutputDir, route)
		}

		info, err := os.Stat(target)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println("🧼 Nothing to clean:", target)
				return nil
			}
			return fmt.Errorf("failed to access path: %w", err)
		}

		if !info.IsDir() {
			return fmt.Errorf("not a directory: %s", target)
		}

		fmt.Println("🧹 Cleaning:", target)
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to clean export: %w", err)
		}

		fmt.Println("✅ Done.")
		return nil
	},
}
