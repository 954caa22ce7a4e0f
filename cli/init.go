package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"github.com/xyz-company/xyzsite/core"
	"github.com/xyz-company/xyzsite/site"
	"gopkg.in/yaml.v3"
)

var InitCommand = &cli.Command{
	Name:      "init",
	Usage:     "Write an editable copy of the built-in site content",
	ArgsUsage: "[dir (default: content)]",
	Flags: []cli.Flag{
		configFlag(),
		&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "overwrite an existing directory"},
	},
	Action: func(c *cli.Context) error {
		targetDir := "content"
		if c.Args().Len() > 0 {
			targetDir = c.Args().Get(0)
		}

		if entries, err := os.ReadDir(targetDir); err == nil && len(entries) > 0 && !c.Bool("force") {
			return cli.Exit(fmt.Sprintf("❌ %s is not empty (use --force to overwrite)", targetDir), 1)
		}

		fmt.Println("🚀 Writing site content to:", targetDir)
		if err := copyEmbeddedDir(site.FS, ".", targetDir); err != nil {
			return fmt.Errorf("failed to write content: %w", err)
		}

		configPath := c.String("config")
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			data, err := yaml.Marshal(core.Config{
				Port:       core.DefaultPort,
				ContentDir: targetDir,
				OutputDir:  core.DefaultOutputDir,
				MinifyHTML: true,
				LogOutputs: []string{"stdout"},
			})
			if err != nil {
				return err
			}
			if err := os.WriteFile(configPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", configPath, err)
			}
			fmt.Println("🔧 Created config:", configPath)
		}

		fmt.Println("✅ Content created successfully.")
		fmt.Println("▶  Run: xyzsite dev")
		return nil
	},
}

func copyEmbeddedDir(source fs.FS, sourceDir string, targetDir string) error {
	return fs.WalkDir(source, sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		targetPath := filepath.Join(targetDir, rel)

		if d.IsDir() {
			return os.MkdirAll(targetPath, os.ModePerm)
		}

		data, err := fs.ReadFile(source, path)
		if err != nil {
			return err
		}

		return os.WriteFile(targetPath, data, 0644)
	})
}
