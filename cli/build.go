package cli

import (
	"fmt"
	"path"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/xyz-company/xyzsite/core"
)

var BuildCommand = &cli.Command{
	Name:  "build",
	Usage: "Render every page and asset into a static export",
	Flags: []cli.Flag{
		configFlag(),
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output directory (default: outputDir in config)"},
		&cli.BoolFlag{Name: "minify", Value: true, Usage: "minify exported HTML"},
	},
	Action: func(c *cli.Context) error {
		router, config, err := loadRouter(c, core.EnvProd, c.Bool("minify"))
		if err != nil {
			return fmt.Errorf("failed to load site: %w", err)
		}
		defer router.Close()

		outDir := config.OutputDir
		if c.String("out") != "" {
			outDir = c.String("out")
		}

		fmt.Println("🏗️  Exporting to:", outDir)

		for _, p := range router.Paths() {
			resp, err := router.Render(p)
			if err != nil {
				return cli.Exit(fmt.Sprintf("❌ %s → %v", p, err), 1)
			}
			if err := core.ExportPage(outDir, strings.Trim(p, "/"), resp.Body); err != nil {
				return fmt.Errorf("failed to export %s: %w", p, err)
			}
			fmt.Printf("✅ %s\n", p)
		}

		notFound, err := router.RenderNotFound()
		if err != nil {
			return cli.Exit(fmt.Sprintf("❌ 404 page → %v", err), 1)
		}
		if err := core.ExportFile(outDir, "404.html", notFound.Body); err != nil {
			return fmt.Errorf("failed to export 404 page: %w", err)
		}
		fmt.Println("✅ 404.html")

		assets := router.Site().Assets
		for _, name := range assets.Names() {
			asset, _ := assets.Get(name)
			rel := path.Join("static", name)
			if err := core.ExportFile(outDir, rel, asset.Body); err != nil {
				return fmt.Errorf("failed to export %s: %w", rel, err)
			}
			if asset.Gzipped != nil {
				if err := core.ExportFile(outDir, rel+".gz", asset.Gzipped); err != nil {
					return fmt.Errorf("failed to export %s.gz: %w", rel, err)
				}
			}
		}
		fmt.Printf("✅ %d static assets\n", len(assets.Names()))

		fmt.Println("✅ Build complete.")
		return nil
	},
}
