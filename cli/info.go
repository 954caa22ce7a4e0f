package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/xyz-company/xyzsite/core"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print configuration, routes, branches and export summary",
	Flags: []cli.Flag{configFlag()},
	Action: func(c *cli.Context) error {
		router, config, err := loadRouter(c, core.EnvDev, false)
		if err != nil {
			return fmt.Errorf("failed to load site: %w", err)
		}
		defer router.Close()

		contentDir := config.ContentDir
		if contentDir == "" {
			contentDir = "(embedded)"
		}

		fmt.Println("🌐 Address:", config.Addr())
		fmt.Println("📁 Content Directory:", contentDir)
		fmt.Println("📁 Output Directory:", config.OutputDir)
		fmt.Println("🔁 Minify HTML:", config.MinifyHTML)
		fmt.Println("🔁 Debug Headers Enabled:", config.DebugHeaders)
		fmt.Println()

		fmt.Println("🗂️  Routes:")
		for _, route := range router.Routes() {
			fmt.Printf("   /%-24s %s\n", route.Pattern, route.Name)
		}
		fmt.Println()

		site := router.Site()
		fmt.Println("🏢 Branches:", strings.Join(site.Branches.Cities(), ", "))
		fmt.Println("📦 Assets:", strings.Join(site.Assets.Names(), ", "))
		fmt.Println("💾 Exported Pages:", core.CountExportedPages(config.OutputDir))

		return nil
	},
}
