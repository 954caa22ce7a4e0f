package cli

import (
	"fmt"
	"net/http"

	"github.com/urfave/cli/v2"
	"github.com/xyz-company/xyzsite/core"
)

type checkCase struct {
	path   string
	status int
}

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Render every route and report templates that fail",
	Flags: []cli.Flag{configFlag()},
	Action: func(c *cli.Context) error {
		router, _, err := loadRouter(c, core.EnvDev, false)
		if err != nil {
			fmt.Printf("❌ failed to load site: %v\n", err)
			return cli.Exit("site failed to load", 1)
		}
		defer router.Close()

		var cases []checkCase
		for _, p := range router.Paths() {
			cases = append(cases, checkCase{p, http.StatusOK})
		}
		cases = append(cases,
			checkCase{"/branches/Atlantis", http.StatusOK},
			checkCase{"/does-not-exist", http.StatusNotFound},
		)

		var failed bool
		for _, tc := range cases {
			resp, err := router.Render(tc.path)
			switch {
			case err != nil:
				failed = true
				fmt.Printf("❌ %s → render error: %v\n", tc.path, err)
			case resp.Status != tc.status:
				failed = true
				fmt.Printf("❌ %s → status %d, want %d\n", tc.path, resp.Status, tc.status)
			default:
				fmt.Printf("✅ %s (%d)\n", tc.path, resp.Status)
			}
		}

		if failed {
			return cli.Exit("some routes failed to render", 1)
		}

		fmt.Println("✅ All routes rendered successfully.")
		return nil
	},
}
