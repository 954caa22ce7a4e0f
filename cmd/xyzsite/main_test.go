package main

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
	sitecli "github.com/xyz-company/xyzsite/cli"
)

func dummyCmd(name string) *cli.Command {
	return &cli.Command{
		Name: name,
		Action: func(c *cli.Context) error {
			return nil
		},
	}
}

func failingCmd(name string) *cli.Command {
	return &cli.Command{
		Name: name,
		Action: func(c *cli.Context) error {
			return errors.New("intentional failure")
		},
	}
}

func stubCommands(t *testing.T, failing string) {
	t.Helper()

	targets := map[string]**cli.Command{
		"dev":   &sitecli.DevCommand,
		"prod":  &sitecli.ProdCommand,
		"check": &sitecli.CheckCommand,
		"info":  &sitecli.InfoCommand,
		"init":  &sitecli.InitCommand,
		"build": &sitecli.BuildCommand,
		"clean": &sitecli.CleanCommand,
	}

	for name, target := range targets {
		original := *target
		t.Cleanup(func() { *target = original })

		if name == failing {
			*target = failingCmd(name)
		} else {
			*target = dummyCmd(name)
		}
	}
}

func Test_runApp_SuccessfulCommands(t *testing.T) {
	stubCommands(t, "")

	for _, cmd := range []string{"dev", "prod", "check", "info", "init", "build", "clean"} {
		t.Run(cmd, func(t *testing.T) {
			if err := runApp([]string{"xyzsite", cmd}); err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
		})
	}
}

func Test_runApp_ErrorCommand(t *testing.T) {
	stubCommands(t, "build")

	err := runApp([]string{"xyzsite", "build"})
	if err == nil || err.Error() != "intentional failure" {
		t.Fatalf("Expected error 'intentional failure', got: %v", err)
	}
}

func Test_main_LogFatalPath(t *testing.T) {
	if os.Getenv("BE_CRASHER") == "1" {
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "invalidCommand")
	cmd.Env = append(os.Environ(), "BE_CRASHER=1")

	output, err := cmd.CombinedOutput()

	if exitErr, ok := err.(*exec.ExitError); !ok {
		t.Fatalf("Expected exit error, got: %v", err)
	} else if exitErr.ExitCode() == 0 {
		t.Fatalf("Expected non-zero exit code from main")
	}

	if !strings.Contains(string(output), "No help topic for") {
		t.Errorf("Expected CLI error output, got: %s", output)
	}
}
