package cli

import (
	"testing"

	"github.com/xyz-company/xyzsite"
	"github.com/xyz-company/xyzsite/core"
)

func recordStart(t *testing.T) **xyzsite.RuntimeConfig {
	t.Helper()

	var recorded *xyzsite.RuntimeConfig
	original := xyzsite.Start
	xyzsite.Start = func(cfg xyzsite.RuntimeConfig) {
		recorded = &cfg
	}
	t.Cleanup(func() { xyzsite.Start = original })
	return &recorded
}

func TestDevCommand_UsesDevConfig(t *testing.T) {
	recorded := recordStart(t)

	if _, err := runCommand(t, DevCommand); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cfg := *recorded
	if cfg == nil {
		t.Fatal("expected Start to be called, but it was not")
	}
	if cfg.Env != core.EnvDev || cfg.EnableMinify || cfg.Port != 0 || cfg.ConfigPath != core.DefaultConfigFile {
		t.Errorf("unexpected dev config: %+v", cfg)
	}
}

func TestProdCommand_UsesProdConfig(t *testing.T) {
	recorded := recordStart(t)

	if _, err := runCommand(t, ProdCommand); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cfg := *recorded
	if cfg == nil {
		t.Fatal("expected Start to be called, but it was not")
	}
	if cfg.Env != core.EnvProd || !cfg.EnableMinify {
		t.Errorf("unexpected prod config: %+v", cfg)
	}
}

func TestServerCommands_Flags(t *testing.T) {
	recorded := recordStart(t)

	_, err := runCommand(t, DevCommand, "--host", "0.0.0.0", "-p", "9090", "--config", "other.yml")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cfg := *recorded
	if cfg.Host != "0.0.0.0" || cfg.Port != 9090 || cfg.ConfigPath != "other.yml" {
		t.Errorf("flags not applied: %+v", cfg)
	}
}
