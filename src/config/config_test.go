package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Create temp config file
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "assets.yaml")

	configContent := `
root: "/srv/rbv-studio"
assets_dir: "static/assets"
logo: "brand/logo.png"
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Root != "/srv/rbv-studio" {
		t.Errorf("Expected root '/srv/rbv-studio', got '%s'", cfg.Root)
	}

	if got, want := cfg.AssetsPath(), filepath.Join("/srv/rbv-studio", "static/assets"); got != want {
		t.Errorf("Expected assets path '%s', got '%s'", want, got)
	}

	if got, want := cfg.DefaultLogoPath(), filepath.Join("/srv/rbv-studio", "static/assets", "brand/logo.png"); got != want {
		t.Errorf("Expected logo path '%s', got '%s'", want, got)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	root := t.TempDir()
	t.Setenv("RBV_ROOT", root)

	cfg, err := Load(filepath.Join(root, "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.AssetsDir != "assets" {
		t.Errorf("Expected default assets_dir 'assets', got '%s'", cfg.AssetsDir)
	}
	if got, want := cfg.DefaultLogoPath(), filepath.Join(root, "assets", "logo.png"); got != want {
		t.Errorf("Expected logo path '%s', got '%s'", want, got)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "assets.yaml")
	if err := os.WriteFile(configFile, []byte("root: /from/file\nlogo: file.png\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	t.Setenv("RBV_LOGO", "env.png")

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Logo != "env.png" {
		t.Errorf("Expected logo 'env.png', got '%s'", cfg.Logo)
	}
	if cfg.Root != "/from/file" {
		t.Errorf("Expected root '/from/file', got '%s'", cfg.Root)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "assets.yaml")
	if err := os.WriteFile(configFile, []byte("root: [unterminated"), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	if _, err := Load(configFile); err == nil {
		t.Error("Expected parse error, got nil")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  Config{AssetsDir: "assets", Logo: "logo.png"},
			wantErr: false,
		},
		{
			name:    "missing assets_dir",
			config:  Config{Logo: "logo.png"},
			wantErr: true,
		},
		{
			name:    "missing logo",
			config:  Config{AssetsDir: "assets"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example\n"), 0644); err != nil {
		t.Fatalf("Failed to write go.mod: %v", err)
	}
	nested := filepath.Join(root, "src", "cmd", "tool")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("Failed to create nested dir: %v", err)
	}

	if got := FindRoot(nested); got != root {
		t.Errorf("Expected root %s, got %s", root, got)
	}
}
