package favicon

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestName is the file the web manifest is written to
const ManifestName = "site.webmanifest"

// Manifest is the web app manifest served next to the icons
type Manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Icons           []ManifestIcon `json:"icons"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
	Display         string         `json:"display"`
}

// ManifestIcon references one generated icon by its site path
type ManifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// SiteManifest returns the fixed manifest for the studio site
func SiteManifest() Manifest {
	return Manifest{
		Name:      "RB-Ventures LLC",
		ShortName: "RB-Ventures",
		Icons: []ManifestIcon{
			{Src: "/assets/favicon-192.png", Sizes: "192x192", Type: "image/png"},
			{Src: "/assets/favicon-512.png", Sizes: "512x512", Type: "image/png"},
		},
		ThemeColor:      "#15c3b8",
		BackgroundColor: "#ffffff",
		Display:         "standalone",
	}
}

// WriteManifest writes m as 2-space indented JSON, replacing any existing file
func WriteManifest(m Manifest, path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
