// ABOUTME: Version command to display build information
// ABOUTME: Shows version, commit hash, build date, and the grid model defaults
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/wordlink/internal/config"
	"github.com/harper/wordlink/internal/models"
)

var (
	versionInfo = VersionInfo{
		Version: "dev",
		Commit:  "none",
		Date:    "unknown",
	}
)

// VersionInfo contains build information
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

type versionReport struct {
	VersionInfo
	Granularity  string `json:"granularity"`
	Glyphs       string `json:"glyphs"`
	HighContrast string `json:"high_contrast_glyphs"`
}

func newVersionReport() versionReport {
	return versionReport{
		VersionInfo:  versionInfo,
		Granularity:  config.Default().Granularity,
		Glyphs:       string([]rune{models.GlyphBlack, models.GlyphWhite, models.GlyphYellow, models.GlyphGreen}),
		HighContrast: string([]rune{models.GlyphBlue, models.GlyphOrange}),
	}
}

// SetVersion sets the version information (called from main)
func SetVersion(version, commit, date string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.Date = date
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display version, commit hash, and build date for the wordlink CLI,
along with the default chain granularity and the recognized grid glyphs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := newVersionReport()
			if jsonOutput() {
				jsonData, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling JSON: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wordlink %s\n", report.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", report.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "Built:  %s\n", report.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Chain:  %s granularity\n", report.Granularity)
			fmt.Fprintf(cmd.OutOrStdout(), "Glyphs: %s (high contrast %s)\n", report.Glyphs, report.HighContrast)
			return nil
		},
	}

	return cmd
}
