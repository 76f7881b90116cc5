package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

const releaseAPI = "https://api.github.com/repos/mewisme/mew/releases/latest"

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Check for a newer release of mew",
	RunE: func(cmd *cobra.Command, args []string) error {
		rel, err := fetchLatestRelease()
		if err != nil {
			return fmt.Errorf("checking for updates: %w", err)
		}
		out := cmd.OutOrStdout()
		if rel.TagName == "" {
			fmt.Fprintln(out, "no releases found")
			return nil
		}
		if rel.TagName == "v"+Version || rel.TagName == Version {
			fmt.Fprintf(out, "already on the latest release (%s)\n", Version)
			return nil
		}
		fmt.Fprintf(out, "a newer release is available: %s (currently %s)\n", rel.TagName, Version)
		fmt.Fprintf(out, "download it from %s\n", rel.HTMLURL)
		return nil
	},
}

func fetchLatestRelease() (release, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(releaseAPI)
	if err != nil {
		return release{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return release{}, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return release{}, err
	}
	return rel, nil
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}
