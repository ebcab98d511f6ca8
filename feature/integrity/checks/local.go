package checks

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"profile-exporter/feature/profile/models"
)

// LocalReport is the result of a check of the local export folder.
type LocalReport struct {
	Root           string        `json:"root"`
	MissingFolders []string      `json:"missing_folders"`
	Files          int           `json:"files"`
	Invalid        []InvalidFile `json:"invalid"`
}

// InvalidFile is a saved file that is not a usable profile.
type InvalidFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Healthy reports whether nothing is missing or invalid.
func (r *LocalReport) Healthy() bool {
	return len(r.MissingFolders) == 0 && len(r.Invalid) == 0
}

// CheckLocal verifies that root and its timestamp folder exist and that every
// .json file below root decodes as a profile with an identity and a building list.
func CheckLocal(root, timestampFolder string) (*LocalReport, error) {
	report := &LocalReport{
		Root:           root,
		MissingFolders: []string{},
		Invalid:        []InvalidFile{},
	}

	for _, dir := range []string{root, filepath.Join(root, timestampFolder)} {
		info, err := os.Stat(dir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			report.MissingFolders = append(report.MissingFolders, dir)
		case err != nil:
			return nil, fmt.Errorf("failed to inspect %s: %w", dir, err)
		case !info.IsDir():
			return nil, fmt.Errorf("%s is not a directory", dir)
		}
	}
	if len(report.MissingFolders) > 0 && report.MissingFolders[0] == root {
		return report, nil
	}

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".json") {
			return nil
		}
		report.Files++
		if reason := inspectProfileFile(p); reason != "" {
			rel, relErr := filepath.Rel(root, p)
			if relErr != nil {
				rel = p
			}
			report.Invalid = append(report.Invalid, InvalidFile{Path: filepath.ToSlash(rel), Reason: reason})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return report, nil
}

func inspectProfileFile(p string) string {
	data, err := os.ReadFile(p)
	if err != nil {
		return err.Error()
	}
	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return "not a profile: " + err.Error()
	}
	if profile.Identity() == "" {
		return "missing wizard_info.wizard_id"
	}
	if !profile.HasRequiredData() {
		return "missing building_list"
	}
	return ""
}

// FixLocal creates the missing folders.
func FixLocal(missing []string) error {
	for _, dir := range missing {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}
