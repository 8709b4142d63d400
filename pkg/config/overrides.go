package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOverridePath is the well-known location of the optional override
// file, relative to the working directory.
const DefaultOverridePath = "./config.yaml"

// overrideFile mirrors the recognized top level of the override document.
// Unrecognized top-level keys are ignored.
type overrideFile struct {
	Research yaml.Node `yaml:"research"`
}

// researchOverrides is the allow-list of overridable research fields, keyed
// by the same snake_case names the yaml tags on ResearchConfig declare.
func researchOverrides(rc *ResearchConfig) map[string]any {
	return map[string]any{
		"max_hypotheses_per_cycle": &rc.MaxHypothesesPerCycle,
		"backtest_days":            &rc.BacktestDays,
		"min_win_rate":             &rc.MinWinRate,
		"max_drawdown":             &rc.MaxDrawdown,
		"data_cache_hours":         &rc.DataCacheHours,
		"confidence_threshold":     &rc.ConfidenceThreshold,
	}
}

// loadOverrides overlays the override file at path onto the research section,
// field by field. Only keys present in the file change anything. A missing
// file is not a problem; a malformed file or a bad key yields diagnostics and
// the section keeps its environment-derived values for everything else.
func loadOverrides(path string, research *ResearchConfig) []string {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return []string{fmt.Sprintf("override file %s: %v", path, err)}
	}

	var doc overrideFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return []string{fmt.Sprintf("override file %s: %v", path, err)}
	}

	if doc.Research.Kind == 0 {
		// No research block; nothing to overlay.
		return nil
	}
	if doc.Research.Kind != yaml.MappingNode {
		return []string{fmt.Sprintf("override file %s: research must be a mapping", path)}
	}

	var diags []string
	allowed := researchOverrides(research)
	content := doc.Research.Content
	for i := 0; i+1 < len(content); i += 2 {
		key, value := content[i].Value, content[i+1]
		target, ok := allowed[key]
		if !ok {
			diags = append(diags, fmt.Sprintf("override research.%s: unknown field", key))
			continue
		}
		if err := value.Decode(target); err != nil {
			diags = append(diags, fmt.Sprintf("override research.%s: %v", key, err))
		}
	}
	return diags
}
