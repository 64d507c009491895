package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Metric is a float64 whose NaN value round-trips through JSON as null,
// matching how the metadata treats unavailable scores.
type Metric float64

// MarshalJSON encodes NaN as null.
func (m Metric) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(m)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(m))
}

// UnmarshalJSON decodes null back to NaN.
func (m *Metric) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = Metric(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Metric(v)
	return nil
}

// Metadata describes a training run. The prediction path reads Schema
// back to know the expected feature order.
type Metadata struct {
	SavedAt         string            `json:"saved_at"`
	ModelPath       string            `json:"model_path"`
	NSamples        int               `json:"n_samples"`
	SyntheticLabels int               `json:"synthetic_labels"`
	CVNote          string            `json:"cv_note"`
	Metrics         map[string]Metric `json:"metrics"`
	Schema          []string          `json:"schema"`
	Label           string            `json:"label"`
}

// SavedAtFormat is the timestamp layout used in metadata.
const SavedAtFormat = "2006-01-02 15:04:05"

// Save writes the metadata as indented JSON.
func (md Metadata) Save(path string) error {
	data, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return fmt.Errorf("artifact: marshal metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("artifact: write %s: %w", path, err)
	}
	return nil
}

// LoadMetadata reads metadata written by Save.
func LoadMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("artifact: read %s: %w", path, err)
	}
	var md Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		return Metadata{}, fmt.Errorf("artifact: parse %s: %w", path, err)
	}
	return md, nil
}
