// Package artifact persists the trained model and its metadata record.
// The model file is an opaque gob envelope; metadata is JSON and records
// the feature schema the prediction path must follow.
package artifact

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/forwauzz/fitness-ai/pkg/model"
)

// MinModelSize is the smallest plausible serialized model. A file below
// this is treated as corrupt.
const MinModelSize = 64

// envelope tags the serialized payload with the regressor kind so the
// prediction path can reconstruct the right type.
type envelope struct {
	Kind    string
	Payload []byte
}

const (
	kindLinear = "linear"
	kindBoost  = "gbtree"
)

// SaveModel gob-encodes the regressor to path.
func SaveModel(path string, m model.Regressor) error {
	var kind string
	switch m.(type) {
	case *model.LinearRegression:
		kind = kindLinear
	case *model.GradientBoost:
		kind = kindBoost
	default:
		return fmt.Errorf("artifact: unsupported model type %T", m)
	}

	var payload bytes.Buffer
	if err := gob.NewEncoder(&payload).Encode(m); err != nil {
		return fmt.Errorf("artifact: encode model: %w", err)
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(envelope{Kind: kind, Payload: payload.Bytes()}); err != nil {
		return fmt.Errorf("artifact: encode envelope: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("artifact: write %s: %w", path, err)
	}
	return nil
}

// LoadModel reads a model saved by SaveModel.
func LoadModel(path string) (model.Regressor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("artifact: read %s: %w", path, err)
	}
	var env envelope
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&env); err != nil {
		return nil, fmt.Errorf("artifact: decode envelope: %w", err)
	}

	var m model.Regressor
	switch env.Kind {
	case kindLinear:
		m = &model.LinearRegression{}
	case kindBoost:
		m = &model.GradientBoost{}
	default:
		return nil, fmt.Errorf("artifact: unknown model kind %q", env.Kind)
	}
	if err := gob.NewDecoder(bytes.NewReader(env.Payload)).Decode(m); err != nil {
		return nil, fmt.Errorf("artifact: decode %s model: %w", env.Kind, err)
	}
	return m, nil
}

// EnsureModel verifies the artifact exists and is not suspiciously small.
func EnsureModel(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("model not found at %s, train first: %w", path, err)
	}
	if info.Size() < MinModelSize {
		return fmt.Errorf("model file looks too small: %s (%d bytes)", path, info.Size())
	}
	return nil
}
