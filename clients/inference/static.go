package inference

import (
	"context"

	"github.com/ecocycle/server/core"
)

// Static is a deterministic classifier used in tests and when no API key
// is configured. It answers every non-empty image with the same detection
// the demo model returns for its sample upload.
type Static struct {
	// Detection overrides the default answer when non-nil.
	Detection *core.Detection
	// Fail forces ErrNoItemDetected for every call.
	Fail bool
}

var _ core.Classifier = (*Static)(nil)

func (s *Static) Classify(_ context.Context, image []byte, _ string) (*core.Detection, error) {
	if s.Fail || len(image) == 0 {
		return nil, core.ErrNoItemDetected
	}
	if s.Detection != nil {
		d := *s.Detection
		return &d, nil
	}
	return &core.Detection{
		Name:                 "Smartphone",
		Type:                 "Electronics",
		Condition:            "Used",
		EstimatedValue:       45,
		RecyclableComponents: []string{"Battery", "Screen", "Circuit Board", "Plastic Casing"},
		EnvironmentalImpact:  "Medium",
	}, nil
}
