package core

import "context"

// Detection is the classification result for an uploaded image, shaped to
// match what the hosted model's wrapper returns.
type Detection struct {
	Name                 string   `json:"name"`
	Type                 string   `json:"type"`
	Condition            string   `json:"condition"`
	EstimatedValue       int      `json:"estimatedValue"`
	RecyclableComponents []string `json:"recyclableComponents"`
	EnvironmentalImpact  string   `json:"environmentalImpact"`
}

// Classifier is the port for the external image-classification service.
// Implementations return ErrNoItemDetected when the model recognizes
// nothing in the image.
type Classifier interface {
	Classify(ctx context.Context, image []byte, filename string) (*Detection, error)
}

// Assistant is the port for the external chat service.
type Assistant interface {
	Reply(ctx context.Context, message, language string) (string, error)
}
