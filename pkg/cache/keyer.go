package cache

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// Keyer derives cache keys. Implementations must be deterministic: equal
// inputs always produce equal keys.
type Keyer interface {
	// ArtifactKey is the key of a chart rendered with opts. chartHash
	// identifies the chart content.
	ArtifactKey(chartHash string, opts ArtifactKeyOpts) string
	// SourceKey is the key of a decoded chart definition, identified by
	// the hash of its source bytes and their format.
	SourceKey(sourceHash, format string) string
}

// DefaultKeyer produces "artifact:<sha256>" and "source:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", chartHash, opts)
}

func (DefaultKeyer) SourceKey(sourceHash, format string) string {
	return hashKey("source", sourceHash, format)
}

var _ Keyer = DefaultKeyer{}
