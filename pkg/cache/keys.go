package cache

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey identifies the positions of a graph in a frame.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies one rendered output of a graph.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the inputs that change node positions.
type LayoutKeyOpts struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`
}

// ArtifactKeyOpts are the inputs that change a rendered artifact.
type ArtifactKeyOpts struct {
	Layout     LayoutKeyOpts `json:"layout"`
	NodeRadius float64       `json:"node_radius"`
	Clearance  float64       `json:"clearance"`
	Renderer   string        `json:"renderer"`
	Border     bool          `json:"border,omitempty"`
	Format     string        `json:"format"`
}

// DefaultKeyer hashes options into namespaced keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey returns "layout:<sha256>".
func (DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return digest("layout", graphHash, opts)
}

// ArtifactKey returns "artifact:<format>:<sha256>".
func (DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return digest("artifact:"+opts.Format, graphHash, opts)
}
