package options

// Overrides carries caller-supplied replacements for top-level option keys.
// A nil field leaves the default in place; a set field replaces the whole
// top-level value, so nested defaults under that key are not kept.
type Overrides struct {
	Responsive          *bool      `json:"responsive,omitempty"`
	MaintainAspectRatio *bool      `json:"maintainAspectRatio,omitempty"`
	Plugins             *Plugins   `json:"plugins,omitempty"`
	Scales              *Scales    `json:"scales,omitempty"`
	Animation           *Animation `json:"animation,omitempty"`
}

// Merge returns defaults with every key set in o replaced by the override.
// Overrides always win for the keys they set.
func Merge(defaults ChartOptions, o Overrides) ChartOptions {
	out := defaults
	if o.Responsive != nil {
		out.Responsive = *o.Responsive
	}
	if o.MaintainAspectRatio != nil {
		out.MaintainAspectRatio = *o.MaintainAspectRatio
	}
	if o.Plugins != nil {
		out.Plugins = *o.Plugins
	}
	if o.Scales != nil {
		out.Scales = *o.Scales
	}
	if o.Animation != nil {
		out.Animation = *o.Animation
	}
	return out
}
