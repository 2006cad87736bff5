package profile

// LayerHeight bounds layer heights for a process.
type LayerHeight struct {
	Min        float64  `json:"min,omitempty" yaml:"min,omitempty"`
	Max        float64  `json:"max,omitempty" yaml:"max,omitempty"`
	Default    float64  `json:"default,omitempty" yaml:"default,omitempty"`
	FirstLayer *float64 `json:"first_layer,omitempty" yaml:"first_layer,omitempty"`
}

// Walls configures shell counts.
type Walls struct {
	WallCount    int `json:"wall_count,omitempty" yaml:"wall_count,omitempty"`
	TopLayers    int `json:"top_layers,omitempty" yaml:"top_layers,omitempty"`
	BottomLayers int `json:"bottom_layers,omitempty" yaml:"bottom_layers,omitempty"`
}

// Infill configures sparse infill density and patterns.
type Infill struct {
	DensityDefault      float64  `json:"density_default,omitempty" yaml:"density_default,omitempty"`
	DensityRange        *Range   `json:"density_range,omitempty" yaml:"density_range,omitempty"`
	RecommendedPatterns []string `json:"recommended_patterns,omitempty" yaml:"recommended_patterns,omitempty"`
}

// SpeedSet holds per-feature print speeds in mm/s.
type SpeedSet struct {
	OuterWall   float64 `json:"outer_wall,omitempty" yaml:"outer_wall,omitempty"`
	InnerWall   float64 `json:"inner_wall,omitempty" yaml:"inner_wall,omitempty"`
	Infill      float64 `json:"infill,omitempty" yaml:"infill,omitempty"`
	SolidInfill float64 `json:"solid_infill,omitempty" yaml:"solid_infill,omitempty"`
	TopBottom   float64 `json:"top_bottom,omitempty" yaml:"top_bottom,omitempty"`
	Travel      float64 `json:"travel,omitempty" yaml:"travel,omitempty"`
	FirstLayer  float64 `json:"first_layer,omitempty" yaml:"first_layer,omitempty"`
	Bridge      float64 `json:"bridge,omitempty" yaml:"bridge,omitempty"`
}

// AccelSet holds per-feature accelerations in mm/s^2.
type AccelSet struct {
	Default   float64 `json:"default,omitempty" yaml:"default,omitempty"`
	OuterWall float64 `json:"outer_wall,omitempty" yaml:"outer_wall,omitempty"`
	Infill    float64 `json:"infill,omitempty" yaml:"infill,omitempty"`
}

// Retraction configures retraction distance and speed.
type Retraction struct {
	Distance  float64 `json:"distance,omitempty" yaml:"distance,omitempty"`
	Speed     float64 `json:"speed,omitempty" yaml:"speed,omitempty"`
	MinTravel float64 `json:"min_travel,omitempty" yaml:"min_travel,omitempty"`
}

// Cooling configures part cooling fans.
type Cooling struct {
	Enabled           *bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	FanDefault        float64 `json:"fan_default,omitempty" yaml:"fan_default,omitempty"`
	FanMin            float64 `json:"fan_min,omitempty" yaml:"fan_min,omitempty"`
	FanMax            float64 `json:"fan_max,omitempty" yaml:"fan_max,omitempty"`
	FanBridge         float64 `json:"fan_bridge,omitempty" yaml:"fan_bridge,omitempty"`
	FanMinLayerTime   int     `json:"fan_min_layer_time,omitempty" yaml:"fan_min_layer_time,omitempty"`
	SlowDownLayerTime int     `json:"slow_down_layer_time,omitempty" yaml:"slow_down_layer_time,omitempty"`
}

// Supports configures support generation defaults.
type Supports struct {
	EnabledDefault    bool    `json:"enabled_default,omitempty" yaml:"enabled_default,omitempty"`
	OverhangThreshold float64 `json:"overhang_threshold,omitempty" yaml:"overhang_threshold,omitempty"`
	Angle             float64 `json:"angle,omitempty" yaml:"angle,omitempty"`
	Pattern           string  `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Adhesion configures bed adhesion helpers.
type Adhesion struct {
	DefaultType   string  `json:"default_type,omitempty" yaml:"default_type,omitempty"`
	BrimWidth     float64 `json:"brim_width,omitempty" yaml:"brim_width,omitempty"`
	RaftLayers    int     `json:"raft_layers,omitempty" yaml:"raft_layers,omitempty"`
	SkirtCount    int     `json:"skirt_count,omitempty" yaml:"skirt_count,omitempty"`
	SkirtDistance float64 `json:"skirt_distance,omitempty" yaml:"skirt_distance,omitempty"`
}

// QualityBias expresses the speed/quality trade-off for a process.
type QualityBias struct {
	Priority string `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// ProcessProfile describes one print process preset in the neutral schema.
type ProcessProfile struct {
	Meta `yaml:",inline"`

	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	Intent      string       `json:"intent,omitempty" yaml:"intent,omitempty"`
	LayerHeight LayerHeight  `json:"layer_height,omitempty" yaml:"layer_height,omitempty"`
	Walls       *Walls       `json:"wall_settings,omitempty" yaml:"wall_settings,omitempty"`
	Infill      *Infill      `json:"infill,omitempty" yaml:"infill,omitempty"`
	Speed       *SpeedSet    `json:"speed,omitempty" yaml:"speed,omitempty"`
	Accel       *AccelSet    `json:"accel,omitempty" yaml:"accel,omitempty"`
	Retraction  *Retraction  `json:"retraction,omitempty" yaml:"retraction,omitempty"`
	Cooling     *Cooling     `json:"cooling,omitempty" yaml:"cooling,omitempty"`
	Supports    *Supports    `json:"supports,omitempty" yaml:"supports,omitempty"`
	Adhesion    *Adhesion    `json:"adhesion,omitempty" yaml:"adhesion,omitempty"`
	QualityBias *QualityBias `json:"quality_bias,omitempty" yaml:"quality_bias,omitempty"`

	Extensions `yaml:",inline"`
}
