package profile

// Drying describes filament drying requirements before printing.
type Drying struct {
	Required    bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Temperature float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	Hours       float64 `json:"hours,omitempty" yaml:"hours,omitempty"`
}

// Environment describes ambient requirements while printing the material.
type Environment struct {
	EnclosureRequired    bool    `json:"enclosure_required,omitempty" yaml:"enclosure_required,omitempty"`
	EnclosureRecommended bool    `json:"enclosure_recommended,omitempty" yaml:"enclosure_recommended,omitempty"`
	MinAmbientTemp       float64 `json:"min_ambient_temp,omitempty" yaml:"min_ambient_temp,omitempty"`
}

// FilamentProfile describes one filament preset in the neutral schema.
type FilamentProfile struct {
	Meta `yaml:",inline"`

	Brand    string  `json:"brand,omitempty" yaml:"brand,omitempty"`
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Material string  `json:"material,omitempty" yaml:"material,omitempty"`
	Color    string  `json:"color,omitempty" yaml:"color,omitempty"`
	Diameter float64 `json:"diameter,omitempty" yaml:"diameter,omitempty"`
	Density  float64 `json:"density,omitempty" yaml:"density,omitempty"`

	Nozzle TempRange `json:"nozzle,omitempty" yaml:"nozzle,omitempty"`
	Bed    TempRange `json:"bed,omitempty" yaml:"bed,omitempty"`
	Fan    TempRange `json:"fan,omitempty" yaml:"fan,omitempty"`

	Drying          *Drying      `json:"drying,omitempty" yaml:"drying,omitempty"`
	Environment     *Environment `json:"environment,omitempty" yaml:"environment,omitempty"`
	PrintingSpeed   *Range       `json:"printing_speed,omitempty" yaml:"printing_speed,omitempty"`
	VolumetricSpeed float64      `json:"volumetric_speed,omitempty" yaml:"volumetric_speed,omitempty"`
	Cost            float64      `json:"cost,omitempty" yaml:"cost,omitempty"`
	SpoolWeight     float64      `json:"spool_weight,omitempty" yaml:"spool_weight,omitempty"`

	Extensions `yaml:",inline"`
}
