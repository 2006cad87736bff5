package profile

import "strings"

// Kinematics identifies a printer's motion system.
type Kinematics string

const (
	KinematicsCartesian    Kinematics = "cartesian"
	KinematicsCoreXY       Kinematics = "corexy"
	KinematicsCoreXZ       Kinematics = "corexz"
	KinematicsHybridCoreXY Kinematics = "hybrid_corexy"
	KinematicsHybridCoreXZ Kinematics = "hybrid_corexz"
	KinematicsDelta        Kinematics = "delta"
	KinematicsSCARA        Kinematics = "scara"
	KinematicsPolar        Kinematics = "polar"
	KinematicsBelt         Kinematics = "belt"
	KinematicsOther        Kinematics = "other"
)

// Known reports whether the kinematics value is part of the closed enumeration.
func (k Kinematics) Known() bool {
	switch Kinematics(strings.ToLower(string(k))) {
	case KinematicsCartesian, KinematicsCoreXY, KinematicsCoreXZ,
		KinematicsHybridCoreXY, KinematicsHybridCoreXZ, KinematicsDelta,
		KinematicsSCARA, KinematicsPolar, KinematicsBelt, KinematicsOther:
		return true
	}
	return false
}

// BuildVolume describes the printable space of a machine.
type BuildVolume struct {
	X      float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y      float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Z      float64 `json:"z,omitempty" yaml:"z,omitempty"`
	Shape  string  `json:"shape,omitempty" yaml:"shape,omitempty"`
	Origin string  `json:"origin,omitempty" yaml:"origin,omitempty"`
}

// AxisLimits bounds speed and acceleration for one axis.
type AxisLimits struct {
	MaxSpeed float64 `json:"max_speed,omitempty" yaml:"max_speed,omitempty"`
	MaxAccel float64 `json:"max_accel,omitempty" yaml:"max_accel,omitempty"`
}

// Axes groups per-axis motion limits.
type Axes struct {
	X AxisLimits `json:"x,omitempty" yaml:"x,omitempty"`
	Y AxisLimits `json:"y,omitempty" yaml:"y,omitempty"`
	Z AxisLimits `json:"z,omitempty" yaml:"z,omitempty"`
}

// Extruder describes one toolhead.
type Extruder struct {
	ID                  string  `json:"id,omitempty" yaml:"id,omitempty"`
	NozzleDiameter      float64 `json:"nozzle_diameter,omitempty" yaml:"nozzle_diameter,omitempty"`
	NozzleMaterial      string  `json:"nozzle_material,omitempty" yaml:"nozzle_material,omitempty"`
	MinTemp             float64 `json:"min_temp,omitempty" yaml:"min_temp,omitempty"`
	MaxTemp             float64 `json:"max_temp,omitempty" yaml:"max_temp,omitempty"`
	RetractionSupported bool    `json:"retraction_supported,omitempty" yaml:"retraction_supported,omitempty"`
}

// HeatedZone describes a heated bed.
type HeatedZone struct {
	Heated  bool    `json:"heated" yaml:"heated"`
	MaxTemp float64 `json:"max_temp,omitempty" yaml:"max_temp,omitempty"`
}

// Chamber describes an enclosure, heated or passive.
type Chamber struct {
	Heated  bool    `json:"heated" yaml:"heated"`
	Passive bool    `json:"passive,omitempty" yaml:"passive,omitempty"`
	MaxTemp float64 `json:"max_temp,omitempty" yaml:"max_temp,omitempty"`
}

// Firmware identifies the machine firmware dialect.
type Firmware struct {
	Flavor     string `json:"flavor,omitempty" yaml:"flavor,omitempty"`
	Identifier string `json:"identifier,omitempty" yaml:"identifier,omitempty"`
}

// Network describes machine connectivity.
type Network struct {
	HasWiFi        bool `json:"has_wifi,omitempty" yaml:"has_wifi,omitempty"`
	HasEthernet    bool `json:"has_ethernet,omitempty" yaml:"has_ethernet,omitempty"`
	SupportsLANAPI bool `json:"supports_lan_api,omitempty" yaml:"supports_lan_api,omitempty"`
}

// PrinterProfile describes one machine preset in the neutral schema.
type PrinterProfile struct {
	Meta `yaml:",inline"`

	Manufacturer string      `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Model        string      `json:"model,omitempty" yaml:"model,omitempty"`
	Variant      string      `json:"variant,omitempty" yaml:"variant,omitempty"`
	BuildVolume  BuildVolume `json:"build_volume,omitempty" yaml:"build_volume,omitempty"`
	Kinematics   Kinematics  `json:"kinematics,omitempty" yaml:"kinematics,omitempty"`
	Axes         *Axes       `json:"axes,omitempty" yaml:"axes,omitempty"`
	Extruders    []Extruder  `json:"extruders,omitempty" yaml:"extruders,omitempty"`
	Bed          *HeatedZone `json:"bed,omitempty" yaml:"bed,omitempty"`
	Chamber      *Chamber    `json:"chamber,omitempty" yaml:"chamber,omitempty"`
	Firmware     *Firmware   `json:"firmware,omitempty" yaml:"firmware,omitempty"`
	Network      *Network    `json:"network,omitempty" yaml:"network,omitempty"`

	Extensions `yaml:",inline"`
}

// PrimaryExtruder returns the first extruder, or a zero value when none are
// declared. Converters treat the first extruder as the machine default.
func (p *PrinterProfile) PrimaryExtruder() Extruder {
	if len(p.Extruders) > 0 {
		return p.Extruders[0]
	}
	return Extruder{}
}
