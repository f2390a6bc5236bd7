package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// DefaultConfigPath is the path to the canonical grid defaults file.
const DefaultConfigPath = "config/polargrid.defaults.json"

// ValidPlanes lists the plane names accepted by the "plane" key.
var ValidPlanes = []string{"XY", "XZ", "YZ"}

// GridConfig is the JSON form of every overlay property. Pointer fields
// distinguish "not set" from zero, so partial files fall back to the Get*
// defaults field by field.
type GridConfig struct {
	// Appearance
	Color *[3]float64 `json:"color,omitempty"` // RGB, each in [0,1]
	Alpha *float64    `json:"alpha,omitempty"`

	// Rings
	MinRadius  *float64 `json:"min_radius,omitempty"`
	RadiusStep *float64 `json:"radius_step,omitempty"`
	RingCount  *int     `json:"ring_count,omitempty"`

	// Sectors
	Sectors     *bool `json:"sectors,omitempty"`
	MinAngle    *int  `json:"min_angle,omitempty"` // degrees
	MaxAngle    *int  `json:"max_angle,omitempty"` // degrees
	SectorCount *int  `json:"sector_count,omitempty"`
	Invert      *bool `json:"invert,omitempty"`

	// Placement
	Plane  *string     `json:"plane,omitempty"`
	Offset *[3]float64 `json:"offset,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyGridConfig returns a GridConfig with all fields set to nil.
func EmptyGridConfig() *GridConfig {
	return &GridConfig{}
}

// DefaultGridConfig returns a GridConfig with every field populated from
// the Get* fallbacks. It needs no file on disk.
func DefaultGridConfig() *GridConfig {
	empty := EmptyGridConfig()
	color := empty.GetColor()
	offset := empty.GetOffset()
	return &GridConfig{
		Color:       &color,
		Alpha:       ptrFloat64(empty.GetAlpha()),
		MinRadius:   ptrFloat64(empty.GetMinRadius()),
		RadiusStep:  ptrFloat64(empty.GetRadiusStep()),
		RingCount:   ptrInt(empty.GetRingCount()),
		Sectors:     ptrBool(empty.GetSectors()),
		MinAngle:    ptrInt(empty.GetMinAngle()),
		MaxAngle:    ptrInt(empty.GetMaxAngle()),
		SectorCount: ptrInt(empty.GetSectorCount()),
		Invert:      ptrBool(empty.GetInvert()),
		Plane:       ptrString(empty.GetPlane()),
		Offset:      &offset,
	}
}

// LoadGridConfig loads a GridConfig from a JSON file.
// The file must have a .json extension and be at most 1MB.
func LoadGridConfig(path string) (*GridConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyGridConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads DefaultConfigPath from the current directory
// or one of its parents. Panics if the file cannot be loaded, intended for
// test setup.
func MustLoadDefaultConfig() *GridConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath,    // from internal/config/, cmd/polargrid/
		"../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadGridConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that every set field is in range and that the resolved
// sector bounds are ordered.
func (c *GridConfig) Validate() error {
	if c.Color != nil {
		for i, v := range c.Color {
			if !unit(v) {
				return fmt.Errorf("color[%d] must be between 0 and 1, got %f", i, v)
			}
		}
	}
	if c.Alpha != nil && !unit(*c.Alpha) {
		return fmt.Errorf("alpha must be between 0 and 1, got %f", *c.Alpha)
	}
	if c.MinRadius != nil && !(*c.MinRadius >= 0) {
		return fmt.Errorf("min_radius must be non-negative, got %f", *c.MinRadius)
	}
	if c.RadiusStep != nil && !(*c.RadiusStep >= 0) {
		return fmt.Errorf("radius_step must be non-negative, got %f", *c.RadiusStep)
	}
	if c.RingCount != nil && *c.RingCount < 0 {
		return fmt.Errorf("ring_count must be non-negative, got %d", *c.RingCount)
	}
	if c.SectorCount != nil && *c.SectorCount < 1 {
		return fmt.Errorf("sector_count must be at least 1, got %d", *c.SectorCount)
	}
	if c.MinAngle != nil && (*c.MinAngle < -180 || *c.MinAngle > 180) {
		return fmt.Errorf("min_angle must be between -180 and 180, got %d", *c.MinAngle)
	}
	if c.MaxAngle != nil && (*c.MaxAngle < -180 || *c.MaxAngle > 180) {
		return fmt.Errorf("max_angle must be between -180 and 180, got %d", *c.MaxAngle)
	}
	if minA, maxA := c.GetMinAngle(), c.GetMaxAngle(); minA >= maxA {
		return fmt.Errorf("min_angle (%d) must be below max_angle (%d)", minA, maxA)
	}
	if c.Plane != nil && !validPlane(*c.Plane) {
		return fmt.Errorf("plane must be one of %s, got %q", strings.Join(ValidPlanes, ", "), *c.Plane)
	}
	if c.Offset != nil {
		for i, v := range c.Offset {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("offset[%d] must be finite, got %f", i, v)
			}
		}
	}
	return nil
}

func unit(v float64) bool { return v >= 0 && v <= 1 }

func validPlane(name string) bool {
	for _, p := range ValidPlanes {
		if strings.EqualFold(name, p) {
			return true
		}
	}
	return false
}

// GetColor returns the RGB colour or Qt's stock gray.
func (c *GridConfig) GetColor() [3]float64 {
	if c.Color == nil {
		return [3]float64{160.0 / 255, 160.0 / 255, 164.0 / 255}
	}
	return *c.Color
}

// GetAlpha returns the alpha value or the default.
func (c *GridConfig) GetAlpha() float64 {
	if c.Alpha == nil {
		return 0.5
	}
	return *c.Alpha
}

// GetMinRadius returns the min_radius value or the default.
func (c *GridConfig) GetMinRadius() float64 {
	if c.MinRadius == nil {
		return 0
	}
	return *c.MinRadius
}

// GetRadiusStep returns the radius_step value or the default.
func (c *GridConfig) GetRadiusStep() float64 {
	if c.RadiusStep == nil {
		return 1
	}
	return *c.RadiusStep
}

// GetRingCount returns the ring_count value or the default.
func (c *GridConfig) GetRingCount() int {
	if c.RingCount == nil {
		return 5
	}
	return *c.RingCount
}

// GetSectors returns the sectors value or the default.
func (c *GridConfig) GetSectors() bool {
	if c.Sectors == nil {
		return false
	}
	return *c.Sectors
}

// GetMinAngle returns the min_angle value or the default.
func (c *GridConfig) GetMinAngle() int {
	if c.MinAngle == nil {
		return -90
	}
	return *c.MinAngle
}

// GetMaxAngle returns the max_angle value or the default.
func (c *GridConfig) GetMaxAngle() int {
	if c.MaxAngle == nil {
		return 90
	}
	return *c.MaxAngle
}

// GetSectorCount returns the sector_count value or the default.
func (c *GridConfig) GetSectorCount() int {
	if c.SectorCount == nil {
		return 6
	}
	return *c.SectorCount
}

// GetInvert returns the invert value or the default.
func (c *GridConfig) GetInvert() bool {
	if c.Invert == nil {
		return false
	}
	return *c.Invert
}

// GetPlane returns the upper-cased plane name or "XY".
func (c *GridConfig) GetPlane() string {
	if c.Plane == nil || *c.Plane == "" {
		return "XY"
	}
	return strings.ToUpper(*c.Plane)
}

// GetOffset returns the origin offset or the zero vector.
func (c *GridConfig) GetOffset() [3]float64 {
	if c.Offset == nil {
		return [3]float64{}
	}
	return *c.Offset
}
