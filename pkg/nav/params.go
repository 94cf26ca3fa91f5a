package nav

// Params holds the tuning constants of the navigation engine. Zero values are
// never meaningful; start from DefaultParams and override fields as needed.
// The defaults are load-bearing: they were tuned together and changing one in
// isolation usually degrades path quality.
type Params struct {
	// Collision model
	BoundsMargin          float64 `yaml:"bounds_margin"`            // extra world-border margin added to the body radius
	OpenRadiusScale       float64 `yaml:"open_radius_scale"`        // effective radius factor for tile checks in open space
	DoorRadiusScale       float64 `yaml:"door_radius_scale"`        // effective radius factor inside a door area
	DoubleDoorRadiusScale float64 `yaml:"double_door_radius_scale"` // effective radius factor inside a double-door area
	StaticPad             float64 `yaml:"static_pad"`               // collision padding against static objects and idle actors
	MobilePad             float64 `yaml:"mobile_pad"`               // collision padding against moving actors
	SqueezeProbe          float64 `yaml:"squeeze_probe"`            // extra reach of the opposing-side squeeze probes

	// Door context
	DoorScanRadius   int     `yaml:"door_scan_radius"`   // tile radius of the door neighborhood scan
	DoorAreaDistance float64 `yaml:"door_area_distance"` // max distance to the nearest door to count as "in door area"

	// Coarse search
	MaxExpansions      int     `yaml:"max_expansions"`       // hard cap on A* node expansions
	GoalSearchRadius   int     `yaml:"goal_search_radius"`   // max ring radius when snapping an unwalkable tile
	DoorCostFactor     float64 `yaml:"door_cost_factor"`     // step cost multiplier when entering a door tile
	OpenCostFactor     float64 `yaml:"open_cost_factor"`     // step cost multiplier on wide-open tiles
	OpenWalkabilityMin float64 `yaml:"open_walkability_min"` // walkability above which OpenCostFactor applies
	WalkPenaltyScale   float64 `yaml:"walk_penalty_scale"`   // scale of the (1 - walkability) step penalty
	SubTileInfluence   float64 `yaml:"sub_tile_influence"`   // object influence range when picking sub-tile positions

	// Corner smoothing
	CornerAngleDeg      float64 `yaml:"corner_angle_deg"`       // minimum turn angle treated as a corner
	CurveOffsetBase     float64 `yaml:"curve_offset_base"`      // base pull-back distance for curve control points
	CurveOffsetSeverity float64 `yaml:"curve_offset_severity"`  // additional pull-back per unit of corner severity
	CurveRadiusFactor   float64 `yaml:"curve_radius_factor"`    // clamp on the pull-back, in body radii
	CurveSamplesPerUnit float64 `yaml:"curve_samples_per_unit"` // Bezier samples per unit of pull-back

	// Door waypoints
	AlignTolerance     float64 `yaml:"align_tolerance"`       // off-axis distance that triggers an alignment waypoint
	AlignClearance     float64 `yaml:"align_clearance"`       // minimum alignment clearance from the door center
	AlignRadiusPad     float64 `yaml:"align_radius_pad"`      // radius-dependent part of the alignment clearance
	ApproachClearance  float64 `yaml:"approach_clearance"`    // minimum approach clearance from the door center
	ApproachRadiusPad  float64 `yaml:"approach_radius_pad"`   // radius-dependent part of the approach clearance
	ExitClearance      float64 `yaml:"exit_clearance"`        // minimum exit clearance beyond the door center
	ExitRadiusPad      float64 `yaml:"exit_radius_pad"`       // radius-dependent part of the exit clearance
	DoorSamplesPerTile float64 `yaml:"door_samples_per_tile"` // segment samples per tile when detecting door crossings

	// Validation and sight
	ValidateSamplesPerTile float64 `yaml:"validate_samples_per_tile"` // segment samples per tile during stepped validation
	SightSamplesPerTile    float64 `yaml:"sight_samples_per_tile"`    // segment samples per tile for line-of-sight checks
	PatchOffset            float64 `yaml:"patch_offset"`              // offset magnitude tried when patching a blocked target
}

// DefaultParams returns the tuned defaults.
func DefaultParams() Params {
	return Params{
		BoundsMargin:          0.1,
		OpenRadiusScale:       0.7,
		DoorRadiusScale:       0.4,
		DoubleDoorRadiusScale: 0.3,
		StaticPad:             0.35,
		MobilePad:             0.3,
		SqueezeProbe:          0.2,

		DoorScanRadius:   2,
		DoorAreaDistance: 1.5,

		MaxExpansions:      500,
		GoalSearchRadius:   5,
		DoorCostFactor:     0.1,
		OpenCostFactor:     0.8,
		OpenWalkabilityMin: 0.9,
		WalkPenaltyScale:   2.0,
		SubTileInfluence:   1.0,

		CornerAngleDeg:      45,
		CurveOffsetBase:     0.2,
		CurveOffsetSeverity: 0.3,
		CurveRadiusFactor:   1.5,
		CurveSamplesPerUnit: 8,

		AlignTolerance:     0.3,
		AlignClearance:     1.0,
		AlignRadiusPad:     0.6,
		ApproachClearance:  0.7,
		ApproachRadiusPad:  0.3,
		ExitClearance:      0.8,
		ExitRadiusPad:      0.4,
		DoorSamplesPerTile: 3,

		ValidateSamplesPerTile: 4,
		SightSamplesPerTile:    2,
		PatchOffset:            0.3,
	}
}
