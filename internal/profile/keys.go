// Package profile declares the ballistic profile record schema: the field
// table with every scale, range, length and choice constraint, the
// cross-field dependency between the zeroing index and the distance table,
// and the drag-model discriminator routing for coefficient rows.
package profile

// FieldKey identifies one known profile field by its record key. Recovery
// registries are keyed by FieldKey instead of raw path strings so an
// unknown key is a compile-time error, not a silent lookup miss.
type FieldKey string

const (
	KeyProfile FieldKey = "profile"

	// descriptor
	KeyProfileName   FieldKey = "profile_name"
	KeyCartridgeName FieldKey = "cartridge_name"
	KeyBulletName    FieldKey = "bullet_name"
	KeyShortNameTop  FieldKey = "short_name_top"
	KeyShortNameBot  FieldKey = "short_name_bot"
	KeyCaliber       FieldKey = "caliber"
	KeyDeviceUUID    FieldKey = "device_uuid"
	KeyUserNote      FieldKey = "user_note"

	// zeroing
	KeyZeroX FieldKey = "zero_x"
	KeyZeroY FieldKey = "zero_y"

	// tables
	KeyDistances FieldKey = "distances"
	KeySwitches  FieldKey = "switches"

	// rifle
	KeyScHeight FieldKey = "sc_height"
	KeyRTwist   FieldKey = "r_twist"
	KeyTwistDir FieldKey = "twist_dir"

	// cartridge
	KeyCMuzzleVelocity  FieldKey = "c_muzzle_velocity"
	KeyCZeroTemperature FieldKey = "c_zero_temperature"
	KeyCTCoeff          FieldKey = "c_t_coeff"

	// zero atmosphere
	KeyCZeroDistanceIdx    FieldKey = "c_zero_distance_idx"
	KeyCZeroAirTemperature FieldKey = "c_zero_air_temperature"
	KeyCZeroAirPressure    FieldKey = "c_zero_air_pressure"
	KeyCZeroAirHumidity    FieldKey = "c_zero_air_humidity"
	KeyCZeroWPitch         FieldKey = "c_zero_w_pitch"
	KeyCZeroPTemperature   FieldKey = "c_zero_p_temperature"

	// bullet
	KeyBDiameter FieldKey = "b_diameter"
	KeyBWeight   FieldKey = "b_weight"
	KeyBLength   FieldKey = "b_length"

	// drag model
	KeyBcType   FieldKey = "bc_type"
	KeyCoefRows FieldKey = "coef_rows"

	// switch record fields
	KeyCIdx         FieldKey = "c_idx"
	KeyDistanceFrom FieldKey = "distance_from"
	KeyDistance     FieldKey = "distance"
	KeyReticleIdx   FieldKey = "reticle_idx"
	KeyZoom         FieldKey = "zoom"

	// coefficient row fields
	KeyBcCd FieldKey = "bc_cd"
	KeyMv   FieldKey = "mv"
)

// Drag model discriminator tags.
const (
	DragG1     = "G1"
	DragG7     = "G7"
	DragCustom = "CUSTOM"
)

// Twist direction tags.
const (
	TwistRight = "RIGHT"
	TwistLeft  = "LEFT"
)

// Switch distance source tags: a switch position either indexes into the
// distance table or carries its own distance value.
const (
	DistanceFromIndex = "INDEX"
	DistanceFromValue = "VALUE"
)
