package profile

import (
	"fmt"

	"github.com/strelka-dev/a7p/internal/record"
	"github.com/strelka-dev/a7p/internal/schema"
)

// Error caps for the two repeated sections: beyond these counts the
// individual element violations collapse into one summary violation.
const (
	distancesErrorCap = 10
	coefRowsErrorCap  = 12
)

// NewSchema builds the payload schema: a mapping whose single required key
// "profile" holds the field table. The schema is immutable once built;
// construct it once at startup and share it freely across goroutines.
func NewSchema() *schema.MappingSchema {
	return schema.Mapping(
		schema.F(string(KeyProfile), newProfileSchema().Required("Profile is required")),
	)
}

func newProfileSchema() *schema.MappingSchema {
	return schema.Mapping(
		// descriptor
		schema.F(string(KeyProfileName), schema.String().Max(50).Required("Profile name is required")),
		schema.F(string(KeyCartridgeName), schema.String().Max(50).Required("Cartridge name is required")),
		schema.F(string(KeyBulletName), schema.String().Max(50).Required("Bullet name is required")),
		schema.F(string(KeyShortNameTop), schema.String().Max(8).Required("Short name top is required")),
		schema.F(string(KeyShortNameBot), schema.String().Max(8).Required("Short name bottom is required")),
		schema.F(string(KeyCaliber), schema.String().Max(50).Required("Caliber is required")),
		schema.F(string(KeyDeviceUUID), schema.String().Max(50)),
		schema.F(string(KeyUserNote), schema.String().Max(1024)),

		// zeroing, clicks scaled by 1000
		schema.F(string(KeyZeroX), schema.Number().Integer().Range(-200.0, 200.0, 1000).Required("Zero X is required")),
		schema.F(string(KeyZeroY), schema.Number().Integer().Range(-200.0, 200.0, 1000).Required("Zero Y is required")),

		// tables
		schema.F(string(KeyDistances), schema.Array(
			schema.Number().Integer().Range(1.0, 3000.0, 100),
		).Min(1).Max(200).Cap(distancesErrorCap).Required("Distances are required")),
		schema.F(string(KeySwitches), schema.Array(newSwitchSchema()).Min(4)),

		// rifle
		schema.F(string(KeyScHeight), schema.Number().Integer().Range(-5000.0, 5000.0, 1).Required("Sight height is required")),
		schema.F(string(KeyRTwist), schema.Number().Integer().Range(0.0, 100.0, 100).Required("Twist rate is required")),
		schema.F(string(KeyTwistDir), schema.Mixed().OneOf(TwistRight, TwistLeft).Required("Twist direction is required")),

		// cartridge
		schema.F(string(KeyCMuzzleVelocity), schema.Number().Integer().Range(10.0, 3000.0, 10).Required("Muzzle velocity is required")),
		schema.F(string(KeyCZeroTemperature), schema.Number().Integer().Range(-100.0, 100.0, 1).Required("Zero temperature is required")),
		schema.F(string(KeyCTCoeff), schema.Number().Integer().Range(0.0, 5.0, 1000).Required("Temperature coefficient is required")),

		// zero atmosphere
		schema.F(string(KeyCZeroDistanceIdx), schema.Number().Integer().Ge(0).Le(200).Required("Zero distance index is required")),
		schema.F(string(KeyCZeroAirTemperature), schema.Number().Integer().Range(-100.0, 100.0, 1).Required("Zero air temperature is required")),
		schema.F(string(KeyCZeroAirPressure), schema.Number().Integer().Range(300.0, 1500.0, 10).Required("Zero air pressure is required")),
		schema.F(string(KeyCZeroAirHumidity), schema.Number().Integer().Range(0.0, 100.0, 1).Required("Zero air humidity is required")),
		schema.F(string(KeyCZeroWPitch), schema.Number().Integer().Range(-90.0, 90.0, 10).Required("Zero wind pitch is required")),
		schema.F(string(KeyCZeroPTemperature), schema.Number().Integer().Range(-100.0, 100.0, 1).Required("Zero powder temperature is required")),

		// bullet
		schema.F(string(KeyBDiameter), schema.Number().Integer().Range(0.001, 50.0, 1000).Required("Bullet diameter is required")),
		schema.F(string(KeyBWeight), schema.Number().Integer().Range(1.0, 6553.5, 10).Required("Bullet weight is required")),
		schema.F(string(KeyBLength), schema.Number().Integer().Range(0.01, 200.0, 1000).Required("Bullet length is required")),

		// drag model; the row schema and both length bounds are selected
		// by bc_type in checkCoefRows, the field itself only has to be an
		// array that is present.
		schema.F(string(KeyBcType), schema.Mixed().OneOf(DragG1, DragG7, DragCustom).Required("Drag model type is required")),
		schema.F(string(KeyCoefRows), schema.Array(schema.Mixed()).Required("Coefficient rows are required")),
	).
		Check(checkDistanceIndex).
		Check(checkCoefRows)
}

// newSwitchSchema builds the discriminated union of the two switch-record
// shapes. distance_from selects which sibling carries the position: INDEX
// points into the distance table via c_idx, VALUE carries an inline
// distance. Pinning the discriminator in each alternative keeps the
// alternatives mutually exclusive.
func newSwitchSchema() *schema.UnionSchema {
	indexShape := schema.Mapping(
		schema.F(string(KeyDistanceFrom), schema.Mixed().OneOf(DistanceFromIndex).Required("distance_from is required")),
		schema.F(string(KeyCIdx), schema.Number().Integer().Test(checkCIdx).Required("c_idx is required")),
		schema.F(string(KeyDistance), schema.Number().Integer().Range(1.0, 3000.0, 100)),
		schema.F(string(KeyReticleIdx), schema.Number().Integer().Ge(0).Le(255).Required("reticle_idx is required")),
		schema.F(string(KeyZoom), schema.Number().Integer().Ge(0).Le(4).Required("zoom is required")),
	)
	valueShape := schema.Mapping(
		schema.F(string(KeyDistanceFrom), schema.Mixed().OneOf(DistanceFromValue).Required("distance_from is required")),
		schema.F(string(KeyDistance), schema.Number().Integer().Range(1.0, 3000.0, 100).Required("distance is required")),
		schema.F(string(KeyCIdx), schema.Number().Integer().Test(checkCIdx)),
		schema.F(string(KeyReticleIdx), schema.Number().Integer().Ge(0).Le(255).Required("reticle_idx is required")),
		schema.F(string(KeyZoom), schema.Number().Integer().Ge(0).Le(4).Required("zoom is required")),
	)
	return schema.Union(indexShape, valueShape)
}

// checkCIdx accepts either the special "unused" marker 255 or a valid
// distance-table index.
func checkCIdx(v record.Value) *schema.Constraint {
	n, _ := record.Number(v)
	if n == 255 {
		return nil
	}
	if n < 0 || n > 200 {
		c := schema.NewConstraint(schema.KindRange, [2]int{0, 200},
			"expected index in range [0, 200] or the special value 255")
		return &c
	}
	return nil
}

// checkDistanceIndex is the cross-field rule between c_zero_distance_idx
// and distances: the index must address an existing entry. The violation is
// reported at distances, the field a user should fix.
func checkDistanceIndex(obj record.Object, path record.Path, _ bool) *schema.Violation {
	idxVal, okIdx := obj[string(KeyCZeroDistanceIdx)]
	distVal, okDist := obj[string(KeyDistances)]
	if !okIdx || !okDist {
		return nil // required checks already reported the absence
	}
	idx, okIdx := record.Number(idxVal)
	distances, okDist := distVal.(record.List)
	if !okIdx || !okDist {
		return nil // type violations already reported
	}
	if idx < 0 || int(idx) >= len(distances) {
		c := schema.NewConstraintf(schema.KindDependency, int(idx), func(args any) string {
			return fmt.Sprintf("zero distance index %d is out of the distances table", args)
		})
		return schema.NewViolation(path.Child(string(KeyDistances)), distVal, c)
	}
	return nil
}

// Standard (G1/G7) drag rows: 1-5 entries, coefficient in [0, 1.0] at scale
// 10000, velocity in [0, 3000.0] at scale 10.
var coefRowsStandard = schema.Array(
	schema.Mapping(
		schema.F(string(KeyBcCd), schema.Number().Integer().Range(0.0, 1.0, 10000).Required("bc_cd is required")),
		schema.F(string(KeyMv), schema.Number().Integer().Range(0.0, 3000.0, 10).Required("mv is required")),
	),
).Min(1).Max(5).Cap(coefRowsErrorCap).Test(checkUniqueMv)

// Custom drag-curve rows: 1-200 entries, both fields in [0, 10.0] at scale
// 10000.
var coefRowsCustom = schema.Array(
	schema.Mapping(
		schema.F(string(KeyBcCd), schema.Number().Integer().Range(0.0, 10.0, 10000).Required("bc_cd is required")),
		schema.F(string(KeyMv), schema.Number().Integer().Range(0.0, 10.0, 10000).Required("mv is required")),
	),
).Min(1).Max(200).Cap(coefRowsErrorCap).Test(checkUniqueMv)

// checkCoefRows routes coef_rows through the row schema selected by the
// bc_type discriminator. An unrecognized tag short-circuits row validation:
// the one_of violation on bc_type already reports the tag itself, and a
// single unsupported-discriminator violation marks the skip instead of a
// spurious per-row error list.
func checkCoefRows(obj record.Object, path record.Path, failFast bool) *schema.Violation {
	rows, ok := obj[string(KeyCoefRows)]
	if !ok {
		return nil
	}
	rowsPath := path.Child(string(KeyCoefRows))

	tag, isString := obj[string(KeyBcType)].(record.String)
	var rowSchema *schema.SequenceSchema
	switch {
	case isString && (string(tag) == DragG1 || string(tag) == DragG7):
		rowSchema = coefRowsStandard
	case isString && string(tag) == DragCustom:
		rowSchema = coefRowsCustom
	default:
		c := schema.NewConstraintf(schema.KindUnsupported, tag, func(args any) string {
			return fmt.Sprintf("validation skipped for coef_rows: unsupported bc_type %q", args)
		})
		return schema.NewViolation(rowsPath, rows, c)
	}
	return rowSchema.Validate(rows, rowsPath, failFast)
}

// checkUniqueMv enforces the drag-table rule restored from the original
// profile editor: non-zero mv values must be unique within coef_rows.
func checkUniqueMv(v record.Value) *schema.Constraint {
	rows, ok := v.(record.List)
	if !ok {
		return nil
	}
	seen := make(map[int64]bool, len(rows))
	for _, row := range rows {
		obj, ok := row.(record.Object)
		if !ok {
			continue
		}
		mv, ok := obj[string(KeyMv)].(record.Int)
		if !ok || mv == 0 {
			continue
		}
		if seen[int64(mv)] {
			c := schema.NewConstraint(schema.KindUnique, int64(mv),
				"'mv' values must be unique, except for mv == 0")
			return &c
		}
		seen[int64(mv)] = true
	}
	return nil
}
