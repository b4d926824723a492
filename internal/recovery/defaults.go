package recovery

import (
	"github.com/strelka-dev/a7p/internal/factory"
	"github.com/strelka-dev/a7p/internal/profile"
	"github.com/strelka-dev/a7p/internal/record"
)

// setField writes a default into the profile section. A record without a
// profile object at all is left alone; only validation can report that.
func setField(root record.Object, key profile.FieldKey, v record.Value) {
	if prof, ok := root[string(profile.KeyProfile)].(record.Object); ok {
		prof[string(key)] = v
	}
}

// fixed returns a FixFunc substituting a constant default.
func fixed(key profile.FieldKey, v record.Value) FixFunc {
	return func(root record.Object) { setField(root, key, v) }
}

// fixedInt is fixed for the common scaled-integer case.
func fixedInt(key profile.FieldKey, v int64) FixFunc {
	return fixed(key, record.Int(v))
}

// truncated returns a FixFunc clipping a string field to limit runes. A
// value that is not a string at all is replaced by the fallback, itself
// clipped.
func truncated(key profile.FieldKey, limit int, fallback string) FixFunc {
	return func(root record.Object) {
		prof, ok := root[string(profile.KeyProfile)].(record.Object)
		if !ok {
			return
		}
		s, ok := prof[string(key)].(record.String)
		if !ok {
			s = record.String(fallback)
		}
		r := []rune(string(s))
		if len(r) > limit {
			r = r[:limit]
		}
		prof[string(key)] = record.String(string(r))
	}
}

// registerShared installs the defaults common to both tiers: zero offsets
// to zero, mid-range physical defaults, and the canned tables for the
// repeated sections.
func registerShared(r *Registry) {
	r.register(profile.KeyZeroX, fixedInt(profile.KeyZeroX, 0))
	r.register(profile.KeyZeroY, fixedInt(profile.KeyZeroY, 0))

	r.register(profile.KeyScHeight, fixedInt(profile.KeyScHeight, 90))
	r.register(profile.KeyRTwist, fixedInt(profile.KeyRTwist, 10))

	r.register(profile.KeyCMuzzleVelocity, fixedInt(profile.KeyCMuzzleVelocity, 8000))
	r.register(profile.KeyCZeroTemperature, fixedInt(profile.KeyCZeroTemperature, 15))
	r.register(profile.KeyCTCoeff, fixedInt(profile.KeyCTCoeff, 1000))
	r.register(profile.KeyCZeroDistanceIdx, fixedInt(profile.KeyCZeroDistanceIdx, 0))
	r.register(profile.KeyCZeroAirTemperature, fixedInt(profile.KeyCZeroAirTemperature, 15))
	r.register(profile.KeyCZeroAirPressure, fixedInt(profile.KeyCZeroAirPressure, 10000))
	r.register(profile.KeyCZeroAirHumidity, fixedInt(profile.KeyCZeroAirHumidity, 0))
	r.register(profile.KeyCZeroWPitch, fixedInt(profile.KeyCZeroWPitch, 0))
	r.register(profile.KeyCZeroPTemperature, fixedInt(profile.KeyCZeroPTemperature, 15))

	r.register(profile.KeyBDiameter, fixedInt(profile.KeyBDiameter, 338))
	r.register(profile.KeyBWeight, fixedInt(profile.KeyBWeight, 3000))
	r.register(profile.KeyBLength, fixedInt(profile.KeyBLength, 1700))

	r.register(profile.KeyTwistDir, fixed(profile.KeyTwistDir, record.String(profile.TwistRight)))
	r.register(profile.KeyBcType, fixed(profile.KeyBcType, record.String(profile.DragG7)))

	r.register(profile.KeyDistances, func(root record.Object) {
		setField(root, profile.KeyDistances, factory.EncodeDistances(factory.DistancesLongRange))
	})
	r.register(profile.KeySwitches, func(root record.Object) {
		setField(root, profile.KeySwitches, factory.DefaultSwitches())
	})
	r.register(profile.KeyCoefRows, func(root record.Object) {
		setField(root, profile.KeyCoefRows, factory.DefaultCoefRows())
	})
}

// NewSpecRegistry builds the tier applied to schema-shape violations.
// String fields are clipped one short of the schema limit.
func NewSpecRegistry() *Registry {
	r := newRegistry("spec")
	registerShared(r)

	r.register(profile.KeyProfileName, truncated(profile.KeyProfileName, 49, "nil"))
	r.register(profile.KeyCartridgeName, truncated(profile.KeyCartridgeName, 49, "nil"))
	r.register(profile.KeyBulletName, truncated(profile.KeyBulletName, 49, "nil"))
	r.register(profile.KeyCaliber, truncated(profile.KeyCaliber, 49, "nil"))
	r.register(profile.KeyDeviceUUID, truncated(profile.KeyDeviceUUID, 49, ""))
	r.register(profile.KeyShortNameTop, truncated(profile.KeyShortNameTop, 7, "nil"))
	r.register(profile.KeyShortNameBot, truncated(profile.KeyShortNameBot, 7, "nil"))
	r.register(profile.KeyUserNote, truncated(profile.KeyUserNote, 1023, "Warning: Restored profile"))

	return r
}

// NewProtoRegistry builds the tier applied to record-shape violations
// after the spec tier has run. String fields are clipped to the wire
// limit.
func NewProtoRegistry() *Registry {
	r := newRegistry("proto")
	registerShared(r)

	r.register(profile.KeyProfileName, truncated(profile.KeyProfileName, 50, "nil"))
	r.register(profile.KeyCartridgeName, truncated(profile.KeyCartridgeName, 50, "nil"))
	r.register(profile.KeyBulletName, truncated(profile.KeyBulletName, 50, "nil"))
	r.register(profile.KeyCaliber, truncated(profile.KeyCaliber, 50, "nil"))
	r.register(profile.KeyDeviceUUID, truncated(profile.KeyDeviceUUID, 50, ""))
	r.register(profile.KeyShortNameTop, truncated(profile.KeyShortNameTop, 8, "nil"))
	r.register(profile.KeyShortNameBot, truncated(profile.KeyShortNameBot, 8, "nil"))
	r.register(profile.KeyUserNote, truncated(profile.KeyUserNote, 250, "Warning: Restored profile"))

	return r
}
