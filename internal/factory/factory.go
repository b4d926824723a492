// Package factory builds complete, valid profile records from a small set
// of physical inputs, applying the scaled-integer encoding the profile
// contract stores: clicks at 1000, velocities and weights at 10, distances
// at 100, drag coefficients at 10000.
package factory

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/strelka-dev/a7p/internal/profile"
	"github.com/strelka-dev/a7p/internal/record"
)

// Meta carries the descriptive fields of a profile.
type Meta struct {
	Name         string
	ShortNameTop string
	ShortNameBot string
	UserNote     string
}

// Zeroing carries the scope zeroing inputs: click offsets, wind pitch in
// degrees, and the distance (meters) the rifle is zeroed at.
type Zeroing struct {
	X        float64
	Y        float64
	Pitch    float64
	Distance float64
}

// Atmosphere carries the zeroing reference atmosphere.
type Atmosphere struct {
	Temperature int
	Pressure    float64 // hPa
	Humidity    int     // percent
}

// Barrel carries the rifle inputs.
type Barrel struct {
	Caliber     string
	SightHeight int     // mm
	Twist       float64 // inches per turn
	TwistDir    string
}

// Cartridge carries the ammunition inputs.
type Cartridge struct {
	Name           string
	MuzzleVelocity float64 // m/s
	Temperature    int     // C
	PowderSens     float64 // percent per 15C
}

// DragPoint is one drag-model row: a coefficient and the velocity it was
// measured at.
type DragPoint struct {
	Coeff    float64
	Velocity float64
}

// Bullet carries the projectile inputs.
type Bullet struct {
	Name      string
	Diameter  float64 // inches
	Weight    float64 // grains
	Length    float64 // inches
	DragType  string
	DragModel []DragPoint
}

// Params bundles every input of New. Zero values fall back to the same
// defaults the original profile editor ships with.
type Params struct {
	Meta       Meta
	Barrel     Barrel
	Cartridge  Cartridge
	Bullet     Bullet
	Zeroing    Zeroing
	Atmosphere Atmosphere
	PowderTemp int
	Distances  []float64
	Switches   record.List
}

func (p *Params) applyDefaults() {
	if p.Meta.Name == "" {
		p.Meta.Name = "New profile"
	}
	if p.Barrel.Caliber == "" {
		p.Barrel = Barrel{Caliber: "New caliber", SightHeight: 90, Twist: 9.0, TwistDir: profile.TwistRight}
	}
	if p.Cartridge.Name == "" {
		p.Cartridge = Cartridge{Name: "New cartridge", MuzzleVelocity: 800, Temperature: 15, PowderSens: 1.5}
	}
	if p.Bullet.Name == "" {
		p.Bullet = Bullet{
			Name: "New bullet", Diameter: 0.308, Weight: 178, Length: 1.2,
			DragType: profile.DragG7, DragModel: []DragPoint{{Coeff: 1.0, Velocity: 0}},
		}
	}
	if p.Zeroing.Distance == 0 {
		p.Zeroing.Distance = 100
	}
	if p.Atmosphere == (Atmosphere{}) {
		p.Atmosphere = Atmosphere{Temperature: 15, Pressure: 1000, Humidity: 50}
	}
	if p.PowderTemp == 0 {
		p.PowderTemp = 15
	}
	if len(p.Distances) == 0 {
		p.Distances = DistancesLongRange
	}
	if len(p.Switches) == 0 {
		p.Switches = DefaultSwitches()
	}
}

// DefaultSwitches returns the canned four-position switch table: every
// position unused (c_idx 255), one zoom step per slot. Recovery substitutes
// this table for a broken switches array.
func DefaultSwitches() record.List {
	pos := func(zoom, distance int64) record.Object {
		return record.Object{
			string(profile.KeyCIdx):         record.Int(255),
			string(profile.KeyDistanceFrom): record.String(profile.DistanceFromIndex),
			string(profile.KeyDistance):     record.Int(distance),
			string(profile.KeyReticleIdx):   record.Int(0),
			string(profile.KeyZoom):         record.Int(zoom),
		}
	}
	return record.List{
		pos(1, 10000),
		pos(2, 20000),
		pos(3, 30000),
		pos(4, 100000),
	}
}

// DefaultCoefRows returns the fallback single-row drag model (bc 0.1) that
// recovery substitutes for broken coefficient rows.
func DefaultCoefRows() record.List {
	return record.List{record.Object{
		string(profile.KeyBcCd): record.Int(scale(0.1, 10000)),
		string(profile.KeyMv):   record.Int(0),
	}}
}

// EncodeDistances converts a distance table in meters to the stored
// representation at scale 100.
func EncodeDistances(distances []float64) record.List {
	out := make(record.List, len(distances))
	for i, d := range distances {
		out[i] = record.Int(scale(d, 100))
	}
	return out
}

// New builds a complete profile record from params. The result satisfies
// the profile schema.
func New(params Params) (record.Object, error) {
	params.applyDefaults()

	if len(params.Bullet.DragModel) == 0 {
		return nil, fmt.Errorf("factory: drag model can't be empty")
	}

	zeroIdx := 0
	for i, d := range params.Distances {
		if math.Round(params.Zeroing.Distance) == d {
			zeroIdx = i
			break
		}
	}

	coefRows := make(record.List, len(params.Bullet.DragModel))
	for i, pt := range params.Bullet.DragModel {
		coefRows[i] = record.Object{
			string(profile.KeyBcCd): record.Int(scale(pt.Coeff, 10000)),
			string(profile.KeyMv):   record.Int(scale(pt.Velocity, 10)),
		}
	}

	shortTop := params.Meta.ShortNameTop
	if shortTop == "" {
		shortTop = truncateRunes(params.Meta.Name, 6)
	}
	shortBot := params.Meta.ShortNameBot
	if shortBot == "" {
		shortBot = grainLabel(params.Bullet.Weight)
	}

	prof := record.Object{
		string(profile.KeyProfileName):   record.String(params.Meta.Name),
		string(profile.KeyCartridgeName): record.String(params.Cartridge.Name),
		string(profile.KeyBulletName):    record.String(params.Bullet.Name),
		string(profile.KeyShortNameTop):  record.String(shortTop),
		string(profile.KeyShortNameBot):  record.String(shortBot),
		string(profile.KeyUserNote):      record.String(params.Meta.UserNote),
		string(profile.KeyCaliber):       record.String(params.Barrel.Caliber),
		string(profile.KeyDeviceUUID):    record.String(uuid.NewString()),

		// click offsets store X inverted
		string(profile.KeyZeroX): record.Int(scale(params.Zeroing.X, -1000)),
		string(profile.KeyZeroY): record.Int(scale(params.Zeroing.Y, 1000)),

		string(profile.KeyScHeight): record.Int(int64(params.Barrel.SightHeight)),
		string(profile.KeyRTwist):   record.Int(scale(params.Barrel.Twist, 100)),
		string(profile.KeyTwistDir): record.String(params.Barrel.TwistDir),

		string(profile.KeyCMuzzleVelocity):  record.Int(scale(params.Cartridge.MuzzleVelocity, 10)),
		string(profile.KeyCZeroTemperature): record.Int(int64(params.Cartridge.Temperature)),
		string(profile.KeyCTCoeff):          record.Int(scale(params.Cartridge.PowderSens, 1000)),

		string(profile.KeyCZeroAirTemperature): record.Int(int64(params.Atmosphere.Temperature)),
		string(profile.KeyCZeroAirPressure):    record.Int(scale(params.Atmosphere.Pressure, 10)),
		string(profile.KeyCZeroAirHumidity):    record.Int(int64(params.Atmosphere.Humidity)),
		string(profile.KeyCZeroPTemperature):   record.Int(int64(params.PowderTemp)),
		string(profile.KeyCZeroWPitch):         record.Int(scale(params.Zeroing.Pitch, 10)),

		string(profile.KeyBDiameter): record.Int(scale(params.Bullet.Diameter, 1000)),
		string(profile.KeyBWeight):   record.Int(scale(params.Bullet.Weight, 10)),
		string(profile.KeyBLength):   record.Int(scale(params.Bullet.Length, 1000)),

		string(profile.KeyBcType): record.String(params.Bullet.DragType),

		string(profile.KeySwitches):         params.Switches,
		string(profile.KeyDistances):        EncodeDistances(params.Distances),
		string(profile.KeyCZeroDistanceIdx): record.Int(int64(zeroIdx)),
		string(profile.KeyCoefRows):         coefRows,
	}

	return record.Object{string(profile.KeyProfile): prof}, nil
}

// scale stores value*factor rounded to the nearest integer.
func scale(value, factor float64) int64 {
	return int64(math.Round(value * factor))
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// grainLabel formats a bullet weight as the bottom display name, e.g.
// "178gr" or "167.5gr".
func grainLabel(weight float64) string {
	if weight == math.Trunc(weight) {
		return fmt.Sprintf("%.0fgr", weight)
	}
	return fmt.Sprintf("%.1fgr", weight)
}
