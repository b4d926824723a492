package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strelka-dev/a7p/internal/profile"
	"github.com/strelka-dev/a7p/internal/record"
	"github.com/strelka-dev/a7p/internal/schema"
)

func TestNewDefaultsProduceValidProfile(t *testing.T) {
	rec, err := New(Params{})
	require.NoError(t, err)
	assert.NoError(t, schema.Validate(profile.NewSchema(), rec, false))
}

func TestNewEveryDistanceTableValidates(t *testing.T) {
	for name, table := range DistanceTables {
		rec, err := New(Params{Distances: table})
		require.NoError(t, err, name)
		assert.NoError(t, schema.Validate(profile.NewSchema(), rec, false), name)
	}
}

func TestNewScaledEncoding(t *testing.T) {
	rec, err := New(Params{
		Meta:      Meta{Name: "Encoding check"},
		Barrel:    Barrel{Caliber: ".338 LM", SightHeight: 90, Twist: 9.45, TwistDir: profile.TwistRight},
		Cartridge: Cartridge{Name: "Test load", MuzzleVelocity: 825, Temperature: 15, PowderSens: 1.45},
		Bullet: Bullet{
			Name: "Test bullet", Diameter: 0.338, Weight: 250, Length: 1.7,
			DragType: profile.DragG7, DragModel: []DragPoint{{Coeff: 0.624, Velocity: 900}},
		},
		Zeroing: Zeroing{X: 1.5, Y: -2.0, Distance: 100},
	})
	require.NoError(t, err)
	prof := rec["profile"].(record.Object)

	// clicks at 1000, X inverted
	assert.Equal(t, record.Int(-1500), prof["zero_x"])
	assert.Equal(t, record.Int(-2000), prof["zero_y"])

	assert.Equal(t, record.Int(945), prof["r_twist"])    // inches at 100
	assert.Equal(t, record.Int(8250), prof["c_muzzle_velocity"]) // m/s at 10
	assert.Equal(t, record.Int(1450), prof["c_t_coeff"]) // percent at 1000
	assert.Equal(t, record.Int(338), prof["b_diameter"]) // inches at 1000
	assert.Equal(t, record.Int(2500), prof["b_weight"])  // grains at 10
	assert.Equal(t, record.Int(1700), prof["b_length"])  // inches at 1000

	rows := prof["coef_rows"].(record.List)
	require.Len(t, rows, 1)
	assert.Equal(t, record.Int(6240), rows[0].(record.Object)["bc_cd"])
	assert.Equal(t, record.Int(9000), rows[0].(record.Object)["mv"])
}

func TestNewZeroDistanceIndex(t *testing.T) {
	rec, err := New(Params{
		Distances: []float64{25, 50, 100, 200},
		Zeroing:   Zeroing{Distance: 100},
	})
	require.NoError(t, err)
	prof := rec["profile"].(record.Object)
	assert.Equal(t, record.Int(2), prof["c_zero_distance_idx"])
}

func TestNewShortNames(t *testing.T) {
	rec, err := New(Params{
		Meta: Meta{Name: "Remington 700 SPS Tactical"},
		Bullet: Bullet{
			Name: "SMK", Diameter: 0.308, Weight: 167.5, Length: 1.2,
			DragType: profile.DragG1, DragModel: []DragPoint{{Coeff: 0.45}},
		},
	})
	require.NoError(t, err)
	prof := rec["profile"].(record.Object)

	assert.Equal(t, record.String("Reming"), prof["short_name_top"])
	assert.Equal(t, record.String("167.5gr"), prof["short_name_bot"])
}

func TestNewEmptyDragModelRejected(t *testing.T) {
	_, err := New(Params{
		Bullet: Bullet{Name: "No drag data", Diameter: 0.3, Weight: 150, Length: 1.1, DragType: profile.DragG1},
	})
	assert.Error(t, err)
}

func TestEncodeDistances(t *testing.T) {
	got := EncodeDistances([]float64{25, 100, 1500.5})
	assert.Equal(t, record.List{record.Int(2500), record.Int(10000), record.Int(150050)}, got)
}

func TestDefaultSwitchesShape(t *testing.T) {
	switches := DefaultSwitches()
	require.Len(t, switches, 4)
	for i, s := range switches {
		pos := s.(record.Object)
		assert.Equal(t, record.Int(255), pos["c_idx"])
		assert.Equal(t, record.String(profile.DistanceFromIndex), pos["distance_from"])
		assert.Equal(t, record.Int(int64(i+1)), pos["zoom"])
	}
}

func TestDistanceTablesSorted(t *testing.T) {
	for name, table := range DistanceTables {
		require.NotEmpty(t, table, name)
		for i := 1; i < len(table); i++ {
			assert.Less(t, table[i-1], table[i], "%s out of order at %d", name, i)
		}
	}
}
