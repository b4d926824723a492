package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathString(t *testing.T) {
	var p Path
	assert.Equal(t, "~", p.String())

	p = p.Child("profile").Child("distances").Element(2)
	assert.Equal(t, "~/profile/distances/[2]", p.String())
}

func TestPathDotted(t *testing.T) {
	p := Path{}.Child("profile").Child("switches").Element(0).Child("zoom")
	assert.Equal(t, "profile.switches.zoom", p.Dotted())
}

func TestPathLeaf(t *testing.T) {
	assert.Equal(t, "", Path{}.Leaf())
	assert.Equal(t, "zoom", Path{}.Child("profile").Child("zoom").Leaf())
	// trailing indices are skipped
	assert.Equal(t, "distances", Path{}.Child("profile").Child("distances").Element(3).Leaf())
}

func TestPathChildDoesNotMutateParent(t *testing.T) {
	base := Path{}.Child("profile")
	a := base.Child("zero_x")
	b := base.Child("zero_y")

	assert.Equal(t, "~/profile/zero_x", a.String())
	assert.Equal(t, "~/profile/zero_y", b.String())
	assert.Equal(t, "~/profile", base.String())
}

func TestStepAccessors(t *testing.T) {
	f := Field("mv")
	assert.False(t, f.IsIndex())
	assert.Equal(t, "mv", f.Key())

	i := Index(7)
	assert.True(t, i.IsIndex())
	assert.Equal(t, 7, i.Index())
	assert.Equal(t, "[7]", i.String())
}
