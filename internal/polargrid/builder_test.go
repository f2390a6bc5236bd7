package polargrid

import (
	"fmt"
	"math"
	"testing"

	"github.com/banshee-data/polargrid/internal/monitoring"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// newTestBuilder returns a builder with the given sector setup.
func newTestBuilder(t *testing.T, minRadius, step float64, rings int) *Builder {
	t.Helper()
	b := NewBuilder()
	require.NoError(t, b.SetMinRadius(minRadius))
	require.NoError(t, b.SetRadiusStep(step))
	require.NoError(t, b.SetRingCount(rings))
	return b
}

// ringRadii reads back the radius of each ring from its first vertex.
func ringRadii(lines LineList, rings, span int) []float64 {
	radii := make([]float64, rings)
	for i := range radii {
		a, _ := lines.Segment(i * span)
		radii[i] = r3.Norm(a.Position)
	}
	return radii
}

func bearingDeg(v r3.Vec) float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

func TestNewBuilder_Defaults(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	if diff := cmp.Diff(DefaultParameters(), b.Parameters()); diff != "" {
		t.Errorf("default parameters mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5*360, b.Lines().SegmentCount())
	assert.Equal(t, Material{Lit: false, AlphaBlend: true}, b.Material())
}

func TestParameters_Span(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sectors   bool
		invert    bool
		wantStart int
		wantEnd   int
	}{
		{"sectors off", false, false, 0, 360},
		{"sectors off ignores invert", false, true, 0, 360},
		{"sector", true, false, -30, 30},
		{"inverted sector", true, true, 30, 330},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			p.MinAngleDeg, p.MaxAngleDeg = -30, 30
			p.SectorsEnabled = tt.sectors
			p.Invert = tt.invert
			start, end := p.Span()
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	p := DefaultParameters()
	p.MinRadius = 1.25
	p.RadiusStep = 0.75
	p.RingCount = 7
	p.SectorsEnabled = true
	p.MinAngleDeg, p.MaxAngleDeg = -47, 133
	p.SectorCount = 7
	p.Invert = true

	first := Build(p)
	second := Build(p)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Build not deterministic (-first +second):\n%s", diff)
	}
}

func TestBuild_SegmentCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		rings       int
		sectors     bool
		minAngle    int
		maxAngle    int
		sectorCount int
		invert      bool
		wantRing    int
		wantWedge   int
	}{
		{"full circle", 4, false, -90, 90, 6, false, 4 * 360, 0},
		{"sector", 3, true, -30, 30, 4, false, 3 * 60, 5},
		{"inverted sector", 3, true, -30, 30, 4, true, 3 * 300, 5},
		{"full bearing range", 1, true, -180, 180, 1, false, 360, 2},
		{"no rings with sectors", 0, true, -30, 30, 6, false, 0, 7},
		{"no rings no sectors", 0, false, -90, 90, 6, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			p.RingCount = tt.rings
			p.SectorsEnabled = tt.sectors
			p.MinAngleDeg, p.MaxAngleDeg = tt.minAngle, tt.maxAngle
			p.SectorCount = tt.sectorCount
			p.Invert = tt.invert

			lines := Build(p)
			require.Equal(t, 0, len(lines)%2, "line list must hold whole segments")
			assert.Equal(t, tt.wantRing+tt.wantWedge, lines.SegmentCount())
		})
	}
}

func TestBuild_InvertRatio(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, 0, 1, 2)
	b.SetSectorsEnabled(true)
	require.NoError(t, b.SetSectorBounds(-30, 30))
	require.NoError(t, b.SetSectorCount(1))

	wedges := 2
	inside := b.Lines().SegmentCount() - wedges

	b.SetInvert(true)
	outside := b.Lines().SegmentCount() - wedges

	assert.Equal(t, 2*60, inside)
	assert.Equal(t, 2*300, outside)
	assert.Equal(t, 5, outside/inside)
}

func TestBuild_RingRadii(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		minRadius float64
		want      []float64
	}{
		{"zero min radius offsets first ring", 0, []float64{2, 4, 6}},
		{"near-zero min radius counts as zero", 1e-7, []float64{2 + 1e-7, 4 + 1e-7, 6 + 1e-7}},
		{"explicit min radius", 5, []float64{5, 7, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t, tt.minRadius, 2, 3)
			got := ringRadii(b.Lines(), 3, 360)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("ring radii mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_RingSegmentsSpanOneDegree(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, 0, 3, 1)
	lines := b.Lines()

	for _, j := range []int{0, 1, 89, 180, 359} {
		a, c := lines.Segment(j)
		jr := float64(j) * math.Pi / 180
		kr := float64(j+1) * math.Pi / 180
		want := [2]r3.Vec{
			{X: 3 * math.Cos(jr), Y: 3 * math.Sin(jr)},
			{X: 3 * math.Cos(kr), Y: 3 * math.Sin(kr)},
		}
		got := [2]r3.Vec{a.Position, c.Position}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("segment %d mismatch (-want +got):\n%s", j, diff)
		}
		assert.Zero(t, a.Position.Z)
		assert.Zero(t, c.Position.Z)
	}
}

func TestBuild_Wedges(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, 1, 1, 2)
	b.SetSectorsEnabled(true)
	require.NoError(t, b.SetSectorBounds(-30, 30))
	require.NoError(t, b.SetSectorCount(3))

	lines := b.Lines()
	ringSegments := 2 * 60
	require.Equal(t, ringSegments+4, lines.SegmentCount())

	wantBearings := []float64{-30, -10, 10, 30}
	for i, want := range wantBearings {
		inner, outer := lines.Segment(ringSegments + i)
		assert.InDelta(t, 1.0, r3.Norm(inner.Position), 1e-9, "wedge %d inner radius", i)
		assert.InDelta(t, 2.0, r3.Norm(outer.Position), 1e-9, "wedge %d outer radius", i)
		assert.InDelta(t, want, bearingDeg(inner.Position), 1e-9, "wedge %d bearing", i)
		assert.InDelta(t, want, bearingDeg(outer.Position), 1e-9, "wedge %d bearing", i)
	}
}

func TestBuild_InvertedWedgesSweepFarSide(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, 2, 1, 1)
	b.SetSectorsEnabled(true)
	b.SetInvert(true)
	require.NoError(t, b.SetSectorBounds(-30, 30))
	require.NoError(t, b.SetSectorCount(2))

	lines := b.Lines()
	ringSegments := 300
	require.Equal(t, ringSegments+3, lines.SegmentCount())

	// 30 -> 180 -> 330 (== -30)
	for i, want := range []float64{30, 180, -30} {
		inner, _ := lines.Segment(ringSegments + i)
		got := bearingDeg(inner.Position)
		if want == 180 {
			got = math.Abs(got)
		}
		assert.InDelta(t, want, got, 1e-9, "wedge %d bearing", i)
	}
}

func TestBuild_NoRingsKeepsWedges(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, 3, 1, 0)
	b.SetSectorsEnabled(true)
	require.NoError(t, b.SetSectorCount(4))

	lines := b.Lines()
	require.Equal(t, 5, lines.SegmentCount())
	for i := 0; i < lines.SegmentCount(); i++ {
		inner, outer := lines.Segment(i)
		assert.InDelta(t, 3.0, r3.Norm(inner.Position), 1e-9)
		assert.Equal(t, r3.Vec{}, outer.Position, "no rings leaves outer radius at zero")
	}
}

func TestBuild_ZeroRadiusStep(t *testing.T) {
	t.Parallel()

	t.Run("coincident rings", func(t *testing.T) {
		b := newTestBuilder(t, 2, 0, 3)
		got := ringRadii(b.Lines(), 3, 360)
		if diff := cmp.Diff([]float64{2, 2, 2}, got, approx); diff != "" {
			t.Errorf("ring radii mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("collapsed to origin", func(t *testing.T) {
		b := newTestBuilder(t, 0, 0, 2)
		b.SetSectorsEnabled(true)
		lines := b.Lines()
		require.NotEmpty(t, lines)
		for _, v := range lines {
			assert.InDelta(t, 0.0, r3.Norm(v.Position), 1e-12)
		}
	})
}

func TestSetMinAngle_RejectsRange(t *testing.T) {
	original := monitoring.Logf
	defer func() { monitoring.Logf = original }()

	var warnings []string
	monitoring.SetLogger(func(format string, v ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, v...))
	})

	b := NewBuilder()
	b.SetSectorsEnabled(true)
	before := b.Parameters()
	beforeLines := b.Lines()

	for _, deg := range []int{90, 120} {
		err := b.SetMinAngle(deg)
		require.ErrorIs(t, err, ErrInvalidRange)
	}
	err := b.SetMaxAngle(-90)
	require.ErrorIs(t, err, ErrInvalidRange)
	err = b.SetSectorBounds(10, 10)
	require.ErrorIs(t, err, ErrInvalidRange)

	if diff := cmp.Diff(before, b.Parameters()); diff != "" {
		t.Errorf("rejected update changed parameters (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(beforeLines, b.Lines()); diff != "" {
		t.Errorf("rejected update changed geometry (-before +after):\n%s", diff)
	}
	assert.Len(t, warnings, 4)
	assert.Contains(t, warnings[0], "rejected sector bounds min=90 max=90")
}

func TestSetAngles_Accepts(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	require.NoError(t, b.SetMinAngle(89))
	require.NoError(t, b.SetMaxAngle(180))
	require.NoError(t, b.SetMinAngle(-180))
	require.NoError(t, b.SetMaxAngle(-179))

	p := b.Parameters()
	assert.Equal(t, -180, p.MinAngleDeg)
	assert.Equal(t, -179, p.MaxAngleDeg)
}

func TestSetters_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		apply   func(b *Builder) error
		wantErr error
	}{
		{"negative min radius", func(b *Builder) error { return b.SetMinRadius(-1) }, ErrInvalidParameter},
		{"NaN min radius", func(b *Builder) error { return b.SetMinRadius(math.NaN()) }, ErrInvalidParameter},
		{"negative radius step", func(b *Builder) error { return b.SetRadiusStep(-0.5) }, ErrInvalidParameter},
		{"negative ring count", func(b *Builder) error { return b.SetRingCount(-1) }, ErrInvalidParameter},
		{"min angle below -180", func(b *Builder) error { return b.SetMinAngle(-181) }, ErrInvalidParameter},
		{"max angle above 180", func(b *Builder) error { return b.SetMaxAngle(181) }, ErrInvalidParameter},
		{"bounds out of range", func(b *Builder) error { return b.SetSectorBounds(-200, 0) }, ErrInvalidParameter},
		{"zero sector count", func(b *Builder) error { return b.SetSectorCount(0) }, ErrInvalidSectorCount},
		{"negative sector count", func(b *Builder) error { return b.SetSectorCount(-3) }, ErrInvalidSectorCount},
		{"alpha above one", func(b *Builder) error { return b.SetColor(Color{R: 1, G: 1, B: 1, A: 1.5}) }, ErrInvalidParameter},
		{"negative red", func(b *Builder) error { return b.SetColor(Color{R: -0.1, A: 1}) }, ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			before := b.Parameters()
			err := tt.apply(b)
			require.ErrorIs(t, err, tt.wantErr)
			if diff := cmp.Diff(before, b.Parameters()); diff != "" {
				t.Errorf("invalid update changed parameters (-before +after):\n%s", diff)
			}
		})
	}
}

func TestSetColor_Propagates(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, 0, 1, 2)
	b.SetSectorsEnabled(true)
	old := b.Lines()

	red := Color{R: 1, A: 1}
	require.NoError(t, b.SetColor(red))

	lines := b.Lines()
	require.NotEmpty(t, lines)
	for i, v := range lines {
		if v.Color != red {
			t.Fatalf("vertex %d has stale color %+v", i, v.Color)
		}
	}
	assert.Equal(t, Material{Lit: false, AlphaBlend: false}, b.Material())

	// the previous list is replaced, not rewritten
	assert.Equal(t, DefaultParameters().Color, old[0].Color)
}

func TestSetters_RebuildEachCall(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	require.NoError(t, b.SetRingCount(1))
	assert.Equal(t, 360, b.Lines().SegmentCount())

	b.SetSectorsEnabled(true)
	assert.Equal(t, 180+7, b.Lines().SegmentCount())

	require.NoError(t, b.SetSectorCount(2))
	assert.Equal(t, 180+3, b.Lines().SegmentCount())

	b.SetSectorsEnabled(false)
	assert.Equal(t, 360, b.Lines().SegmentCount())
}
