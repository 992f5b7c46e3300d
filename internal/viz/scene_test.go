package viz

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/yarbel/yesodot/internal/atom"
	"github.com/yarbel/yesodot/internal/elements"
)

func TestBuildAtomSceneCounts(t *testing.T) {
	iron, err := elements.ByNumber(26)
	if err != nil {
		t.Fatal(err)
	}
	a := atom.New(iron, nil)

	w := BuildAtomScene(a, 0)

	counts := map[Ink]int{}
	for _, e := range w.Edges {
		counts[e.Ink]++
	}

	if counts[InkProton] != 26 {
		t.Errorf("expected 26 proton points, got %d", counts[InkProton])
	}
	if counts[InkNeutron] != 30 {
		t.Errorf("expected 30 neutron points, got %d", counts[InkNeutron])
	}
	if counts[InkElectron] != 26 {
		t.Errorf("expected 26 electron points, got %d", counts[InkElectron])
	}
	if expected := len(a.Shells) * orbitSegments; counts[InkOrbit] != expected {
		t.Errorf("expected %d orbit segments, got %d", expected, counts[InkOrbit])
	}
}

func TestBuildAtomSceneNil(t *testing.T) {
	w := BuildAtomScene(nil, 0)
	if len(w.Edges) != 0 {
		t.Errorf("nil atom should produce an empty scene, got %d edges", len(w.Edges))
	}
}

func TestBuildAtomSceneFrozenClock(t *testing.T) {
	h, err := elements.BySymbol("H")
	if err != nil {
		t.Fatal(err)
	}
	a := atom.New(h, nil)

	first := BuildAtomScene(a, 1.5)
	second := BuildAtomScene(a, 1.5)
	if !reflect.DeepEqual(first.Edges, second.Edges) {
		t.Error("same clock should yield an identical scene")
	}

	moved := BuildAtomScene(a, 2.5)
	if reflect.DeepEqual(first.Edges, moved.Edges) {
		t.Error("advancing the clock should move electrons")
	}
}

func TestStarfield(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pts := Starfield(10, 5, 50, rng)

	if len(pts) != 50 {
		t.Fatalf("expected 50 stars, got %d", len(pts))
	}
	for _, p := range pts {
		if p[0] < 0 || p[0] >= 20 || p[1] < 0 || p[1] >= 20 {
			t.Fatalf("star (%d,%d) outside the 20x20 sub-pixel area", p[0], p[1])
		}
	}
}

func TestStarfieldSeeded(t *testing.T) {
	a := Starfield(10, 5, 20, rand.New(rand.NewSource(3)))
	b := Starfield(10, 5, 20, rand.New(rand.NewSource(3)))
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should scatter the same field")
	}
}

func TestStarfieldBadArgs(t *testing.T) {
	if Starfield(0, 5, 10, nil) != nil {
		t.Error("zero width should return nil")
	}
	if Starfield(10, 0, 10, nil) != nil {
		t.Error("zero height should return nil")
	}
	if Starfield(10, 5, 0, nil) != nil {
		t.Error("zero count should return nil")
	}
	if len(Starfield(10, 5, 3, nil)) != 3 {
		t.Error("nil rng should still scatter")
	}
}
