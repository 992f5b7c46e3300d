package atom_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/yarbel/yesodot/internal/atom"
	"github.com/yarbel/yesodot/internal/elements"
)

var _ = Describe("PlaceNucleus", func() {
	It("produces one particle per nucleon", func() {
		parts := atom.PlaceNucleus(26, 30)
		Expect(parts).To(HaveLen(56))
	})

	It("places every particle on the nucleus sphere", func() {
		parts := atom.PlaceNucleus(8, 8)
		for _, p := range parts {
			Expect(p.Pos.Length()).To(BeNumerically("~", atom.NucleusRadius, 1e-9))
		}
	})

	It("assigns protons to the leading indices", func() {
		parts := atom.PlaceNucleus(3, 4)
		for i, p := range parts {
			if i < 3 {
				Expect(p.Kind).To(Equal(atom.Proton), "index %d", i)
			} else {
				Expect(p.Kind).To(Equal(atom.Neutron), "index %d", i)
			}
		}
	})

	It("returns nothing for an empty nucleus", func() {
		Expect(atom.PlaceNucleus(0, 0)).To(BeEmpty())
	})

	It("clamps negative counts instead of panicking", func() {
		Expect(atom.PlaceNucleus(-2, -2)).To(BeEmpty())
		Expect(atom.PlaceNucleus(1, -5)).To(HaveLen(1))
	})

	It("handles a single nucleon", func() {
		parts := atom.PlaceNucleus(1, 0)
		Expect(parts).To(HaveLen(1))
		Expect(parts[0].Pos.Length()).To(BeNumerically("~", atom.NucleusRadius, 1e-9))
	})

	It("spreads particles rather than stacking them", func() {
		parts := atom.PlaceNucleus(10, 10)
		for i := 1; i < len(parts); i++ {
			Expect(parts[i].Pos.Sub(parts[i-1].Pos).Length()).To(BeNumerically(">", 1e-6))
		}
	})
})

var _ = Describe("BuildShells", func() {
	It("spaces shells linearly and slows outer shells", func() {
		shells := atom.BuildShells([]int{2, 8, 18}, nil)
		Expect(shells).To(HaveLen(3))
		for i, s := range shells {
			Expect(s.Radius).To(BeNumerically("~", float64(i+1)*atom.ShellSpacing, 1e-12))
			Expect(s.Speed).To(BeNumerically("~", atom.BaseSpeed/float64(i+1), 1e-12))
		}
	})

	It("distributes phase offsets evenly", func() {
		shells := atom.BuildShells([]int{8}, nil)
		offsets := shells[0].Offsets
		Expect(offsets).To(HaveLen(8))
		Expect(offsets[0]).To(BeZero())
		step := 2 * math.Pi / 8
		for i := 1; i < len(offsets); i++ {
			Expect(offsets[i] - offsets[i-1]).To(BeNumerically("~", step, 1e-12))
		}
	})

	It("skips empty occupancies", func() {
		Expect(atom.BuildShells(nil, nil)).To(BeNil())
		Expect(atom.BuildShells([]int{0, 2}, nil)).To(HaveLen(1))
	})

	It("draws identical tilts from identically seeded sources", func() {
		a := atom.BuildShells([]int{2, 8}, rand.New(rand.NewSource(7)))
		b := atom.BuildShells([]int{2, 8}, rand.New(rand.NewSource(7)))
		for i := range a {
			Expect(a[i].Tilt).To(Equal(b[i].Tilt))
		}
	})

	It("leaves shells flat without a rand source", func() {
		shells := atom.BuildShells([]int{2}, nil)
		Expect(shells[0].Tilt).To(Equal(atom.Tilt{}))
	})
})

var _ = Describe("ElectronAt", func() {
	It("is a pure function of the clock", func() {
		shells := atom.BuildShells([]int{8}, rand.New(rand.NewSource(3)))
		s := &shells[0]
		first := s.ElectronAt(5, 1.234)
		for i := 0; i < 4; i++ {
			Expect(s.ElectronAt(5, 1.234)).To(Equal(first))
		}
	})

	It("starts electron zero on the positive X axis of a flat shell", func() {
		shells := atom.BuildShells([]int{1}, nil)
		p := shells[0].ElectronAt(0, 0)
		Expect(p.X).To(BeNumerically("~", shells[0].Radius, 1e-9))
		Expect(p.Y).To(BeNumerically("~", 0, 1e-9))
		Expect(p.Z).To(BeNumerically("~", 0, 1e-9))
	})

	It("keeps electrons near the orbit radius", func() {
		shells := atom.BuildShells([]int{4}, rand.New(rand.NewSource(11)))
		s := &shells[0]
		for t := 0.0; t < 20; t += 0.37 {
			for e := 0; e < s.Count; e++ {
				r := s.ElectronAt(e, t).Length()
				Expect(r).To(BeNumerically(">=", s.Radius*0.99))
				Expect(r).To(BeNumerically("<=", s.Radius*1.03))
			}
		}
	})

	It("bounds the out-of-plane wobble for flat shells", func() {
		shells := atom.BuildShells([]int{1}, nil)
		s := &shells[0]
		for t := 0.0; t < 30; t += 0.21 {
			Expect(math.Abs(s.ElectronAt(0, t).Y)).To(BeNumerically("<=", s.Radius*0.2+1e-9))
		}
	})

	It("traces the guide ring at the orbit radius", func() {
		shells := atom.BuildShells([]int{2}, rand.New(rand.NewSource(5)))
		s := &shells[0]
		for a := 0.0; a < 2*math.Pi; a += 0.1 {
			Expect(s.OrbitPoint(a).Length()).To(BeNumerically("~", s.Radius, 1e-5))
		}
	})
})

var _ = Describe("Atom", func() {
	It("models hydrogen as one proton, no neutrons, one electron", func() {
		h, err := elements.ByNumber(1)
		Expect(err).NotTo(HaveOccurred())

		a := atom.New(h, rand.New(rand.NewSource(1)))
		Expect(a.Protons()).To(Equal(1))
		Expect(a.Neutrons()).To(Equal(0))
		Expect(a.Shells).To(HaveLen(1))
		Expect(a.Electrons()).To(Equal(1))
	})

	It("models uranium with a full seven-shell cloud", func() {
		u, err := elements.BySymbol("U")
		Expect(err).NotTo(HaveOccurred())

		a := atom.New(u, rand.New(rand.NewSource(1)))
		Expect(a.Protons()).To(Equal(92))
		Expect(a.Neutrons()).To(Equal(146))
		Expect(a.Shells).To(HaveLen(7))
		Expect(a.Electrons()).To(Equal(92))
	})

	It("reports the outermost shell as its radius", func() {
		fe, err := elements.BySymbol("Fe")
		Expect(err).NotTo(HaveOccurred())

		a := atom.New(fe, nil)
		Expect(a.Radius()).To(BeNumerically("~", 4*atom.ShellSpacing, 1e-12))
	})

	It("falls back to the nucleus radius without shells", func() {
		a := atom.New(nil, nil)
		Expect(a.Radius()).To(Equal(atom.NucleusRadius))
		Expect(a.Nucleus).To(BeEmpty())
	})
})

var _ = Describe("TrigTable", func() {
	It("tracks the standard library within table resolution", func() {
		tbl := atom.NewTrigTable(4096)
		for x := -7.0; x < 7.0; x += 0.013 {
			s, c := tbl.SinCos(x)
			Expect(s).To(BeNumerically("~", math.Sin(x), 1e-5))
			Expect(c).To(BeNumerically("~", math.Cos(x), 1e-5))
		}
	})

	It("wraps angles beyond one turn", func() {
		Expect(atom.FastSin(2*math.Pi + 0.5)).To(BeNumerically("~", math.Sin(0.5), 1e-5))
		Expect(atom.FastCos(-13.0)).To(BeNumerically("~", math.Cos(-13.0), 1e-5))
	})
})
