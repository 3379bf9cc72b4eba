package chain_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spiro/internal/chain"
	"github.com/san-kum/spiro/internal/config"
	"github.com/san-kum/spiro/internal/rotor"
)

var _ = Describe("New", func() {
	It("rejects an empty rotor sequence", func() {
		_, err := chain.New(nil, rotor.Coord{X: 100, Y: 100})
		Expect(err).To(HaveOccurred())
	})

	It("seeds rotor 0 from the anchor through the reference rotor", func() {
		// Reference ring is (inner=1, thickness=1), midline 1.5; rotor 0 at
		// angle 0 lands at anchor.x + trunc(1.5).
		r0 := rotor.New(false, 0, rotor.Ring{Inner: 10, Thickness: 2}, 0)
		c, err := chain.New([]*rotor.Rotor{r0}, rotor.Coord{X: 100, Y: 100})
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Tip()).To(Equal(rotor.Coord{X: 101, Y: 100}))
	})

	It("accumulates angular velocities forward, once", func() {
		rotors := []*rotor.Rotor{
			rotor.New(false, 0, rotor.Ring{Inner: 10, Thickness: 1}, 5),
			rotor.New(false, 0, rotor.Ring{Inner: 10, Thickness: 1}, -5),
			rotor.New(false, 0, rotor.Ring{Inner: 10, Thickness: 1}, 10),
		}
		_, err := chain.New(rotors, rotor.Coord{})
		Expect(err).NotTo(HaveOccurred())

		Expect(rotors[0].Velocity).To(Equal(5.0))
		Expect(rotors[1].Velocity).To(Equal(0.0))
		Expect(rotors[2].Velocity).To(Equal(10.0))
	})
})

var _ = Describe("FromConfig", func() {
	It("builds a chain from a validated config", func() {
		cfg := config.DefaultConfig()
		c, err := chain.FromConfig(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Len()).To(Equal(len(cfg.Rotors)))
	})

	It("fails fast on a negative radius instead of clamping", func() {
		cfg := config.DefaultConfig()
		cfg.Rotors[3].InnerRadius = -1
		_, err := chain.FromConfig(cfg)
		Expect(err).To(MatchError(ContainSubstring("negative inner radius")))
	})

	It("fails fast on a negative thickness", func() {
		cfg := config.DefaultConfig()
		cfg.Rotors[0].Thickness = -0.5
		_, err := chain.FromConfig(cfg)
		Expect(err).To(MatchError(ContainSubstring("negative thickness")))
	})

	It("rejects an empty rotor list", func() {
		cfg := config.DefaultConfig()
		cfg.Rotors = nil
		_, err := chain.FromConfig(cfg)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Tick", func() {
	// The two-rotor scenario: anchor (100,100), rotor 0 ring (10,2) at
	// angle 0 velocity 0, rotor 1 ring (5,1) at angle 0 velocity 10.
	var (
		rotors []*rotor.Rotor
		c      *chain.Chain
	)

	BeforeEach(func() {
		rotors = []*rotor.Rotor{
			rotor.New(false, 0, rotor.Ring{Inner: 10, Thickness: 2}, 0),
			rotor.New(false, 0, rotor.Ring{Inner: 5, Thickness: 1}, 10),
		}
		var err error
		c, err = chain.New(rotors, rotor.Coord{X: 100, Y: 100})
		Expect(err).NotTo(HaveOccurred())
	})

	It("places rotor 0 at the seeded center", func() {
		Expect(rotors[0].Center).To(Equal(rotor.Coord{X: 101, Y: 100}))
	})

	It("recomputes centers with pre-update angles, then updates angles", func() {
		c.Tick()

		// rotor 1 orbits rotor 0's midline radius 11 at its pre-update
		// angle 0: (101+11, 100).
		Expect(rotors[1].Center).To(Equal(rotor.Coord{X: 112, Y: 100}))
		Expect(rotors[1].Angle).To(Equal(10.0))
		Expect(rotors[0].Angle).To(Equal(0.0))
	})

	It("uses the updated angle on the following tick", func() {
		c.Tick()
		c.Tick()

		// Second tick: angle 10°, orbit 11 → trunc(101+10.83), trunc(100+1.91).
		Expect(rotors[1].Center).To(Equal(rotor.Coord{X: 111, Y: 101}))
		Expect(rotors[1].Angle).To(Equal(20.0))
	})

	It("never moves rotor 0 after construction", func() {
		seed := rotors[0].Center
		for i := 0; i < 50; i++ {
			c.Tick()
		}
		Expect(rotors[0].Center).To(Equal(seed))
	})
})

var _ = Describe("Reset", func() {
	It("reproduces the identical center sequence after a reset", func() {
		cfg := config.GetPreset("flower")
		c, err := chain.FromConfig(cfg)
		Expect(err).NotTo(HaveOccurred())

		const n = 200
		first := make([]rotor.Coord, 0, n)
		for i := 0; i < n; i++ {
			c.Tick()
			first = append(first, c.Tip())
		}

		c.Reset()

		for i := 0; i < n; i++ {
			c.Tick()
			Expect(c.Tip()).To(Equal(first[i]), "tick %d diverged", i)
		}
	})
})

var _ = Describe("WorldPixels", func() {
	It("returns nothing when no rotor draws", func() {
		cfg := config.DefaultConfig()
		cfg.DrawRings = false
		c, err := chain.FromConfig(cfg)
		Expect(err).NotTo(HaveOccurred())
		c.Tick()
		Expect(c.WorldPixels()).To(BeEmpty())
	})

	It("concatenates mask-plus-center for every drawing rotor", func() {
		rotors := []*rotor.Rotor{
			rotor.New(true, 0, rotor.Ring{Inner: 3, Thickness: 1}, 0),
			rotor.New(true, 0, rotor.Ring{Inner: 2, Thickness: 1}, 7),
		}
		c, err := chain.New(rotors, rotor.Coord{X: 50, Y: 50})
		Expect(err).NotTo(HaveOccurred())
		c.Tick()

		want := make([]rotor.Coord, 0)
		for _, r := range rotors {
			for _, p := range r.Mask() {
				want = append(want, p.Add(r.Center))
			}
		}
		Expect(c.WorldPixels()).To(Equal(want))
	})
})
