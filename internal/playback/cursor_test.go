package playback_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bsviz/internal/playback"
)

var _ = Describe("Cursor", func() {
	var c playback.Cursor

	BeforeEach(func() {
		c = playback.Cursor{}
	})

	It("starts empty", func() {
		Expect(c.State()).To(Equal(playback.Empty))
		Expect(c.Index()).To(Equal(-1))
		Expect(c.Tick()).To(BeFalse())
		Expect(c.StepForward()).To(BeFalse())
		Expect(c.StepBack()).To(BeFalse())
	})

	Context("after Load", func() {
		BeforeEach(func() {
			c.Load(4)
		})

		It("plays from the first step", func() {
			Expect(c.Index()).To(Equal(0))
			Expect(c.State()).To(Equal(playback.Playing))
		})

		It("advances one step per tick and finishes at the last step", func() {
			Expect(c.Tick()).To(BeTrue())
			Expect(c.Tick()).To(BeTrue())
			Expect(c.Index()).To(Equal(2))
			Expect(c.Tick()).To(BeTrue())
			Expect(c.Index()).To(Equal(3))
			Expect(c.State()).To(Equal(playback.Finished))
			Expect(c.Tick()).To(BeFalse())
			Expect(c.Index()).To(Equal(3))
		})

		It("pauses on StepForward", func() {
			Expect(c.StepForward()).To(BeTrue())
			Expect(c.Index()).To(Equal(1))
			Expect(c.State()).To(Equal(playback.Paused))
			Expect(c.Tick()).To(BeFalse())
		})

		It("treats StepBack at index 0 as a no-op", func() {
			Expect(c.StepBack()).To(BeFalse())
			Expect(c.Index()).To(Equal(0))
			Expect(c.State()).To(Equal(playback.Paused))
		})

		It("treats StepForward at the last index as a no-op", func() {
			for c.StepForward() {
			}
			Expect(c.Index()).To(Equal(3))
			Expect(c.StepForward()).To(BeFalse())
			Expect(c.Index()).To(Equal(3))
			Expect(c.State()).To(Equal(playback.Finished))
		})

		It("flips between playing and paused", func() {
			c.TogglePlay()
			Expect(c.State()).To(Equal(playback.Paused))
			c.TogglePlay()
			Expect(c.State()).To(Equal(playback.Playing))
		})

		It("rewinds and resumes when toggled from finished", func() {
			for c.Tick() {
			}
			Expect(c.State()).To(Equal(playback.Finished))
			c.TogglePlay()
			Expect(c.Index()).To(Equal(0))
			Expect(c.State()).To(Equal(playback.Playing))
		})

		It("stays clamped under any sequence of moves", func() {
			moves := []func(){
				func() { c.StepBack() },
				func() { c.StepForward() },
				func() { c.Tick() },
				func() { c.TogglePlay() },
			}
			for i := 0; i < 200; i++ {
				moves[(i*7+i/3)%len(moves)]()
				Expect(c.Index()).To(BeNumerically(">=", 0))
				Expect(c.Index()).To(BeNumerically("<=", 3))
			}
		})

		It("unloads on Clear", func() {
			c.Clear()
			Expect(c.State()).To(Equal(playback.Empty))
			Expect(c.Len()).To(BeZero())
		})
	})

	It("treats Load(0) as empty", func() {
		c.Load(0)
		Expect(c.State()).To(Equal(playback.Empty))
	})
})
