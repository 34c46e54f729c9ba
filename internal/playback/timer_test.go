package playback_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bsviz/internal/playback"
)

var _ = Describe("Timer", func() {
	It("clamps the interval to the minimum", func() {
		t := playback.NewTimer(time.Millisecond)
		Expect(t.Interval()).To(Equal(playback.MinInterval))

		t.SetInterval(250 * time.Millisecond)
		Expect(t.Interval()).To(Equal(250 * time.Millisecond))
	})

	It("accepts only the latest scheduled tick", func() {
		t := playback.NewTimer(playback.DefaultInterval)
		first := t.Schedule()
		second := t.Schedule()

		Expect(t.Accept(first)).To(BeFalse())
		Expect(t.Pending()).To(BeTrue())
		Expect(t.Accept(second)).To(BeTrue())
		Expect(t.Pending()).To(BeFalse())
	})

	It("accepts a tick at most once", func() {
		t := playback.NewTimer(playback.DefaultInterval)
		gen := t.Schedule()
		Expect(t.Accept(gen)).To(BeTrue())
		Expect(t.Accept(gen)).To(BeFalse())
	})

	It("drops the outstanding tick on Cancel", func() {
		t := playback.NewTimer(playback.DefaultInterval)
		gen := t.Schedule()
		t.Cancel()
		Expect(t.Pending()).To(BeFalse())
		Expect(t.Accept(gen)).To(BeFalse())
	})
})
