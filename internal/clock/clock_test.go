package clock

import (
	"testing"
	"time"

	clk "github.com/benbjohnson/clock"
	"go.viam.com/test"
)

func TestFrameClockDelta(t *testing.T) {
	mock := clk.NewMock()
	fc := NewFrameClock(mock, 0.1)

	test.That(t, fc.Delta(), test.ShouldEqual, 0.0)

	mock.Add(16 * time.Millisecond)
	test.That(t, fc.Delta(), test.ShouldAlmostEqual, 0.016, 1e-9)

	// A stall is clamped.
	mock.Add(3 * time.Second)
	test.That(t, fc.Delta(), test.ShouldEqual, 0.1)
	test.That(t, fc.Elapsed(), test.ShouldEqual, 3016*time.Millisecond)
}

func TestFrameClockUnclamped(t *testing.T) {
	mock := clk.NewMock()
	fc := NewFrameClock(mock, 0)
	fc.Delta()
	mock.Add(2 * time.Second)
	test.That(t, fc.Delta(), test.ShouldEqual, 2.0)
}

func TestSchedulerRunsInDueOrder(t *testing.T) {
	mock := clk.NewMock()
	s := NewScheduler(mock)

	var order []string
	s.After("late", 300*time.Millisecond, func() { order = append(order, "late") })
	s.After("early", 100*time.Millisecond, func() { order = append(order, "early") })
	s.After("mid", 200*time.Millisecond, func() { order = append(order, "mid") })
	test.That(t, s.Pending(), test.ShouldEqual, 3)

	test.That(t, s.Poll(), test.ShouldEqual, 0)

	mock.Add(250 * time.Millisecond)
	test.That(t, s.Poll(), test.ShouldEqual, 2)
	test.That(t, order, test.ShouldResemble, []string{"early", "mid"})

	mock.Add(50 * time.Millisecond)
	test.That(t, s.Poll(), test.ShouldEqual, 1)
	test.That(t, order, test.ShouldResemble, []string{"early", "mid", "late"})
	test.That(t, s.Pending(), test.ShouldEqual, 0)
}

func TestSchedulerReplaceAndCancel(t *testing.T) {
	mock := clk.NewMock()
	s := NewScheduler(mock)

	runs := map[string]int{}
	s.After("a", 100*time.Millisecond, func() { runs["first"]++ })
	s.After("a", 100*time.Millisecond, func() { runs["second"]++ })
	s.After("b", 100*time.Millisecond, func() { runs["b"]++ })
	test.That(t, s.Pending(), test.ShouldEqual, 2)

	test.That(t, s.Cancel("b"), test.ShouldBeTrue)
	test.That(t, s.Cancel("b"), test.ShouldBeFalse)
	test.That(t, s.Scheduled("a"), test.ShouldBeTrue)

	mock.Add(time.Second)
	s.Poll()
	test.That(t, runs, test.ShouldResemble, map[string]int{"second": 1})
	test.That(t, s.Scheduled("a"), test.ShouldBeFalse)
}

func TestSchedulerTaskCanReschedule(t *testing.T) {
	mock := clk.NewMock()
	s := NewScheduler(mock)

	count := 0
	var step func()
	step = func() {
		count++
		if count < 3 {
			s.After("step", 200*time.Millisecond, step)
		}
	}
	s.After("step", 200*time.Millisecond, step)

	for i := 0; i < 5; i++ {
		mock.Add(200 * time.Millisecond)
		s.Poll()
	}
	test.That(t, count, test.ShouldEqual, 3)
}

func TestFrameClockResync(t *testing.T) {
	mock := clk.NewMock()
	fc := NewFrameClock(mock, 0)
	fc.Delta()
	mock.Add(3 * time.Second)
	fc.Resync()
	mock.Add(10 * time.Millisecond)
	test.That(t, fc.Delta(), test.ShouldAlmostEqual, 0.01)
	test.That(t, fc.Elapsed(), test.ShouldEqual, 3010*time.Millisecond)
}

func TestSchedulerFreezeShiftsDeadlines(t *testing.T) {
	mock := clk.NewMock()
	s := NewScheduler(mock)

	var ran []string
	s.After("a", 500*time.Millisecond, func() { ran = append(ran, "a") })
	mock.Add(100 * time.Millisecond)

	s.Freeze()
	s.Freeze()
	test.That(t, s.Frozen(), test.ShouldBeTrue)
	// scheduled while frozen counts from the moment of freezing
	s.After("b", 100*time.Millisecond, func() { ran = append(ran, "b") })
	mock.Add(10 * time.Second)
	test.That(t, s.Poll(), test.ShouldEqual, 0)

	s.Thaw()
	test.That(t, s.Frozen(), test.ShouldBeFalse)
	test.That(t, s.Poll(), test.ShouldEqual, 0)

	mock.Add(100 * time.Millisecond)
	test.That(t, s.Poll(), test.ShouldEqual, 1)
	test.That(t, ran, test.ShouldResemble, []string{"b"})

	mock.Add(299 * time.Millisecond)
	test.That(t, s.Poll(), test.ShouldEqual, 0)
	mock.Add(time.Millisecond)
	test.That(t, s.Poll(), test.ShouldEqual, 1)
	test.That(t, ran, test.ShouldResemble, []string{"b", "a"})
}

func TestSchedulerThawWithoutFreeze(t *testing.T) {
	mock := clk.NewMock()
	s := NewScheduler(mock)
	runs := 0
	s.After("a", 100*time.Millisecond, func() { runs++ })
	s.Thaw()
	mock.Add(100 * time.Millisecond)
	test.That(t, s.Poll(), test.ShouldEqual, 1)
	test.That(t, runs, test.ShouldEqual, 1)
}
