package prism

import (
	"reflect"
	"testing"
)

func TestFrameQueueOrder(t *testing.T) {
	q := NewFrameQueue()
	var got []int
	for i := 0; i < 4; i++ {
		i := i
		q.RequestFrame(func() { got = append(got, i) })
	}
	if n := q.Run(); n != 4 {
		t.Fatalf("ran %d want 4", n)
	}
	if !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Fatalf("order %v", got)
	}
	if q.Run() != 0 {
		t.Fatal("queue should be empty")
	}
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	id := q.RequestFrame(func() { ran = true })
	q.CancelFrame(id)
	q.CancelFrame(id)
	q.CancelFrame(12345)
	q.Run()
	if ran {
		t.Fatal("cancelled callback ran")
	}
}

func TestFrameQueueDefersNewRequests(t *testing.T) {
	q := NewFrameQueue()
	count := 0
	var loop func()
	loop = func() {
		count++
		q.RequestFrame(loop)
	}
	q.RequestFrame(loop)
	for i := 1; i <= 3; i++ {
		if q.Run() != 1 {
			t.Fatalf("run %d executed more than one iteration", i)
		}
		if count != i {
			t.Fatalf("count=%d want %d", count, i)
		}
	}
}

func TestFrameQueueCancelWithinRun(t *testing.T) {
	q := NewFrameQueue()
	second := false
	var id FrameID
	q.RequestFrame(func() { q.CancelFrame(id) })
	id = q.RequestFrame(func() { second = true })
	if n := q.Run(); n != 1 {
		t.Fatalf("ran %d want 1", n)
	}
	if second {
		t.Fatal("callback cancelled by an earlier one still ran")
	}
}

func TestFrameRing(t *testing.T) {
	r := newFrameRing(3)
	if len(r.snapshot(5)) != 0 {
		t.Fatal("empty ring should yield nothing")
	}
	for _, v := range []float64{1, 2, 3, 4, 5} {
		r.record(v)
	}
	if got := r.snapshot(5); !reflect.DeepEqual(got, []float64{3, 4, 5}) {
		t.Fatalf("snapshot %v", got)
	}
	if got := r.snapshot(2); !reflect.DeepEqual(got, []float64{4, 5}) {
		t.Fatalf("snapshot %v", got)
	}
	if got := r.rate(); got != 1 {
		t.Fatalf("rate %v want 1", got)
	}
}
