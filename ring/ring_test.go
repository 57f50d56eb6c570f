// SPDX-License-Identifier: EPL-2.0

package ring

import (
	"sync"
	"testing"
)

func TestNew_RoundsUpToPowerOfTwo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		requested int
		usable    int
	}{
		{1, 1},
		{2, 1},
		{3, 3},
		{4, 3},
		{5, 7},
		{7, 7},
		{8, 7},
		{1000, 1023},
	}

	for _, tc := range cases {
		rb, err := New[int](tc.requested)
		if err != nil {
			t.Fatalf("New(%d) error = %v", tc.requested, err)
		}
		if rb.Capacity() != tc.usable {
			t.Errorf("New(%d).Capacity() = %d, want %d", tc.requested, rb.Capacity(), tc.usable)
		}
	}
}

func TestNew_InvalidCapacity(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, -1, maxCapacity + 1} {
		if _, err := New[int](capacity); err != ErrInvalidCapacity {
			t.Errorf("New(%d) error = %v, want ErrInvalidCapacity", capacity, err)
		}
	}
}

func TestWriteRead_FIFO(t *testing.T) {
	t.Parallel()

	rb, err := New[int](8)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for i := 1; i <= 5; i++ {
		if !rb.Write(i) {
			t.Fatalf("Write(%d) = false, want true", i)
		}
	}

	for i := 1; i <= 5; i++ {
		v, ok := rb.Read()
		if !ok {
			t.Fatalf("Read() empty after %d reads", i-1)
		}
		if v != i {
			t.Errorf("Read() = %d, want %d", v, i)
		}
	}

	if !rb.IsEmpty() {
		t.Error("IsEmpty() = false after draining")
	}
}

func TestWrite_FullBuffer(t *testing.T) {
	t.Parallel()

	rb, _ := New[int](4) // usable capacity 3

	for i := 0; i < 3; i++ {
		if !rb.Write(i) {
			t.Fatalf("Write(%d) = false before buffer is full", i)
		}
	}

	if rb.Write(99) {
		t.Error("Write() = true on a full buffer")
	}
	if !rb.IsFull() {
		t.Error("IsFull() = false after filling")
	}
	if rb.IsEmpty() {
		t.Error("IsEmpty() = true on a full buffer")
	}
	if !rb.HasOverrun() {
		t.Error("HasOverrun() = false after rejected write")
	}
}

func TestWriteRead_AcrossWrap(t *testing.T) {
	t.Parallel()

	// Size 4, usable 3. Exercise the wrap: write 3, read 1, write 1,
	// then drain in order.
	rb, _ := New[int](4)

	if n := rb.WriteSlice([]int{1, 2, 3}); n != 3 {
		t.Fatalf("WriteSlice() = %d, want 3", n)
	}
	if v, _ := rb.Read(); v != 1 {
		t.Fatalf("Read() = %d, want 1", v)
	}
	if !rb.Write(4) {
		t.Fatal("Write(4) = false after making room")
	}

	want := []int{2, 3, 4}
	for _, w := range want {
		v, ok := rb.Read()
		if !ok || v != w {
			t.Errorf("Read() = %d (ok=%v), want %d", v, ok, w)
		}
	}
}

func TestWriteSlice_Partial(t *testing.T) {
	t.Parallel()

	// Requested 5 rounds to 8 slots, 7 usable.
	rb, err := New[int](5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if rb.Capacity() != 7 {
		t.Fatalf("Capacity() = %d, want 7", rb.Capacity())
	}

	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if n := rb.WriteSlice(items); n != 7 {
		t.Errorf("WriteSlice(9 items) = %d, want 7", n)
	}
	if !rb.HasOverrun() {
		t.Error("HasOverrun() = false after partial write")
	}

	dst := make([]int, 7)
	if n := rb.ReadSlice(dst); n != 7 {
		t.Fatalf("ReadSlice() = %d, want 7", n)
	}
	for i, v := range dst {
		if v != i+1 {
			t.Errorf("dst[%d] = %d, want %d", i, v, i+1)
		}
	}
}

func TestWriteSlice_FillsFreeSlots(t *testing.T) {
	t.Parallel()

	rb, err := New[int](7)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// An empty buffer accepts exactly its capacity in one call.
	full := []int{1, 2, 3, 4, 5, 6, 7}
	if n := rb.WriteSlice(full); n != rb.Capacity() {
		t.Fatalf("WriteSlice into empty buffer = %d, want %d", n, rb.Capacity())
	}
	if rb.HasOverrun() {
		t.Error("HasOverrun() = true after exact-fit write")
	}

	// After draining part of it, WriteSlice accepts exactly the freed
	// slots, matching WriteAvailable.
	dst := make([]int, 3)
	if n := rb.ReadSlice(dst); n != 3 {
		t.Fatalf("ReadSlice() = %d, want 3", n)
	}
	if got, want := rb.WriteAvailable(), 3; got != want {
		t.Fatalf("WriteAvailable() = %d, want %d", got, want)
	}
	if n := rb.WriteSlice([]int{8, 9, 10}); n != 3 {
		t.Fatalf("WriteSlice after partial drain = %d, want 3", n)
	}

	want := []int{4, 5, 6, 7, 8, 9, 10}
	out := make([]int, len(want))
	if n := rb.ReadSlice(out); n != len(want) {
		t.Fatalf("ReadSlice() = %d, want %d", n, len(want))
	}
	for i, v := range out {
		if v != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestReadSlice_Underrun(t *testing.T) {
	t.Parallel()

	rb, _ := New[float32](8)
	rb.WriteSlice([]float32{0.1, 0.2})

	dst := make([]float32, 4)
	if n := rb.ReadSlice(dst); n != 2 {
		t.Errorf("ReadSlice() = %d, want 2", n)
	}
	if !rb.HasUnderrun() {
		t.Error("HasUnderrun() = false after short read")
	}

	rb.ClearUnderrun()
	if rb.HasUnderrun() {
		t.Error("HasUnderrun() = true after ClearUnderrun()")
	}
}

func TestRead_Empty(t *testing.T) {
	t.Parallel()

	rb, _ := New[int](8)

	if _, ok := rb.Read(); ok {
		t.Error("Read() = ok on an empty buffer")
	}
	if !rb.HasUnderrun() {
		t.Error("HasUnderrun() = false after empty read")
	}
}

func TestAvailable(t *testing.T) {
	t.Parallel()

	rb, _ := New[int](8) // usable 7

	if rb.WriteAvailable() != 7 {
		t.Errorf("WriteAvailable() = %d, want 7", rb.WriteAvailable())
	}

	rb.WriteSlice([]int{1, 2, 3})
	if rb.ReadAvailable() != 3 {
		t.Errorf("ReadAvailable() = %d, want 3", rb.ReadAvailable())
	}
	if rb.WriteAvailable() != 4 {
		t.Errorf("WriteAvailable() = %d, want 4", rb.WriteAvailable())
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	rb, _ := New[int](4)
	rb.WriteSlice([]int{1, 2, 3})
	rb.Write(4) // overrun
	rb.Clear()

	if !rb.IsEmpty() {
		t.Error("IsEmpty() = false after Clear()")
	}
	if rb.HasOverrun() {
		t.Error("HasOverrun() = true after Clear()")
	}
	if rb.ReadAvailable() != 0 {
		t.Errorf("ReadAvailable() = %d after Clear(), want 0", rb.ReadAvailable())
	}
}

// TestConcurrent_SPSC streams a long sequence through a small buffer with
// one producer and one consumer goroutine and verifies order and content.
func TestConcurrent_SPSC(t *testing.T) {
	t.Parallel()

	const total = 100000
	rb, _ := New[int](64)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < total; {
			if rb.Write(i) {
				i++
			}
		}
	}()

	var got []int
	go func() {
		defer wg.Done()
		buf := make([]int, 32)
		for len(got) < total {
			n := rb.ReadSlice(buf)
			got = append(got, buf[:n]...)
		}
	}()

	wg.Wait()

	if len(got) != total {
		t.Fatalf("consumed %d elements, want %d", len(got), total)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("got[%d] = %d, want %d", i, v, i)
		}
	}
}
