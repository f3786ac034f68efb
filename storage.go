package coro

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

// pushBytes implements spec.md §4.3's push: copies src onto the top of
// s's byte-stack. A zero-length push is always a no-op success.
func (s *coroState) pushBytes(src []byte) error {
	n := len(src)
	if n == 0 {
		return nil
	}
	if s.storedBytes+n > s.capacity {
		return opErr("push", ErrNotEnoughSpace)
	}
	s.pushBytesUnchecked(src)
	return nil
}

// pushBytesUnchecked skips the capacity check pushBytes performs.
func (s *coroState) pushBytesUnchecked(src []byte) {
	n := len(src)
	copy(s.storage[s.storedBytes:s.storedBytes+n], src)
	s.storedBytes += n
}

// popBytes implements spec.md §4.3's pop: copies n bytes from the top
// of s's byte-stack into dst and retreats the cursor. dst may be nil
// for pop-and-discard.
func (s *coroState) popBytes(n int, dst []byte) error {
	if n == 0 {
		return nil
	}
	if n > s.storedBytes {
		return opErr("pop", ErrNotEnoughSpace)
	}
	s.popBytesUnchecked(n, dst)
	return nil
}

// popBytesUnchecked skips the capacity check popBytes performs.
func (s *coroState) popBytesUnchecked(n int, dst []byte) {
	s.storedBytes -= n
	if dst != nil {
		copy(dst, s.storage[s.storedBytes:s.storedBytes+n])
	}
}

// peekBytes implements spec.md §4.3's peek: copies the top n bytes
// without moving the cursor.
func (s *coroState) peekBytes(n int, dst []byte) error {
	if n == 0 {
		return nil
	}
	if n > s.storedBytes {
		return opErr("peek", ErrNotEnoughSpace)
	}
	s.peekBytesUnchecked(n, dst)
	return nil
}

// peekBytesUnchecked skips the capacity check peekBytes performs.
func (s *coroState) peekBytesUnchecked(n int, dst []byte) {
	copy(dst, s.storage[s.storedBytes-n:s.storedBytes])
}

// dataChannel is satisfied by both the owning handle (*Coroutine) and
// the non-owning handle (Yielder), so Push/Pop/Peek work uniformly over
// spec.md §4.4's pair of handle types. It is unexported: callers reach
// it only by passing one of this package's own handle types to
// Push/Pop/Peek, never by implementing it themselves.
type dataChannel interface {
	pushBytes([]byte) error
	pushBytesUnchecked([]byte)
	popBytes(int, []byte) error
	popBytesUnchecked(int, []byte)
	peekBytes(int, []byte) error
	peekBytesUnchecked(int, []byte)
}

// storable is the closest Go generics can come to spec.md §4.3's "fixed
// T that is byte-copyable, layout-stable, and at most 1 KiB": comparable
// rules out slices, maps and funcs (though not pointers, strings or
// interface types). The 1 KiB
// bound itself is enforced at runtime by checkStorable, not by this
// constraint — see DESIGN.md's "Open Question resolutions".
type storable interface {
	comparable
}

var sizeChecked sync.Map // map[reflect.Type]struct{}

// checkStorable enforces spec.md §8's "a storable type exceeding 1 KiB
// must be rejected" boundary behavior. Go generics cannot evaluate
// unsafe.Sizeof(T) in a context the compiler can reject before
// codegen, so this checks once per distinct T and panics the first
// time an oversized T is ever pushed, popped or peeked — the closest
// approximation of "rejected before the program does real work" the
// language allows without code generation.
func checkStorable[T storable]() {
	var zero T
	t := reflect.TypeOf(zero)
	if _, ok := sizeChecked.Load(t); ok {
		return
	}
	if size := int(unsafe.Sizeof(zero)); size > maxStorableSize {
		panic(fmt.Sprintf("coro: type %v is %d bytes, exceeds the %d-byte storable limit", t, size, maxStorableSize))
	}
	sizeChecked.Store(t, struct{}{})
}

func bytesOf[T storable](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// Push copies v onto the top of h's byte-stack. See spec.md §4.3: n is
// fixed at sizeof(T) for the instantiated T.
func Push[T storable](h dataChannel, v T) error {
	checkStorable[T]()
	return h.pushBytes(bytesOf(&v))
}

// PushUnchecked is Push without the capacity check. Violating its
// precondition (enough remaining capacity) is undefined behavior.
func PushUnchecked[T storable](h dataChannel, v T) {
	checkStorable[T]()
	h.pushBytesUnchecked(bytesOf(&v))
}

// Pop removes and returns the top T from h's byte-stack.
func Pop[T storable](h dataChannel) (T, error) {
	checkStorable[T]()
	var v T
	err := h.popBytes(int(unsafe.Sizeof(v)), bytesOf(&v))
	return v, err
}

// PopUnchecked is Pop without the capacity check. Violating its
// precondition (sizeof(T) bytes stored) is undefined behavior.
func PopUnchecked[T storable](h dataChannel) T {
	checkStorable[T]()
	var v T
	h.popBytesUnchecked(int(unsafe.Sizeof(v)), bytesOf(&v))
	return v
}

// Peek returns the top T from h's byte-stack without removing it.
func Peek[T storable](h dataChannel) (T, error) {
	checkStorable[T]()
	var v T
	err := h.peekBytes(int(unsafe.Sizeof(v)), bytesOf(&v))
	return v, err
}

// PeekUnchecked is Peek without the capacity check.
func PeekUnchecked[T storable](h dataChannel) T {
	checkStorable[T]()
	var v T
	h.peekBytesUnchecked(int(unsafe.Sizeof(v)), bytesOf(&v))
	return v
}
