package coro

// Allocator lets a caller supply a pooled or arena allocator for a
// coroutine's byte-stack storage instead of the default
// make([]byte, n). See SPEC_FULL.md §11: this generalizes spec.md §9's
// note that a custom allocator is "one clean approach" for closure
// storage into a concrete extension point on Descriptor.
type Allocator interface {
	// Alloc returns a zeroed slice of exactly n bytes, or nil to signal
	// allocation failure (reported to the caller as ErrOutOfMemory).
	Alloc(n int) []byte
	// Free releases a slice previously returned by Alloc. It is called
	// at most once per Alloc call, from Destroy.
	Free([]byte)
}

// defaultAllocator backs Descriptor.Allocator when left nil.
type defaultAllocator struct{}

func (defaultAllocator) Alloc(n int) []byte { return make([]byte, n) }
func (defaultAllocator) Free([]byte)        {}

// newStorage allocates a coroutine's byte-stack buffer. spec.md §4.2
// packs a coroutine's storage and stack into one aligned allocation;
// this port has no manual stack to pack alongside it (a coroutine's
// body runs on an ordinary goroutine, whose stack this package neither
// owns nor sizes — see DESIGN.md), so storage is the only region left
// to allocate. Its size is still rounded up to the platform's
// allocation granularity, so the size requested from an Allocator is
// always a whole number of OS pages; the alignment of the returned
// memory is up to the Allocator. The byte-stack's capacity stays the
// requested storage size (see coroState.capacity).
func newStorage(storageSize StorageSize, alloc Allocator) ([]byte, Allocator, error) {
	if storageSize <= 0 {
		storageSize = DefaultStorageSize
	}

	size := alignUp(int(storageSize))
	if g := allocationGranularity(); size%g != 0 {
		size += g - size%g
	}

	if alloc == nil {
		alloc = defaultAllocator{}
	}
	buf := alloc.Alloc(size)
	if buf == nil {
		return nil, nil, opErr("create", ErrOutOfMemory)
	}

	return buf, alloc, nil
}
