// Package window implements a pinned, peekable lookahead buffer over a lazily
// fetched item source.
package window

import "fmt"

// Source produces items on demand.
type Source[T any] interface {
	// FetchItems copies items starting at sourceIndex into dst and returns how
	// many were copied. Zero means the source is exhausted.
	FetchItems(dst []T, sourceIndex int) int
}

// SliceSource serves items from an in-memory slice.
type SliceSource[T any] []T

func (s SliceSource[T]) FetchItems(dst []T, sourceIndex int) int {
	if sourceIndex >= len(s) {
		return 0
	}
	return copy(dst, s[sourceIndex:])
}

// UnknownLength tells New that the source length is not known up front.
const UnknownLength = -1

// SlidingWindow maps absolute source indices onto a movable range of a
// buffer: [windowAbsoluteStartIndex, windowAbsoluteStartIndex+windowCount).
//
// While at least one index is pinned no reclaim discards data at or after the
// earliest pinned index. Misuse of pins is a programming error and panics.
type SlidingWindow[T any] struct {
	source Source[T]

	window                   []T
	windowCount              int
	windowAbsoluteStartIndex int
	currentRelativeItemIndex int

	pinCount                 int
	firstPinnedAbsoluteIndex int // -1 when nothing is pinned

	defaultValue T
	sourceLength int
}

// New creates a window with the given initial capacity. defaultValue is
// returned for every read past the end of the source.
func New[T any](source Source[T], capacity int, defaultValue T, sourceLength int) *SlidingWindow[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("window: capacity must be positive, got %d", capacity))
	}
	return &SlidingWindow[T]{
		source:                   source,
		window:                   make([]T, capacity),
		firstPinnedAbsoluteIndex: -1,
		defaultValue:             defaultValue,
		sourceLength:             sourceLength,
	}
}

func (w *SlidingWindow[T]) windowAbsoluteEndIndex() int {
	return w.windowAbsoluteStartIndex + w.windowCount
}

func (w *SlidingWindow[T]) addMoreItemsToWindow() bool {
	if w.sourceLength >= 0 && w.windowAbsoluteEndIndex() >= w.sourceLength {
		return false
	}
	if w.windowCount >= len(w.window) {
		w.tryShiftOrGrowWindow()
	}
	n := w.source.FetchItems(w.window[w.windowCount:], w.windowAbsoluteEndIndex())
	w.windowCount += n
	return n > 0
}

// tryShiftOrGrowWindow reclaims room at the end of a full buffer: live data
// is shifted down when the cursor is past the halfway point and no pin
// holds the start, otherwise the buffer doubles.
func (w *SlidingWindow[T]) tryShiftOrGrowWindow() {
	pastHalfway := w.currentRelativeItemIndex >= len(w.window)/2
	shiftStart := w.currentRelativeItemIndex
	if w.firstPinnedAbsoluteIndex != -1 {
		shiftStart = w.firstPinnedAbsoluteIndex - w.windowAbsoluteStartIndex
	}
	// курсор мог уйти за прочитанные элементы
	shiftStart = min(shiftStart, w.windowCount)
	if pastHalfway && shiftStart > 0 {
		copy(w.window, w.window[shiftStart:w.windowCount])
		w.windowAbsoluteStartIndex += shiftStart
		w.windowCount -= shiftStart
		w.currentRelativeItemIndex -= shiftStart
		return
	}
	grown := make([]T, len(w.window)*2)
	copy(grown, w.window[:w.windowCount])
	w.window = grown
}

// Capacity is the current buffer size.
func (w *SlidingWindow[T]) Capacity() int {
	return len(w.window)
}

// AbsoluteIndex is the source index of the current item.
func (w *SlidingWindow[T]) AbsoluteIndex() int {
	return w.windowAbsoluteStartIndex + w.currentRelativeItemIndex
}

// CurrentItem returns the item under the cursor, or the default value at the
// end of the source.
func (w *SlidingWindow[T]) CurrentItem() T {
	return w.PeekItemN(0)
}

// PeekItemN returns the item n positions past the cursor.
func (w *SlidingWindow[T]) PeekItemN(n int) T {
	if n < 0 {
		panic(fmt.Sprintf("window: negative peek distance %d", n))
	}
	if !w.fill(n) {
		return w.defaultValue
	}
	return w.window[w.currentRelativeItemIndex+n]
}

// fill fetches until the item n past the cursor is buffered. Items the
// cursor skipped without reading are fetched on the way.
func (w *SlidingWindow[T]) fill(n int) bool {
	for w.currentRelativeItemIndex+n >= w.windowCount {
		if !w.addMoreItemsToWindow() {
			return false
		}
	}
	return true
}

// MoveToNextItem advances the cursor by one item.
func (w *SlidingWindow[T]) MoveToNextItem() {
	w.currentRelativeItemIndex++
}

// IsAtEndOfSource reports whether no item is left under the cursor.
func (w *SlidingWindow[T]) IsAtEndOfSource() bool {
	if w.sourceLength >= 0 {
		return w.AbsoluteIndex() >= w.sourceLength
	}
	return !w.fill(0)
}

// GetAndPinAbsoluteIndex pins the current position and returns it. Pins
// nest; every pin must be released with ReleaseAndUnpinAbsoluteIndex.
func (w *SlidingWindow[T]) GetAndPinAbsoluteIndex() int {
	abs := w.AbsoluteIndex()
	if w.pinCount == 0 {
		w.firstPinnedAbsoluteIndex = abs
	}
	w.pinCount++
	return abs
}

// ReleaseAndUnpinAbsoluteIndex drops a pin taken at absoluteIndex.
func (w *SlidingWindow[T]) ReleaseAndUnpinAbsoluteIndex(absoluteIndex int) {
	if w.pinCount == 0 {
		panic(fmt.Sprintf("window: release of index %d without a pin", absoluteIndex))
	}
	if absoluteIndex < w.firstPinnedAbsoluteIndex {
		panic(fmt.Sprintf("window: release of index %d before first pin %d", absoluteIndex, w.firstPinnedAbsoluteIndex))
	}
	w.pinCount--
	if w.pinCount == 0 {
		w.firstPinnedAbsoluteIndex = -1
	}
}

// RewindToPinnedIndex moves the cursor back to a pinned position.
func (w *SlidingWindow[T]) RewindToPinnedIndex(absoluteIndex int) {
	if w.pinCount == 0 {
		panic(fmt.Sprintf("window: rewind to %d without a pin", absoluteIndex))
	}
	relative := absoluteIndex - w.windowAbsoluteStartIndex
	if relative < 0 || relative > w.windowCount {
		panic(fmt.Sprintf("window: rewind to %d outside live range [%d, %d]",
			absoluteIndex, w.windowAbsoluteStartIndex, w.windowAbsoluteEndIndex()))
	}
	w.currentRelativeItemIndex = relative
}

// SetAbsoluteIndex repositions the cursor anywhere in the source. Buffered
// items are reused when the target is inside the live range.
func (w *SlidingWindow[T]) SetAbsoluteIndex(absoluteIndex int) {
	if w.pinCount != 0 {
		panic(fmt.Sprintf("window: seek to %d while %d pin(s) are held", absoluteIndex, w.pinCount))
	}
	if absoluteIndex < 0 {
		panic(fmt.Sprintf("window: negative index %d", absoluteIndex))
	}
	if absoluteIndex >= w.windowAbsoluteStartIndex && absoluteIndex <= w.windowAbsoluteEndIndex() {
		w.currentRelativeItemIndex = absoluteIndex - w.windowAbsoluteStartIndex
		return
	}
	w.windowAbsoluteStartIndex = absoluteIndex
	w.windowCount = 0
	w.currentRelativeItemIndex = 0
}

// ItemsSince returns the buffered items from a pinned index up to the cursor.
// The slice aliases the buffer and is valid until the next read.
func (w *SlidingWindow[T]) ItemsSince(pinnedAbsoluteIndex int) []T {
	if w.pinCount == 0 || pinnedAbsoluteIndex < w.firstPinnedAbsoluteIndex {
		panic(fmt.Sprintf("window: index %d is not pinned", pinnedAbsoluteIndex))
	}
	if w.currentRelativeItemIndex > 0 {
		w.fill(-1)
	}
	from := pinnedAbsoluteIndex - w.windowAbsoluteStartIndex
	if from < 0 || from > w.currentRelativeItemIndex || w.currentRelativeItemIndex > w.windowCount {
		panic(fmt.Sprintf("window: index %d outside live range", pinnedAbsoluteIndex))
	}
	return w.window[from:w.currentRelativeItemIndex]
}
