package gd

// #include <gd.h>
import "C"

import (
	"bytes"
	"io"
	"os"
	"runtime"
	"sync"
	"unsafe"
)

// GIF frame disposal methods
const (
	DisposalUnknown           = C.gdDisposalUnknown
	DisposalNone              = C.gdDisposalNone
	DisposalRestoreBackground = C.gdDisposalRestoreBackground
	DisposalRestorePrevious   = C.gdDisposalRestorePrevious
)

// AnimatedGifOptions controls the animation header
type AnimatedGifOptions struct {
	// Loops is the repeat count; 0 loops forever and -1 plays once
	Loops int
	// GlobalColormap writes the first frame's palette as the global color map.
	// Without it every frame needs LocalColormap.
	GlobalColormap bool
}

// DefaultAnimatedGifOptions creates options for an endless loop sharing one color map
func DefaultAnimatedGifOptions() *AnimatedGifOptions {
	return &AnimatedGifOptions{
		Loops:          0,
		GlobalColormap: true,
	}
}

// FrameOptions controls a single frame
type FrameOptions struct {
	// Delay is the frame duration in hundredths of a second
	Delay int
	// PreviousFrame lets the encoder store only the pixels that changed
	PreviousFrame *Image
	// LocalColormap writes the frame's palette as a local color map
	LocalColormap bool
	Left          int
	Top           int
	Disposal      int
}

// DefaultFrameOptions creates options for a frame drawn over the previous one
func DefaultFrameOptions() *FrameOptions {
	return &FrameOptions{
		Disposal: DisposalNone,
	}
}

// AnimatedGif assembles GIF frames into an animation
type AnimatedGif struct {
	lock    sync.Mutex
	options AnimatedGifOptions
	started bool
	ended   bool
	buf     bytes.Buffer
}

// NewAnimatedGif creates an empty animation. Nil options use DefaultAnimatedGifOptions.
func NewAnimatedGif(options *AnimatedGifOptions) *AnimatedGif {
	if options == nil {
		options = DefaultAnimatedGifOptions()
	}
	return &AnimatedGif{options: *options}
}

func (a *AnimatedGif) appendNative(op string, fn func(size *C.int) unsafe.Pointer) error {
	var size C.int
	ptr := fn(&size)
	if ptr == nil {
		return handleGdError(op)
	}
	defer C.gdFree(ptr)
	a.buf.Write(C.GoBytes(ptr, size))
	return nil
}

// Add appends img as the next frame. The first frame also writes the header.
func (a *AnimatedGif) Add(img *Image, options *FrameOptions) error {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.ended {
		return ErrAnimationEnded
	}
	if img == nil || img.image == nil {
		return ErrImageClosed
	}
	if options == nil {
		options = DefaultFrameOptions()
	}
	defer runtime.KeepAlive(img)
	defer runtime.KeepAlive(options.PreviousFrame)
	if !a.started {
		err := a.appendNative("gdImageGifAnimBeginPtr", func(size *C.int) unsafe.Pointer {
			return C.gdImageGifAnimBeginPtr(img.image, size, C.int(boolToInt(a.options.GlobalColormap)), C.int(a.options.Loops))
		})
		if err != nil {
			return err
		}
		a.started = true
	}
	var previous C.gdImagePtr
	if options.PreviousFrame != nil {
		previous = options.PreviousFrame.image
	}
	return a.appendNative("gdImageGifAnimAddPtr", func(size *C.int) unsafe.Pointer {
		return C.gdImageGifAnimAddPtr(img.image, size, C.int(boolToInt(options.LocalColormap)),
			C.int(options.Left), C.int(options.Top), C.int(options.Delay), C.int(options.Disposal), previous)
	})
}

// End writes the trailer. No frames may be added afterwards.
func (a *AnimatedGif) End() error {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.ended {
		return ErrAnimationEnded
	}
	err := a.appendNative("gdImageGifAnimEndPtr", func(size *C.int) unsafe.Pointer {
		return C.gdImageGifAnimEndPtr(size)
	})
	if err != nil {
		return err
	}
	a.ended = true
	return nil
}

// Ended reports whether End has been called
func (a *AnimatedGif) Ended() bool {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.ended
}

// Bytes returns the finished animation
func (a *AnimatedGif) Bytes() ([]byte, error) {
	a.lock.Lock()
	defer a.lock.Unlock()
	if !a.ended {
		return nil, ErrAnimationNotEnded
	}
	return bytes.Clone(a.buf.Bytes()), nil
}

// WriteTo writes the finished animation to w
func (a *AnimatedGif) WriteTo(w io.Writer) (int64, error) {
	buf, err := a.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// Export writes the finished animation to a file
func (a *AnimatedGif) Export(filename string) error {
	buf, err := a.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, buf, 0644)
}
