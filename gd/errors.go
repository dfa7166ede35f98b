package gd

// #include <gd.h>
import "C"

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

var (
	ErrUnrecognizedImageType    = errors.New("gd: unrecognized image type")
	ErrInvalidSize              = errors.New("gd: invalid image size")
	ErrMemoryAllocation         = errors.New("gd: unable to allocate image")
	ErrImageClosed              = errors.New("gd: image is closed")
	ErrPaletteFull              = errors.New("gd: palette is full")
	ErrColorNotFound            = errors.New("gd: color is not in the palette")
	ErrPaletteAssignment        = errors.New("gd: palette assignment not supported for true color images")
	ErrIndexOutOfRange          = errors.New("gd: palette index out of range")
	ErrAlphaBlendingUnavailable = errors.New("gd: alpha blending mode not available for indexed color images")
	ErrNotSquare                = errors.New("gd: image must be square")
	ErrNoColorSelected          = errors.New("gd: no drawing color selected")
	ErrNoFontSelected           = errors.New("gd: no font selected")
	ErrAngleNotSupported        = errors.New("gd: angle not supported for built-in fonts")
	ErrTextCircleUnsupported    = errors.New("gd: text circles require a TrueType font")
	ErrFontconfigUnavailable    = errors.New("gd: fontconfig not available")
	ErrMissingForeground        = errors.New("gd: WBMP export requires a foreground color")
	ErrAnimationEnded           = errors.New("gd: animation already ended")
	ErrAnimationNotEnded        = errors.New("gd: animation not ended")
	ErrMismatchedOptions        = errors.New("gd: options do not apply to this format")
)

// LibraryError is returned when a native call yields no result
type LibraryError struct {
	Op      string
	Message string
}

func (e *LibraryError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gd: %s failed", e.Op)
	}
	return fmt.Sprintf("gd: %s failed: %s", e.Op, e.Message)
}

// FreeTypeError carries the message returned by the FreeType text renderer
type FreeTypeError struct {
	Message string
}

func (e *FreeTypeError) Error() string {
	return "gd: freetype: " + e.Message
}

var (
	lastErrorLock sync.Mutex
	lastError     string
)

//export goGdErrorCallback
func goGdErrorCallback(priority C.int, message *C.char) {
	logNativeMessage(int(priority), C.GoString(message))
}

// libgd message priorities
const (
	priorityError   = C.GD_ERROR
	priorityWarning = C.GD_WARNING
	priorityNotice  = C.GD_NOTICE
	priorityInfo    = C.GD_INFO
	priorityDebug   = C.GD_DEBUG
)

func nativeLevel(priority int) slog.Level {
	switch priority {
	case priorityError:
		return slog.LevelError
	case priorityWarning:
		return slog.LevelWarn
	case priorityNotice, priorityInfo:
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

// logNativeMessage logs msg and keeps warnings and errors for the next LibraryError
func logNativeMessage(priority int, msg string) {
	msg = strings.TrimRight(msg, "\n")
	level := nativeLevel(priority)
	if level >= slog.LevelWarn {
		lastErrorLock.Lock()
		lastError = msg
		lastErrorLock.Unlock()
	}
	Logger().Log(context.Background(), level, "libgd: "+msg)
}

// takeGdError returns and clears the last native error message
func takeGdError() string {
	lastErrorLock.Lock()
	defer lastErrorLock.Unlock()
	msg := lastError
	lastError = ""
	return msg
}

func handleGdError(op string) error {
	return &LibraryError{Op: op, Message: takeGdError()}
}
