package gd

// #cgo pkg-config: gdlib
// #include "gd_bridge.h"
import "C"

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

var (
	// Version is the libgd version string, e.g. "2.3.3"
	Version string
	// MajorVersion is the libgd major version
	MajorVersion int
	// MinorVersion is the libgd minor version
	MinorVersion int
	// ReleaseVersion is the libgd release version
	ReleaseVersion int
)

var (
	running      bool
	startupOnce  sync.Once
	shutdownLock sync.Mutex
	reportLeaks  bool
)

var stats struct {
	images  atomic.Int64
	fonts   atomic.Int64
	encodes atomic.Int64
}

// Config allows fine-tuning of the binding at startup
type Config struct {
	// Logger receives native libgd messages and binding diagnostics.
	// Nil keeps the current logger.
	Logger *slog.Logger
	// ReportLeaks logs a warning at Shutdown when images or fonts are still open
	ReportLeaks bool
	// UseFontconfig enables fontconfig patterns as TrueType font names
	UseFontconfig bool
}

// MemoryStats is a snapshot of native handles owned by the binding
type MemoryStats struct {
	Images        int64
	TrueTypeFonts int64
	Encodes       int64
}

func init() {
	Version = C.GoString(C.gdVersionString())
	MajorVersion = gdgenMajorVersion()
	MinorVersion = gdgenMinorVersion()
	ReleaseVersion = gdgenReleaseVersion()
}

// Startup installs the native error hook and applies config.
// It is safe to call more than once; only the first call has effect.
func Startup(config *Config) {
	startupOnce.Do(func() {
		startup(config)
	})
}

func startup(config *Config) {
	shutdownLock.Lock()
	defer shutdownLock.Unlock()

	if config != nil && config.Logger != nil {
		SetLogger(config.Logger)
	}
	C.gdgen_install_error_method()
	running = true

	if config == nil {
		config = &Config{}
	}
	reportLeaks = config.ReportLeaks
	if config.UseFontconfig {
		if err := SetFontconfig(true); err != nil {
			Logger().Error("fontconfig requested", "error", err)
		}
	}
	Logger().Info(fmt.Sprintf("libgd %s initialized", Version))
}

// Shutdown reports leaks if configured and releases the font cache
func Shutdown() {
	shutdownLock.Lock()
	defer shutdownLock.Unlock()

	if !running {
		return
	}
	var s MemoryStats
	ReadMemStats(&s)
	if reportLeaks && (s.Images > 0 || s.TrueTypeFonts > 0) {
		Logger().Warn("native handles still open at shutdown",
			"images", s.Images, "fonts", s.TrueTypeFonts)
	}
	C.gdgen_clear_error_method()
	if s.TrueTypeFonts == 0 {
		gdgenFontCacheShutdown()
	}
	running = false
}

// ReadMemStats fills stats with the current handle counts
func ReadMemStats(s *MemoryStats) {
	s.Images = stats.images.Load()
	s.TrueTypeFonts = stats.fonts.Load()
	s.Encodes = stats.encodes.Load()
}
