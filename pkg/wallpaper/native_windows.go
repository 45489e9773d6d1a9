//go:build windows

package wallpaper

import (
	"context"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/glorpus-work/wallers/pkg/errors"
)

// DefaultHelper is empty on Windows: the native call is used instead.
const DefaultHelper = ""

const (
	spiSetDeskWallpaper = 0x0014
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02
)

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersW = user32.NewProc("SystemParametersInfoW")
	procSystemParametersA = user32.NewProc("SystemParametersInfoA")
)

// NativeSetter sets the wallpaper through SystemParametersInfo.
type NativeSetter struct {
	// Use32Bit calls the ANSI SystemParametersInfoA instead of the wide variant.
	Use32Bit bool
}

func defaultSetter(opts Options) (Setter, error) {
	return &NativeSetter{Use32Bit: opts.Use32Bit}, nil
}

// Set applies path and persists it to the user profile.
func (n *NativeSetter) Set(_ context.Context, path string) error {
	abs, err := absPath(path)
	if err != nil {
		return err
	}

	proc := procSystemParametersW
	var param unsafe.Pointer
	if n.Use32Bit {
		proc = procSystemParametersA
		p, err := windows.BytePtrFromString(abs)
		if err != nil {
			return fmt.Errorf("%w: %w", errors.ErrWallpaperSet, err)
		}
		param = unsafe.Pointer(p)
	} else {
		p, err := windows.UTF16PtrFromString(abs)
		if err != nil {
			return fmt.Errorf("%w: %w", errors.ErrWallpaperSet, err)
		}
		param = unsafe.Pointer(p)
	}

	if err := proc.Find(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrWallpaperSet, err)
	}
	ret, _, callErr := proc.Call(
		uintptr(spiSetDeskWallpaper),
		0,
		uintptr(param),
		uintptr(spifUpdateIniFile|spifSendChange),
	)
	if ret == 0 {
		return fmt.Errorf("%w: %s: %w", errors.ErrWallpaperSet, proc.Name, callErr)
	}
	return nil
}
