package domain

import "runtime"

// Platform describes what the compiler toolchain can do on the host OS.
type Platform struct {
	Name string
	// OneFilePerInvocation restricts the compiler to a single source per build script.
	OneFilePerInvocation bool
	// NativeExtensions lists the suffixes of compiled extension modules.
	NativeExtensions []string
}

// PlatformFor returns the platform description for a GOOS value.
func PlatformFor(goos string) Platform {
	return Platform{
		Name:                 goos,
		OneFilePerInvocation: goos == "windows",
		NativeExtensions:     []string{".so", ".pyd"},
	}
}

// CurrentPlatform describes the platform the binary runs on.
func CurrentPlatform() Platform {
	return PlatformFor(runtime.GOOS)
}

// ArtifactExtension returns the suffix the compiler produces on this platform.
func (p Platform) ArtifactExtension() string {
	if p.Name == "windows" {
		return ".pyd"
	}
	return ".so"
}
