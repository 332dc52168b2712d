package tensor

import "sync"

// Defaults is the process-wide placement consulted by creation routines when
// neither an explicit option nor the context names a device.
//
// DType is not consulted by creation routines, whose element type always comes
// from the type parameter T. It is carried so a saved snapshot restores every
// ambient setting, and is reported by tools that describe the environment.
type Defaults struct {
	Device Device
	DType  DataType
}

var (
	defaultsMu sync.RWMutex
	defaults   = Defaults{Device: HostDevice, DType: Float32}
)

// GetDefaults returns a snapshot of the ambient defaults.
func GetDefaults() Defaults {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

// SetDefaults replaces the ambient defaults and returns the previous value,
// so callers can restore it with a deferred SetDefaults(prev).
func SetDefaults(d Defaults) Defaults {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	prev := defaults
	defaults = d
	return prev
}

// DefaultDevice returns the ambient default device.
func DefaultDevice() Device {
	return GetDefaults().Device
}

// SetDefaultDevice changes the ambient default device and returns the previous one.
func SetDefaultDevice(d Device) Device {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	prev := defaults.Device
	defaults.Device = d
	return prev
}

// DefaultDType returns the ambient default data type.
func DefaultDType() DataType {
	return GetDefaults().DType
}

// SetDefaultDType changes the ambient default data type and returns the previous one.
func SetDefaultDType(dt DataType) DataType {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	prev := defaults.DType
	defaults.DType = dt
	return prev
}
