package runtime

// DebugMode controls runtime consistency checks. When true, a hook whose
// call order drifts between renders panics instead of silently binding to
// the wrong slot.
var DebugMode = true

// SetDebugMode enables or disables debug mode for the runtime.
func SetDebugMode(debug bool) {
	DebugMode = debug
}
