package diag

// Minimal metrics surface, no-op by default. Names:
// - op_total{comp,stage,result}
// - error_total{comp,code}
// - op_duration_ms{comp,stage}

// IncOp increments an operation counter (result is "success" or
// "error").
func IncOp(comp, stage, result string) {
	// no-op; a host binary can replace this with a real exporter.
}

// IncError increments an error counter by classification code.
func IncError(comp, code string) {
	// no-op; a host binary can replace this with a real exporter.
}

// ObserveDuration records a stage duration in milliseconds.
func ObserveDuration(comp, stage string, durMS int64) {
	// no-op; a host binary can replace this with a real exporter.
}
