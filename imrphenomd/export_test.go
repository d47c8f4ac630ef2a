package imrphenomd

// Test bridge for unexported helpers.
var (
	PeakFrequency = peakFrequency
	SolveSpline   = solveSpline
)
