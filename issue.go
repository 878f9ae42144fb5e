package cssdrift

// SkippedFile records one input file that was dropped from a run. Failures
// are recovered by exclusion: the file is logged and the run continues
// with a best-effort report from the files that succeeded. There are no
// retries.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}
