package domain

import "time"

// Artifact is a file placed into the result tree.
type Artifact struct {
	// Path is relative to the result root (or the work dir in inplace mode).
	Path string `json:"path"`
	// Source is the file the artifact was produced from, relative to the work dir.
	Source string `json:"source"`
	// Hash is the xxhash digest of the placed file.
	Hash string `json:"hash"`
}

// StageRecord captures the outcome of one pipeline stage.
type StageRecord struct {
	Name     string        `json:"name"`
	Status   StageStatus   `json:"status"`
	Duration time.Duration `json:"duration"`
}

// BuildReport records what a run produced.
type BuildReport struct {
	Mode       Mode          `json:"mode"`
	Root       string        `json:"root,omitempty"`
	File       string        `json:"file,omitempty"`
	Platform   string        `json:"platform"`
	Compiled   []string      `json:"compiled"`
	Excluded   []string      `json:"excluded,omitempty"`
	Artifacts  []Artifact    `json:"artifacts"`
	Copied     []Artifact    `json:"copied,omitempty"`
	Removed    []string      `json:"removed,omitempty"`
	Stages     []StageRecord `json:"stages,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}

// Duration returns how long the run took.
func (r *BuildReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
