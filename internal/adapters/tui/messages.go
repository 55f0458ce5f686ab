package tui

// MsgStageStart signals that a pipeline stage started.
type MsgStageStart struct {
	ID   string
	Name string
}

// MsgStageLog carries output written by a running stage.
type MsgStageLog struct {
	ID   string
	Data []byte
}

// MsgStageComplete signals that a stage finished.
type MsgStageComplete struct {
	ID  string
	Err error
}

// MsgStageCached signals that a stage was skipped.
type MsgStageCached struct {
	ID string
}

// MsgClose asks the program to exit once the build is over.
type MsgClose struct{}
