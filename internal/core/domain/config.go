package domain

// ProjectConfig holds the values read from a py2sec.yaml file.
// Nil pointers mean the key was not present.
type ProjectConfig struct {
	Interpreter string
	Python      *string
	Directory   string
	File        string
	Mode        string
	Exclude     []string
	Jobs        *int
	Quiet       *bool
	Release     *bool
	Extensions  []string
	Template    string
}
