package config

// Py2secfile represents the structure of the py2sec.yaml configuration file.
type Py2secfile struct {
	Interpreter string   `yaml:"interpreter"`
	Python      *string  `yaml:"python"`
	Directory   string   `yaml:"directory"`
	File        string   `yaml:"file"`
	Mode        string   `yaml:"mode"`
	Exclude     []string `yaml:"exclude"`
	Jobs        *int     `yaml:"n_jobs"`
	Quiet       *bool    `yaml:"quiet"`
	Release     *bool    `yaml:"release"`
	Extensions  []string `yaml:"extensions"`
	Template    string   `yaml:"template"`
}
