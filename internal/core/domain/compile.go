package domain

// CompileRequest describes one invocation of the external compiler.
type CompileRequest struct {
	// Command is the interpreter binary, e.g. python3.
	Command string
	// Script is the build script path, relative to WorkDir or absolute.
	Script  string
	WorkDir string
	Quiet   bool
}

// CompileRequestFor builds the request that runs the generated script.
func CompileRequestFor(opts BuildOptions) CompileRequest {
	return CompileRequest{
		Command: opts.InterpreterCommand(),
		Script:  BuildScriptName,
		WorkDir: opts.WorkDir,
		Quiet:   opts.Quiet,
	}
}

// Args returns the command line arguments passed to the interpreter.
func (r CompileRequest) Args() []string {
	return []string{r.Script, BuildExtCommand}
}
