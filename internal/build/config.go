package build

import (
	"fmt"
	"path/filepath"
)

// Default external tools.
const (
	DefaultAssembler = "nasm"
	DefaultLinker    = "ld"
)

// Config holds the resolved options of one invocation.
type Config struct {
	Input      string // Assembly source file
	Output     string // Linked executable
	Assembler  string // Assembler program, invoked as <asm> <input> -f <format> -o <object>
	Linker     string // Linker program, invoked as <ld> <object> -o <output>
	Format     string // Target object format passed to the assembler
	TempDir    string // Directory that receives the object file
	KeepObject bool   // Leave the object file behind after a successful link
	Autorun    bool   // Execute the output once it is linked
}

// ObjectPath names the intermediate object file for output inside tempDir.
func ObjectPath(tempDir, output string) (string, error) {
	dir, err := filepath.Abs(tempDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve temp directory %q: %w", tempDir, err)
	}
	return filepath.Join(dir, "qasml-"+filepath.Base(output)+".o"), nil
}

func (c Config) assembleCommand(object string) []string {
	return []string{c.Assembler, c.Input, "-f", c.Format, "-o", object}
}

func (c Config) linkCommand(object string) []string {
	return []string{c.Linker, object, "-o", c.Output}
}
