package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/roach88/sqldouble/internal/schema"
)

// LoadError represents an error that occurred while loading a catalog.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadCatalog loads the table catalog. An empty path returns the built-in
// restaurant catalog; a file is compiled on its own; a directory is loaded
// as a CUE package.
func LoadCatalog(path string) ([]schema.Table, error) {
	if path == "" {
		return schema.Restaurant(), nil
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("catalog not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing catalog: %v", err)}
	}

	if !info.IsDir() {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error reading catalog: %v", err)}
		}
		tables, err := schema.Load(string(src))
		if err != nil {
			return nil, convertCompileError(err, filepath.Base(path))
		}
		return tables, nil
	}

	return loadCatalogDir(path)
}

func loadCatalogDir(dir string) ([]schema.Table, error) {
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeCatalog, Message: "no CUE instances loaded"}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, &LoadError{Code: ErrCodeCatalog, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	v := cuecontext.New().BuildInstance(inst)
	if err := v.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeCatalog, Message: fmt.Sprintf("building CUE value: %v", err)}
	}

	tables, err := schema.Compile(v)
	if err != nil {
		return nil, convertCompileError(err, dir)
	}
	return tables, nil
}

// convertCompileError converts a schema error to a LoadError with position info.
func convertCompileError(err error, context string) *LoadError {
	var compileErr *schema.CompileError
	if errors.As(err, &compileErr) {
		return &LoadError{
			Code:    ErrCodeCatalog,
			Message: fmt.Sprintf("%s: %s", compileErr.Field, compileErr.Message),
			Pos:     compileErr.Pos,
		}
	}
	return &LoadError{
		Code:    ErrCodeGeneric,
		Message: fmt.Sprintf("%s: %v", context, err),
	}
}
