package luacrypt

import (
	"fmt"
	"path/filepath"

	"github.com/mangalorg/luacrypt/crypt"
	vmcrypt "github.com/mangalorg/luacrypt/vm/lib/crypt"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Runtime hosts lua scripts that have the crypt module available.
type Runtime struct {
	options Options
	hasher  crypt.Hasher
}

func NewRuntime(options Options) *Runtime {
	options.fillDefaults()

	hasher := options.Hasher
	if options.Cache != nil {
		hasher = crypt.NewCachedHasher(hasher, options.Cache)
	}

	return &Runtime{
		options: options,
		hasher:  hasher,
	}
}

func (r *Runtime) log(message string) {
	r.options.Logger.Log(message)
}

func (r *Runtime) cryptOptions() vmcrypt.Options {
	return vmcrypt.Options{
		Hasher:              r.hasher,
		PassThroughFailures: r.options.PassThroughFailures,
		Log:                 r.log,
	}
}

// Crypt calls the runtime's hasher directly, with the same caching.
func (r *Runtime) Crypt(key, salt string) (string, error) {
	return r.hasher.Crypt(key, salt)
}

// ScriptFromPath reads the script at path and parses its info header.
func (r *Runtime) ScriptFromPath(path string) (*ScriptHandle, error) {
	file, err := r.options.FS.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("%s: not a file", path)
	}

	contents, err := afero.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return r.ScriptFromBytes(filepath.Base(path), contents)
}

// ScriptFromBytes parses the info header of the given script.
func (r *Runtime) ScriptFromBytes(filename string, script []byte) (*ScriptHandle, error) {
	info, err := extractInfo(script)
	if err != nil {
		return nil, ScriptError{Script: filename, error: err}
	}

	return &ScriptHandle{
		filename:  filename,
		rawScript: script,
		runtime:   r,
		info:      info,
	}, nil
}
