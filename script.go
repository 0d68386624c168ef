package luacrypt

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mangalorg/luacrypt/vm"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

type ScriptInfo struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
}

func (s *ScriptInfo) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name must be set")
	}

	version := s.Version
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}

	if !semver.IsValid(version) {
		return fmt.Errorf("invalid semver %q", s.Version)
	}

	return nil
}

// infoPrefix marks header lines, e.g.
//
//	--| name: hash
//	--| version: 0.1.0
const infoPrefix = "--|"

func extractInfo(script []byte) (*ScriptInfo, error) {
	var infoLines [][]byte

	for _, line := range bytes.Split(script, []byte("\n")) {
		if bytes.HasPrefix(line, []byte(infoPrefix)) {
			infoLines = append(infoLines, bytes.TrimPrefix(line, []byte(infoPrefix)))
		}
	}

	info := &ScriptInfo{}
	if err := yaml.Unmarshal(bytes.Join(infoLines, []byte("\n")), info); err != nil {
		return nil, InfoError{errors.Wrap(err, "header")}
	}

	if err := info.Validate(); err != nil {
		return nil, InfoError{err}
	}

	return info, nil
}

type ScriptHandle struct {
	filename  string
	rawScript []byte
	runtime   *Runtime
	info      *ScriptInfo
}

func (s *ScriptHandle) Filename() string {
	return s.filename
}

func (s *ScriptHandle) Info() ScriptInfo {
	return *s.info
}

// Run executes the script in a fresh state and returns
// the values the chunk returned, as strings.
func (s *ScriptHandle) Run(ctx context.Context) ([]string, error) {
	s.runtime.options.Logger.Logf("Compiling script %q", s.info.Name)

	state := vm.NewState(vm.Options{
		Crypt: s.runtime.cryptOptions(),
	})
	defer state.Close()

	state.SetContext(ctx)

	lfunc, err := state.Load(bytes.NewReader(s.rawScript), s.filename)
	if err != nil {
		return nil, ScriptError{Script: s.filename, error: err}
	}

	s.runtime.options.Logger.Logf("Running script %q", s.info.Name)
	top := state.GetTop()
	if err := state.CallByParam(lua.P{
		Fn:      lfunc,
		NRet:    lua.MultRet,
		Protect: true,
	}); err != nil {
		return nil, ScriptError{Script: s.filename, error: err}
	}

	results := make([]string, state.GetTop()-top)
	for i := range results {
		results[i] = state.Get(top + i + 1).String()
	}

	return results, nil
}
