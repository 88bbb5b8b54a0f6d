package maps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// itemScript is a compiled item-interaction script. Scripts define an
// interact function; the dispatch tail invokes it with the host callbacks.
type itemScript struct {
	name     string
	compiled *tengo.Compiled
}

const itemDispatchScript = `
interact(__say, __item_id)
`

// newItemScript loads and compiles scripts/<name>.tengo. Like map data, a
// copy on disk overrides the embedded script during development.
func newItemScript(name string) (*itemScript, error) {
	file := name + ".tengo"
	src, err := os.ReadFile(filepath.Join("maps", "scripts", file))
	if err != nil {
		src, err = scriptsFS.ReadFile("scripts/" + file)
		if err != nil {
			return nil, fmt.Errorf("maps: read script %s: %w", name, err)
		}
	}

	script := tengo.NewScript(append(src, []byte(itemDispatchScript)...))
	_ = script.Add("__say", nil)
	_ = script.Add("__item_id", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("maps: compile script %s: %w", name, err)
	}

	return &itemScript{name: name, compiled: compiled}, nil
}

// run executes the script for one interaction. Dialog emitted via say is
// forwarded to the scene when it exposes Say(string); otherwise it is
// silently dropped, keeping the scene contract opaque.
func (s *itemScript) run(scene Scene, itemID int) error {
	say := &tengo.UserFunction{Name: "say", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		line, _ := tengo.ToString(args[0])
		if line == "" {
			return tengo.FalseValue, nil
		}
		if sink, ok := scene.(interface{ Say(string) }); ok {
			sink.Say(line)
		}
		return tengo.TrueValue, nil
	}}

	if err := s.compiled.Set("__say", say); err != nil {
		return err
	}
	if err := s.compiled.Set("__item_id", itemID); err != nil {
		return err
	}
	return s.compiled.Run()
}
