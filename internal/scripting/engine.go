// Package scripting evaluates user Lua scripts that drive scene objects.
package scripting

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// LightPathFunc is the global a light script must define. It receives the
// elapsed time in seconds and returns x, y, z or a table {x=, y=, z=}.
const LightPathFunc = "light_position"

// ErrMissingFunction is returned when a script does not define LightPathFunc.
var ErrMissingFunction = errors.New("lua function not defined")

// Engine wraps a single gopher-lua VM.
// Single-goroutine access only (tick loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

func newVM() *lua.LState {
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	return vm
}

// NewEngine loads a script file.
func NewEngine(path string, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := newVM()
	if err := vm.DoFile(path); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	log.Debug("loaded lua script", zap.String("file", path))
	return newEngine(vm, log)
}

// NewEngineFromString loads a script from source.
func NewEngineFromString(src string, log *zap.Logger) (*Engine, error) {
	vm := newVM()
	if err := vm.DoString(src); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load script: %w", err)
	}
	return newEngine(vm, log)
}

func newEngine(vm *lua.LState, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if vm.GetGlobal(LightPathFunc).Type() != lua.LTFunction {
		vm.Close()
		return nil, fmt.Errorf("%s: %w", LightPathFunc, ErrMissingFunction)
	}
	return &Engine{vm: vm, log: log}, nil
}

// Position calls light_position(elapsed). It implements lighting.Path.
func (e *Engine) Position(elapsed float64) (mgl64.Vec3, error) {
	fn := e.vm.GetGlobal(LightPathFunc)

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    3,
		Protect: true,
	}, lua.LNumber(elapsed)); err != nil {
		e.log.Error("lua call error", zap.String("func", LightPathFunc), zap.Error(err))
		return mgl64.Vec3{}, fmt.Errorf("call %s: %w", LightPathFunc, err)
	}

	first := e.vm.Get(-3)
	y := e.vm.Get(-2)
	z := e.vm.Get(-1)
	e.vm.Pop(3)

	if t, ok := first.(*lua.LTable); ok {
		return mgl64.Vec3{lNum(t, "x"), lNum(t, "y"), lNum(t, "z")}, nil
	}
	for _, v := range []lua.LValue{first, y, z} {
		if v.Type() != lua.LTNumber {
			return mgl64.Vec3{}, fmt.Errorf("%s returned %s, want number", LightPathFunc, v.Type())
		}
	}
	return mgl64.Vec3{
		float64(lua.LVAsNumber(first)),
		float64(lua.LVAsNumber(y)),
		float64(lua.LVAsNumber(z)),
	}, nil
}

// lNum reads a number field from a Lua table.
func lNum(t *lua.LTable, key string) float64 {
	return float64(lua.LVAsNumber(t.RawGetString(key)))
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
