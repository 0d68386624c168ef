package crypt

import (
	"errors"
	"fmt"

	native "github.com/mangalorg/luacrypt/crypt"
	luadoc "github.com/mangalorg/luacrypt/vm/doc"
	lua "github.com/yuin/gopher-lua"
)

const (
	ModuleName = "crypt"
	FuncName   = "crypt"
)

// Messages are part of the lua interface, scripts match on them.
var (
	ErrArgumentCount = errors.New("Bad argument number")
	ErrInvalidKey    = errors.New("Bad key")
	ErrInvalidSalt   = errors.New("Bad salt")
	ErrNativeHash    = errors.New("Hash failed")
)

type Options struct {
	// Hasher defaults to crypt.Native()
	Hasher native.Hasher

	// PassThroughFailures makes a rejected setting return the primitive's
	// failure token (or nil) as a regular result instead of raising.
	PassThroughFailures bool

	Log func(string)
}

func (o *Options) fillDefaults() {
	if o.Hasher == nil {
		o.Hasher = native.Native()
	}

	if o.Log == nil {
		o.Log = func(string) {}
	}
}

func Lib(options Options) *luadoc.Lib {
	options.fillDefaults()

	b := &binding{options: options}

	returnType := luadoc.String
	if options.PassThroughFailures {
		returnType = luadoc.Union(luadoc.String, luadoc.Nil)
	}

	return &luadoc.Lib{
		Name:        ModuleName,
		Description: "One-way password hashing, crypt(3) of the host system.",
		Vars: []*luadoc.Var{
			{
				Name:        "backend",
				Description: "Implementation of the hash primitive.",
				Value:       lua.LString(native.Backend()),
				Type:        luadoc.Enum("libcrypt", "libc", "go"),
			},
		},
		Funcs: []*luadoc.Func{
			{
				Name: FuncName,
				Description: `Hashes the key with the given salt. The salt selects the algorithm and its parameters,
e.g. "ab" for DES or "$6$salt" for SHA-512. A stored hash can be passed as the salt to verify a key.`,
				Value: b.crypt,
				Params: []*luadoc.Param{
					{
						Name:        "key",
						Description: "The plaintext to hash.",
						Type:        luadoc.String,
					},
					{
						Name:        "salt",
						Description: "The setting, or a hash produced earlier.",
						Type:        luadoc.String,
					},
				},
				Returns: []*luadoc.Param{
					{
						Name:        "hash",
						Description: "Salt and hash in the primitive's encoding.",
						Type:        returnType,
					},
				},
			},
		},
	}
}

// Open registers the crypt table as a global and as a loaded module,
// like luaL_register does.
func Open(L *lua.LState, options Options) *lua.LTable {
	return Lib(options).Register(L)
}

// Loader returns a loader for LState.PreloadModule.
func Loader(options Options) lua.LGFunction {
	return Lib(options).Loader()
}

type binding struct {
	options Options
}

func (b *binding) crypt(L *lua.LState) int {
	args := make([]lua.LValue, L.GetTop())
	for i := range args {
		args[i] = L.Get(i + 1)
	}

	result, err := b.call(args)
	if err != nil {
		L.Error(lua.LString(err.Error()), 0)
		return 0
	}

	L.Push(result)
	return 1
}

// call validates args and forwards them to the hasher.
// The first failing check wins: count, then key, then salt.
func (b *binding) call(args []lua.LValue) (lua.LValue, error) {
	if len(args) != 2 {
		return nil, ErrArgumentCount
	}

	key, ok := toString(args[0])
	if !ok {
		return nil, ErrInvalidKey
	}

	salt, ok := toString(args[1])
	if !ok {
		return nil, ErrInvalidSalt
	}

	result, err := b.options.Hasher.Crypt(key, salt)
	if err == nil {
		return lua.LString(result), nil
	}

	b.options.Log(fmt.Sprintf("crypt: %s", err))

	var cryptErr *native.Error
	if b.options.PassThroughFailures && errors.As(err, &cryptErr) {
		if cryptErr.Result == "" {
			return lua.LNil, nil
		}

		return lua.LString(cryptErr.Result), nil
	}

	return nil, ErrNativeHash
}

// toString follows lua_tostring: strings as is, numbers converted.
func toString(value lua.LValue) (string, bool) {
	if !lua.LVCanConvToString(value) {
		return "", false
	}

	return lua.LVAsString(value), true
}
