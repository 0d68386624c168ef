package luacrypt

import (
	"github.com/mangalorg/luacrypt/crypt"
	"github.com/philippgille/gokv"
	"github.com/philippgille/gokv/syncmap"
	"github.com/spf13/afero"
)

type Options struct {
	// FS is where scripts are read from
	FS afero.Fs

	Logger *Logger

	// Hasher defaults to the platform primitive, crypt.Native()
	Hasher crypt.Hasher

	// Cache memoizes successful hashes across scripts of the runtime.
	// Disabled when nil
	Cache gokv.Store

	// PassThroughFailures returns the primitive's failure token to scripts
	// instead of raising an error when a salt is rejected
	PassThroughFailures bool
}

func (o *Options) fillDefaults() {
	if o.FS == nil {
		o.FS = afero.NewOsFs()
	}

	if o.Logger == nil {
		o.Logger = NewLogger()
	}

	if o.Hasher == nil {
		o.Hasher = crypt.Native()
	}
}

func DefaultOptions() Options {
	return Options{
		FS:     afero.NewOsFs(),
		Logger: NewLogger(),
		Hasher: crypt.Native(),
	}
}

// NewCacheStore returns an in-memory store for Options.Cache.
func NewCacheStore() gokv.Store {
	return syncmap.NewStore(syncmap.DefaultOptions)
}
