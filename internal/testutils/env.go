package testutils

import "os"

// SavedEnv remembers whether a variable existed and what it held
// before a test overrode it.
type SavedEnv struct {
	Key   string
	Had   bool
	Value string
}

// SetEnv overrides an environment variable and returns its prior state
// so the caller can undo the change after the test.
func SetEnv(key, value string) SavedEnv {
	prev, had := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	return SavedEnv{Key: key, Had: had, Value: prev}
}

// Restore puts the variable back to its captured state, unsetting it
// if it did not exist before.
func (e SavedEnv) Restore() {
	if e.Had {
		_ = os.Setenv(e.Key, e.Value)
	} else {
		_ = os.Unsetenv(e.Key)
	}
}

// RestoreEnv undoes a batch of SetEnv calls.
func RestoreEnv(envs []SavedEnv) {
	for _, env := range envs {
		env.Restore()
	}
}
