/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import (
	"fmt"
	"os"
	"strconv"

	"devt.de/krotik/common/errorutil"
	"github.com/BurntSushi/toml"
)

// Global variables
// ================

/*
ProductVersion is the current version of the knowledge base.
*/
const ProductVersion = "1.0.0"

/*
Known configuration options.
*/
const (
	WorkerCount  = "WorkerCount"
	StoragePath  = "StoragePath"
	LogLevel     = "LogLevel"
	ConsoleColor = "ConsoleColor"
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	WorkerCount:  1,
	StoragePath:  "kb.mtrie",
	LogLevel:     "info",
	ConsoleColor: true,
}

/*
Config is the actual config which is used.
*/
var Config map[string]interface{}

/*
Initialise the config.
*/
func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}

	Config = data
}

/*
LoadConfigFile reads a TOML configuration file and merges its values into
Config, overriding any defaults with the same key. Keys present in the
file but unknown to DefaultConfig are still loaded - callers may define
extra, storage-backend-specific settings.
*/
func LoadConfigFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	var file map[string]interface{}

	if _, err := toml.DecodeFile(path, &file); err != nil {
		return fmt.Errorf("Could not decode config file %v: %w", path, err)
	}

	for k, v := range file {
		Config[k] = v
	}

	return nil
}

// Helper functions
// ================

/*
Str reads a config value as a string value.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int value.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Bool reads a config value as a boolean value.
*/
func Bool(key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}
