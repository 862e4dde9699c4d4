/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

/*
SourceLocator is used to resolve named sources (e.g. files referenced by
an import or load directive) into their raw text.
*/
type SourceLocator interface {

	/*
		Resolve a given source path and return its text.
	*/
	Resolve(path string) (string, error)
}

/*
Logger is required external object to which the trie and knowledge
base release their log messages.
*/
type Logger interface {

	/*
	   LogError adds a new error log message.
	*/
	LogError(v ...interface{})

	/*
	   LogInfo adds a new info log message.
	*/
	LogInfo(v ...interface{})

	/*
	   LogDebug adds a new debug log message.
	*/
	LogDebug(v ...interface{})
}
