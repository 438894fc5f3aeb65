// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package eval

import "runtime"

// platformFlags is §4.4's fixed seeding list: the bare-word platform
// checks CMake itself predefines, seeded at Certain confidence from the
// host finch actually runs on. A CMakeLists.txt testing `if(WIN32)` on a
// Linux host gets a Certain FALSE, not an Unknown — the host platform is
// not itself in question, only what the project does with it.
var platformFlags = []string{
	"WIN32", "UNIX", "LINUX", "APPLE", "DARWIN", "MSVC", "MINGW", "CYGWIN", "WINDOWS",
}

// seedPlatformChecks returns the platform-flag truth table for the
// platform finch is running on.
func seedPlatformChecks() map[string]bool {
	host := map[string]bool{}
	for _, f := range platformFlags {
		host[f] = false
	}
	switch runtime.GOOS {
	case "windows":
		host["WIN32"] = true
		host["WINDOWS"] = true
		host["MSVC"] = true
	case "darwin":
		host["UNIX"] = true
		host["APPLE"] = true
		host["DARWIN"] = true
	default:
		host["UNIX"] = true
		host["LINUX"] = true
	}
	return host
}
