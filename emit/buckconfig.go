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

package emit

// buckConfig is the fixed root .buckconfig content §6 specifies. It does
// not vary with the converted project's targets, so it is a constant
// rather than something RenderBuckFile's caller builds up.
const buckConfig = `[buildfile]
    name = BUCK

[parser]
    polyglot_parsing_enabled = true
    default_build_file_syntax = STARLARK

[project]
    ide = vscode

[cxx]
    default_platform = //toolchains:cxx
    cxxflags = -std=c++20
    cxxppflags = -Wall -Wextra

[repositories]
    prelude = buck2/prelude
    toolchains = toolchains
`

// BuckConfig returns the fixed .buckconfig content written once per run,
// at the discovery root only.
func BuckConfig() string { return buckConfig }
