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

package ast

// Block is a bare sequence of statements, used for the bodies of
// if/while/foreach/function/macro.
type Block struct {
	base
	Stmts []Stmt
}

func (*Block) stmtTag() {}

// File is the root of one parsed CMake input file.
type File struct {
	base
	Path        string
	Stmts       []Stmt
	ContentHash *string
}

func (*File) stmtTag() {}
