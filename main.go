// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// PileDesigner analyses laterally loaded piles in layered soil with
// empirical p-y curves and the finite-difference method.
package main

import "github.com/mjamiv/pile-designer/cmd"

func main() {
	cmd.Execute()
}
