// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/wanderstack/brand-content-service/cmd"

func main() {
	cmd.Execute()
}
