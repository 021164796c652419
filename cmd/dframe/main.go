// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dframe reads delimited data tables and filters, orders,
// groups and selects them, from flags or from a pipeline file.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/dataframe/logx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		logx.PrintlnError("dframe: ", err)
		os.Exit(1)
	}
}
