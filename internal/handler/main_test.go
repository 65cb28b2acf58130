// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"os"
	"testing"

	"github.com/olegiv/suratku/internal/i18n"
	"github.com/olegiv/suratku/internal/testutil"
)

func TestMain(m *testing.M) {
	if err := i18n.Init(testutil.TestLoggerSilent()); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
