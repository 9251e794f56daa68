package httpserver

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

// TestMain keeps log output out of test results.
func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}
