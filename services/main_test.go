package services

import (
	"os"
	"testing"

	"anma.link/configs/configslog"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	code := m.Run()
	configslog.SyncLogger()
	os.Exit(code)
}
