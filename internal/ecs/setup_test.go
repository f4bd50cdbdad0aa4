package ecs

import (
	"os"
	"testing"

	"github.com/bisarnacki/magog/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
