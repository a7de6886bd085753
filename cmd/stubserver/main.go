// Runs the development stub of the lab backend on STUB_PORT.
package main

import (
	"github.com/joho/godotenv"

	"labdesk/config"
	"labdesk/stubserver"
	"labdesk/utils"
)

func main() {
	_ = godotenv.Load()
	config.LoadConfig()
	logger := utils.GetLogger()

	server := stubserver.New(config.AppConfig.StubJWTSecret)
	addr := "0.0.0.0:" + config.AppConfig.StubPort
	logger.Sugar().Infof("Starting stub backend on %s (operator: reception@labdesk.local / labdesk123)", addr)
	if err := server.Router().Run(addr); err != nil {
		logger.Sugar().Fatalf("stubserver: failed to start: %v", err)
	}
}
