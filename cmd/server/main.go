package main

import (
	"log"
	"os"

	approuters "nova/internal/app_routers"
	"nova/internal/configuration"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")

	container, err := configuration.BuildContainer(configPath)
	if err != nil {
		log.Fatalf("Failed to build container: %v", err)
	}

	// Ensure cleanup on shutdown
	defer container.Close()

	approuters.StartServer(container)
}
