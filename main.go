package main

import (
	"github.com/CampusLancer/admin_service/config"
	"github.com/CampusLancer/admin_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
