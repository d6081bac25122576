package main

import (
	"log"

	"ussurochki/internal/api"
)

func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
