package main

import (
	"log"

	"minitwit/internal/transport/http"
)

func main() {
	if err := http.RunFlaskr(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
