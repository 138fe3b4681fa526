package main

import (
	"github.com/joho/godotenv"

	"github.com/helixml/geveze/api/cmd/geveze"
)

func main() {
	_ = godotenv.Load()
	geveze.Execute()
}
